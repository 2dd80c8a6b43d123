package dep

import (
	"strings"

	"github.com/D1CED/octo/pkg/db"
	"github.com/D1CED/octo/pkg/stringset"
)

// SplitDep splits a dependency string like "glibc>=2.32" into name,
// comparison operator and version.
func SplitDep(dep string) (pkg, mod, ver string) {
	split := strings.FieldsFunc(dep, func(c rune) bool {
		match := c == '>' || c == '<' || c == '='

		if match {
			mod += string(c)
		}

		return match
	})

	if len(split) == 0 {
		return "", "", ""
	}

	if len(split) == 1 {
		return split[0], "", ""
	}

	return split[0], mod, split[1]
}

func pkgSatisfies(name, version, dep string) bool {
	depName, depMod, depVersion := SplitDep(dep)

	if depName != name {
		return false
	}

	return verSatisfies(version, depMod, depVersion)
}

func provideSatisfies(provide, dep, pkgVersion string) bool {
	depName, depMod, depVersion := SplitDep(dep)
	provideName, provideMod, provideVersion := SplitDep(provide)

	if provideName != depName {
		return false
	}

	// Unversioned provides can not satisfy a versioned dep
	if provideMod == "" && depMod != "" {
		provideVersion = pkgVersion // Example package: pagure
	}

	return verSatisfies(provideVersion, depMod, depVersion)
}

func verSatisfies(ver1, mod, ver2 string) bool {
	switch mod {
	case "=":
		return db.VerCmp(ver1, ver2) == 0
	case "<":
		return db.VerCmp(ver1, ver2) < 0
	case "<=":
		return db.VerCmp(ver1, ver2) <= 0
	case ">":
		return db.VerCmp(ver1, ver2) > 0
	case ">=":
		return db.VerCmp(ver1, ver2) >= 0
	}

	return true
}

// Satisfies reports whether pkg fulfils the dependency string dep, either
// by name or through one of its provides.
func Satisfies(dep string, pkg *db.Package) bool {
	if pkgSatisfies(pkg.Name, pkg.Version, dep) {
		return true
	}

	for _, provide := range pkg.Provides {
		if provideSatisfies(provide, dep, pkg.Version) {
			return true
		}
	}

	return false
}

// Resolver maps dependency strings to package names.
type Resolver struct {
	names     stringset.StringSet
	providers map[string][]*db.Package
}

// NewResolver indexes pkgs by name and by the names they provide.
func NewResolver(pkgs []db.Package) *Resolver {
	r := &Resolver{
		names:     make(stringset.StringSet, len(pkgs)),
		providers: make(map[string][]*db.Package),
	}

	for i := range pkgs {
		r.names.Set(pkgs[i].Name)
		for _, provide := range pkgs[i].Provides {
			name, _, _ := SplitDep(provide)
			r.providers[name] = append(r.providers[name], &pkgs[i])
		}
	}

	return r
}

// Resolve returns the package name a dependency string refers to.
// A package with the exact name wins over providers. ok is false if
// nothing satisfies dep.
func (r *Resolver) Resolve(dep string) (name string, ok bool) {
	name, _, _ = SplitDep(dep)
	if r.names.Get(name) {
		return name, true
	}

	for _, provider := range r.providers[name] {
		if Satisfies(dep, provider) {
			return provider.Name, true
		}
	}

	return "", false
}

// ResolveAll resolves every dependency string, dropping unknown ones.
func (r *Resolver) ResolveAll(deps []string) []string {
	names := make([]string, 0, len(deps))
	for _, d := range deps {
		if name, ok := r.Resolve(d); ok {
			names = append(names, name)
		}
	}
	return names
}
