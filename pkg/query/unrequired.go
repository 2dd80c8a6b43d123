package query

import (
	"github.com/D1CED/octo/pkg/db"
	"github.com/D1CED/octo/pkg/dep"
	"github.com/D1CED/octo/pkg/stringset"
)

// UnrequiredPackages returns the installed packages no other installed
// package depends on, directly or through a provided name.
func UnrequiredPackages(local []db.Package) stringset.StringSet {
	resolver := dep.NewResolver(local)
	required := stringset.Make()

	for i := range local {
		for _, name := range resolver.ResolveAll(local[i].Depends) {
			if name != local[i].Name {
				required.Set(name)
			}
		}
	}

	unrequired := stringset.Make()
	for i := range local {
		if !required.Get(local[i].Name) {
			unrequired.Set(local[i].Name)
		}
	}

	return unrequired
}

// ExplicitPackages returns the packages installed on explicit request.
func ExplicitPackages(local []db.Package) stringset.StringSet {
	explicit := stringset.Make()
	for i := range local {
		if local[i].Explicit {
			explicit.Set(local[i].Name)
		}
	}
	return explicit
}

// Statistics returns statistics about packages installed in system
func Statistics(local []db.Package) struct {
	Totaln    int
	Expln     int
	TotalSize int64
} {
	var totalSize int64
	explicitInstalls := 0

	for i := range local {
		totalSize += local[i].Size
		if local[i].Explicit {
			explicitInstalls++
		}
	}

	return struct {
		Totaln    int
		Expln     int
		TotalSize int64
	}{
		len(local), explicitInstalls, totalSize,
	}
}
