package query

import (
	"context"

	"github.com/pkg/errors"

	"github.com/D1CED/octo/pkg/db"
	"github.com/D1CED/octo/pkg/dep"
	"github.com/D1CED/octo/pkg/repository"
	"github.com/D1CED/octo/pkg/stringset"
	"github.com/D1CED/octo/pkg/text"
)

// AURRepository is the repository name of records loaded from the AUR.
const AURRepository = "aur"

// Result is everything a repository reload needs.
type Result struct {
	Packages   []repository.PackageListData
	Unrequired stringset.StringSet
	Explicit   stringset.StringSet
	// Depends maps a package name to the names of its direct
	// dependencies, resolved against all known packages.
	Depends map[string][]string
	Groups  []string
	// Foreign holds the installed packages found in no sync database.
	Foreign []db.Package
}

// Scanner turns package database contents into repository input.
type Scanner struct {
	DB     db.Executor
	AUR    AURInfoProvider
	SplitN int
}

// Scan reads the local and sync databases. A package in several sync
// databases yields one entry per database.
func (s *Scanner) Scan(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, text.T("scanning package databases"))
	}

	local := s.DB.LocalPackages()
	syncPkgs := s.DB.SyncPackages()

	localByName := make(map[string]*db.Package, len(local))
	for i := range local {
		localByName[local[i].Name] = &local[i]
	}

	res := &Result{
		Packages:   make([]repository.PackageListData, 0, len(syncPkgs)),
		Unrequired: UnrequiredPackages(local),
		Explicit:   ExplicitPackages(local),
		Depends:    make(map[string][]string),
		Groups:     s.DB.SyncGroups(),
	}

	resolver := dep.NewResolver(append(append([]db.Package(nil), local...), syncPkgs...))
	inSync := stringset.Make()

	for i := range syncPkgs {
		pkg := &syncPkgs[i]
		inSync.Set(pkg.Name)

		data := repository.PackageListData{
			Name:         pkg.Name,
			Version:      pkg.Version,
			Repository:   pkg.DB,
			Description:  pkg.Description,
			DownloadSize: float64(pkg.Size),
			Status:       repository.StatusNotInstalled,
			Popularity:   -1,
		}

		depends := pkg.Depends
		if installed, ok := localByName[pkg.Name]; ok {
			data.Status = syncStatus(installed.Version, pkg.Version)
			if data.Status == repository.StatusOutdated {
				data.OutdatedVersion = installed.Version
			}
			depends = installed.Depends
		}

		res.Packages = append(res.Packages, data)
		if _, ok := res.Depends[pkg.Name]; !ok {
			res.Depends[pkg.Name] = resolver.ResolveAll(depends)
		}
	}

	for i := range local {
		pkg := &local[i]
		if inSync.Get(pkg.Name) {
			continue
		}

		res.Foreign = append(res.Foreign, *pkg)
		res.Packages = append(res.Packages, repository.PackageListData{
			Name:         pkg.Name,
			Version:      pkg.Version,
			Repository:   repository.ForeignRepository,
			Description:  pkg.Description,
			DownloadSize: float64(pkg.Size),
			Status:       repository.StatusForeign,
			Popularity:   -1,
		})
		res.Depends[pkg.Name] = resolver.ResolveAll(pkg.Depends)
	}

	return res, nil
}

func syncStatus(installed, available string) repository.Status {
	switch cmp := db.VerCmp(installed, available); {
	case cmp < 0:
		return repository.StatusOutdated
	case cmp > 0:
		return repository.StatusNewer
	}
	return repository.StatusInstalled
}

// ScanAUR looks up foreign packages in the AUR. Packages unknown to the
// AUR are left out of the result.
func (s *Scanner) ScanAUR(ctx context.Context, foreign []db.Package) ([]repository.PackageListData, error) {
	if s.AUR == nil || len(foreign) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(foreign))
	installed := make(map[string]string, len(foreign))
	for i := range foreign {
		names = append(names, foreign[i].Name)
		installed[foreign[i].Name] = foreign[i].Version
	}

	info, err := AURInfoPrint(ctx, s.AUR, names, s.SplitN)
	if err != nil {
		return nil, err
	}

	out := make([]repository.PackageListData, 0, len(info))
	for _, pkg := range info {
		local, ok := installed[pkg.Name]
		if !ok {
			continue
		}

		data := repository.PackageListData{
			Name:        pkg.Name,
			Version:     local,
			Repository:  AURRepository,
			Description: pkg.Description,
			Status:      repository.StatusForeign,
			Popularity:  pkg.NumVotes,
		}
		if db.VerCmp(pkg.Version, local) > 0 {
			data.Status = repository.StatusForeignOutdated
			data.Version = pkg.Version
			data.OutdatedVersion = local
		}
		out = append(out, data)
	}

	return out, nil
}

// GroupMembers returns the member names of a sync database group.
func (s *Scanner) GroupMembers(group string) []string {
	return s.DB.PackagesFromGroup(group)
}
