// Package refresh loads scanner output into a repository. It is the only
// code that mutates a repository outside of tests.
package refresh

import (
	"context"

	"github.com/D1CED/octo/pkg/db"
	"github.com/D1CED/octo/pkg/query"
	"github.com/D1CED/octo/pkg/repository"
	"github.com/D1CED/octo/pkg/stringset"
	"github.com/D1CED/octo/pkg/text"
)

// Scanner provides the data of a reload.
type Scanner interface {
	Scan(ctx context.Context) (*query.Result, error)
	ScanAUR(ctx context.Context, foreign []db.Package) ([]repository.PackageListData, error)
	GroupMembers(group string) []string
}

type Options struct {
	// AUR loads foreign packages from the AUR as externally managed records.
	AUR bool
}

// Refresh replaces the contents of repo with a fresh scan.
func Refresh(ctx context.Context, repo *repository.Repository, scanner Scanner, opts Options) error {
	res, err := scanner.Scan(ctx)
	if err != nil {
		return err
	}

	pkgs := res.Packages
	var external []repository.PackageListData

	if opts.AUR {
		external, err = scanner.ScanAUR(ctx, res.Foreign)
		if err != nil {
			text.Warnln(text.Tf("could not load AUR packages: %s", err))
			external = nil
		}
		pkgs = withoutExternal(pkgs, external)
	}

	repo.ReplaceAll(pkgs, res.Unrequired, res.Explicit)
	if opts.AUR {
		repo.ReplaceExternallyManaged(external, res.Unrequired)
	}

	records := repo.Records()
	deps := make([]repository.Dependencies, 0, len(records))
	for _, pkg := range records {
		deps = append(deps, repository.Dependencies{Record: pkg, Names: res.Depends[pkg.Name()]})
	}
	repo.AssignDependencies(deps)

	if !repo.ComputeInverseDependencies(false) {
		return text.ErrT("dependency information is incomplete")
	}

	repo.ReconcileGroups(res.Groups)
	return nil
}

// Group reconciles the member list of group so a group filter can use it.
// The pseudo group of externally managed records needs no reconciliation.
func Group(repo *repository.Repository, scanner Scanner, group string) {
	if group == "" || group == repository.ExternalGroup {
		return
	}
	repo.ReconcileGroupMembers(group, scanner.GroupMembers(group))
}

func withoutExternal(pkgs, external []repository.PackageListData) []repository.PackageListData {
	if len(external) == 0 {
		return pkgs
	}

	names := stringset.Make()
	for i := range external {
		names.Set(external[i].Name)
	}

	out := make([]repository.PackageListData, 0, len(pkgs))
	for i := range pkgs {
		if names.Get(pkgs[i].Name) && pkgs[i].Status == repository.StatusForeign {
			continue
		}
		out = append(out, pkgs[i])
	}
	return out
}
