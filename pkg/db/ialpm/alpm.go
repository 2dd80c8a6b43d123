package ialpm

import (
	"sort"

	alpm "github.com/Jguer/go-alpm/v2"
	pacmanconf "github.com/Morganamilo/go-pacmanconf"
	"github.com/pkg/errors"

	"github.com/D1CED/octo/pkg/db"
	"github.com/D1CED/octo/pkg/text"
)

// AlpmExecutor reads package data through libalpm.
type AlpmExecutor struct {
	handle  *alpm.Handle
	localDB alpm.IDB
	syncDB  alpm.IDBList
	conf    *pacmanconf.Config
}

var _ db.Executor = &AlpmExecutor{}

func NewExecutor(pacmanConf *pacmanconf.Config) (*AlpmExecutor, error) {
	ae := &AlpmExecutor{conf: pacmanConf}

	if err := ae.RefreshHandle(); err != nil {
		return nil, err
	}

	var err error
	ae.localDB, err = ae.handle.LocalDB()
	if err != nil {
		return nil, errors.Wrap(err, text.T("unable to open local database"))
	}

	ae.syncDB, err = ae.handle.SyncDBs()
	if err != nil {
		return nil, errors.Wrap(err, text.T("unable to open sync databases"))
	}

	return ae, nil
}

// RefreshHandle releases the current handle and creates a new one with
// all sync databases of pacman.conf registered.
func (ae *AlpmExecutor) RefreshHandle() error {
	if ae.handle != nil {
		if errRelease := ae.handle.Release(); errRelease != nil {
			return errRelease
		}
	}

	alpmHandle, err := alpm.Initialize(ae.conf.RootDir, ae.conf.DBPath)
	if err != nil {
		return errors.Wrap(err, text.T("unable to CreateHandle"))
	}

	for _, repo := range ae.conf.Repos {
		if _, err := alpmHandle.RegisterSyncDB(repo.Name, 0); err != nil {
			return errors.Wrapf(err, text.T("unable to register %s"), repo.Name)
		}
	}

	ae.handle = alpmHandle
	return nil
}

func (ae *AlpmExecutor) Cleanup() {
	if ae.handle != nil {
		if err := ae.handle.Release(); err != nil {
			text.EPrintln(err)
		}
	}
}

func toPackage(pkg alpm.IPackage, dbName string) db.Package {
	alpmPackage := pkg.(*alpm.Package)

	out := db.Package{
		Name:        pkg.Name(),
		Version:     pkg.Version(),
		Description: pkg.Description(),
		DB:          dbName,
		Size:        pkg.Size(),
		Explicit:    pkg.Reason() == alpm.PkgReasonExplicit,
		Groups:      alpmPackage.Groups().Slice(),
	}

	for _, dep := range alpmPackage.Depends().Slice() {
		out.Depends = append(out.Depends, dep.String())
	}
	for _, provide := range alpmPackage.Provides().Slice() {
		out.Provides = append(out.Provides, provide.String())
	}

	return out
}

func (ae *AlpmExecutor) LocalPackages() []db.Package {
	localPackages := []db.Package{}
	_ = ae.localDB.PkgCache().ForEach(func(pkg alpm.IPackage) error {
		localPackages = append(localPackages, toPackage(pkg, ""))
		return nil
	})
	return localPackages
}

func (ae *AlpmExecutor) SyncPackages() []db.Package {
	repoPackages := []db.Package{}
	_ = ae.syncDB.ForEach(func(alpmDB alpm.IDB) error {
		_ = alpmDB.PkgCache().ForEach(func(pkg alpm.IPackage) error {
			repoPackages = append(repoPackages, toPackage(pkg, alpmDB.Name()))
			return nil
		})
		return nil
	})
	return repoPackages
}

func (ae *AlpmExecutor) SyncGroups() []string {
	seen := make(map[string]struct{})
	groups := []string{}
	_ = ae.syncDB.ForEach(func(alpmDB alpm.IDB) error {
		_ = alpmDB.PkgCache().ForEach(func(pkg alpm.IPackage) error {
			for _, group := range pkg.(*alpm.Package).Groups().Slice() {
				if _, ok := seen[group]; !ok {
					seen[group] = struct{}{}
					groups = append(groups, group)
				}
			}
			return nil
		})
		return nil
	})
	sort.Strings(groups)
	return groups
}

func (ae *AlpmExecutor) PackagesFromGroup(groupName string) []string {
	groupPackages := []string{}
	_ = ae.syncDB.FindGroupPkgs(groupName).ForEach(func(pkg alpm.IPackage) error {
		groupPackages = append(groupPackages, pkg.Name())
		return nil
	})
	return groupPackages
}
