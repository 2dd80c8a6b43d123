package repository

import (
	"sort"

	"github.com/D1CED/octo/pkg/stringset"
	"github.com/D1CED/octo/pkg/text"
)

// ExternalGroup is a pseudo group selecting all externally managed records.
const ExternalGroup = "<AUR>"

// Observer is notified around every structural change of the repository.
// The generation is increased for each change; observers can compare it
// to detect stale state. Observers must not mutate the repository from
// within a callback, use Repository.Defer instead.
type Observer interface {
	ResetBegin(generation uint64)
	ResetEnd(generation uint64)
}

// Dependencies pairs a record with the names of its direct dependencies.
type Dependencies struct {
	Record *Record
	Names  []string
}

// Repository is the central storage for package data. It owns every
// record and group; all lists handed out point into its storage and are
// only valid until the next reload.
type Repository struct {
	observers []Observer
	records   []*Record // sorted by name
	external  []*Record // sorted by name
	groups    []*Group

	generation uint64
	inCallback bool
	mutating   bool
	deferred   []func()

	guard graphGuard
}

func New() *Repository {
	return &Repository{}
}

// Register adds an observer. Observers are notified in registration order.
func (r *Repository) Register(o Observer) {
	r.observers = append(r.observers, o)
}

// Generation returns the token of the last structural change.
func (r *Repository) Generation() uint64 {
	return r.generation
}

// Defer runs fn once the current mutation and its notifications are done.
// Outside of a mutation fn runs immediately.
func (r *Repository) Defer(fn func()) {
	if r.mutating || r.inCallback {
		r.deferred = append(r.deferred, fn)
		return
	}
	fn()
}

func (r *Repository) beginReset() {
	if r.inCallback {
		panic("repository mutated from within a reset notification")
	}
	r.mutating = true
	r.generation++

	r.notify(Observer.ResetBegin)
}

func (r *Repository) endReset() {
	r.notify(Observer.ResetEnd)
	r.mutating = false

	for len(r.deferred) > 0 && !r.mutating {
		fn := r.deferred[0]
		r.deferred = r.deferred[1:]
		fn()
	}
}

func (r *Repository) notify(fn func(Observer, uint64)) {
	r.inCallback = true
	defer func() { r.inCallback = false }()

	for _, o := range r.observers {
		fn(o, r.generation)
	}
}

func sortByName(list []*Record) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].name < list[j].name
	})
}

// ReplaceAll discards all records and group member lists and loads pkgs.
// unrequired and explicit decide the Required and ExplicitlyInstalled flags.
func (r *Repository) ReplaceAll(pkgs []PackageListData, unrequired, explicit stringset.StringSet) {
	r.beginReset()
	defer r.endReset()

	for _, g := range r.groups {
		g.invalidate()
	}
	for _, pkg := range r.records {
		pkg.discard()
	}
	r.external = nil
	r.records = make([]*Record, 0, len(pkgs))

	for i := range pkgs {
		r.records = append(r.records,
			newRecord(r, pkgs[i], !unrequired.Get(pkgs[i].Name), false, explicit.Get(pkgs[i].Name)))
	}

	sortByName(r.records)
}

// ReplaceExternallyManaged swaps only the externally managed records.
// Those are always treated as explicitly installed. The dependency graph
// of the remaining records is reset to not computed.
func (r *Repository) ReplaceExternallyManaged(pkgs []PackageListData, unrequired stringset.StringSet) {
	r.beginReset()
	defer r.endReset()

	kept := make([]*Record, 0, len(r.records)+len(pkgs))
	for _, pkg := range r.records {
		if pkg.managedExternally {
			pkg.discard()
			continue
		}
		r.guard.clearDependencies(pkg)
		r.guard.clearRequirements(pkg)
		kept = append(kept, pkg)
	}
	r.records = kept
	r.external = make([]*Record, 0, len(pkgs))

	for i := range pkgs {
		pkg := newRecord(r, pkgs[i], !unrequired.Get(pkgs[i].Name), true, true)
		r.records = append(r.records, pkg)
		r.external = append(r.external, pkg)
	}

	sortByName(r.records)
	sortByName(r.external)
}

// AssignDependencies sets the dependency list of each record by resolving
// the names against the repository. Unknown names are dropped.
//
// Names are resolved to the first record with that name. Packages with the
// same name in several repositories may therefore resolve to the wrong one.
func (r *Repository) AssignDependencies(deps []Dependencies) {
	r.beginReset()
	defer r.endReset()

	for _, dep := range deps {
		if dep.Record == nil || dep.Record.owner != r || dep.Record.discarded {
			text.Warnln(text.T("skipping dependencies of a package that is not part of the repository"))
			continue
		}

		resolved := make([]*Record, 0, len(dep.Names))
		for _, name := range dep.Names {
			if pkg := r.Lookup(name); pkg != nil {
				resolved = append(resolved, pkg)
			}
		}
		r.guard.setDependencies(dep.Record, resolved)
	}
}

// ComputeInverseDependencies derives RequiredBy for all records from their
// DependsOn lists. All dependencies must be assigned before calling.
//
// It returns false if a package not managed externally is missing its
// dependency list. With forceSuccessful those packages are skipped instead.
// After a failure every RequiredBy list is reported as not computed.
func (r *Repository) ComputeInverseDependencies(forceSuccessful bool) bool {
	r.beginReset()
	defer r.endReset()

	for _, pkg := range r.records {
		if !pkg.managedExternally && !pkg.dependsOn.known {
			text.Warnln(text.Tf("package %s is missing dependency information", pkg.name))
			if !forceSuccessful {
				for _, p := range r.records {
					r.guard.clearRequirements(p)
				}
				return false
			}
		}
	}

	for _, pkg := range r.records {
		r.guard.resetRequirements(pkg)
	}

	for _, pkg := range r.records {
		if !pkg.dependsOn.known {
			continue
		}
		for _, dep := range pkg.dependsOn.list {
			if dep.discarded {
				continue
			}
			r.guard.addRequirement(dep, pkg)
		}
	}

	return true
}

// ReconcileGroups replaces the group index if the group names differ from
// the cached ones, including their order.
func (r *Repository) ReconcileGroups(names []string) {
	if r.groupNamesEqual(names) {
		return
	}

	r.beginReset()
	defer r.endReset()

	r.groups = make([]*Group, 0, len(names))
	for _, name := range names {
		r.groups = append(r.groups, newGroup(name))
	}
}

func (r *Repository) groupNamesEqual(names []string) bool {
	if len(r.groups) != len(names) {
		return false
	}

	for i, g := range r.groups {
		if g.name != names[i] {
			return false
		}
	}

	return true
}

func (r *Repository) findGroup(name string) *Group {
	for _, g := range r.groups {
		if g.name == name {
			return g
		}
	}
	return nil
}

// ReconcileGroupMembers rebuilds the member list of a group if members
// differs from the cached list. Only packages not managed externally
// can be members.
func (r *Repository) ReconcileGroupMembers(groupName string, members []string) {
	group := r.findGroup(groupName)
	if group == nil {
		text.Warnln(text.Tf("did not find package group %s", groupName))
		return
	}

	if group.memberListEquals(members) {
		return
	}

	r.beginReset()
	defer r.endReset()

	group.invalidate()
	group.members = make([]*Record, 0, len(members))

	for _, name := range members {
		i := sort.Search(len(r.records), func(i int) bool {
			return r.records[i].name >= name
		})
		for ; i < len(r.records) && r.records[i].name == name; i++ {
			if !r.records[i].managedExternally {
				group.addPackage(r.records[i])
				break
			}
		}
	}
}

// Records returns all records sorted by name. The slice is a copy.
func (r *Repository) Records() []*Record {
	out := make([]*Record, len(r.records))
	copy(out, r.records)
	return out
}

// Groups returns the names of all groups.
func (r *Repository) Groups() []string {
	names := make([]string, 0, len(r.groups))
	for _, g := range r.groups {
		names = append(names, g.name)
	}
	return names
}

// Group returns the named group or nil.
func (r *Repository) Group(name string) *Group {
	return r.findGroup(name)
}

// Members returns the records of a group. An empty or unknown group name,
// or a group whose members were not reconciled yet, selects all records.
func (r *Repository) Members(groupName string) []*Record {
	if groupName == "" {
		return r.records
	}

	if group := r.findGroup(groupName); group != nil {
		if members, ok := group.Members(); ok {
			return members
		}
	}

	if groupName == ExternalGroup {
		return r.external
	}

	return r.records
}

// Lookup returns the first record named name or nil.
func (r *Repository) Lookup(name string) *Record {
	for _, pkg := range r.records {
		if pkg.name == name {
			return pkg
		}
	}
	return nil
}
