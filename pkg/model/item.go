package model

import (
	"github.com/D1CED/octo/pkg/repository"
	"github.com/D1CED/octo/pkg/text"
)

// Direction selects which dependency list a tree follows.
// A parent item DependsOn (or is RequiredBy) its child items.
type Direction int

const (
	RequiredBy Direction = iota
	DependsOn
)

func (d Direction) edges(pkg *repository.Record) ([]*repository.Record, bool) {
	if d == DependsOn {
		return pkg.DependsOn()
	}
	return pkg.RequiredBy()
}

// FetchState tracks how far the children of an item are materialized.
type FetchState int

const (
	// Unfetched items have no child list yet.
	Unfetched FetchState = iota
	// Fetched items have children, but those have no children of their own.
	Fetched
	// Expanded items had the children of all their children fetched.
	Expanded
)

// Item is one row of a dependency tree. The tree is built lazily: an item
// knows its children one level ahead of what is shown, so a view can ask
// whether a row is expandable before it is expanded.
type Item struct {
	parent   *Item
	pkg      *repository.Record // nil for the root
	children []*Item
	state    FetchState
}

// NewRoot creates the root of a tree over pkgs and fetches two levels.
// Dependency information has to be available before calling.
func NewRoot(pkgs []*repository.Record, dir Direction) *Item {
	root := &Item{}
	root.fetchFrom(pkgs)
	root.Expand(dir)
	return root
}

func newChild(parent *Item, pkg *repository.Record) *Item {
	return &Item{parent: parent, pkg: pkg}
}

// CanExpand reports whether Expand would add rows. Only the first child
// is checked; children of one item are expected to be uniform.
func (it *Item) CanExpand(dir Direction) bool {
	if len(it.children) == 0 {
		return false
	}

	next := it.children[0]
	_, ok := dir.edges(next.pkg)
	return next.state == Unfetched && ok
}

// Expand fetches the children of every child of it whose dependency
// list in direction dir is known.
func (it *Item) Expand(dir Direction) {
	switch it.state {
	case Unfetched:
		text.Warnln(text.T("package dependencies are missing, they should have been fetched already"))
		return
	case Expanded:
		text.Warnln(text.T("tried to expand dependency information twice"))
		return
	}

	for _, child := range it.children {
		if deps, ok := dir.edges(child.pkg); ok {
			child.fetchFrom(deps)
		}
	}
	it.state = Expanded
}

func (it *Item) fetchFrom(pkgs []*repository.Record) {
	if it.state != Unfetched {
		text.Warnln(text.T("tried to fetch dependency information twice"))
		return
	}

	it.children = make([]*Item, 0, len(pkgs))
	for _, pkg := range pkgs {
		it.children = append(it.children, newChild(it, pkg))
	}
	it.state = Fetched
}

// Parent returns the parent item, nil for the root.
func (it *Item) Parent() *Item { return it.parent }

// Package returns the record shown by the item, nil for the root.
func (it *Item) Package() *repository.Record { return it.pkg }

func (it *Item) State() FetchState { return it.state }

func (it *Item) ChildCount() int { return len(it.children) }

// ChildAt returns the child in row or nil if row is out of range.
func (it *Item) ChildAt(row int) *Item {
	if row < 0 || row >= len(it.children) {
		return nil
	}
	return it.children[row]
}

func (it *Item) rowOf(child *Item) int {
	for row, c := range it.children {
		if c == child {
			return row
		}
	}
	return -1
}
