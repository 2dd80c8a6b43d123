package model

import (
	"regexp"
	"strconv"

	"github.com/pkg/errors"

	"github.com/D1CED/octo/pkg/repository"
	"github.com/D1CED/octo/pkg/text"
)

// DisplayMode selects between a flat list and the two tree views.
type DisplayMode int

const (
	Flat DisplayMode = iota
	DependsOnTree
	RequiredByTree
)

func (m DisplayMode) direction() Direction {
	if m == RequiredByTree {
		return RequiredBy
	}
	return DependsOn
}

type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// Columns of the model.
const (
	ColumnIcon = iota
	ColumnName
	ColumnVersion
	ColumnRepository
	ColumnPopularity

	columnCount
)

// Filter columns besides the visible ones.
const (
	// FilterAll disables the free text filter.
	FilterAll = -1
	// FilterDescription matches the free text filter against descriptions.
	FilterDescription = columnCount
)

// Index addresses a cell. The zero Index is invalid and stands for the
// root of the model.
type Index struct {
	Row    int
	Column int

	item *Item
	pkg  *repository.Record
}

func (i Index) IsValid() bool { return i.pkg != nil }

// Listener receives structural change notifications of a Model.
type Listener interface {
	ModelAboutToBeReset()
	ModelReset()
	LayoutAboutToBeChanged()
	LayoutChanged()
}

// Model presents the records of a repository as a table or as a
// dependency tree, sorted and filtered.
type Model struct {
	repo      *repository.Repository
	listeners []Listener

	mode       DisplayMode
	sortColumn int
	sortOrder  SortOrder

	installedOnly bool
	group         string
	filterColumn  int
	filterPattern string
	filterExp     *regexp.Regexp

	packages     []*repository.Record // filtered, sorted by name
	columnSorted []*repository.Record // packages sorted by sortColumn
	root         *Item

	generation uint64
}

// New creates a model over repo and registers it as an observer.
func New(repo *repository.Repository) *Model {
	m := &Model{
		repo:         repo,
		sortColumn:   ColumnName,
		filterColumn: FilterAll,
	}
	repo.Register(m)
	m.rebuild()
	m.generation = repo.Generation()
	return m
}

func (m *Model) AddListener(l Listener) {
	m.listeners = append(m.listeners, l)
}

// ResetBegin drops everything that points into the repository.
func (m *Model) ResetBegin(generation uint64) {
	m.beginReset()
	m.packages = nil
	m.columnSorted = nil
	m.root = NewRoot(nil, m.mode.direction())
}

// ResetEnd rebuilds the model from the repository.
func (m *Model) ResetEnd(generation uint64) {
	m.rebuild()
	m.generation = generation
	m.endReset()
}

// Stale reports whether the repository changed without the model seeing it.
func (m *Model) Stale() bool {
	return m.generation != m.repo.Generation()
}

func (m *Model) beginReset() {
	for _, l := range m.listeners {
		l.ModelAboutToBeReset()
	}
}

func (m *Model) endReset() {
	for _, l := range m.listeners {
		l.ModelReset()
	}
}

func (m *Model) rebuild() {
	m.packages = m.packages[:0]
	for _, pkg := range m.repo.Members(m.group) {
		if m.accept(pkg) {
			m.packages = append(m.packages, pkg)
		}
	}

	m.sort()
}

func (m *Model) accept(pkg *repository.Record) bool {
	if m.installedOnly && !pkg.Installed() {
		return false
	}
	if m.filterExp == nil {
		return true
	}

	switch m.filterColumn {
	case ColumnName:
		return m.filterExp.MatchString(pkg.Name())
	case FilterDescription:
		return m.filterExp.MatchString(pkg.Description())
	}
	return true
}

func (m *Model) sort() {
	m.columnSorted = sortedCopy(m.packages, m.sortColumn)

	if m.mode == Flat {
		m.root = NewRoot(nil, DependsOn)
	} else {
		m.root = NewRoot(m.columnSorted, m.mode.direction())
	}
}

func (m *Model) reset(f func()) {
	m.beginReset()
	f()
	m.rebuild()
	m.endReset()
}

// SwitchDisplayMode changes between the flat list and the tree views.
func (m *Model) SwitchDisplayMode(mode DisplayMode) {
	m.reset(func() { m.mode = mode })
}

func (m *Model) DisplayMode() DisplayMode { return m.mode }

// ApplyFilter restricts the model to installed packages and to the members
// of group. An empty group selects every package.
func (m *Model) ApplyFilter(installedOnly bool, group string) {
	m.reset(func() {
		m.installedOnly = installedOnly
		m.group = group
	})
}

// ApplyTextFilter filters by a case insensitive regular expression matched
// against column, which is ColumnName, FilterDescription or FilterAll.
// An invalid expression leaves the model untouched.
func (m *Model) ApplyTextFilter(column int, pattern string) error {
	var exp *regexp.Regexp
	if pattern != "" {
		var err error
		exp, err = regexp.Compile("(?i)" + pattern)
		if err != nil {
			return errors.Wrapf(err, text.T("invalid filter %q"), pattern)
		}
	}

	m.reset(func() {
		m.filterColumn = column
		m.filterPattern = pattern
		m.filterExp = exp
	})
	return nil
}

// Sort orders the model by column. Sorting by the current column and order
// does nothing.
func (m *Model) Sort(column int, order SortOrder) {
	if column == m.sortColumn && order == m.sortOrder {
		return
	}

	if m.mode == Flat {
		for _, l := range m.listeners {
			l.LayoutAboutToBeChanged()
		}
		m.sortColumn, m.sortOrder = column, order
		m.sort()
		for _, l := range m.listeners {
			l.LayoutChanged()
		}
		return
	}

	m.beginReset()
	m.sortColumn, m.sortOrder = column, order
	m.sort()
	m.endReset()
}

func (m *Model) SortColumn() int { return m.sortColumn }

func (m *Model) SortOrder() SortOrder { return m.sortOrder }

// PackageCount returns the number of packages passing the filters.
func (m *Model) PackageCount() int { return len(m.packages) }

// transformRow maps between visible rows and storage rows. It is its own
// inverse.
func (m *Model) transformRow(row, count int) int {
	if m.sortOrder == Descending {
		return count - row - 1
	}
	return row
}

func (m *Model) itemAt(index Index) *Item {
	if index.item != nil {
		return index.item
	}
	return m.root
}

// Index returns the index of a cell below parent, or an invalid Index
// if there is none.
func (m *Model) Index(row, column int, parent Index) Index {
	if column < 0 || column >= columnCount || row < 0 {
		return Index{}
	}

	if m.mode == Flat {
		if parent.IsValid() || row >= len(m.columnSorted) {
			return Index{}
		}
		pkg := m.columnSorted[m.transformRow(row, len(m.columnSorted))]
		return Index{Row: row, Column: column, pkg: pkg}
	}

	item := m.itemAt(parent)
	child := item.ChildAt(m.transformRow(row, item.ChildCount()))
	if child == nil {
		return Index{}
	}
	return Index{Row: row, Column: column, item: child, pkg: child.Package()}
}

// Parent returns the index of the parent row of index. Top level rows
// have the invalid Index as parent.
func (m *Model) Parent(index Index) Index {
	if m.mode == Flat || index.item == nil {
		return Index{}
	}

	if !m.inTree(index.item) {
		return Index{}
	}

	parent := index.item.Parent()
	if parent == nil || parent == m.root {
		return Index{}
	}

	grandParent := parent.Parent()
	if grandParent == nil {
		return Index{}
	}
	row := grandParent.rowOf(parent)
	if row < 0 {
		return Index{}
	}
	return Index{
		Row:  m.transformRow(row, grandParent.ChildCount()),
		item: parent,
		pkg:  parent.Package(),
	}
}

// inTree reports whether it belongs to the current tree. Indexes taken
// before a reset point into a discarded tree.
func (m *Model) inTree(it *Item) bool {
	for it.Parent() != nil {
		it = it.Parent()
	}
	return it == m.root
}

func (m *Model) RowCount(parent Index) int {
	if m.mode == Flat {
		if parent.IsValid() {
			return 0
		}
		return len(m.columnSorted)
	}
	return m.itemAt(parent).ChildCount()
}

func (m *Model) ColumnCount(Index) int { return columnCount }

// PackageAt returns the record shown in the row of index.
func (m *Model) PackageAt(index Index) *repository.Record {
	return index.pkg
}

// Text returns the display text of a cell. The package name is shown in the
// icon column of the tree views.
func (m *Model) Text(index Index) (string, bool) {
	pkg := index.pkg
	if pkg == nil {
		return "", false
	}

	switch index.Column {
	case ColumnIcon:
		if m.mode != Flat {
			return pkg.Name(), true
		}
	case ColumnName:
		if m.mode == Flat {
			return pkg.Name(), true
		}
	case ColumnVersion:
		return pkg.Version(), true
	case ColumnRepository:
		return pkg.Repository(), true
	case ColumnPopularity:
		if pkg.Popularity() >= 0 {
			return strconv.Itoa(pkg.Popularity()), true
		}
	}

	return "", false
}

// Icon returns the status icon of a row, only set on the icon column.
func (m *Model) Icon(index Index) (Icon, bool) {
	if index.pkg == nil || index.Column != ColumnIcon {
		return 0, false
	}
	return iconOf(index.pkg), true
}

// HeaderData returns the label of a column.
func (m *Model) HeaderData(section int) string {
	switch section {
	case ColumnIcon:
		switch m.mode {
		case DependsOnTree:
			return text.T("Name (item depends on its child items)")
		case RequiredByTree:
			return text.T("Name (item is required by its child items)")
		}
		return ""
	case ColumnName:
		if m.mode == Flat {
			return text.T("Name")
		}
		return ""
	case ColumnVersion:
		return text.T("Version")
	case ColumnRepository:
		return text.T("Repository")
	case ColumnPopularity:
		return text.T("Popularity")
	}

	return strconv.Itoa(section)
}

// CanFetchMore reports whether the row of parent can be expanded further.
func (m *Model) CanFetchMore(parent Index) bool {
	if !parent.IsValid() || m.mode == Flat {
		return false
	}
	return parent.item.CanExpand(m.mode.direction())
}

// FetchMore expands the row of parent.
func (m *Model) FetchMore(parent Index) {
	if !parent.IsValid() || m.mode == Flat {
		return
	}
	parent.item.Expand(m.mode.direction())
}
