package model_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/D1CED/octo/pkg/model"
	"github.com/D1CED/octo/pkg/repository"
	"github.com/D1CED/octo/pkg/stringset"
	"github.com/D1CED/octo/pkg/text"
)

type events []string

func (e *events) ModelAboutToBeReset()    { *e = append(*e, "reset-begin") }
func (e *events) ModelReset()             { *e = append(*e, "reset-end") }
func (e *events) LayoutAboutToBeChanged() { *e = append(*e, "layout-begin") }
func (e *events) LayoutChanged()          { *e = append(*e, "layout-end") }

func data(name, version, repo string, status repository.Status) repository.PackageListData {
	return repository.PackageListData{
		Name:       name,
		Version:    version,
		Repository: repo,
		Status:     status,
		Popularity: -1,
	}
}

// loaded returns a repository where a depends on b and b depends on c.
func loaded(t *testing.T) *repository.Repository {
	t.Helper()
	repo := repository.New()
	repo.ReplaceAll([]repository.PackageListData{
		{Name: "a", Version: "1.2", Repository: "extra", Status: repository.StatusInstalled, Description: "first letter", Popularity: 3},
		{Name: "b", Version: "1.10", Repository: "core", Status: repository.StatusNotInstalled, Description: "Second", Popularity: 10},
		{Name: "c", Version: "1.9", Repository: "community", Status: repository.StatusInstalled, Description: "third", Popularity: -1},
	}, stringset.Make("c"), stringset.Make("a"))
	deps := map[string][]string{"a": {"b"}, "b": {"c"}}
	list := []repository.Dependencies{}
	for _, pkg := range repo.Records() {
		list = append(list, repository.Dependencies{Record: pkg, Names: deps[pkg.Name()]})
	}
	repo.AssignDependencies(list)
	require.True(t, repo.ComputeInverseDependencies(false))
	return repo
}

func rows(m *model.Model, parent model.Index) []string {
	out := []string{}
	for row := 0; row < m.RowCount(parent); row++ {
		out = append(out, m.PackageAt(m.Index(row, model.ColumnName, parent)).Name())
	}
	return out
}

func TestModelFollowsRepository(t *testing.T) {
	repo := repository.New()
	m := model.New(repo)
	assert.Equal(t, 0, m.RowCount(model.Index{}))

	var ev events
	m.AddListener(&ev)

	repo.ReplaceAll([]repository.PackageListData{
		data("b", "1", "core", repository.StatusInstalled),
		data("a", "1", "core", repository.StatusInstalled),
	}, nil, nil)

	assert.Equal(t, []string{"a", "b"}, rows(m, model.Index{}))
	assert.Equal(t, 2, m.PackageCount())
	assert.Equal(t, events{"reset-begin", "reset-end"}, ev)
	assert.False(t, m.Stale())
}

func TestSortIconColumn(t *testing.T) {
	repo := repository.New()
	repo.ReplaceAll([]repository.PackageListData{
		data("A", "1", "core", repository.StatusInstalled),
		data("B", "1", "core", repository.StatusNotInstalled),
		data("C", "1", "core", repository.StatusInstalled),
	}, stringset.Make("C"), stringset.Make("A"))
	m := model.New(repo)

	m.Sort(model.ColumnIcon, model.Ascending)
	assert.Equal(t, []string{"A", "C", "B"}, rows(m, model.Index{}))

	m.Sort(model.ColumnIcon, model.Descending)
	assert.Equal(t, []string{"B", "C", "A"}, rows(m, model.Index{}))
}

func TestSortColumns(t *testing.T) {
	testCases := []struct {
		column int
		order  model.SortOrder
		want   []string
	}{
		{model.ColumnName, model.Ascending, []string{"a", "b", "c"}},
		{model.ColumnName, model.Descending, []string{"c", "b", "a"}},
		{model.ColumnVersion, model.Ascending, []string{"a", "c", "b"}},
		{model.ColumnRepository, model.Ascending, []string{"c", "b", "a"}},
		{model.ColumnPopularity, model.Ascending, []string{"b", "a", "c"}},
		{model.ColumnPopularity, model.Descending, []string{"c", "a", "b"}},
	}

	for _, tc := range testCases {
		m := model.New(loaded(t))
		m.Sort(tc.column, tc.order)
		assert.Equal(t, tc.want, rows(m, model.Index{}), "column %d order %d", tc.column, tc.order)
	}
}

func TestSortNotifications(t *testing.T) {
	m := model.New(loaded(t))
	var ev events
	m.AddListener(&ev)

	m.Sort(model.ColumnName, model.Ascending)
	assert.Empty(t, ev)

	m.Sort(model.ColumnVersion, model.Ascending)
	assert.Equal(t, events{"layout-begin", "layout-end"}, ev)

	ev = nil
	m.SwitchDisplayMode(model.DependsOnTree)
	m.Sort(model.ColumnName, model.Ascending)
	assert.Equal(t, events{"reset-begin", "reset-end", "reset-begin", "reset-end"}, ev)
}

func TestFilters(t *testing.T) {
	repo := loaded(t)
	repo.ReconcileGroups([]string{"base"})
	repo.ReconcileGroupMembers("base", []string{"a", "b"})
	m := model.New(repo)

	m.ApplyFilter(true, "")
	assert.Equal(t, []string{"a", "c"}, rows(m, model.Index{}))

	m.ApplyFilter(false, "base")
	assert.Equal(t, []string{"a", "b"}, rows(m, model.Index{}))

	m.ApplyFilter(true, "base")
	assert.Equal(t, []string{"a"}, rows(m, model.Index{}))

	m.ApplyFilter(false, "")
	require.NoError(t, m.ApplyTextFilter(model.ColumnName, "^[AB]$"))
	assert.Equal(t, []string{"a", "b"}, rows(m, model.Index{}))

	require.NoError(t, m.ApplyTextFilter(model.FilterDescription, "second|third"))
	assert.Equal(t, []string{"b", "c"}, rows(m, model.Index{}))

	require.NoError(t, m.ApplyTextFilter(model.FilterAll, "nothing matches"))
	assert.Equal(t, []string{"a", "b", "c"}, rows(m, model.Index{}))

	require.NoError(t, m.ApplyTextFilter(model.ColumnName, "a"))
	assert.Error(t, m.ApplyTextFilter(model.ColumnName, "a("))
	assert.Equal(t, []string{"a"}, rows(m, model.Index{}))
}

func TestFlatCells(t *testing.T) {
	m := model.New(loaded(t))
	idx := m.Index(1, model.ColumnName, model.Index{})
	require.True(t, idx.IsValid())

	name, ok := m.Text(idx)
	assert.True(t, ok)
	assert.Equal(t, "b", name)

	_, ok = m.Text(m.Index(1, model.ColumnIcon, model.Index{}))
	assert.False(t, ok)

	pop, ok := m.Text(m.Index(1, model.ColumnPopularity, model.Index{}))
	assert.True(t, ok)
	assert.Equal(t, "10", pop)

	_, ok = m.Text(m.Index(2, model.ColumnPopularity, model.Index{}))
	assert.False(t, ok)

	icon, ok := m.Icon(m.Index(0, model.ColumnIcon, model.Index{}))
	assert.True(t, ok)
	assert.Equal(t, model.IconInstalledByUser, icon)

	assert.False(t, m.Index(3, model.ColumnName, model.Index{}).IsValid())
	assert.False(t, m.Index(0, 5, model.Index{}).IsValid())
	assert.False(t, m.Index(0, 0, idx).IsValid())
	assert.Equal(t, 0, m.RowCount(idx))
	assert.False(t, m.Parent(idx).IsValid())
	assert.False(t, m.CanFetchMore(idx))
	assert.Equal(t, 5, m.ColumnCount(model.Index{}))
}

func TestHeaders(t *testing.T) {
	m := model.New(loaded(t))
	assert.Equal(t, "", m.HeaderData(model.ColumnIcon))
	assert.Equal(t, "Name", m.HeaderData(model.ColumnName))
	assert.Equal(t, "Version", m.HeaderData(model.ColumnVersion))
	assert.Equal(t, "Repository", m.HeaderData(model.ColumnRepository))
	assert.Equal(t, "Popularity", m.HeaderData(model.ColumnPopularity))
	assert.Equal(t, "7", m.HeaderData(7))

	m.SwitchDisplayMode(model.DependsOnTree)
	assert.Equal(t, "Name (item depends on its child items)", m.HeaderData(model.ColumnIcon))
	assert.Equal(t, "", m.HeaderData(model.ColumnName))

	m.SwitchDisplayMode(model.RequiredByTree)
	assert.Equal(t, "Name (item is required by its child items)", m.HeaderData(model.ColumnIcon))
}

func TestTreeDependsOn(t *testing.T) {
	m := model.New(loaded(t))
	m.SwitchDisplayMode(model.DependsOnTree)
	assert.Equal(t, model.DependsOnTree, m.DisplayMode())
	assert.Equal(t, []string{"a", "b", "c"}, rows(m, model.Index{}))

	a := m.Index(0, model.ColumnIcon, model.Index{})
	name, ok := m.Text(a)
	assert.True(t, ok)
	assert.Equal(t, "a", name)
	assert.False(t, m.Parent(a).IsValid())

	assert.Equal(t, []string{"b"}, rows(m, a))
	require.True(t, m.CanFetchMore(a))
	m.FetchMore(a)
	assert.False(t, m.CanFetchMore(a))

	b := m.Index(0, model.ColumnIcon, a)
	assert.Equal(t, []string{"c"}, rows(m, b))
	assert.Equal(t, a.Row, m.Parent(b).Row)
	assert.Equal(t, "a", m.PackageAt(m.Parent(b)).Name())

	c := m.Index(0, model.ColumnIcon, b)
	assert.Equal(t, "b", m.PackageAt(m.Parent(c)).Name())

	// c has no dependencies, its row cannot be expanded
	last := m.Index(2, model.ColumnIcon, model.Index{})
	assert.Equal(t, 0, m.RowCount(last))
	assert.False(t, m.CanFetchMore(last))
}

func TestParentOfIndexFromBeforeReset(t *testing.T) {
	repo := loaded(t)
	m := model.New(repo)
	m.SwitchDisplayMode(model.DependsOnTree)

	a := m.Index(0, model.ColumnIcon, model.Index{})
	b := m.Index(0, model.ColumnIcon, a)
	require.True(t, b.IsValid())

	text.CaptureOutput(&bytes.Buffer{}, &bytes.Buffer{}, func() {
		repo.ReplaceAll([]repository.PackageListData{
			data("a", "1", "core", repository.StatusInstalled),
		}, nil, nil)
	})

	assert.NotPanics(t, func() {
		assert.False(t, m.Parent(a).IsValid())
		assert.False(t, m.Parent(b).IsValid())
	})
}

func TestTreeRequiredByDescending(t *testing.T) {
	m := model.New(loaded(t))
	m.SwitchDisplayMode(model.RequiredByTree)
	m.Sort(model.ColumnName, model.Descending)
	assert.Equal(t, []string{"c", "b", "a"}, rows(m, model.Index{}))

	c := m.Index(0, model.ColumnIcon, model.Index{})
	assert.Equal(t, []string{"b"}, rows(m, c))
	m.FetchMore(c)

	b := m.Index(0, model.ColumnIcon, c)
	assert.Equal(t, []string{"a"}, rows(m, b))

	parent := m.Parent(b)
	assert.Equal(t, 0, parent.Row)
	assert.Equal(t, "c", m.PackageAt(parent).Name())
}

func TestTreeWithoutInverseDependencies(t *testing.T) {
	repo := repository.New()
	repo.ReplaceAll([]repository.PackageListData{
		data("a", "1", "core", repository.StatusInstalled),
	}, nil, nil)
	m := model.New(repo)

	var warn bytes.Buffer
	text.CaptureOutput(&bytes.Buffer{}, &warn, func() {
		m.SwitchDisplayMode(model.RequiredByTree)
	})

	a := m.Index(0, model.ColumnIcon, model.Index{})
	require.True(t, a.IsValid())
	assert.Equal(t, 0, m.RowCount(a))
	assert.False(t, m.CanFetchMore(a))
}
