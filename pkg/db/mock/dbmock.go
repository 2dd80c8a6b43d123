package mock

import (
	"sort"

	"github.com/D1CED/octo/pkg/db"
)

// DBMock is an in-memory Executor.
type DBMock struct {
	Local  []db.Package
	Sync   []db.Package
	Groups map[string][]string // group name to member names
}

var _ db.Executor = &DBMock{}

func (m *DBMock) LocalPackages() []db.Package { return m.Local }
func (m *DBMock) SyncPackages() []db.Package  { return m.Sync }
func (m *DBMock) Cleanup()                    {}

func (m *DBMock) SyncGroups() []string {
	groups := make([]string, 0, len(m.Groups))
	for name := range m.Groups {
		groups = append(groups, name)
	}
	sort.Strings(groups)
	return groups
}

func (m *DBMock) PackagesFromGroup(group string) []string {
	return m.Groups[group]
}
