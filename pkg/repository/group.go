package repository

// Group holds name and members of a package group.
type Group struct {
	name    string
	members []*Record // nil until computed
}

func newGroup(name string) *Group {
	return &Group{name: name}
}

func (g *Group) Name() string { return g.name }

// Members returns the cached member list. ok is false while the list
// is invalidated.
func (g *Group) Members() (members []*Record, ok bool) {
	return g.members, g.members != nil
}

// memberListEquals compares by exact name order, so a reordered list
// is considered different.
func (g *Group) memberListEquals(names []string) bool {
	if g.members == nil || len(g.members) != len(names) {
		return false
	}

	for i, pkg := range g.members {
		if pkg.name != names[i] {
			return false
		}
	}

	return true
}

func (g *Group) addPackage(pkg *Record) {
	g.members = append(g.members, pkg)
}

func (g *Group) invalidate() {
	g.members = nil
}
