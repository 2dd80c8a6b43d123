package repository

// graphGuard is the only code allowed to touch the dependency lists of a
// record. The repository uses it while rebuilding the graph.
type graphGuard struct{}

func (graphGuard) setDependencies(pkg *Record, deps []*Record) {
	if deps == nil {
		deps = []*Record{}
	}
	pkg.dependsOn = edges{list: deps, known: true}
}

func (graphGuard) clearDependencies(pkg *Record) {
	pkg.dependsOn = edges{}
}

func (graphGuard) resetRequirements(pkg *Record) {
	pkg.requiredBy = edges{list: []*Record{}, known: true}
}

func (graphGuard) clearRequirements(pkg *Record) {
	pkg.requiredBy = edges{}
}

func (graphGuard) addRequirement(pkg, dependent *Record) {
	if !pkg.requiredBy.known {
		panic("requiredBy of " + pkg.name + " was not reset")
	}
	pkg.requiredBy.list = append(pkg.requiredBy.list, dependent)
}
