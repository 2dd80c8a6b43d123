package model

import (
	"sort"

	"github.com/D1CED/octo/pkg/db"
	"github.com/D1CED/octo/pkg/repository"
)

type lessFunc func(a, b *repository.Record) bool

// lessStatus orders explicitly installed packages first, then by status,
// unrequired before required, then by name.
func lessStatus(a, b *repository.Record) bool {
	if a.ExplicitlyInstalled() != b.ExplicitlyInstalled() {
		return a.ExplicitlyInstalled()
	}
	if a.Status() != b.Status() {
		return a.Status() < b.Status()
	}
	if a.Required() != b.Required() {
		return !a.Required()
	}
	return a.Name() < b.Name()
}

func lessVersion(a, b *repository.Record) bool {
	if cmp := db.VerCmp(a.Version(), b.Version()); cmp != 0 {
		return cmp < 0
	}
	return a.Name() < b.Name()
}

func lessRepository(a, b *repository.Record) bool {
	if a.Repository() != b.Repository() {
		return a.Repository() < b.Repository()
	}
	return a.Name() < b.Name()
}

// lessPopularity puts the most popular packages first.
func lessPopularity(a, b *repository.Record) bool {
	if a.Popularity() != b.Popularity() {
		return a.Popularity() > b.Popularity()
	}
	return a.Name() < b.Name()
}

func comparator(column int) lessFunc {
	switch column {
	case ColumnIcon:
		return lessStatus
	case ColumnVersion:
		return lessVersion
	case ColumnRepository:
		return lessRepository
	case ColumnPopularity:
		return lessPopularity
	}
	return nil
}

// sortedCopy returns pkgs ordered by column. The input is already sorted
// by name, so the name column keeps it as is.
func sortedCopy(pkgs []*repository.Record, column int) []*repository.Record {
	out := make([]*repository.Record, len(pkgs))
	copy(out, pkgs)

	if less := comparator(column); less != nil {
		sort.SliceStable(out, func(i, j int) bool {
			return less(out[i], out[j])
		})
	}

	return out
}
