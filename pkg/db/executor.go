package db

import (
	alpm "github.com/Jguer/go-alpm/v2"
)

// VerCmp compares two package versions the way pacman does.
// Embedded numbers compare numerically, so 1.9 < 1.10.
func VerCmp(a, b string) int {
	return alpm.VerCmp(a, b)
}

// Package is the part of a package database entry the scanner needs.
type Package struct {
	Name        string
	Version     string
	Description string
	DB          string // empty for the local database
	Size        int64  // download size
	Explicit    bool   // install reason, local packages only
	Depends     []string
	Provides    []string
	Groups      []string
}

// Executor reads the local and sync package databases.
type Executor interface {
	LocalPackages() []Package
	SyncPackages() []Package
	SyncGroups() []string
	PackagesFromGroup(group string) []string
	Cleanup()
}
