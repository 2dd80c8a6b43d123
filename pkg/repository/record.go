package repository

import (
	"strings"

	packageurl "github.com/package-url/packageurl-go"
	"golang.org/x/text/unicode/norm"
)

// Status describes a package relative to the sync databases.
// The order is significant: the status column sorts by it.
type Status int

const (
	StatusForeign Status = iota
	StatusForeignOutdated
	StatusOutdated
	StatusNewer
	StatusInstalled
	StatusNotInstalled
)

func (s Status) String() string {
	switch s {
	case StatusForeign:
		return "foreign"
	case StatusForeignOutdated:
		return "foreign-outdated"
	case StatusOutdated:
		return "outdated"
	case StatusNewer:
		return "newer"
	case StatusInstalled:
		return "installed"
	case StatusNotInstalled:
		return "not-installed"
	}
	return "unknown"
}

// ForeignRepository is used for packages that do not come from a sync database.
const ForeignRepository = "foreign"

// PackageListData is one package as produced by the scanner.
type PackageListData struct {
	Name            string
	Version         string
	Repository      string
	Description     string
	OutdatedVersion string
	DownloadSize    float64
	Status          Status
	Popularity      int // -1 for non AUR packages
}

// edges is a dependency list that distinguishes "not computed" from "empty".
type edges struct {
	list  []*Record
	known bool
}

// Record holds the data of one package. All fields except the two
// dependency lists are fixed at construction.
type Record struct {
	name            string
	version         string
	repository      string
	description     string
	outdatedVersion string
	downloadSize    float64
	status          Status
	popularity      int

	required            bool
	managedExternally   bool
	explicitlyInstalled bool

	dependsOn  edges
	requiredBy edges

	owner     *Repository
	discarded bool
}

func newRecord(owner *Repository, pkg PackageListData, required, external, explicit bool) *Record {
	repo := pkg.Repository
	if repo == "" {
		repo = ForeignRepository
	}

	return &Record{
		name:                pkg.Name,
		version:             pkg.Version,
		repository:          repo,
		description:         norm.NFC.String(strings.ToValidUTF8(pkg.Description, "\uFFFD")),
		outdatedVersion:     pkg.OutdatedVersion,
		downloadSize:        pkg.DownloadSize,
		status:              pkg.Status,
		popularity:          pkg.Popularity,
		required:            required,
		managedExternally:   external,
		explicitlyInstalled: explicit,
		owner:               owner,
	}
}

func (r *Record) Name() string            { return r.name }
func (r *Record) Version() string         { return r.version }
func (r *Record) Repository() string      { return r.repository }
func (r *Record) Description() string     { return r.description }
func (r *Record) OutdatedVersion() string { return r.outdatedVersion }
func (r *Record) DownloadSize() float64   { return r.downloadSize }
func (r *Record) Status() Status          { return r.status }
func (r *Record) Popularity() int         { return r.popularity }

// Required is false if no other installed package depends on this one.
func (r *Record) Required() bool { return r.required }

// ManagedExternally is true for records loaded through
// ReplaceExternallyManaged. They never belong to a group.
func (r *Record) ManagedExternally() bool { return r.managedExternally }

func (r *Record) ExplicitlyInstalled() bool { return r.explicitlyInstalled }

func (r *Record) Installed() bool { return r.status != StatusNotInstalled }

// DependsOn returns the packages this record depends on. ok is false
// while the dependency information has not been assigned yet.
// The returned slice must not be modified.
func (r *Record) DependsOn() (deps []*Record, ok bool) {
	return r.dependsOn.list, r.dependsOn.known
}

// RequiredBy returns the packages depending on this record. ok is false
// until ComputeInverseDependencies succeeded.
// The returned slice must not be modified.
func (r *Record) RequiredBy() (deps []*Record, ok bool) {
	return r.requiredBy.list, r.requiredBy.known
}

// Valid reports whether the record still belongs to its repository.
// Records are invalidated by the reload that replaced them.
func (r *Record) Valid() bool {
	return r.owner != nil && !r.discarded
}

// PURL returns the package URL of the record.
func (r *Record) PURL() string {
	var qualifiers packageurl.Qualifiers
	if r.repository != ForeignRepository {
		qualifiers = packageurl.Qualifiers{{Key: "repository", Value: r.repository}}
	}
	return packageurl.NewPackageURL("alpm", "arch", r.name, r.version, qualifiers, "").ToString()
}

func (r *Record) discard() {
	r.discarded = true
	r.dependsOn = edges{}
	r.requiredBy = edges{}
}
