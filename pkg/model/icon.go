package model

import (
	"fmt"

	"github.com/D1CED/octo/pkg/repository"
)

// Icon is the status category of a package. Views map it to a glyph.
type Icon int

const (
	IconNotInstalled Icon = iota
	IconInstalled
	IconInstalledByUser
	IconInstalledUnrequired
	IconInstalledUnrequiredByUser
	IconNewer
	IconNewerByUser
	IconOutdated
	IconOutdatedByUser
	IconForeign
	IconForeignOutdated
)

// IconFor selects the icon of a package from its status and flags.
// It panics on an unknown status.
func IconFor(status repository.Status, required, explicit bool) Icon {
	switch status {
	case repository.StatusForeign:
		return IconForeign
	case repository.StatusForeignOutdated:
		return IconForeignOutdated
	case repository.StatusOutdated:
		if explicit {
			return IconOutdatedByUser
		}
		return IconOutdated
	case repository.StatusNewer:
		if explicit {
			return IconNewerByUser
		}
		return IconNewer
	case repository.StatusInstalled:
		// unrequired: no other package depends on it
		switch {
		case required && explicit:
			return IconInstalledByUser
		case required:
			return IconInstalled
		case explicit:
			return IconInstalledUnrequiredByUser
		default:
			return IconInstalledUnrequired
		}
	case repository.StatusNotInstalled:
		return IconNotInstalled
	}

	panic(fmt.Sprintf("unknown package status %d", status))
}

func iconOf(pkg *repository.Record) Icon {
	return IconFor(pkg.Status(), pkg.Required(), pkg.ExplicitlyInstalled())
}
