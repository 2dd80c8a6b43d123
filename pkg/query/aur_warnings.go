package query

import (
	"github.com/D1CED/octo/pkg/stringset"
	"github.com/D1CED/octo/pkg/text"
)

type AURWarnings struct {
	Orphans   []string
	OutOfDate []string
	Missing   []string
	Ignore    stringset.StringSet
}

func NewWarnings() *AURWarnings {
	return &AURWarnings{Ignore: stringset.Make()}
}

func (warnings *AURWarnings) Print() {
	if len(warnings.Missing) > 0 {
		text.Warnln(text.T("Missing AUR Packages:"), formatRange(warnings.Missing))
	}

	if len(warnings.Orphans) > 0 {
		text.Warnln(text.T("Orphaned AUR Packages:"), formatRange(warnings.Orphans))
	}

	if len(warnings.OutOfDate) > 0 {
		text.Warnln(text.T("Flagged Out Of Date AUR Packages:"), formatRange(warnings.OutOfDate))
	}
}

func formatRange(names []string) string {
	s := ""
	for _, name := range names {
		s += " " + text.Cyan(name)
	}
	return s
}
