package settings

import (
	pacmanconf "github.com/Morganamilo/go-pacmanconf"
	"github.com/pkg/errors"

	"github.com/D1CED/octo/pkg/text"
)

type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, errors.New(text.Tf("invalid color mode %q", s))
}

// PacmanConf holds command line overrides of pacman's configuration.
type PacmanConf struct {
	Config string
	Root   string
	DBPath string
	Arch   string
	Color  ColorMode
}

// InitAlpm reads pacman.conf and applies the overrides. It also decides
// whether output is colored.
func InitAlpm(cmdArgs *PacmanConf) (*pacmanconf.Config, bool, error) {
	root := "/"
	if cmdArgs.Root != "" {
		root = cmdArgs.Root
	}

	pacmanConf, stderr, err := pacmanconf.PacmanConf("--config", cmdArgs.Config, "--root", root)
	if err != nil {
		return nil, false, errors.Wrapf(err, "%s", stderr)
	}

	if cmdArgs.DBPath != "" {
		pacmanConf.DBPath = cmdArgs.DBPath
	}

	if cmdArgs.Arch != "" {
		pacmanConf.Architecture = cmdArgs.Arch
	}

	return pacmanConf, UseColor(cmdArgs.Color, pacmanConf.Color, text.InIsTerminal()), nil
}

// UseColor resolves the color mode against pacman's Color option.
func UseColor(mode ColorMode, pacmanColor, isTerminal bool) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return pacmanColor && isTerminal
}
