package text

import (
	"os"
	"strconv"
)

// UseColor determines if package will emit colors.
var UseColor = true

const (
	redCode     = "\x1b[31m"
	greenCode   = "\x1b[32m"
	yellowCode  = "\x1b[33m"
	blueCode    = "\x1b[34m"
	magentaCode = "\x1b[35m"
	cyanCode    = "\x1b[36m"
	boldCode    = "\x1b[1m"

	resetCode = "\x1b[0m"
)

func stylize(startCode, in string) string {
	if UseColor {
		return startCode + in + resetCode
	}

	return in
}

func Red(in string) string     { return stylize(redCode, in) }
func Green(in string) string   { return stylize(greenCode, in) }
func yellow(in string) string  { return stylize(yellowCode, in) }
func Blue(in string) string    { return stylize(blueCode, in) }
func Cyan(in string) string    { return stylize(cyanCode, in) }
func Magenta(in string) string { return stylize(magentaCode, in) }
func Bold(in string) string    { return stylize(boldCode, in) }

// ColorHash colors a string based on its hash, so repositories keep
// a stable color across runs.
func ColorHash(name string) string {
	if !UseColor {
		return name
	}
	var hash uint
	for i := 0; i < len(name); i++ {
		hash += uint(name[i])
	}
	return "\x1b[1;" + strconv.Itoa(31+int(hash%6)) + "m" + name + resetCode
}

// InIsTerminal reports whether stdout is a terminal.
func InIsTerminal() bool {
	return isTerminal(os.Stdout.Fd())
}
