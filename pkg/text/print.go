package text

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/sys/unix"
)

const (
	arrow      = "==>"
	smallArrow = " ->"
	opSymbol   = "::"
)

var cachedColumnCount = -1

var (
	Out    io.Writer = os.Stdout
	ErrOut io.Writer = os.Stderr
)

// CaptureOutput takes two io.Writer and runs a function so that the output gets written to those.
// If you supply nil for the writers the output will be discarded.
//
// Be very careful with concurrent use!!!
// No writing function may run concurrently.
func CaptureOutput(out, errOut io.Writer, f func()) {
	if out == nil {
		out = ioutil.Discard
	}
	if errOut == nil {
		errOut = ioutil.Discard
	}

	safeOut := Out
	safeErrOut := ErrOut

	Out = out
	ErrOut = errOut

	defer func() {
		Out = safeOut
		ErrOut = safeErrOut
	}()

	f()
}

func Println(a ...interface{}) {
	fmt.Fprintln(Out, a...)
}

func EPrintln(a ...interface{}) {
	fmt.Fprintln(ErrOut, a...)
}

func OperationInfoln(a ...interface{}) {
	fmt.Fprint(Out, append([]interface{}{Bold(Cyan(opSymbol + " ")), boldCode}, a...)...)
	fmt.Fprintln(Out, resetCode)
}

func Infoln(a ...interface{}) {
	fmt.Fprintln(Out, append([]interface{}{Bold(Green(arrow))}, a...)...)
}

// Warnln writes a diagnostic to ErrOut. Model code uses it for
// precondition violations that turn the operation into a no-op.
func Warnln(a ...interface{}) {
	fmt.Fprintln(ErrOut, append([]interface{}{Bold(yellow(smallArrow))}, a...)...)
}

func Errorln(a ...interface{}) {
	fmt.Fprintln(ErrOut, append([]interface{}{Bold(Red(smallArrow))}, a...)...)
}

func getColumnCount() int {
	if cachedColumnCount > 0 {
		return cachedColumnCount
	}
	if count, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil {
		cachedColumnCount = count
		return cachedColumnCount
	}
	if ws, err := unix.IoctlGetWinsize(syscall.Stdout, unix.TIOCGWINSZ); err == nil {
		cachedColumnCount = int(ws.Col)
		return cachedColumnCount
	}
	return 80
}

// PrintInfoValue prints a key/value line like pacman -Qi, wrapping
// multiple values at the terminal width.
func PrintInfoValue(key string, values ...string) {
	// 16 (text) + 1 (:) + 1 ( )
	const (
		keyLength  = 18
		delimCount = 2
	)

	str := fmt.Sprintf(Bold("%-16s: "), key)
	if len(values) == 0 || (len(values) == 1 && values[0] == "") {
		fmt.Fprintf(Out, "%s%s\n", str, T("None"))
		return
	}

	maxCols := getColumnCount()
	cols := keyLength + len(values[0])
	str += values[0]
	for _, value := range values[1:] {
		if maxCols > keyLength && cols+len(value)+delimCount >= maxCols {
			cols = keyLength
			str += "\n" + strings.Repeat(" ", keyLength)
		} else if cols != keyLength {
			str += strings.Repeat(" ", delimCount)
			cols += delimCount
		}
		str += value
		cols += len(value)
	}
	fmt.Fprintln(Out, str)
}

// Human returns a human readable byte count.
func Human(size float64) string {
	units := []string{"B", "KiB", "MiB", "GiB", "TiB"}
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	return strconv.FormatFloat(size, 'f', 1, 64) + " " + units[i]
}
