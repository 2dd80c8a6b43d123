package text_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/D1CED/octo/pkg/text"
)

func TestHuman(t *testing.T) {
	testCases := []struct {
		size float64
		want string
	}{
		{0, "0.0 B"},
		{1023, "1023.0 B"},
		{1024, "1.0 KiB"},
		{1536 * 1024, "1.5 MiB"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, text.Human(tc.size))
	}
}

func TestCaptureOutput(t *testing.T) {
	text.UseColor = false
	var out, errOut bytes.Buffer

	text.CaptureOutput(&out, &errOut, func() {
		text.Println("hello")
		text.Warnln("careful")
	})

	assert.Equal(t, "hello\n", out.String())
	assert.Equal(t, " -> careful\n", errOut.String())
}

func TestPrintInfoValue(t *testing.T) {
	text.UseColor = false
	var out bytes.Buffer

	text.CaptureOutput(&out, nil, func() {
		text.PrintInfoValue("Name", "bash")
		text.PrintInfoValue("Depends On")
	})

	assert.Equal(t, "Name            : bash\nDepends On      : None\n", out.String())
}
