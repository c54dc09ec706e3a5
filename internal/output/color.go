package output

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ColorEnabled applies the --color flag to w. "always" and "never" are
// absolute; any other value follows whether w is a terminal.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return IsTTY(w)
}

// IsTTY reports whether w is a terminal, Cygwin and MSYS ptys included.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
