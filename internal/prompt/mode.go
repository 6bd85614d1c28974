package prompt

import (
	"io"
	"os"

	"fall-calibrate.klederson.com/internal/ui"
	"github.com/mattn/go-isatty"
)

// NewDriver builds the driver for mode. In auto mode a terminal gets the
// Bubble Tea driver and anything else (pipes, files, buffers) gets the line
// driver. The tea and survey drivers always use the process terminal.
func NewDriver(mode Mode, in io.Reader, out io.Writer, styles ui.Styles) Driver {
	switch mode {
	case ModeTea:
		return NewTeaDriver(nil, out, styles)
	case ModeSurvey:
		return NewSurveyDriver(styles)
	case ModeLine:
		return NewLineDriver(in, out)
	}

	if IsTerminal(in) {
		return NewTeaDriver(nil, out, styles)
	}
	return NewLineDriver(in, out)
}

// IsTerminal reports whether r is a file attached to a terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok || f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
