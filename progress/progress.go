// Package progress renders a single updating status line for fixtura's
// three-phase create pipeline (extract, analyze, build), sized to the
// terminal width the way the teacher's cmd/ansi_video_renderer queries it
// via [golang.org/x/term], per SPEC_FULL.md's DOMAIN STACK note that this
// module prefers a plain width-aware line over a full TUI framework.
package progress

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const defaultWidth = 80

// Reporter renders phase-boundary status lines to an underlying writer,
// truncating to the detected terminal width (or [defaultWidth] when w is
// not a terminal).
type Reporter struct {
	w     io.Writer
	width int
}

// New returns a Reporter writing to w, auto-detecting terminal width when w
// is backed by a file descriptor.
func New(w io.Writer) *Reporter {
	width := defaultWidth

	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if detected, _, err := term.GetSize(int(f.Fd())); err == nil && detected > 0 {
			width = detected
		}
	}

	return &Reporter{w: w, width: width}
}

// Phase writes a carriage-return-prefixed status line naming the given
// pipeline phase, truncated (or space-padded) to the reporter's width.
func (r *Reporter) Phase(name string) {
	line := "==> " + name
	if len(line) > r.width {
		line = line[:r.width]
	}

	fmt.Fprintf(r.w, "\r%-*s", r.width, line)
}

// Done clears the status line, leaving the cursor at the start of that
// now-blank line.
func (r *Reporter) Done() {
	fmt.Fprintf(r.w, "\r%-*s\r", r.width, "")
}
