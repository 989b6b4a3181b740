// Package status prints the human-readable progress lines of the favicon
// tools. Colour is used only when writing to a terminal and NO_COLOR is unset.
package status

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Kind selects the marker and colour of a line.
type Kind int

const (
	Plain Kind = iota
	Start
	Success
	Failure
	Note
	Warning
	Location
	Guide
)

var markers = map[Kind]string{
	Start:    "🎨",
	Success:  "✅",
	Failure:  "❌",
	Note:     "📝",
	Warning:  "⚠️ ",
	Location: "📁",
	Guide:    "📋",
}

var colors = map[Kind]string{
	Success:  "\033[32m",
	Failure:  "\033[31m",
	Warning:  "\033[33m",
	Location: "\033[36m",
}

// Printer writes status lines to an output stream.
type Printer struct {
	w     io.Writer
	color bool
}

// New returns a Printer for w. Colour is enabled when w is a terminal.
func New(w io.Writer) *Printer {
	return &Printer{w: w, color: os.Getenv("NO_COLOR") == "" && isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Line prints one status line prefixed with the marker for kind.
func (p *Printer) Line(kind Kind, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if m, ok := markers[kind]; ok {
		msg = m + " " + msg
	}
	if c, ok := colors[kind]; ok && p.color {
		msg = c + msg + "\033[0m"
	}
	fmt.Fprintln(p.w, msg)
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}
