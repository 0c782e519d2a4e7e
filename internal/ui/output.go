package ui

import (
	"fmt"
	"io"
)

// Printer writes one-line status messages for the non-interactive views.
type Printer struct {
	Out, Err io.Writer
	Theme    Theme
}

func (p Printer) OK(msg string)   { fmt.Fprintln(p.Out, p.Theme.Success.Render(p.Theme.SymDone+" "+msg)) }
func (p Printer) Info(msg string) { fmt.Fprintln(p.Out, p.Theme.Info.Render("ℹ "+msg)) }
func (p Printer) Warn(msg string) { fmt.Fprintln(p.Err, p.Theme.Warning.Render("! "+msg)) }
func (p Printer) Fail(msg string) { fmt.Fprintln(p.Err, p.Theme.Err.Render("✖ "+msg)) }

// Hint prints a muted follow-up line on the error stream.
func (p Printer) Hint(msg string) { fmt.Fprintln(p.Err, p.Theme.Muted.Render("Hint: "+msg)) }
