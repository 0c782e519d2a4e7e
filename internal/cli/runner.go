package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/notify"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Notification texts shared with the TUI.
const (
	msgAdded   = "Todo added!"
	msgEmpty   = "Please enter a todo."
	msgUpdated = "Todo updated!"
	msgToggled = "Todo toggled!"
	msgDeleted = "Todo deleted!"
)

// Confirmer decides whether a delete goes ahead.
type Confirmer interface {
	Confirm(it model.Item) bool
}

type confirmAll struct{}

func (confirmAll) Confirm(model.Item) bool { return true }

type declineAll struct{}

func (declineAll) Confirm(model.Item) bool { return false }

// promptConfirmer asks on a terminal and accepts y or yes.
type promptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func newPromptConfirmer(in io.Reader, out io.Writer) *promptConfirmer {
	return &promptConfirmer{in: bufio.NewReader(in), out: out}
}

func (p *promptConfirmer) Confirm(it model.Item) bool {
	fmt.Fprintf(p.out, "Delete %q? [y/N] ", ui.Truncate(it.Text, 40))
	answer, err := p.in.ReadString('\n')
	if err != nil && answer == "" {
		fmt.Fprintln(p.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// scriptRunner applies script lines to a store, one intent per line.
type scriptRunner struct {
	store   *store.Store
	printer ui.Printer
	confirm Confirmer
	logger  *log.Logger

	// usageErrors counts malformed lines.
	usageErrors int
}

// Run reads r to the end, dispatching every line. It returns an error only
// when r cannot be read; malformed lines are reported and counted.
func (r *scriptRunner) Run(src io.Reader) error {
	sc := bufio.NewScanner(src)
	n := 0
	for sc.Scan() {
		n++
		r.line(n, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return nil
}

func (r *scriptRunner) line(n int, raw string) {
	fields := strings.Fields(raw)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return
	}
	cmd, a := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "ls", "list":
		fmt.Fprintln(r.printer.Out, r.printer.Theme.Panel(r.printer.Theme.ListLines(r.store.Items())))

	case "add":
		// keep the caller's inner spacing; only the verb is stripped
		r.doAdd(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), fields[0])))

	case "toggle", "done":
		if len(a) != 1 {
			r.usage(n, "usage: toggle <id>")
			return
		}
		id, ok := r.parseID(n, cmd, a[0])
		if !ok {
			return
		}
		r.report(n, r.store.Dispatch(store.Toggle(id)), notify.Info, msgToggled)

	case "edit":
		if len(a) < 2 {
			r.usage(n, "usage: edit <id> <text...>")
			return
		}
		id, ok := r.parseID(n, cmd, a[0])
		if !ok {
			return
		}
		r.doEdit(n, id, strings.Join(a[1:], " "))

	case "rm", "delete":
		if len(a) != 1 {
			r.usage(n, "usage: rm <id>")
			return
		}
		id, ok := r.parseID(n, cmd, a[0])
		if !ok {
			return
		}
		r.doRemove(n, id)

	default:
		r.usage(n, "unknown command: "+cmd)
	}
}

func (r *scriptRunner) doAdd(text string) {
	if text == "" {
		r.note(notify.Warning, msgEmpty)
		return
	}
	res := r.store.Dispatch(store.Add(text))
	if res.Changed {
		r.note(notify.Success, fmt.Sprintf("%s (#%d)", msgAdded, res.Item.ID))
	}
}

func (r *scriptRunner) doEdit(n int, id int64, text string) {
	if strings.TrimSpace(text) == "" {
		r.note(notify.Warning, msgEmpty)
		return
	}
	r.report(n, r.store.Dispatch(store.Edit(id, text)), notify.Info, msgUpdated)
}

func (r *scriptRunner) doRemove(n int, id int64) {
	it, ok := r.store.Find(id)
	if !ok {
		r.miss(n, id)
		return
	}
	if !r.confirm.Confirm(it) {
		r.logger.Debug("delete declined", "line", n, "id", id)
		return
	}
	r.report(n, r.store.Dispatch(store.Delete(id)), notify.Error, msgDeleted)
}

func (r *scriptRunner) report(n int, res store.Result, kind notify.Kind, msg string) {
	if !res.Changed {
		r.miss(n, res.Intent.ID)
		return
	}
	r.note(kind, msg)
}

func (r *scriptRunner) note(kind notify.Kind, text string) {
	line := notify.Line(notify.Notification{Kind: kind, Text: text}, r.printer.Theme)
	if kind == notify.Warning {
		fmt.Fprintln(r.printer.Err, line)
		return
	}
	fmt.Fprintln(r.printer.Out, line)
}

func (r *scriptRunner) miss(n int, id int64) {
	r.printer.Warn(fmt.Sprintf("line %d: no todo with id %d", n, id))
	r.printer.Hint("use `ls` to see valid ids")
}

func (r *scriptRunner) usage(n int, msg string) {
	r.usageErrors++
	r.printer.Fail(fmt.Sprintf("line %d: %s", n, msg))
}

func (r *scriptRunner) parseID(n int, cmd, s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		r.usage(n, cmd+": not a number: "+s)
		return 0, false
	}
	return id, true
}
