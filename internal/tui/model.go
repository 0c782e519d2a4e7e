// Package tui is the interactive view: a Bubble Tea list over the store with
// inline add/edit, a delete confirmation and auto-dismissing notifications.
package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/notify"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/ui"
)

const (
	msgAdded   = "Todo added!"
	msgEmpty   = "Please enter a todo."
	msgUpdated = "Todo updated!"
	msgToggled = "Todo toggled!"
	msgDeleted = "Todo deleted!"
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
	modeConfirmDelete
)

// Options tune the view.
type Options struct {
	Theme     ui.Theme
	NotifyTTL time.Duration
	Logger    *log.Logger
}

// Model implements tea.Model on top of a store it does not own.
type Model struct {
	store  *store.Store
	notes  *notify.Center
	theme  ui.Theme
	logger *log.Logger
	keys   keyMap

	list list.Model
	ti   textinput.Model // shared by add & edit

	mode     mode
	editID   int64
	inputErr string
	deleteID int64

	width, height int
}

// New builds the view for s.
func New(s *store.Store, opt Options) Model {
	if opt.Theme.Name == "" {
		opt.Theme = ui.Named(ui.DefaultTheme)
	}
	if opt.Logger == nil {
		opt.Logger = log.New(io.Discard)
	}
	keys := newKeyMap()

	l := list.New(toListItems(s.Items()), itemDelegate{theme: opt.Theme}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.SetStatusBarItemName("todo", "todos")
	l.Styles.HelpStyle = opt.Theme.Muted
	l.Styles.PaginationStyle = opt.Theme.Muted
	l.FilterInput.Prompt = "/ "
	l.AdditionalShortHelpKeys = keys.browseHelp
	l.AdditionalFullHelpKeys = keys.browseHelp

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{
		store:  s,
		notes:  notify.NewCenter(opt.NotifyTTL),
		theme:  opt.Theme,
		logger: opt.Logger,
		keys:   keys,
		list:   l,
		ti:     ti,
		width:  80,
		height: 24,
	}
	m.resize()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case notify.DismissMsg:
		m.notes.Dismiss(msg.ID)
		m.resize()
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeEdit:
			return m.updateEdit(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		}
		return m.updateBrowse(msg)
	}

	if m.mode == modeAdd || m.mode == modeEdit {
		var cmd tea.Cmd
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// keys belong to the filter input while it is open
	if m.list.SettingFilter() {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.inputErr = ""
		m.ti.SetValue("")
		m.ti.Placeholder = "New todo..."
		m.resize()
		return m, m.ti.Focus()

	case key.Matches(msg, m.keys.Edit):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.mode = modeEdit
		m.editID = it.ID
		m.inputErr = ""
		m.ti.SetValue(it.Text)
		m.ti.CursorEnd()
		m.ti.Placeholder = "Edit todo..."
		m.resize()
		return m, m.ti.Focus()

	case key.Matches(msg, m.keys.Toggle):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		res, cmd := m.dispatch(store.Toggle(it.ID))
		if res.Changed {
			return m, tea.Batch(cmd, m.notify(notify.Info, msgToggled))
		}
		return m, cmd

	case key.Matches(msg, m.keys.Delete):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.mode = modeConfirmDelete
		m.deleteID = it.ID
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		text := strings.TrimSpace(m.ti.Value())
		if text == "" {
			return m, m.notify(notify.Warning, msgEmpty)
		}
		res, cmd := m.dispatch(store.Add(text))
		m.closeInput()
		if !res.Changed {
			return m, cmd
		}
		m.list.Select(len(m.list.VisibleItems()) - 1)
		return m, tea.Batch(cmd, m.notify(notify.Success, msgAdded))

	case key.Matches(msg, m.keys.Cancel):
		m.closeInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		text := strings.TrimSpace(m.ti.Value())
		if text == "" {
			m.inputErr = "Text cannot be empty"
			return m, nil
		}
		res, cmd := m.dispatch(store.Edit(m.editID, text))
		m.closeInput()
		if res.Changed {
			return m, tea.Batch(cmd, m.notify(notify.Info, msgUpdated))
		}
		return m, cmd

	case key.Matches(msg, m.keys.Cancel):
		m.closeInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// updateConfirm treats any key other than y as "no".
func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.deleteID
	m.mode = modeBrowse
	m.deleteID = 0
	m.resize()

	if !key.Matches(msg, m.keys.Confirm) {
		m.logger.Debug("delete declined", "id", id)
		return m, nil
	}
	res, cmd := m.dispatch(store.Delete(id))
	if res.Changed {
		return m, tea.Batch(cmd, m.notify(notify.Error, msgDeleted))
	}
	return m, cmd
}

// dispatch is the only path from the view into the store. The returned
// command refilters the list when a filter is active.
func (m *Model) dispatch(in store.Intent) (store.Result, tea.Cmd) {
	res := m.store.Dispatch(in)
	m.logger.Info("intent", "kind", in.Kind, "id", res.Intent.ID, "changed", res.Changed)
	return res, m.refresh()
}

func (m *Model) notify(kind notify.Kind, text string) tea.Cmd {
	_, cmd := m.notes.Push(kind, text)
	m.resize()
	return cmd
}

// refresh copies the store's collection into the list, keeping the cursor
// inside the new bounds.
func (m *Model) refresh() tea.Cmd {
	idx := m.list.Index()
	cmd := m.list.SetItems(toListItems(m.store.Items()))
	if n := len(m.list.VisibleItems()); idx >= n && n > 0 {
		m.list.Select(n - 1)
	}
	return cmd
}

func (m *Model) closeInput() {
	m.mode = modeBrowse
	m.inputErr = ""
	m.editID = 0
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m Model) selected() (listItem, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	return it, ok
}

// chrome is the number of rows around the list: panel border, header,
// progress bar, spacer, plus the input box, prompt and notifications.
func (m Model) chrome() int {
	n := 2 + 3
	switch m.mode {
	case modeAdd, modeEdit:
		n += 4
	case modeConfirmDelete:
		n += 2
	}
	if k := len(m.notes.Active()); k > 0 {
		n += k + 1
	}
	return n
}

func (m *Model) resize() {
	h := m.height - m.chrome()
	if h < 3 {
		h = 3
	}
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	m.list.SetSize(w, h)
}

func (m Model) View() string {
	items := m.store.Items()
	d, p := m.store.Stats()

	sections := []string{
		m.theme.Header(items),
		m.theme.Muted.Render(ui.ProgressBar(d, d+p, 28)),
		"",
		m.list.View(),
	}

	switch m.mode {
	case modeAdd, modeEdit:
		title := "Add todo"
		if m.mode == modeEdit {
			title = "Edit todo"
		}
		if m.inputErr != "" {
			title += " " + m.theme.Err.Render(m.inputErr)
		}
		box := lipgloss.NewStyle().
			Border(m.theme.Border).
			BorderForeground(m.theme.BorderColor).
			Padding(0, 1)
		sections = append(sections, box.Render(title+"\n"+m.ti.View()))
	case modeConfirmDelete:
		text := ""
		if it, ok := m.store.Find(m.deleteID); ok {
			text = ui.Truncate(it.Text, 40)
		}
		sections = append(sections, "", m.theme.Warning.Render("Delete \""+text+"\"? (y/n)"))
	}

	if notes := m.notes.View(m.theme); notes != "" {
		sections = append(sections, "", notes)
	}

	return m.theme.Panel(sections)
}
