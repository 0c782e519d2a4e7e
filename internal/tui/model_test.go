package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/notify"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/ui"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func newTestModel(t *testing.T, s *store.Store) Model {
	t.Helper()
	m := New(s, Options{Theme: ui.Named("mono"), NotifyTTL: time.Minute})
	return send(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update returned %T", next)
	}
	return m
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = send(t, m, keyMsg(k))
	}
	return m
}

// typeText sends text as one paste-like rune message.
func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	return send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func noteTexts(m Model) []string {
	var out []string
	for _, n := range m.notes.Active() {
		out = append(out, n.Text)
	}
	return out
}

func TestAddFlow(t *testing.T) {
	s := store.New()
	m := newTestModel(t, s)

	m = press(t, m, "a")
	require.Equal(t, modeAdd, m.mode)

	m = typeText(t, m, "buy milk")
	m = press(t, m, "enter")

	assert.Equal(t, modeBrowse, m.mode)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, "buy milk", s.Items()[0].Text)
	assert.Equal(t, []string{msgAdded}, noteTexts(m))
	assert.Len(t, m.list.Items(), 1)
	assert.Contains(t, m.View(), "[ ] buy milk")
}

func TestAddBlankWarns(t *testing.T) {
	s := store.New()
	m := newTestModel(t, s)

	m = press(t, m, "a")
	m = typeText(t, m, "   ")
	m = press(t, m, "enter")

	assert.Equal(t, modeAdd, m.mode, "stays in add mode")
	assert.Zero(t, s.Len())
	require.Len(t, m.notes.Active(), 1)
	assert.Equal(t, notify.Warning, m.notes.Active()[0].Kind)
	assert.Equal(t, msgEmpty, m.notes.Active()[0].Text)
}

func TestAddCancel(t *testing.T) {
	s := store.New()
	m := newTestModel(t, s)

	m = press(t, m, "a")
	m = typeText(t, m, "never mind")
	m = press(t, m, "esc")

	assert.Equal(t, modeBrowse, m.mode)
	assert.Zero(t, s.Len())
	assert.Empty(t, noteTexts(m))
}

func TestToggleFlow(t *testing.T) {
	s := store.New()
	id := s.Dispatch(store.Add("walk dog")).Item.ID
	m := newTestModel(t, s)

	m = press(t, m, " ")

	it, _ := s.Find(id)
	assert.True(t, it.Completed)
	assert.Equal(t, []string{msgToggled}, noteTexts(m))
	assert.Contains(t, m.View(), "[x] walk dog")

	m = press(t, m, "x")
	it, _ = s.Find(id)
	assert.False(t, it.Completed)
}

func TestEditFlow(t *testing.T) {
	s := store.New()
	id := s.Dispatch(store.Add("buy milk")).Item.ID
	s.Dispatch(store.Toggle(id))
	m := newTestModel(t, s)

	m = press(t, m, "e")
	require.Equal(t, modeEdit, m.mode)
	assert.Equal(t, "buy milk", m.ti.Value())

	m.ti.SetValue("")
	m = typeText(t, m, "buy oat milk")
	m = press(t, m, "enter")

	it, _ := s.Find(id)
	assert.Equal(t, model.Item{ID: id, Text: "buy oat milk", Completed: true}, it)
	assert.Equal(t, []string{msgUpdated}, noteTexts(m))
}

func TestEditBlankStaysInEdit(t *testing.T) {
	s := store.New()
	id := s.Dispatch(store.Add("keep me")).Item.ID
	m := newTestModel(t, s)

	m = press(t, m, "e")
	m.ti.SetValue("  ")
	m = press(t, m, "enter")

	assert.Equal(t, modeEdit, m.mode)
	assert.NotEmpty(t, m.inputErr)
	it, _ := s.Find(id)
	assert.Equal(t, "keep me", it.Text)
	assert.Contains(t, m.View(), "Text cannot be empty")

	m = press(t, m, "esc")
	assert.Equal(t, modeBrowse, m.mode)
	assert.Empty(t, noteTexts(m))
}

func TestDeleteConfirmed(t *testing.T) {
	s := store.New()
	s.Dispatch(store.Add("a"))
	b := s.Dispatch(store.Add("b")).Item.ID
	m := newTestModel(t, s)

	m = press(t, m, "d")
	require.Equal(t, modeConfirmDelete, m.mode)
	assert.Contains(t, m.View(), `Delete "a"? (y/n)`)

	m = press(t, m, "y")
	assert.Equal(t, modeBrowse, m.mode)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, b, s.Items()[0].ID)
	assert.Equal(t, []string{msgDeleted}, noteTexts(m))
	assert.Equal(t, notify.Error, m.notes.Active()[0].Kind)
}

func TestDeleteDeclined(t *testing.T) {
	s := store.New()
	s.Dispatch(store.Add("a"))
	m := newTestModel(t, s)

	m = press(t, m, "d", "n")

	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, 1, s.Len())
	assert.Empty(t, noteTexts(m), "declining is silent")
}

func TestDeleteLastKeepsCursorInBounds(t *testing.T) {
	s := store.New()
	s.Dispatch(store.Add("a"))
	s.Dispatch(store.Add("b"))
	m := newTestModel(t, s)

	m = press(t, m, "down")
	require.Equal(t, 1, m.list.Index())
	m = press(t, m, "d", "y")

	assert.Equal(t, 0, m.list.Index())
	it, ok := m.selected()
	require.True(t, ok)
	assert.Equal(t, "a", it.Text)
}

func TestKeysOnEmptyListAreNoops(t *testing.T) {
	s := store.New()
	m := newTestModel(t, s)

	m = press(t, m, "e", " ", "d")
	assert.Equal(t, modeBrowse, m.mode)
	assert.Empty(t, noteTexts(m))
}

func TestDismissMsg(t *testing.T) {
	s := store.New()
	m := newTestModel(t, s)
	m = press(t, m, "a", "enter")
	require.Len(t, m.notes.Active(), 1)

	m = send(t, m, notify.DismissMsg{ID: m.notes.Active()[0].ID})
	assert.Empty(t, m.notes.Active())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, store.New())
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestQuitKeyIsTextWhileAdding(t *testing.T) {
	s := store.New()
	m := newTestModel(t, s)
	m = press(t, m, "a", "q", "enter")

	require.Equal(t, 1, s.Len())
	assert.Equal(t, "q", s.Items()[0].Text)
}

func TestViewHeader(t *testing.T) {
	s := store.New()
	id := s.Dispatch(store.Add("a")).Item.ID
	s.Dispatch(store.Add("b"))
	s.Dispatch(store.Toggle(id))
	m := newTestModel(t, s)

	view := m.View()
	assert.Contains(t, view, "Todos")
	assert.Contains(t, view, "Total 2")
	assert.Contains(t, view, "50%")
}

func TestDispatchIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	s := store.New()
	m := New(s, Options{Theme: ui.Named("mono"), Logger: logger})

	m = press(t, m, "a")
	m = typeText(t, m, "x")
	press(t, m, "enter")

	assert.True(t, strings.Contains(buf.String(), "intent"))
	assert.Contains(t, buf.String(), "kind=add")
}
