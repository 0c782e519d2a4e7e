package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/model"
)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel frames lines in the theme's border.
func (t Theme) Panel(lines []string) string {
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// Header is the "Todos ✔ 1 • 2 Total 3" line shared by every view.
func (t Theme) Header(items []model.Item) string {
	d, p := model.Stats(items)
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), len(items),
	)
}

// Row renders one item as "<box> <text>", struck through when completed.
func (t Theme) Row(it model.Item) string {
	if it.Completed {
		return t.Success.Render(t.BoxChecked) + " " + t.Done.Render(it.Text)
	}
	return t.Muted.Render(t.BoxUnchecked) + " " + it.Text
}

// ListLines renders the full list body: header, progress bar and one row per
// item prefixed with its id.
func (t Theme) ListLines(items []model.Item) []string {
	d, p := model.Stats(items)
	lines := []string{
		t.Header(items),
		t.Muted.Render(ProgressBar(d, d+p, 28)),
		"",
	}
	if len(items) == 0 {
		return append(lines, t.Muted.Render("no items"))
	}
	for _, it := range items {
		text := it
		text.Text = Truncate(it.Text, 80)
		lines = append(lines, fmt.Sprintf("%s %s", t.Muted.Render(fmt.Sprintf("%3d.", it.ID)), t.Row(text)))
	}
	return lines
}

// Truncate shortens s to at most width cells, ending with "...".
func Truncate(s string, width int) string {
	if lipgloss.Width(s) <= width || width < 4 {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+3 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
