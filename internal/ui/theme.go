package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
type Theme struct {
	Name string

	Title, Muted, Accent        lipgloss.Style
	Success, Info, Warning, Err lipgloss.Style
	Pending, Done, Selected     lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
}

const DefaultTheme = "classic"

var themes = map[string]func() Theme{
	"classic": classic,
	"neon":    neon,
	"mono":    mono,
}

// Names lists the known theme names in sorted order.
func Names() []string {
	out := make([]string, 0, len(themes))
	for k := range themes {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Known reports whether name is a registered theme.
func Known(name string) bool {
	_, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Named returns the theme registered under name, falling back to classic.
func Named(name string) Theme {
	if f, ok := themes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f()
	}
	return classic()
}

func classic() Theme {
	return Theme{
		Name:         "classic",
		Title:        lipgloss.NewStyle().Bold(true),
		Muted:        lipgloss.NewStyle().Faint(true),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Info:         lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Warning:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Err:          lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
		Border:       lipgloss.NormalBorder(),
		BorderColor:  lipgloss.Color("8"),
		BoxUnchecked: "☐", BoxChecked: "☑",
		SymDone: "✔", SymPending: "•",
	}
}

func neon() Theme {
	return Theme{
		Name:         "neon",
		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Info:         lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Warning:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Err:          lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Done:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true),
		Selected:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		Border:       lipgloss.RoundedBorder(),
		BorderColor:  lipgloss.Color("13"),
		BoxUnchecked: "◻", BoxChecked: "◼",
		SymDone: "✔", SymPending: "•",
	}
}

// mono carries no colors at all; completed rows rely on the [x] box.
func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:  "mono",
		Title: plain, Muted: plain, Accent: plain,
		Success: plain, Info: plain, Warning: plain, Err: plain,
		Pending: plain, Done: plain, Selected: plain.Reverse(true),
		Border: lipgloss.Border{
			Top: "-", Bottom: "-", Left: "|", Right: "|",
			TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
		},
		BorderColor:  lipgloss.NoColor{},
		BoxUnchecked: "[ ]", BoxChecked: "[x]",
		SymDone: "x", SymPending: "-",
	}
}
