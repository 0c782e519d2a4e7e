package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/store"
)

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled. The store keeps the final collection.
func Run(ctx context.Context, s *store.Store, opt Options, extra ...tea.ProgramOption) error {
	progOpts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, extra...)
	p := tea.NewProgram(New(s, opt), progOpts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
