package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mbeltrami/lungomare/internal/store"
	"github.com/mbeltrami/lungomare/internal/util"
)

// Run boots the TUI program and blocks until it exits. A nil db disables
// persistence; the game still plays from the seed alone.
func Run(ctx context.Context, db *store.DB, cfg util.Config, version string) error {
	m := initialModel(ctx, db, cfg, version)
	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
