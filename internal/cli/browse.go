package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/daysplit/internal/journal"
	"github.com/faizmokh/daysplit/internal/ui"
)

func newBrowseCommand(ctx context.Context, env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Page through split journals in the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := ui.NewModel(ctx, journal.NewReader(env.manager))
			if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
	}
}
