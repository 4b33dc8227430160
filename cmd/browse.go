package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/basket/internal/output"
	"github.com/marcus/basket/internal/tui/browse"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse and edit lists interactively",
	Long: `Launch an interactive browser for your lists.

Key bindings:
  j/k, ↑/↓     Move
  Enter        Open list
  Tab          Switch panel
  n            New list
  a            Add item
  x, Space     Check / uncheck
  d            Delete item or list
  ?            Toggle help
  q            Quit`,
	GroupID: "core",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		model := browse.NewModel(a.ctx, a.lists, a.identity, output.CurrentPalette())

		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(a.ctx))
		if _, err := p.Run(); err != nil {
			return reported(fmt.Errorf("run browser: %w", err))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
