package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/marcus/basket/internal/output"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:     "reset",
	Short:   "Delete all of your lists",
	GroupID: "core",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			if !output.IsTerminal() {
				return reported(errors.New("refusing to reset without --yes"))
			}
			who := a.identity
			if who == "" {
				who = "the shared default account"
			}
			confirmed := false
			err := huh.NewConfirm().
				Title(fmt.Sprintf("Delete every list for %s?", who)).
				Description("This cannot be undone.").
				Affirmative("Delete").
				Negative("Cancel").
				Value(&confirmed).
				Run()
			if err != nil {
				return reported(fmt.Errorf("confirm reset: %w", err))
			}
			if !confirmed {
				output.Info("Cancelled")
				return nil
			}
		}

		if err := a.lists.Clear(a.ctx, a.identity); err != nil {
			return reported(err)
		}
		output.Success("All lists deleted")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolP("yes", "y", false, "Skip confirmation")
}
