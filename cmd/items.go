package cmd

import (
	"errors"
	"strings"

	"github.com/marcus/basket/internal/entitlement"
	"github.com/marcus/basket/internal/input"
	"github.com/marcus/basket/internal/models"
	"github.com/marcus/basket/internal/output"
	"github.com/marcus/basket/internal/userstore"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <list#> [item]",
	Short: "Add an item to a list",
	Example: `  basket add 1 milk
  basket add 2 "masking tape" --qty 3
  basket add 1 --from groceries.txt
  printf 'eggs\nbread\n' | basket add 1 --from -`,
	GroupID: "core",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		idx, err := parsePosition("list", args[0])
		if err != nil {
			return reported(err)
		}

		var names []string
		if from, _ := cmd.Flags().GetString("from"); from != "" {
			names, err = input.Lines(from, cmd.InOrStdin())
			if err != nil {
				return reported(err)
			}
		} else if len(args) > 1 {
			names = []string{strings.Join(args[1:], " ")}
		}
		if len(names) == 0 {
			return reported(errors.New("nothing to add: give an item name or --from"))
		}

		lists, err := a.lists.Load(a.ctx, a.identity)
		if err != nil {
			return reported(err)
		}

		qty, _ := cmd.Flags().GetInt("qty")
		var added []models.Item
		blocked := entitlement.Allow()
		for _, name := range names {
			if blocked = entitlement.CanAddItem(a.identity, lists, idx); !blocked.Allowed {
				break
			}
			item, err := userstore.AddItem(lists, idx, name, qty)
			if err != nil {
				return reported(err)
			}
			added = append(added, item)
		}

		// Items added before a denial are kept.
		if len(added) > 0 {
			if err := a.lists.Save(a.ctx, a.identity, lists); err != nil {
				return reported(err)
			}
		}

		jsonOut, _ := cmd.Flags().GetBool("json")
		if jsonOut {
			if !blocked.Allowed {
				return gate(cmd, blocked)
			}
			if len(added) == 1 {
				return output.JSON(added[0])
			}
			return output.JSON(added)
		}
		for _, item := range added {
			output.Success("Added %s to %s", item.Name, lists[idx].Name)
		}
		return gate(cmd, blocked)
	},
}

// setCheckedCmd builds check and uncheck, which differ only in the flag value.
func setCheckedCmd(use, short string, checked bool) *cobra.Command {
	return &cobra.Command{
		Use:     use + " <list#> <item#>",
		Short:   short,
		GroupID: "core",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			li, err := parsePosition("list", args[0])
			if err != nil {
				return reported(err)
			}
			ii, err := parsePosition("item", args[1])
			if err != nil {
				return reported(err)
			}
			lists, err := a.lists.Load(a.ctx, a.identity)
			if err != nil {
				return reported(err)
			}
			item, err := userstore.SetChecked(lists, li, ii, checked)
			if err != nil {
				return reported(err)
			}
			if err := a.lists.Save(a.ctx, a.identity, lists); err != nil {
				return reported(err)
			}
			if checked {
				output.Success("Checked %s", item.Name)
			} else {
				output.Success("Unchecked %s", item.Name)
			}
			return nil
		},
	}
}

var (
	checkCmd   = setCheckedCmd("check", "Mark an item as bought", true)
	uncheckCmd = setCheckedCmd("uncheck", "Mark an item as not bought", false)
)

var removeCmd = &cobra.Command{
	Use:     "remove <list#> <item#>",
	Short:   "Remove an item from a list",
	GroupID: "core",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		li, err := parsePosition("list", args[0])
		if err != nil {
			return reported(err)
		}
		ii, err := parsePosition("item", args[1])
		if err != nil {
			return reported(err)
		}
		lists, err := a.lists.Load(a.ctx, a.identity)
		if err != nil {
			return reported(err)
		}
		item, err := userstore.RemoveItem(lists, li, ii)
		if err != nil {
			return reported(err)
		}
		if err := a.lists.Save(a.ctx, a.identity, lists); err != nil {
			return reported(err)
		}
		output.Success("Removed %s", item.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd, checkCmd, uncheckCmd, removeCmd)

	addCmd.Flags().Int("qty", 0, "Quantity")
	addCmd.Flags().String("from", "", "Read item names from a file, or - for stdin")
	addCmd.Flags().Bool("json", false, "JSON output")
}
