package cmd

import (
	"fmt"
	"strings"

	"github.com/marcus/basket/internal/config"
	"github.com/marcus/basket/internal/entitlement"
	"github.com/marcus/basket/internal/export"
	"github.com/marcus/basket/internal/models"
	"github.com/marcus/basket/internal/output"
	"github.com/marcus/basket/internal/userstore"
	"github.com/spf13/cobra"
)

var listsCmd = &cobra.Command{
	Use:     "lists",
	Aliases: []string{"ls"},
	Short:   "Show your shopping lists",
	GroupID: "core",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		lists, err := a.lists.Load(a.ctx, a.identity)
		if err != nil {
			return reported(err)
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(lists)
		}

		if len(lists) == 0 {
			output.Info("No lists yet. Create one with: basket new <name>")
			return nil
		}
		width := output.TerminalWidth()
		for i, l := range lists {
			fmt.Println(output.FormatListShort(i+1, l, width))
		}

		s := entitlement.Summarize(a.identity, lists)
		if !s.Unlimited {
			fmt.Println()
			output.Info("%d of %d lists used", s.ListsUsed, s.MaxLists)
		}
		return nil
	},
}

var newCmd = &cobra.Command{
	Use:     "new <name>",
	Short:   "Create a shopping list",
	GroupID: "core",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		lists, err := a.lists.Load(a.ctx, a.identity)
		if err != nil {
			return reported(err)
		}
		if err := gate(cmd, entitlement.CanCreateList(a.identity, lists)); err != nil {
			return err
		}

		lists, created, err := userstore.AddList(lists, strings.Join(args, " "))
		if err != nil {
			return reported(err)
		}
		if err := a.lists.Save(a.ctx, a.identity, lists); err != nil {
			return reported(err)
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(created)
		}
		output.Success("Created list %d: %s", len(lists), created.Name)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:     "show <list#>",
	Short:   "Show the items on a list",
	GroupID: "core",
	Args:    cobra.ExactArgs(1),
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
		lists, err := a.lists.Load(a.ctx, a.identity)
		if err != nil {
			return reported(err)
		}
		if idx < 0 || idx >= len(lists) {
			return reported(fmt.Errorf("%w: %s", userstore.ErrListIndex, args[0]))
		}
		list := lists[idx]

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(list)
		}

		if md, _ := cmd.Flags().GetBool("markdown"); md {
			cfg, err := config.Load(home)
			if err != nil {
				return reported(err)
			}
			rendered, err := output.RenderMarkdown(listMarkdown(list), cfg.MarkdownWidth)
			if err != nil {
				return reported(err)
			}
			fmt.Println(rendered)
			return nil
		}

		fmt.Print(output.FormatListLong(idx+1, list))
		if !entitlement.IsPremium(a.identity) {
			output.Info("%d of %d items", len(list.Items), entitlement.FreeLimits.MaxItemsPerList)
		}
		return nil
	},
}

// listMarkdown renders one list with the export Markdown layout minus the
// document header.
func listMarkdown(list models.ShoppingList) string {
	md := export.Markdown(export.Document{Lists: []models.ShoppingList{list}})
	if i := strings.Index(md, "## "); i >= 0 {
		md = md[i:]
	}
	return md
}

var deleteCmd = &cobra.Command{
	Use:     "delete <list#>",
	Aliases: []string{"rm"},
	Short:   "Delete a shopping list",
	GroupID: "core",
	Args:    cobra.ExactArgs(1),
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
		lists, err := a.lists.Load(a.ctx, a.identity)
		if err != nil {
			return reported(err)
		}
		lists, removed, err := userstore.RemoveList(lists, idx)
		if err != nil {
			return reported(err)
		}
		if err := a.lists.Save(a.ctx, a.identity, lists); err != nil {
			return reported(err)
		}
		output.Success("Deleted list: %s", removed.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listsCmd, newCmd, showCmd, deleteCmd)

	listsCmd.Flags().Bool("json", false, "JSON output")
	newCmd.Flags().Bool("json", false, "JSON output")
	showCmd.Flags().Bool("json", false, "JSON output")
	showCmd.Flags().Bool("markdown", false, "Render the list as Markdown")
}
