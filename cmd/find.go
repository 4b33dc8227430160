package cmd

import (
	"fmt"
	"strings"

	"github.com/marcus/basket/internal/output"
	"github.com/marcus/basket/internal/search"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:     "find <query>",
	Short:   "Fuzzy-search items across all lists",
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
		matches := search.Find(strings.Join(args, " "), lists)

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(matches)
		}
		if len(matches) == 0 {
			output.Info("No matching items")
			return nil
		}
		for _, m := range matches {
			fmt.Printf("%s  (list %d: %s)\n", output.FormatItem(m.Item+1, m.Entry), m.List+1, m.ListName)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().Bool("json", false, "JSON output")
}
