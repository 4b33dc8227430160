package cmd

import (
	"fmt"
	"strings"

	"github.com/marcus/basket/internal/config"
	"github.com/marcus/basket/internal/entitlement"
	"github.com/marcus/basket/internal/output"
	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:     "account",
	Short:   "Show tier, usage and limits",
	GroupID: "account",
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
		s := entitlement.Summarize(a.identity, lists)

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(s)
		}

		fmt.Print(output.FormatSummary(s, 24))
		if !s.Unlimited {
			fmt.Println()
			output.Info("Run `basket upgrade` to see Premium benefits.")
		}
		return nil
	},
}

// upgradeMarkdown is the Premium pitch shown by `basket upgrade`.
func upgradeMarkdown(premium bool) string {
	var sb strings.Builder
	sb.WriteString("# 💎 basket Premium\n\n")
	if premium {
		sb.WriteString("You're on **Premium**. Everything below is already unlocked.\n\n")
	}
	for _, b := range entitlement.PremiumBenefits() {
		sb.WriteString("- " + b + "\n")
	}
	if !premium {
		sb.WriteString("\nSign in as a Premium account to unlock: `basket login premium`\n")
	}
	return sb.String()
}

var upgradeCmd = &cobra.Command{
	Use:     "upgrade",
	Short:   "Show what Premium unlocks",
	GroupID: "account",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		premium := entitlement.IsPremium(a.identity)
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(map[string]interface{}{
				"premium":  premium,
				"benefits": entitlement.PremiumBenefits(),
			})
		}

		cfg, err := config.Load(home)
		if err != nil {
			return reported(err)
		}
		rendered, err := output.RenderMarkdown(upgradeMarkdown(premium), cfg.MarkdownWidth)
		if err != nil {
			return reported(err)
		}
		fmt.Println(rendered)
		return nil
	},
}

var featuresCmd = &cobra.Command{
	Use:     "features [tag]",
	Short:   "List Premium features and whether you can use them",
	Long: `List the Premium-gated features and whether the current user can use them.

With a tag (dark_mode, theme-color, ...), check that one feature. Tags
outside the gated set are reported as available.`,
	GroupID: "account",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		type row struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Gated       bool   `json:"gated"`
			Allowed     bool   `json:"allowed"`
		}
		var rows []row
		if len(args) == 1 {
			f, known := entitlement.ParseFeature(args[0])
			desc := "not a gated feature"
			for _, info := range entitlement.ListFeatures() {
				if info.Feature == f {
					desc = info.Description
				}
			}
			rows = append(rows, row{
				Name:        string(f),
				Description: desc,
				Gated:       known,
				Allowed:     entitlement.CanUseFeature(a.identity, f).Allowed,
			})
		} else {
			for _, f := range entitlement.ListFeatures() {
				rows = append(rows, row{
					Name:        string(f.Feature),
					Description: f.Description,
					Gated:       true,
					Allowed:     entitlement.CanUseFeature(a.identity, f.Feature).Allowed,
				})
			}
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(rows)
		}
		for _, r := range rows {
			mark := "locked"
			if r.Allowed {
				mark = "available"
			}
			fmt.Printf("%-12s %-10s %s\n", r.Name, mark, r.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(accountCmd, upgradeCmd, featuresCmd)

	accountCmd.Flags().Bool("json", false, "JSON output")
	upgradeCmd.Flags().Bool("json", false, "JSON output")
	featuresCmd.Flags().Bool("json", false, "JSON output")
}
