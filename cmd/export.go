package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/marcus/basket/internal/config"
	"github.com/marcus/basket/internal/entitlement"
	"github.com/marcus/basket/internal/export"
	"github.com/marcus/basket/internal/models"
	"github.com/marcus/basket/internal/output"
	"github.com/spf13/cobra"
)

var exportFormat formatValue

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your lists as JSON or Markdown (Premium)",
	Example: `  basket export > lists.json
  basket export --format markdown -o lists.md
  basket export --format markdown --preview`,
	GroupID: "core",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := gate(cmd, entitlement.CanUseFeature(a.identity, models.FeatureExportData)); err != nil {
			return err
		}

		cfg, err := config.Load(home)
		if err != nil {
			return reported(err)
		}
		format := cfg.ExportFormat
		if cmd.Flags().Changed("format") {
			format = string(exportFormat)
		}

		lists, err := a.lists.Load(a.ctx, a.identity)
		if err != nil {
			return reported(err)
		}
		doc := export.Document{
			Identity:   a.identity,
			Tier:       entitlement.TierOf(a.identity),
			ExportedAt: time.Now().UTC(),
			Lists:      lists,
		}

		if preview, _ := cmd.Flags().GetBool("preview"); preview {
			rendered, err := output.RenderMarkdown(export.Markdown(doc), cfg.MarkdownWidth)
			if err != nil {
				return reported(err)
			}
			fmt.Println(rendered)
			return nil
		}

		outPath, _ := cmd.Flags().GetString("output")
		var w io.Writer = os.Stdout
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return reported(fmt.Errorf("create export file: %w", err))
			}
			defer f.Close()
			w = f
		}

		if err := export.Write(w, format, doc); err != nil {
			return reported(err)
		}
		if outPath != "" {
			output.Success("Exported %d lists to %s", len(lists), outPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().Var(&exportFormat, "format", "Export format: json or markdown (default from config)")
	exportCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
	exportCmd.Flags().Bool("preview", false, "Render the Markdown export in the terminal")
	exportCmd.Flags().Bool("json", false, "JSON errors")
}
