package cmd

import (
	"fmt"
	"strconv"

	"github.com/marcus/basket/internal/config"
	"github.com/marcus/basket/internal/output"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Show or change settings in config.json",
	GroupID: "preferences",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(home)
		if err != nil {
			return reported(err)
		}
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(map[string]interface{}{
				"home":           home,
				"export_format":  cfg.ExportFormat,
				"markdown_width": cfg.MarkdownWidth,
				"log_level":      envCfg.LogLevel,
				"log_format":     envCfg.LogFormat,
			})
		}
		width := "terminal"
		if cfg.MarkdownWidth > 0 {
			width = strconv.Itoa(cfg.MarkdownWidth)
		}
		output.Info("home:           %s", home)
		output.Info("export-format:  %s", cfg.ExportFormat)
		output.Info("markdown-width: %s", width)
		output.Info("log:            %s (%s)", envCfg.LogLevel, envCfg.LogFormat)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:       "set <export-format|markdown-width> <value>",
	Short:     "Change a setting",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"export-format", "markdown-width"},
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		switch key {
		case "export-format":
			var f formatValue
			if err := f.Set(value); err != nil {
				return reported(fmt.Errorf("export-format %w", err))
			}
			if err := config.SetExportFormat(home, string(f)); err != nil {
				return reported(err)
			}
		case "markdown-width":
			n, err := strconv.Atoi(value)
			if err != nil {
				return reported(fmt.Errorf("markdown-width must be a number, got %q", value))
			}
			if err := config.SetMarkdownWidth(home, n); err != nil {
				return reported(err)
			}
		default:
			return reported(fmt.Errorf("unknown setting %q", key))
		}
		output.Success("Set %s = %s", key, value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSetCmd)

	configShowCmd.Flags().Bool("json", false, "JSON output")
}
