package cmd

import (
	"fmt"
	"strings"

	"github.com/marcus/basket/internal/entitlement"
	"github.com/marcus/basket/internal/models"
	"github.com/marcus/basket/internal/output"
	"github.com/marcus/basket/internal/theme"
	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:     "prefs",
	Short:   "View and change presentation preferences",
	GroupID: "preferences",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current preferences and the theme they produce",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		prefs, err := theme.LoadPreferences(a.ctx, a.db)
		if err != nil {
			return reported(err)
		}
		engine := theme.NewEngine(prefs, nil)
		engine.Apply()
		view := engine.View()

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(map[string]interface{}{
				"preferences": prefs,
				"classes":     view.Classes(),
				"accent":      view.Var(theme.VarPrimaryColor),
			})
		}

		onOff := "off"
		if prefs.DarkMode {
			onOff = "on"
		}
		color := prefs.ThemeColor
		if color == "" {
			color = theme.DefaultAccent + " (default)"
		}
		size := string(prefs.FontSize)
		if size == "" {
			size = string(models.FontMedium) + " (default)"
		}
		output.Info("Dark mode:  %s", onOff)
		output.Info("Theme color: %s", color)
		output.Info("Font size:  %s", size)

		if classes := view.Classes(); len(classes) > 0 {
			output.Info("Classes:    %s", strings.Join(classes, " "))
		}
		if block := view.OverrideBlock(); block != "" {
			fmt.Print(output.SectionHeader("theme override"))
			fmt.Println(block)
		}
		return nil
	},
}

var prefsDarkModeCmd = &cobra.Command{
	Use:       "dark-mode <on|off>",
	Short:     "Turn dark mode on or off (Premium)",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		on, err := parseOnOff(args[0])
		if err != nil {
			return reported(err)
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		// Turning dark mode off is always allowed.
		if on {
			if err := gate(cmd, entitlement.CanUseFeature(a.identity, models.FeatureDarkMode)); err != nil {
				return err
			}
		}
		if err := theme.SetDarkMode(a.ctx, a.db, on); err != nil {
			return reported(err)
		}
		output.Success("Dark mode %s", args[0])
		return nil
	},
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("want on or off, got %q", s)
}

var prefsColorCmd = &cobra.Command{
	Use:   "color <hex>",
	Short: "Set the accent color (Premium)",
	Example: `  basket prefs color "#ff5722"
  basket prefs color 3f51b5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !theme.ValidColor(args[0]) {
			return reported(fmt.Errorf("invalid color %q: want #rgb or #rrggbb", args[0]))
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := gate(cmd, entitlement.CanUseFeature(a.identity, models.FeatureThemeColor)); err != nil {
			return err
		}
		if err := theme.SetThemeColor(a.ctx, a.db, args[0]); err != nil {
			return reported(err)
		}
		color := theme.NormalizeColor(args[0])
		output.Success("Theme color set to %s (darker shade %s)", color, theme.AdjustColor(color, -20))
		return nil
	},
}

var prefsFontSizeCmd = &cobra.Command{
	Use:       "font-size <small|medium|large>",
	Short:     "Set the font size",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(models.FontSmall), string(models.FontMedium), string(models.FontLarge)},
	RunE: func(cmd *cobra.Command, args []string) error {
		size := strings.ToLower(strings.TrimSpace(args[0]))
		if !models.IsValidFontSize(size) {
			return reported(fmt.Errorf("invalid font size %q: want small, medium or large", args[0]))
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := theme.SetFontSize(a.ctx, a.db, models.FontSize(size)); err != nil {
			return reported(err)
		}
		output.Success("Font size set to %s", size)
		return nil
	},
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := theme.ResetPreferences(a.ctx, a.db); err != nil {
			return reported(err)
		}
		output.Success("Preferences reset")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.AddCommand(prefsShowCmd, prefsDarkModeCmd, prefsColorCmd, prefsFontSizeCmd, prefsResetCmd)

	prefsShowCmd.Flags().Bool("json", false, "JSON output")
}
