package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/marcus/basket/internal/entitlement"
	"github.com/marcus/basket/internal/output"
	"github.com/marcus/basket/internal/session"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login [name]",
	Short: "Sign in by name",
	Long: `Sign in as the given name. Without a name, prompts for one when
running in a terminal.

Signing in as "premium" or "userpremium" (any case) unlocks Premium.`,
	GroupID: "account",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		if strings.TrimSpace(name) == "" {
			if !output.IsTerminal() {
				return reported(errors.New("name required (basket login <name>)"))
			}
			prompted, err := promptName()
			if err != nil {
				return reported(err)
			}
			name = prompted
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := session.SignIn(a.ctx, a.db, name); err != nil {
			return reported(err)
		}
		name = strings.TrimSpace(name)
		output.Success("Signed in as %s", name)
		fmt.Println(output.Badge(entitlement.TierOf(name)))
		return nil
	},
}

// promptName asks for a name with a huh input.
func promptName() (string, error) {
	var name string
	err := huh.NewInput().
		Title("What's your name?").
		Value(&name).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return session.ErrEmptyIdentity
			}
			return nil
		}).
		Run()
	if err != nil {
		return "", fmt.Errorf("prompt name: %w", err)
	}
	return name, nil
}

var logoutCmd = &cobra.Command{
	Use:     "logout",
	Short:   "Sign out",
	GroupID: "account",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := session.SignOut(a.ctx, a.db); err != nil {
			return reported(err)
		}
		output.Success("Signed out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Short:   "Show the signed-in user and tier",
	GroupID: "account",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		tier := entitlement.TierOf(a.identity)
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(map[string]interface{}{
				"identity":  a.identity,
				"tier":      tier,
				"signed_in": a.identity != "",
			})
		}

		if a.identity == "" {
			output.Info("Not signed in (lists are shared under the default key)")
			return nil
		}
		output.Info("%s  %s", a.identity, output.Badge(tier))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
	whoamiCmd.Flags().Bool("json", false, "JSON output")
}
