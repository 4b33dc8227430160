package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/marcus/basket/internal/config"
	"github.com/marcus/basket/internal/entitlement"
	"github.com/marcus/basket/internal/kv"
	"github.com/marcus/basket/internal/output"
	"github.com/marcus/basket/internal/session"
	"github.com/marcus/basket/internal/theme"
	"github.com/marcus/basket/internal/userstore"
	"github.com/marcus/basket/internal/workdir"
	"github.com/marcus/basket/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	version  string
	homeFlag string
	userFlag string

	// home is the resolved basket home directory
	home string
	envCfg config.Env
)

// errDenied marks a gate denial. The message has already been printed.
var errDenied = errors.New("premium feature")

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "basket",
	Short: "Shopping lists in your terminal",
	Long: `basket - shopping lists in your terminal.

Free accounts get 3 lists with up to 5 items each. Premium accounts get
unlimited lists and items plus dark mode, custom theme colors and export.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initRuntime()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !isReported(err) {
			output.Error("%v", err)
			lockHint(err)
		}
		os.Exit(1)
	}
}

// reportedError wraps an error whose message was already printed.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// reported prints err once and marks it so Execute stays quiet.
func reported(err error) error {
	output.Error("%v", err)
	lockHint(err)
	return reportedError{err}
}

// lockHint follows a write lock timeout with what the user can do about it.
func lockHint(err error) {
	if errors.Is(err, kv.ErrLockTimeout) {
		output.Warning("another basket process is writing; try again or check whether the holder is stuck")
	}
}

func isReported(err error) bool {
	var r reportedError
	return errors.Is(err, errDenied) || errors.As(err, &r)
}

func init() {
	setupHelp(rootCmd)

	rootCmd.AddGroup(
		&cobra.Group{ID: "core", Title: "Core Commands:"},
		&cobra.Group{ID: "account", Title: "Account Commands:"},
		&cobra.Group{ID: "preferences", Title: "Preference Commands:"},
		&cobra.Group{ID: "system", Title: "System Commands:"},
	)
	rootCmd.SetHelpCommandGroupID("system")
	rootCmd.SetCompletionCommandGroupID("system")

	rootCmd.PersistentFlags().StringVar(&homeFlag, "home", "", "basket home directory (default ~/.config/basket, env BASKET_HOME)")
	rootCmd.PersistentFlags().StringVar(&userFlag, "user", "", "act as this user for one command (env BASKET_USER)")
}

// initRuntime reads the environment, installs logging and resolves home.
func initRuntime() error {
	var err error
	envCfg, err = config.LoadEnv()
	if err != nil {
		return err
	}
	logging.Setup(envCfg.LogLevel, envCfg.LogFormat)

	home, err = workdir.Resolve(homeFlag, envCfg.Home)
	if err != nil {
		return fmt.Errorf("resolve home: %w", err)
	}
	return nil
}

// identityOverride returns the one-shot identity from --user or BASKET_USER.
func identityOverride() string {
	if userFlag != "" {
		return userFlag
	}
	return envCfg.User
}

// app bundles what most commands need: the store, the caller's identity and
// the themed output.
type app struct {
	ctx      context.Context
	db       *kv.DB
	lists    *userstore.Store
	identity string
}

// openApp opens the store, resolves identity and applies the persisted theme.
func openApp(cmd *cobra.Command) (*app, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := kv.Open(home)
	if err != nil {
		return nil, reported(err)
	}

	identity, err := session.Resolve(ctx, database, identityOverride())
	if err != nil {
		database.Close()
		return nil, reported(err)
	}

	prefs, err := theme.LoadPreferences(ctx, database)
	if err != nil {
		database.Close()
		return nil, reported(err)
	}
	engine := theme.NewEngine(prefs, nil)
	engine.Apply()
	output.UseTheme(engine.View().Palette())

	return &app{
		ctx:      ctx,
		db:       database,
		lists:    userstore.New(database),
		identity: identity,
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

// gate prints a denial and returns errDenied, or returns nil when allowed.
func gate(cmd *cobra.Command, res entitlement.Result) error {
	if res.Allowed {
		return nil
	}
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		output.JSONError(output.ErrCodeDenied, res.Message)
	} else {
		output.Denied(res.Message)
	}
	return errDenied
}
