package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// App carries the process-level wiring CLI commands depend on.
type App struct {
	// IsInteractive reports whether stdout is a terminal; the summary
	// renderer drops styling when it is not.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "coursegen" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "coursegen",
		Short:         "Generate course documentation pages from curriculum plans",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newBuildCmd(app),
		newFormatCmd(app),
	)

	return root
}

// envOr returns the flag value when set, the environment variable when the
// flag was left at its default, and the default otherwise.
func envOr(flagValue, envKey, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return def
}
