// Package cmd provides Cobra CLI commands for dockyard.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli"
)

var (
	app     *cli.App
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "dockyard",
		Short: "Docking layout engine and perspective manager",
		Long: `Dockyard - a docking layout engine for tool windows.

Widgets live in tabbed dock areas arranged in a split tree, in floating
windows or in auto-hide side strips. Named snapshots of a layout are
called perspectives and can be saved, restored, renamed, exported and
imported.

Run 'dockyard perspectives' for the interactive perspective browser, or
'dockyard layout demo' to see the demo layout the CLI hosts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "path", "schema", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{Interactive: cmd == perspectivesCmd})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the dockyard version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dockyard %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetVersion sets the version string (called from main.go before Execute).
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// openApp returns the app with its perspective store loaded.
func openApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	if err := a.OpenPerspectives(a.Ctx()); err != nil {
		return nil, err
	}
	return a, nil
}
