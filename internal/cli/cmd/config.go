package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/infrastructure/config"
)

var schemaWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration locations and schema",
	Long: `Inspect the dockyard configuration.

The configuration lives in $XDG_CONFIG_HOME/dockyard/config.toml and is
created with defaults on first run. Every key can be overridden with a
DOCKYARD_ environment variable, e.g. DOCKYARD_LOGGING_LEVEL=debug.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := config.GetConfigFile()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema describing config.toml.

With --write the schema is stored next to the config file as
config.schema.json for editor integration.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if schemaWrite {
			path, err := config.GenerateSchemaFile()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		}
		data, err := config.Schema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().BoolVar(&schemaWrite, "write", false, "write config.schema.json to the config directory")
}
