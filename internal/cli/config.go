package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	cfg "cellmap/internal/config"
	"cellmap/internal/settings"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSchemaCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the settings file and effective settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := cfg.File()
		if err != nil {
			return err
		}
		s, err := cfg.Load()
		if err != nil {
			return err
		}
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "# %s\n%s\n", p, b)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Edit settings interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return settings.Run(cmd.OutOrStdout())
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of settings.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := cfg.MarshalSchema(cfg.Schema())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}
