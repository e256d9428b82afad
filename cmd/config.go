package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// configCmd prints the effective configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadFlaggedConfig(cmd)
		if err != nil {
			return err
		}
		// The registry server is not resolved when only printing.
		if err := cfg.ValidateOffline(); err != nil {
			return err
		}
		for _, s := range cfg.Settings() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", s.Key, s.Value)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
