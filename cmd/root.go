package cmd

import (
	"fmt"
	"os"
	"strings"

	"peerdiff/core/config"
	"peerdiff/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Global flags, mirroring the classic peerdiff switches.
var (
	configDir     string
	routerSources string
	dbFile        string
	asno          string
	whoisServer   string
	keepDB        bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "peerdiff",
	Short: "Compare BGP peers between router config and the RPSL registry",
	Long: `peerdiff reads the BGP neighbors configured on a router and the import
policies published in the operator's aut-num object, then reports peers that
appear on only one side. For peers missing from the registry it suggests the
import/export stanza to add.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with debug level gives ISO8601 timestamps for CLI errors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&configDir, "config-dir", ".", "Directory holding .env and peerdiff.yaml")
	flags.StringVarP(&routerSources, "router-config", "r", "", "Router config to parse for peers (comma-separated list, s3://bucket/key allowed)")
	flags.StringVarP(&dbFile, "db", "d", "", "Database file (sqlite) or name (mysql)")
	flags.StringVarP(&asno, "asno", "a", "", "Own AS number used for whois queries")
	flags.StringVarP(&whoisServer, "server", "s", "", "Whois server to use")
	flags.BoolVarP(&keepDB, "keep", "k", false, "Keep the database file after the run (it is still emptied on start)")
}

// loadConfig loads the configuration, applies explicitly set flags and validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadFlaggedConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFlaggedConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, cfg)
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("router-config") {
		cfg.Peering.Sources = splitList(routerSources)
	}
	if flags.Changed("db") {
		cfg.Database.Name = dbFile
	}
	if flags.Changed("asno") {
		cfg.Peering.Asno = asno
	}
	if flags.Changed("server") {
		cfg.Registry.Server = whoisServer
	}
	if flags.Changed("keep") {
		cfg.Database.Keep = keepDB
	}
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
