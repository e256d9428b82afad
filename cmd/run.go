package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"peerdiff/core/logger"
	"peerdiff/feature/peering"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outputFormat string
	noLookup     bool
	defaultSet   string
)

func newRunCmd(command peering.Command, short string, aliases ...string) *cobra.Command {
	c := &cobra.Command{
		Use:     string(command),
		Aliases: aliases,
		Short:   short,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, command)
		},
	}
	c.Flags().StringVarP(&outputFormat, "format", "o", FormatText, "Report format: text, table or json")
	c.Flags().BoolVar(&noLookup, "no-lookup", false, "Do not query the registry for each router-only peer")
	c.Flags().StringVar(&defaultSet, "default-set", "", "Set announced in suggested export stanzas (overrides peering.default_set)")
	return c
}

func init() {
	RootCmd.AddCommand(
		newRunCmd(peering.CommandAll, "Import both sources into a fresh database and compare them"),
		newRunCmd(peering.CommandRouter, "Update the database with peers from the router config", "update-router"),
		newRunCmd(peering.CommandWhois, "Update the database with peers from whois", "update-whois"),
		newRunCmd(peering.CommandCompare, "Compare the peers already stored in the database"),
	)
}

func runPipeline(cmd *cobra.Command, command peering.Command) error {
	if err := checkFormat(outputFormat); err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return err
	}
	defer l.Sync()

	svc, err := newService(cfg, peering.ConfigOpener(cfg.Database), nil, l)
	if err != nil {
		return err
	}

	opts := svc.Options()
	opts.SkipLookup = noLookup
	if defaultSet != "" {
		opts.DefaultSet = defaultSet
	}

	// Interrupts cancel the run; the store is still closed on the way out.
	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l.Info("Starting peerdiff",
		zap.String("command", string(command)),
		zap.String("asno", cfg.Peering.Asno),
		zap.Strings("sources", cfg.Peering.Sources),
		zap.String("server", cfg.Registry.Server),
	)

	res, err := svc.Execute(ctx, command, opts)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), res, outputFormat)
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
