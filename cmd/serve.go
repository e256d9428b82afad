package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"peerdiff/core/config"
	"peerdiff/core/loader"
	"peerdiff/core/logger"
	"peerdiff/core/middleware/auth"
	"peerdiff/core/middleware/rayid"
	"peerdiff/feature/peering"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "peerdiff/docs/swagger"
)

// @title peerdiff API
// @version 1.0
// @description Reconciles BGP peers between router configuration and the RPSL registry.
// @host localhost:8080
// @BasePath /

const shutdownTimeout = 10 * time.Second

// serveCmd exposes reconciliation over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the peerdiff HTTP server",
	Long: `Starts an HTTP server that runs a full reconciliation per request on a private
in-memory database, looks up single peers in the registry and exports prometheus metrics.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		// Concurrent requests must not share tables, so every run gets its own memory store.
		svc, err := newService(cfg, peering.MemoryOpener(), reg, logg)
		if err != nil {
			return err
		}

		app, err := newApp(cfg, svc, reg, logg)
		if err != nil {
			return err
		}

		errc := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			errc <- app.Listen(cfg.Server.Address())
		}()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errc:
			return err
		case <-sig:
		}

		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(shutdownTimeout)
	},
}

// newApp builds the fiber application with middleware, metrics and features.
func newApp(cfg *config.Config, svc *peering.Service, gatherer prometheus.Gatherer, logg *zap.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// RayID must be first to trace everything
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	// Metrics stay public so scrapers need no API key.
	if cfg.Server.MetricsPath != "" {
		app.Get(cfg.Server.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	// Swagger Documentation (Public)
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

	mgr := loader.NewManager(logg)
	mgr.Register(peering.NewFeature(svc))

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return nil, err
	}
	logg.Info("Features loaded", zap.Strings("features", loaded))

	return app, nil
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
