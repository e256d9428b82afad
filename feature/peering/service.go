package peering

import (
	"context"
	"fmt"
	"time"

	"peerdiff/core/database"
	"peerdiff/core/metrics"
	"peerdiff/feature/peering/models"
	"peerdiff/feature/peering/reconcile"
	"peerdiff/feature/peering/router"
	"peerdiff/feature/peering/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Command selects which pipeline stages a run executes.
type Command string

const (
	// CommandAll imports both sources into a fresh store and compares them.
	CommandAll Command = "all"
	// CommandRouter refreshes the router relation only.
	CommandRouter Command = "router"
	// CommandWhois refreshes the registry relation only.
	CommandWhois Command = "whois"
	// CommandCompare compares what the store already holds.
	CommandCompare Command = "compare"
)

// ParseCommand validates a command name.
func ParseCommand(s string) (Command, error) {
	switch c := Command(s); c {
	case CommandAll, CommandRouter, CommandWhois, CommandCompare:
		return c, nil
	default:
		return "", fmt.Errorf("unknown command %q (want all, router, whois or compare)", s)
	}
}

// SourceReader returns the text of one router configuration source.
type SourceReader interface {
	Read(ctx context.Context, id string) (string, error)
}

// Registry is the routing registry as seen by the pipeline.
type Registry interface {
	FetchImports(ctx context.Context, selfAsno string) ([]models.RegistryPeer, error)
	reconcile.InfoLookup
}

// Opener opens the database backing one run and returns its teardown.
type Opener func(ctx context.Context) (*gorm.DB, func() error, error)

// ConfigOpener opens the configured database; teardown closes it and removes
// the sqlite file unless cfg.Keep is set.
func ConfigOpener(cfg database.Config) Opener {
	return func(ctx context.Context) (*gorm.DB, func() error, error) {
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, nil, err
		}
		return db, func() error { return database.Close(db, cfg) }, nil
	}
}

// MemoryOpener opens a private in-memory sqlite database per run.
func MemoryOpener() Opener {
	return ConfigOpener(database.Config{Driver: database.DriverSQLite, Name: database.MemoryName})
}

// ImportStats reports what one import step did.
type ImportStats struct {
	// Source is the router configuration identifier, or the registry server.
	Source string `json:"source"`
	// Matched counts every extracted record, duplicates included.
	Matched int `json:"matched"`
	// Inserted counts records that were new to the store.
	Inserted int `json:"inserted"`
	// Error is set when the registry could not be queried.
	Error string `json:"error,omitempty"`
}

// Result is the outcome of one run.
type Result struct {
	RunID          string            `json:"run_id"`
	Command        Command           `json:"command"`
	RouterImports  []ImportStats     `json:"router_imports,omitempty"`
	RegistryImport *ImportStats      `json:"registry_import,omitempty"`
	Report         *reconcile.Report `json:"report,omitempty"`
}

// Service runs the reconciliation pipeline.
type Service struct {
	cfg      Config
	reader   SourceReader
	registry Registry
	lookup   reconcile.InfoLookup
	opener   Opener
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewService creates a new peering service.
func NewService(cfg Config, reader SourceReader, registry Registry, opener Opener, m *metrics.Metrics, logger *zap.Logger) *Service {
	if m == nil {
		m = metrics.New(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		cfg:      cfg,
		reader:   reader,
		registry: registry,
		lookup:   reconcile.NewInfoCache(registry, time.Duration(cfg.LookupCacheSeconds)*time.Second),
		opener:   opener,
		metrics:  m,
		logger:   logger,
	}
}

// Execute opens a store, runs cmd against it and tears the store down on every path.
func (s *Service) Execute(ctx context.Context, cmd Command, opts reconcile.Options) (res *Result, err error) {
	runID := uuid.NewString()
	l := s.logger.With(zap.String("run_id", runID))

	db, teardown, err := s.opener(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer func() {
		if cerr := teardown(); cerr != nil {
			l.Warn("Failed to tear down peer store", zap.Error(cerr))
		}
	}()

	var st *store.Store
	if cmd == CommandAll {
		st, err = store.Open(ctx, db)
	} else {
		st, err = store.Attach(ctx, db)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return s.run(ctx, l, st, runID, cmd, opts)
}

func (s *Service) run(ctx context.Context, l *zap.Logger, st *store.Store, runID string, cmd Command, opts reconcile.Options) (*Result, error) {
	res := &Result{RunID: runID, Command: cmd}

	if cmd == CommandAll || cmd == CommandRouter {
		if cmd == CommandRouter {
			if err := st.ResetRouter(ctx); err != nil {
				return nil, err
			}
		}
		stats, err := s.importRouter(ctx, l, st)
		if err != nil {
			return nil, err
		}
		res.RouterImports = stats
	}

	if cmd == CommandAll || cmd == CommandWhois {
		if cmd == CommandWhois {
			if err := st.ResetRegistry(ctx); err != nil {
				return nil, err
			}
		}
		stats, err := s.importRegistry(ctx, l, st)
		if err != nil {
			return nil, err
		}
		res.RegistryImport = &stats
	}

	if cmd == CommandAll || cmd == CommandCompare {
		report, err := s.compare(ctx, l, st, opts)
		if err != nil {
			return nil, err
		}
		res.Report = report
	}

	return res, nil
}

// ImportRouter extracts peers from every configured source into st.
// An unreadable source aborts the whole import with ErrFatalInput.
func (s *Service) ImportRouter(ctx context.Context, st *store.Store) ([]ImportStats, error) {
	return s.importRouter(ctx, s.logger, st)
}

func (s *Service) importRouter(ctx context.Context, l *zap.Logger, st *store.Store) ([]ImportStats, error) {
	all := make([]ImportStats, 0, len(s.cfg.Sources))
	for _, id := range s.cfg.Sources {
		text, err := s.reader.Read(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFatalInput, err)
		}

		stats := ImportStats{Source: id}
		for _, peer := range router.Extract(text) {
			inserted, err := st.InsertRouter(ctx, peer)
			if err != nil {
				return nil, err
			}
			stats.Matched++
			if inserted {
				stats.Inserted++
			}
			s.metrics.PeersImported.WithLabelValues("router", outcome(inserted)).Inc()
		}

		l.Info("Imported peers from router config",
			zap.String("source", id),
			zap.Int("matched", stats.Matched),
			zap.Int("inserted", stats.Inserted),
		)
		all = append(all, stats)
	}
	return all, nil
}

// ImportRegistry loads the operator's registry imports into st.
// A registry failure is logged and yields zero imported peers; it is not returned.
func (s *Service) ImportRegistry(ctx context.Context, st *store.Store) (ImportStats, error) {
	return s.importRegistry(ctx, s.logger, st)
}

func (s *Service) importRegistry(ctx context.Context, l *zap.Logger, st *store.Store) (ImportStats, error) {
	stats := ImportStats{Source: s.registryName()}

	peers, err := s.registry.FetchImports(ctx, s.cfg.Asno)
	s.metrics.RegistryQueries.WithLabelValues("imports", metrics.Result(err)).Inc()
	if err != nil {
		l.Warn("Registry query failed, continuing with an empty registry relation", zap.Error(err))
		stats.Error = err.Error()
		return stats, nil
	}

	for _, peer := range peers {
		inserted, err := st.InsertRegistry(ctx, peer)
		if err != nil {
			return stats, err
		}
		stats.Matched++
		if inserted {
			stats.Inserted++
		}
		s.metrics.PeersImported.WithLabelValues("registry", outcome(inserted)).Inc()
	}

	l.Info("Imported peers from registry",
		zap.String("asno", s.cfg.Asno),
		zap.Int("matched", stats.Matched),
		zap.Int("inserted", stats.Inserted),
	)
	return stats, nil
}

// Compare reconciles the relations currently held by st.
func (s *Service) Compare(ctx context.Context, st *store.Store, opts reconcile.Options) (*reconcile.Report, error) {
	return s.compare(ctx, s.logger, st, opts)
}

func (s *Service) compare(ctx context.Context, l *zap.Logger, st *store.Store, opts reconcile.Options) (*reconcile.Report, error) {
	opts = s.withDefaults(opts)
	report, err := reconcile.NewReconciler(countingLookup{s}, opts, l).Reconcile(ctx, st)
	if err != nil {
		return nil, err
	}

	for _, f := range report.Findings {
		s.metrics.Findings.WithLabelValues(string(f.Kind)).Inc()
	}
	l.Info("Reconciliation finished",
		zap.Int("router_only", report.Summary.RouterOnly),
		zap.Int("registry_only", report.Summary.RegistryOnly),
		zap.Int("discrepancies", report.Summary.Discrepancies),
	)
	return report, nil
}

// LookupAsInfo returns what the registry says about asn relative to the operator.
func (s *Service) LookupAsInfo(ctx context.Context, asn uint32) (models.AsInfo, error) {
	return countingLookup{s}.LookupAsInfo(ctx, asn, s.cfg.Asno)
}

// Options returns the reconcile options derived from the configuration.
func (s *Service) Options() reconcile.Options {
	return s.withDefaults(reconcile.Options{})
}

func (s *Service) withDefaults(opts reconcile.Options) reconcile.Options {
	if opts.SelfAsno == "" {
		opts.SelfAsno = s.cfg.Asno
	}
	if opts.DefaultSet == "" {
		opts.DefaultSet = s.cfg.DefaultSet
	}
	return opts
}

func (s *Service) registryName() string {
	if named, ok := s.registry.(interface{ Server() string }); ok {
		return named.Server()
	}
	return "registry"
}

// countingLookup records every per-peer registry query in the metrics.
type countingLookup struct {
	s *Service
}

func (c countingLookup) LookupAsInfo(ctx context.Context, asn uint32, selfAsno string) (models.AsInfo, error) {
	info, err := c.s.lookup.LookupAsInfo(ctx, asn, selfAsno)
	c.s.metrics.RegistryQueries.WithLabelValues("as_info", metrics.Result(err)).Inc()
	return info, err
}

func outcome(inserted bool) string {
	if inserted {
		return "inserted"
	}
	return "duplicate"
}
