// Package logger provides a structured logging facility based on Zap.
//
// Diagnostics (import counters, lookup failures, fatal errors) are written to stderr
// so the reconciliation report on stdout stays clean.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Imported peers", zap.Int("matched", n))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
