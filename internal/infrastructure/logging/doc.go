// Package logging provides structured logging using uber/zap.
//
// Two modes are supported:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// The pure URL and query packages do not log; the server, API handlers,
// service registry and outbound client do.
//
// Example Usage:
//
//	logger := logging.NewFor(cfg.Logging.Level, cfg.Logging.Development)
//	logger.Info("Server starting", zap.String("port", "8000"))
//	logger.Error("Failed to execute tool", zap.Error(err))
package logging
