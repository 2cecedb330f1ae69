// Package config provides 12-factor configuration management for the URL service.
//
// Configuration is loaded from environment variables with sensible defaults.
// A TOML file can be layered onto the defaults for local development.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host, gzip)
//   - Logging: Log level and output format
//   - RateLimit: Per-IP rate limiting configuration
//   - Client: Outbound HTTP client (timeout, retries, user agent, rate)
//   - Query: Query string limits
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Server running on %s:%s\n", cfg.Server.Host, cfg.Server.Port)
//
// Environment Variables:
//   - PORT, HOST, SERVER_GZIP
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
//   - CLIENT_TIMEOUT, CLIENT_RETRIES, CLIENT_USER_AGENT, CLIENT_RPS
//   - QUERY_MAX_LENGTH
package config
