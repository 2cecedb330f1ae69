// Package main runs the URL tools server.
//
// The server exposes the urls and http services through a REST API:
// URL parsing and normalization, percent-encoding, immutable query parameter
// manipulation, and an HTTP client that builds request URLs from them.
//
// Configuration:
//   - Environment variables (12-factor)
//   - A TOML file given with -config; missing keys keep their defaults
//   - CLI flags override both
//
// Usage:
//
//	./server -port 8000
//	./server -config urls.toml
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
