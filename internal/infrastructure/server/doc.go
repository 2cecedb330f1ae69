// Package server wires configuration, logging, metrics, the service registry
// and the Gin router into a runnable HTTP server.
package server
