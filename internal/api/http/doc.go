// Package http provides the Gin handlers of the tool API.
//
// Endpoints:
//   - Health: / and /health
//   - Services: /services, /services/discover, /services/execute
//   - Metrics: /metrics in Prometheus exposition format
//
// Request bodies are decoded with sonic. Tool failures are reported inside a
// 200 response as a Result with success=false; only unroutable tool IDs and
// provider errors change the status code.
package http
