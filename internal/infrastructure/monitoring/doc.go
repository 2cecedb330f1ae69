/*
Package monitoring provides Prometheus metrics for the URL service.

# Features

- HTTP API request metrics (count, latency) labelled by route template
- Tool execution metrics (count, latency, failures by error kind)
- Outbound client request counts

Each Metrics value owns its registry, which is served by Handler.

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
*/
package monitoring
