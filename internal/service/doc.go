// Package service provides the registry that routes tool calls to providers.
//
// Tool IDs have the form "<service>.<tool>". The service part selects the
// provider; the full ID is passed through, so tools such as
// "urls.query.parse" keep their dotted names.
//
// Each execution is timed and counted by outcome and error kind when a
// metrics collector is attached.
//
// Example Usage:
//
//	registry := service.NewRegistry(logger, metrics)
//	registry.Register(urlsProvider)
//	result, err := registry.Execute(ctx, "urls.parseURL", params, appCtx)
package service
