// Package client provides the outbound HTTP client and the tool result helpers
// shared by the providers.
//
// Request URLs are assembled from urls.Parts and queryparams.Params:
//   - BuildURL merges params over the URL's existing query, key by key
//   - Do rejects relative URLs, applies stored cookies and rate limiting
//   - every request carries an X-Request-ID UUID header
//
// Built on go-resty/resty with a go-retryablehttp pooled transport and a
// golang.org/x/time/rate limiter.
//
// Example Usage:
//
//	c, err := client.NewClient(cfg.Client, logger, metrics)
//	parts, _ := urls.Parse("https://api.example.com/v1/items")
//	resp, err := c.Do(ctx, http.MethodGet, parts, queryparams.Parse("page=2"), nil)
package client
