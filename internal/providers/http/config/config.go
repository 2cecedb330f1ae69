package config

import (
	"context"

	"github.com/GriffinCanCode/AgentOS/urls/internal/providers/http/client"
	"github.com/GriffinCanCode/AgentOS/urls/internal/shared/types"
)

// ConfigOps handles client configuration and the cookie store
type ConfigOps struct {
	*client.HTTPOps
}

// GetTools returns config tool definitions
func (c *ConfigOps) GetTools() []types.Tool {
	nameParam := types.Parameter{Name: "name", Type: "string", Description: "Cookie name", Required: true}
	domainParam := types.Parameter{Name: "domain", Type: "string", Description: "Cookie domain filter", Required: false}
	pathParam := types.Parameter{Name: "path", Type: "string", Description: "Cookie path filter", Required: false}

	return []types.Tool{
		{
			ID:          "http.setHeader",
			Name:        "Set Header",
			Description: "Set default header for subsequent requests",
			Parameters: []types.Parameter{
				{Name: "key", Type: "string", Description: "Header key", Required: true},
				{Name: "value", Type: "string", Description: "Header value", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "http.setRateLimit",
			Name:        "Set Rate Limit",
			Description: "Limit outbound requests per second (0 disables)",
			Parameters: []types.Parameter{
				{Name: "requests_per_second", Type: "number", Description: "Requests per second", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "http.setCookie",
			Name:        "Set Cookie",
			Description: "Store a cookie sent with matching requests",
			Parameters: []types.Parameter{
				nameParam,
				{Name: "value", Type: "string", Description: "Cookie value", Required: true},
				domainParam,
				pathParam,
			},
			Returns: "boolean",
		},
		{
			ID:          "http.getCookie",
			Name:        "Get Cookie",
			Description: "Read a cookie; fails when several cookies match",
			Parameters:  []types.Parameter{nameParam, domainParam, pathParam},
			Returns:     "object",
		},
		{
			ID:          "http.deleteCookie",
			Name:        "Delete Cookie",
			Description: "Remove matching cookies",
			Parameters:  []types.Parameter{nameParam, domainParam, pathParam},
			Returns:     "object",
		},
	}
}

// SetHeader sets default HTTP header
func (c *ConfigOps) SetHeader(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	key, err := client.GetString(params, "key", true)
	if err != nil {
		return client.Failure(err.Error())
	}

	value, err := client.GetString(params, "value", false)
	if err != nil {
		return client.Failure(err.Error())
	}

	c.Client.SetHeader(key, value)

	return client.Success(map[string]interface{}{
		"set": true,
		"key": key,
	})
}

// SetRateLimit configures the outbound limiter
func (c *ConfigOps) SetRateLimit(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	rps, err := client.GetNumber(params, "requests_per_second", true)
	if err != nil {
		return client.Failure(err.Error())
	}
	if rps < 0 {
		return client.Failure("requests_per_second must not be negative")
	}

	c.Client.SetRateLimit(rps)

	return client.Success(map[string]interface{}{
		"set":                 true,
		"requests_per_second": rps,
	})
}

func cookieFilter(params map[string]interface{}) (name, domain, path string, err error) {
	if name, err = client.GetString(params, "name", true); err != nil {
		return
	}
	if domain, err = client.GetString(params, "domain", false); err != nil {
		return
	}
	path, err = client.GetString(params, "path", false)
	return
}

// SetCookie stores a cookie
func (c *ConfigOps) SetCookie(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	name, domain, path, err := cookieFilter(params)
	if err != nil {
		return client.Failure(err.Error())
	}
	value, err := client.GetString(params, "value", true)
	if err != nil {
		return client.Failure(err.Error())
	}

	c.Client.Cookies.Set(name, value, domain, path)

	return client.Success(map[string]interface{}{
		"set":  true,
		"name": name,
	})
}

// GetCookie reads a single cookie
func (c *ConfigOps) GetCookie(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	name, domain, path, err := cookieFilter(params)
	if err != nil {
		return client.Failure(err.Error())
	}

	value, found, err := c.Client.Cookies.Get(name, domain, path)
	if err != nil {
		return client.FailureFrom(err)
	}

	result := map[string]interface{}{"name": name, "found": found, "value": nil}
	if found {
		result["value"] = value
	}
	return client.Success(result)
}

// DeleteCookie removes matching cookies
func (c *ConfigOps) DeleteCookie(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	name, domain, path, err := cookieFilter(params)
	if err != nil {
		return client.Failure(err.Error())
	}

	removed := c.Client.Cookies.Delete(name, domain, path)

	return client.Success(map[string]interface{}{
		"removed": removed,
	})
}
