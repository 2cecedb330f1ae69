package http

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/AgentOS/urls/internal/providers/http/client"
	"github.com/GriffinCanCode/AgentOS/urls/internal/providers/http/config"
	"github.com/GriffinCanCode/AgentOS/urls/internal/providers/http/requests"
	"github.com/GriffinCanCode/AgentOS/urls/internal/shared/types"
)

// Provider implements HTTP client operations over parsed URLs and query params
type Provider struct {
	requestsOps *requests.RequestsOps
	configOps   *config.ConfigOps
}

// NewProvider creates an HTTP provider around httpClient
func NewProvider(httpClient *client.Client) *Provider {
	ops := &client.HTTPOps{Client: httpClient}

	return &Provider{
		requestsOps: &requests.RequestsOps{HTTPOps: ops},
		configOps:   &config.ConfigOps{HTTPOps: ops},
	}
}

// Definition returns service metadata with all module tools
func (h *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, h.requestsOps.GetTools()...)
	tools = append(tools, h.configOps.GetTools()...)

	return types.Service{
		ID:          "http",
		Name:        "HTTP Service",
		Description: "HTTP client with retry, rate limiting, cookies and query parameter merging",
		Category:    types.CategoryHTTP,
		Capabilities: []string{
			"requests", "get", "post", "put", "patch", "delete", "head", "options",
			"json", "form",
			"retry", "rate-limiting", "cookies", "headers",
		},
		Tools: tools,
	}
}

// Execute routes to appropriate module
func (h *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if params == nil {
		params = map[string]interface{}{}
	}

	switch toolID {
	// Request operations
	case "http.get":
		return h.requestsOps.Get(ctx, params, appCtx)
	case "http.post":
		return h.requestsOps.Post(ctx, params, appCtx)
	case "http.put":
		return h.requestsOps.Put(ctx, params, appCtx)
	case "http.patch":
		return h.requestsOps.Patch(ctx, params, appCtx)
	case "http.delete":
		return h.requestsOps.Delete(ctx, params, appCtx)
	case "http.head":
		return h.requestsOps.Head(ctx, params, appCtx)
	case "http.options":
		return h.requestsOps.Options(ctx, params, appCtx)

	// Config operations
	case "http.setHeader":
		return h.configOps.SetHeader(ctx, params, appCtx)
	case "http.setRateLimit":
		return h.configOps.SetRateLimit(ctx, params, appCtx)
	case "http.setCookie":
		return h.configOps.SetCookie(ctx, params, appCtx)
	case "http.getCookie":
		return h.configOps.GetCookie(ctx, params, appCtx)
	case "http.deleteCookie":
		return h.configOps.DeleteCookie(ctx, params, appCtx)

	default:
		msg := fmt.Sprintf("unknown tool: %s", toolID)
		return &types.Result{Success: false, Error: &msg}, nil
	}
}
