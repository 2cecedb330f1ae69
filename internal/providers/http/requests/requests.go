package requests

import (
	"context"
	"fmt"
	"net/http"

	"github.com/GriffinCanCode/AgentOS/urls/internal/providers/http/client"
	"github.com/GriffinCanCode/AgentOS/urls/internal/queryparams"
	"github.com/GriffinCanCode/AgentOS/urls/internal/shared/types"
	"github.com/GriffinCanCode/AgentOS/urls/internal/urls"
)

// RequestsOps handles HTTP request methods
type RequestsOps struct {
	*client.HTTPOps
}

// GetTools returns HTTP request tool definitions
func (r *RequestsOps) GetTools() []types.Tool {
	urlParam := types.Parameter{Name: "url", Type: "string", Description: "Absolute request URL", Required: true}
	paramsParam := types.Parameter{Name: "params", Type: "object", Description: "Query parameters merged over the URL's query", Required: false}
	headersParam := types.Parameter{Name: "headers", Type: "object", Description: "HTTP headers", Required: false}
	dataParam := types.Parameter{Name: "data", Type: "object", Description: "Request body", Required: true}
	jsonParam := types.Parameter{Name: "json", Type: "boolean", Description: "Send as JSON (default: true)", Required: false}

	tool := func(method, description string, withBody bool) types.Tool {
		params := []types.Parameter{urlParam, paramsParam, headersParam}
		if withBody {
			params = append(params, dataParam, jsonParam)
		}
		return types.Tool{
			ID:          "http." + toolName(method),
			Name:        "HTTP " + method,
			Description: description,
			Parameters:  params,
			Returns:     "object",
		}
	}

	return []types.Tool{
		tool(http.MethodGet, "Fetch data from URL with optional headers and params", false),
		tool(http.MethodPost, "Send data to URL with optional headers", true),
		tool(http.MethodPut, "Update resource at URL", true),
		tool(http.MethodPatch, "Partially update resource at URL", true),
		tool(http.MethodDelete, "Delete resource at URL", false),
		tool(http.MethodHead, "Get headers without downloading body", false),
		tool(http.MethodOptions, "Get allowed methods for URL", false),
	}
}

func toolName(method string) string {
	switch method {
	case http.MethodGet:
		return "get"
	case http.MethodPost:
		return "post"
	case http.MethodPut:
		return "put"
	case http.MethodPatch:
		return "patch"
	case http.MethodDelete:
		return "delete"
	case http.MethodHead:
		return "head"
	default:
		return "options"
	}
}

// Get executes HTTP GET request
func (r *RequestsOps) Get(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return r.send(ctx, http.MethodGet, params, false)
}

// Post executes HTTP POST request
func (r *RequestsOps) Post(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return r.send(ctx, http.MethodPost, params, true)
}

// Put executes HTTP PUT request
func (r *RequestsOps) Put(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return r.send(ctx, http.MethodPut, params, true)
}

// Patch executes HTTP PATCH request
func (r *RequestsOps) Patch(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return r.send(ctx, http.MethodPatch, params, true)
}

// Delete executes HTTP DELETE request
func (r *RequestsOps) Delete(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return r.send(ctx, http.MethodDelete, params, false)
}

// Head executes HTTP HEAD request
func (r *RequestsOps) Head(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return r.send(ctx, http.MethodHead, params, false)
}

// Options executes HTTP OPTIONS request
func (r *RequestsOps) Options(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return r.send(ctx, http.MethodOptions, params, false)
}

func (r *RequestsOps) send(ctx context.Context, method string, params map[string]interface{}, withBody bool) (*types.Result, error) {
	urlStr, err := client.GetString(params, "url", true)
	if err != nil {
		return client.Failure(err.Error())
	}

	parts, err := urls.Parse(urlStr)
	if err != nil {
		return client.FailureFrom(err)
	}

	var query *queryparams.Params
	if obj := client.GetMap(params, "params"); obj != nil {
		source, err := queryparams.FromObject(obj)
		if err != nil {
			return client.FailureFrom(err)
		}
		if query, err = queryparams.New(source); err != nil {
			return client.FailureFrom(err)
		}
	}

	headers := make(map[string]string)
	for k, v := range client.GetMap(params, "headers") {
		headers[k] = fmt.Sprint(v)
	}

	var opts []client.RequestOption
	if withBody {
		opt, err := bodyOption(params)
		if err != nil {
			return client.Failure(err.Error())
		}
		opts = append(opts, opt)
	}

	resp, err := r.Client.Do(ctx, method, parts, query, headers, opts...)
	if err != nil {
		return client.FailureFrom(err)
	}
	return client.Success(client.ResponseToMap(resp))
}

// bodyOption sends data as JSON, or as a form when json is false
func bodyOption(params map[string]interface{}) (client.RequestOption, error) {
	data := params["data"]
	if data == nil {
		return nil, fmt.Errorf("data parameter required")
	}

	if client.GetBool(params, "json", true) {
		return client.WithBody(data), nil
	}

	dataMap, ok := data.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("data must be object for form encoding")
	}
	form := make(map[string]string, len(dataMap))
	for k, v := range dataMap {
		form[k] = fmt.Sprint(v)
	}
	return client.WithForm(form), nil
}
