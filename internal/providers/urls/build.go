package urls

import (
	"context"
	"fmt"
	"strconv"

	"github.com/GriffinCanCode/AgentOS/urls/internal/providers/http/client"
	"github.com/GriffinCanCode/AgentOS/urls/internal/queryparams"
	"github.com/GriffinCanCode/AgentOS/urls/internal/shared/types"
	core "github.com/GriffinCanCode/AgentOS/urls/internal/urls"
)

// BuildOps handles URL assembly and decomposition
type BuildOps struct {
	*Ops
}

// GetTools returns URL tool definitions
func (b *BuildOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "urls.buildURL",
			Name:        "Build URL",
			Description: "Assemble a URL from components, merging params over the query",
			Parameters: []types.Parameter{
				{Name: "scheme", Type: "string", Description: "URL scheme", Required: false},
				{Name: "userinfo", Type: "string", Description: "user[:password]", Required: false},
				{Name: "host", Type: "string", Description: "Host name or address", Required: false},
				{Name: "port", Type: "string", Description: "Port (string or number)", Required: false},
				{Name: "path", Type: "string", Description: "Path", Required: false},
				{Name: "query", Type: "string", Description: "Encoded query without '?'", Required: false},
				{Name: "fragment", Type: "string", Description: "Fragment without '#'", Required: false},
				{Name: "params", Type: "object", Description: "Query parameters; arrays add repeated keys", Required: false},
			},
			Returns: "string",
		},
		{
			ID:          "urls.parseURL",
			Name:        "Parse URL",
			Description: "Split a URL into normalized components",
			Parameters: []types.Parameter{
				{Name: "url", Type: "string", Description: "URL to parse", Required: true},
			},
			Returns: "object",
		},
	}
}

// BuildURL assembles a URL from components
func (b *BuildOps) BuildURL(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	var strs [4]string
	for i, key := range []string{"scheme", "userinfo", "host", "path"} {
		s, err := client.GetString(params, key, false)
		if err != nil {
			return client.Failure(err.Error())
		}
		strs[i] = s
	}
	scheme, userinfo, host, path := strs[0], strs[1], strs[2], strs[3]

	port, err := portParam(params)
	if err != nil {
		return client.Failure(err.Error())
	}
	query, err := client.GetOptionalString(params, "query")
	if err != nil {
		return client.Failure(err.Error())
	}
	fragment, err := client.GetOptionalString(params, "fragment")
	if err != nil {
		return client.Failure(err.Error())
	}

	hasAuthority := userinfo != "" || host != "" || port != nil
	if err := core.ValidatePath(path, scheme != "", hasAuthority); err != nil {
		return client.FailureFrom(err)
	}

	parts := core.NewParts(scheme, userinfo, host, port, core.Quote(path, core.PathSafe), query, fragment)

	var extra *queryparams.Params
	if obj := client.GetMap(params, "params"); obj != nil {
		source, err := queryparams.FromObject(obj)
		if err != nil {
			return client.FailureFrom(err)
		}
		if extra, err = queryparams.New(source); err != nil {
			return client.FailureFrom(err)
		}
	}

	existing, _ := parts.Query()
	if extra != nil {
		existing = queryparams.Parse(existing).Merge(extra).String()
	}
	if err := b.checkQuery(existing); err != nil {
		return client.FailureFrom(err)
	}

	built := client.BuildURL(parts, extra)
	if len(built) > core.MaxURLLength {
		return client.FailureFrom(core.InvalidURL("URL too long"))
	}
	return client.Success(map[string]interface{}{"url": built})
}

// ParseURL splits a URL into components
func (b *BuildOps) ParseURL(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	raw, err := client.GetString(params, "url", true)
	if err != nil {
		return client.Failure(err.Error())
	}

	parts, err := core.Parse(raw)
	if err != nil {
		return client.FailureFrom(err)
	}
	return client.Success(partsToMap(parts))
}

func partsToMap(parts core.Parts) map[string]interface{} {
	result := map[string]interface{}{
		"url":         parts.String(),
		"scheme":      parts.Scheme(),
		"userinfo":    parts.Userinfo(),
		"host":        parts.Host(),
		"path":        parts.Path(),
		"netloc":      parts.Netloc(),
		"authority":   parts.Authority(),
		"target":      parts.Target(),
		"is_absolute": parts.IsAbsolute(),
		"port":        nil,
		"query":       nil,
		"fragment":    nil,
		"params":      map[string][]string{},
	}
	if port, ok := parts.Port(); ok {
		result["port"] = port
	}
	if query, ok := parts.Query(); ok {
		result["query"] = query
		result["params"] = queryparams.Parse(query).MultiDict()
	}
	if fragment, ok := parts.Fragment(); ok {
		result["fragment"] = fragment
	}
	return result
}

// portParam accepts a port given as a string or a JSON number
func portParam(params map[string]interface{}) (*string, error) {
	switch v := params["port"].(type) {
	case nil:
		return nil, nil
	case string:
		if v == "" {
			return nil, nil
		}
		if _, err := strconv.ParseUint(v, 10, 16); err != nil {
			return nil, fmt.Errorf("invalid port: %s", v)
		}
		return &v, nil
	case float64:
		if v < 0 || v > 65535 || v != float64(int(v)) {
			return nil, fmt.Errorf("invalid port: %v", v)
		}
		s := strconv.Itoa(int(v))
		return &s, nil
	case int:
		if v < 0 || v > 65535 {
			return nil, fmt.Errorf("invalid port: %d", v)
		}
		s := strconv.Itoa(v)
		return &s, nil
	default:
		return nil, fmt.Errorf("port must be string or number")
	}
}
