package urls

import (
	"context"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/AgentOS/urls/internal/providers/http/client"
	"github.com/GriffinCanCode/AgentOS/urls/internal/shared/types"
	core "github.com/GriffinCanCode/AgentOS/urls/internal/urls"
)

// PathOps handles URL path normalization and matching
type PathOps struct {
	*Ops
}

// GetTools returns path tool definitions
func (p *PathOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "urls.normalizePath",
			Name:        "Normalize Path",
			Description: "Remove '.' and '..' segments from a path",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "URL path", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "urls.validatePath",
			Name:        "Validate Path",
			Description: "Check a path against the scheme and authority it appears with",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "URL path", Required: true},
				{Name: "has_scheme", Type: "boolean", Description: "URL has a scheme (default: false)", Required: false},
				{Name: "has_authority", Type: "boolean", Description: "URL has an authority (default: false)", Required: false},
			},
			Returns: "boolean",
		},
		{
			ID:          "urls.matchPath",
			Name:        "Match Path",
			Description: "Match a normalized URL path against a glob pattern supporting '**'",
			Parameters: []types.Parameter{
				{Name: "pattern", Type: "string", Description: "Glob pattern, e.g. /api/**/items/*", Required: true},
				{Name: "path", Type: "string", Description: "URL path", Required: false},
				{Name: "url", Type: "string", Description: "URL whose path is matched", Required: false},
			},
			Returns: "boolean",
		},
	}
}

// NormalizePath resolves dot segments
func (p *PathOps) NormalizePath(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, err := client.GetString(params, "path", true)
	if err != nil {
		return client.Failure(err.Error())
	}

	return client.Success(map[string]interface{}{"result": core.NormalizePath(path)})
}

// ValidatePath fails with the reason when the path cannot appear in such a URL
func (p *PathOps) ValidatePath(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, err := client.GetString(params, "path", true)
	if err != nil {
		return client.Failure(err.Error())
	}

	hasScheme := client.GetBool(params, "has_scheme", false)
	hasAuthority := client.GetBool(params, "has_authority", false)
	if err := core.ValidatePath(path, hasScheme, hasAuthority); err != nil {
		return client.FailureFrom(err)
	}
	return client.Success(map[string]interface{}{"valid": true})
}

// MatchPath matches the normalized path, taken from "path" or the path of "url"
func (p *PathOps) MatchPath(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	pattern, err := client.GetString(params, "pattern", true)
	if err != nil {
		return client.Failure(err.Error())
	}
	if !doublestar.ValidatePattern(pattern) {
		return client.Failure(fmt.Sprintf("invalid pattern: %s", pattern))
	}

	path, err := client.GetString(params, "path", false)
	if err != nil {
		return client.Failure(err.Error())
	}
	raw, err := client.GetString(params, "url", false)
	if err != nil {
		return client.Failure(err.Error())
	}
	if raw != "" {
		parts, err := core.Parse(raw)
		if err != nil {
			return client.FailureFrom(err)
		}
		path = parts.Path()
	}
	path = core.NormalizePath(path)

	matched, err := doublestar.Match(pattern, path)
	if err != nil {
		return client.Failure(fmt.Sprintf("invalid pattern: %v", err))
	}

	p.Logger.Debug("Matched path", zap.String("pattern", pattern), zap.String("path", path), zap.Bool("matched", matched))
	return client.Success(map[string]interface{}{
		"matched": matched,
		"path":    path,
	})
}
