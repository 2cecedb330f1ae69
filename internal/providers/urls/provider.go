package urls

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/AgentOS/urls/internal/infrastructure/config"
	"github.com/GriffinCanCode/AgentOS/urls/internal/infrastructure/logging"
	"github.com/GriffinCanCode/AgentOS/urls/internal/providers/http/client"
	"github.com/GriffinCanCode/AgentOS/urls/internal/shared/types"
)

// Ops carries what every URL module needs
type Ops struct {
	MaxQueryLength int
	Logger         *logging.Logger
}

// Provider exposes URL parsing, encoding and query manipulation as tools
type Provider struct {
	codecOps *CodecOps
	pathOps  *PathOps
	buildOps *BuildOps
	queryOps *QueryOps
	linkOps  *LinkOps
}

// NewProvider creates a URL provider bounded by cfg
func NewProvider(cfg config.QueryConfig, logger *logging.Logger) *Provider {
	if logger == nil {
		logger = logging.Nop()
	}
	ops := &Ops{MaxQueryLength: cfg.MaxLength, Logger: logger.Named("urls")}

	return &Provider{
		codecOps: &CodecOps{Ops: ops},
		pathOps:  &PathOps{Ops: ops},
		buildOps: &BuildOps{Ops: ops},
		queryOps: &QueryOps{Ops: ops},
		linkOps:  &LinkOps{Ops: ops},
	}
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.codecOps.GetTools()...)
	tools = append(tools, p.pathOps.GetTools()...)
	tools = append(tools, p.buildOps.GetTools()...)
	tools = append(tools, p.queryOps.GetTools()...)
	tools = append(tools, p.linkOps.GetTools()...)

	return types.Service{
		ID:          "urls",
		Name:        "URL Service",
		Description: "RFC 3986 URL parsing, percent-encoding, path normalization and query parameters",
		Category:    types.CategoryURL,
		Capabilities: []string{
			"quote", "unquote", "percent-encoding",
			"normalize", "validate", "match",
			"parse", "build",
			"query", "multimap",
			"links",
		},
		Tools: tools,
	}
}

// Execute routes to appropriate module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if params == nil {
		params = map[string]interface{}{}
	}

	switch toolID {
	// Codec operations
	case "urls.quote":
		return p.codecOps.Quote(ctx, params, appCtx)
	case "urls.percentEncode":
		return p.codecOps.PercentEncode(ctx, params, appCtx)
	case "urls.unquote":
		return p.codecOps.Unquote(ctx, params, appCtx)
	case "urls.unescape":
		return p.codecOps.Unescape(ctx, params, appCtx)
	case "urls.findNonPrintable":
		return p.codecOps.FindNonPrintable(ctx, params, appCtx)

	// Path operations
	case "urls.normalizePath":
		return p.pathOps.NormalizePath(ctx, params, appCtx)
	case "urls.validatePath":
		return p.pathOps.ValidatePath(ctx, params, appCtx)
	case "urls.matchPath":
		return p.pathOps.MatchPath(ctx, params, appCtx)

	// URL operations
	case "urls.buildURL":
		return p.buildOps.BuildURL(ctx, params, appCtx)
	case "urls.parseURL":
		return p.buildOps.ParseURL(ctx, params, appCtx)

	// Query operations
	case "urls.query.parse":
		return p.queryOps.Parse(ctx, params, appCtx)
	case "urls.query.set":
		return p.queryOps.Set(ctx, params, appCtx)
	case "urls.query.add":
		return p.queryOps.Add(ctx, params, appCtx)
	case "urls.query.remove":
		return p.queryOps.Remove(ctx, params, appCtx)
	case "urls.query.merge":
		return p.queryOps.Merge(ctx, params, appCtx)
	case "urls.query.get":
		return p.queryOps.Get(ctx, params, appCtx)

	// Link operations
	case "urls.extractLinks":
		return p.linkOps.ExtractLinks(ctx, params, appCtx)

	default:
		p.codecOps.Logger.Debug("Unknown tool", zap.String("tool", toolID))
		return client.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
