package urls

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/AgentOS/urls/internal/providers/http/client"
	"github.com/GriffinCanCode/AgentOS/urls/internal/shared/types"
	core "github.com/GriffinCanCode/AgentOS/urls/internal/urls"
)

// LinkOps extracts and canonicalizes links found in HTML documents
type LinkOps struct {
	*Ops
}

// GetTools returns link tool definitions
func (l *LinkOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "urls.extractLinks",
			Name:        "Extract Links",
			Description: "Resolve every <a href> in an HTML document against a base URL and return unique canonical http(s) URLs",
			Parameters: []types.Parameter{
				{Name: "html", Type: "string", Description: "HTML document", Required: true},
				{Name: "base", Type: "string", Description: "Absolute http(s) URL the document was served from", Required: true},
			},
			Returns: "object",
		},
	}
}

// ExtractLinks resolves anchors against base and deduplicates on the
// canonical form produced by Parse.
func (l *LinkOps) ExtractLinks(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	html, err := client.GetString(params, "html", true)
	if err != nil {
		return client.Failure(err.Error())
	}
	rawBase, err := client.GetString(params, "base", true)
	if err != nil {
		return client.Failure(err.Error())
	}

	baseParts, err := core.Parse(rawBase)
	if err != nil {
		return client.FailureFrom(err)
	}
	if !baseParts.IsAbsolute() || !isWebScheme(baseParts.Scheme()) {
		return client.FailureFrom(core.InvalidURL("base must be an absolute http or https URL"))
	}
	base, err := url.Parse(baseParts.String())
	if err != nil {
		return client.FailureFrom(core.InvalidURL(err.Error()))
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return client.FailureFrom(core.MalformedInput("parse failed: %v", err))
	}

	seen := make(map[string]bool)
	links := []string{}
	skipped := 0
	doc.Find("a[href]").Each(func(i int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}

		canonical, ok := resolveLink(base, href)
		if !ok {
			skipped++
			return
		}
		if !seen[canonical] {
			seen[canonical] = true
			links = append(links, canonical)
		}
	})

	if skipped > 0 {
		l.Logger.Debug("Skipped unresolvable links", zap.Int("count", skipped))
	}

	return client.Success(map[string]interface{}{
		"links":   links,
		"count":   len(links),
		"skipped": skipped,
	})
}

func resolveLink(base *url.URL, href string) (string, bool) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	parts, err := core.Parse(base.ResolveReference(ref).String())
	if err != nil || !parts.IsAbsolute() || !isWebScheme(parts.Scheme()) {
		return "", false
	}
	return parts.String(), true
}

func isWebScheme(scheme string) bool {
	return scheme == "http" || scheme == "https"
}
