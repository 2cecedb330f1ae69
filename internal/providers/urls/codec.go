package urls

import (
	"context"

	"github.com/GriffinCanCode/AgentOS/urls/internal/providers/http/client"
	"github.com/GriffinCanCode/AgentOS/urls/internal/shared/types"
	core "github.com/GriffinCanCode/AgentOS/urls/internal/urls"
)

// CodecOps handles percent-encoding
type CodecOps struct {
	*Ops
}

// GetTools returns codec tool definitions
func (c *CodecOps) GetTools() []types.Tool {
	valueParam := types.Parameter{Name: "value", Type: "string", Description: "Input text", Required: true}
	safeParam := types.Parameter{Name: "safe", Type: "string", Description: "Extra characters left unescaped", Required: false}

	return []types.Tool{
		{
			ID:          "urls.quote",
			Name:        "Quote",
			Description: "Percent-encode text, keeping existing %XX escapes",
			Parameters:  []types.Parameter{valueParam, safeParam},
			Returns:     "string",
		},
		{
			ID:          "urls.percentEncode",
			Name:        "Percent Encode",
			Description: "Percent-encode every byte outside the unreserved and safe sets",
			Parameters:  []types.Parameter{valueParam, safeParam},
			Returns:     "string",
		},
		{
			ID:          "urls.unquote",
			Name:        "Unquote",
			Description: "Strip one pair of matching surrounding quotes",
			Parameters:  []types.Parameter{valueParam},
			Returns:     "string",
		},
		{
			ID:          "urls.unescape",
			Name:        "Unescape",
			Description: "Decode %XX escapes as UTF-8",
			Parameters:  []types.Parameter{valueParam},
			Returns:     "string",
		},
		{
			ID:          "urls.findNonPrintable",
			Name:        "Find Non-Printable",
			Description: "Locate the first ASCII control character",
			Parameters:  []types.Parameter{valueParam},
			Returns:     "object",
		},
	}
}

// Quote percent-encodes value, passing valid escapes through
func (c *CodecOps) Quote(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	value, err := client.GetString(params, "value", true)
	if err != nil {
		return client.Failure(err.Error())
	}
	safe, err := client.GetString(params, "safe", false)
	if err != nil {
		return client.Failure(err.Error())
	}

	return client.Success(map[string]interface{}{"result": core.Quote(value, safe)})
}

// PercentEncode encodes every unsafe byte including '%'
func (c *CodecOps) PercentEncode(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	value, err := client.GetString(params, "value", true)
	if err != nil {
		return client.Failure(err.Error())
	}
	safe, err := client.GetString(params, "safe", false)
	if err != nil {
		return client.Failure(err.Error())
	}

	return client.Success(map[string]interface{}{"result": core.PercentEncode(value, safe)})
}

// Unquote strips surrounding quotes
func (c *CodecOps) Unquote(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	value, err := client.GetString(params, "value", true)
	if err != nil {
		return client.Failure(err.Error())
	}

	return client.Success(map[string]interface{}{"result": core.Unquote(value)})
}

// Unescape decodes percent escapes
func (c *CodecOps) Unescape(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	value, err := client.GetString(params, "value", true)
	if err != nil {
		return client.Failure(err.Error())
	}

	decoded, err := core.Unescape(value)
	if err != nil {
		return client.FailureFrom(err)
	}
	return client.Success(map[string]interface{}{"result": decoded})
}

// FindNonPrintable reports the character index of the first control character, or -1
func (c *CodecOps) FindNonPrintable(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	value, err := client.GetString(params, "value", true)
	if err != nil {
		return client.Failure(err.Error())
	}

	idx, found := core.FindFirstNonPrintableASCII(value)
	if !found {
		idx = -1
	}
	return client.Success(map[string]interface{}{
		"index": idx,
		"found": found,
	})
}
