package urls

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/AgentOS/urls/internal/providers/http/client"
	"github.com/GriffinCanCode/AgentOS/urls/internal/queryparams"
	"github.com/GriffinCanCode/AgentOS/urls/internal/shared/types"
	core "github.com/GriffinCanCode/AgentOS/urls/internal/urls"
)

// QueryOps handles query parameter multimaps. Each tool takes an encoded
// query and returns the encoded result, since Params never change in place.
type QueryOps struct {
	*Ops
}

func (o *Ops) checkQuery(query string) error {
	if o.MaxQueryLength > 0 && len(query) > o.MaxQueryLength {
		return core.MalformedInput("query string exceeds %d bytes", o.MaxQueryLength)
	}
	return nil
}

// GetTools returns query tool definitions
func (q *QueryOps) GetTools() []types.Tool {
	queryParam := types.Parameter{Name: "query", Type: "string", Description: "Encoded query, e.g. a=1&a=2&b=", Required: false}
	keyParam := types.Parameter{Name: "key", Type: "string", Description: "Parameter name", Required: true}
	valueParam := types.Parameter{Name: "value", Type: "any", Description: "String, boolean, number or null", Required: false}

	return []types.Tool{
		{
			ID:          "urls.query.parse",
			Name:        "Parse Query",
			Description: "Parse an encoded query into ordered keys and value lists",
			Parameters:  []types.Parameter{queryParam},
			Returns:     "object",
		},
		{
			ID:          "urls.query.set",
			Name:        "Set Query Parameter",
			Description: "Replace every value of key with a single value",
			Parameters:  []types.Parameter{queryParam, keyParam, valueParam},
			Returns:     "object",
		},
		{
			ID:          "urls.query.add",
			Name:        "Add Query Parameter",
			Description: "Append a value to key",
			Parameters:  []types.Parameter{queryParam, keyParam, valueParam},
			Returns:     "object",
		},
		{
			ID:          "urls.query.remove",
			Name:        "Remove Query Parameter",
			Description: "Drop key and all its values",
			Parameters:  []types.Parameter{queryParam, keyParam},
			Returns:     "object",
		},
		{
			ID:          "urls.query.merge",
			Name:        "Merge Query",
			Description: "Overwrite keys with those of other, appending new keys",
			Parameters: []types.Parameter{
				queryParam,
				{Name: "other", Type: "object", Description: "Encoded query string or object of values", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "urls.query.get",
			Name:        "Get Query Parameter",
			Description: "Read the first value, or all values, of key",
			Parameters: []types.Parameter{
				queryParam,
				keyParam,
				{Name: "default", Type: "string", Description: "Returned when key is absent", Required: false},
				{Name: "all", Type: "boolean", Description: "Return every value (default: false)", Required: false},
			},
			Returns: "object",
		},
	}
}

func (q *QueryOps) load(params map[string]interface{}) (*queryparams.Params, error) {
	query, err := client.GetString(params, "query", false)
	if err != nil {
		return nil, err
	}
	if err := q.checkQuery(query); err != nil {
		return nil, err
	}
	return queryparams.Parse(query), nil
}

func (q *QueryOps) result(p *queryparams.Params) (*types.Result, error) {
	encoded := p.String()
	if err := q.checkQuery(encoded); err != nil {
		return client.FailureFrom(err)
	}
	return client.Success(map[string]interface{}{
		"query":  encoded,
		"keys":   p.Keys(),
		"params": p.MultiDict(),
		"hash":   p.Hash(),
	})
}

// Parse decodes the query into its multimap form
func (q *QueryOps) Parse(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	p, err := q.load(params)
	if err != nil {
		return client.FailureFrom(err)
	}
	return q.result(p)
}

// Set replaces the values of key
func (q *QueryOps) Set(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return q.update(params, func(p *queryparams.Params, key string, value queryparams.Value) *queryparams.Params {
		return p.Set(key, value)
	})
}

// Add appends a value to key
func (q *QueryOps) Add(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return q.update(params, func(p *queryparams.Params, key string, value queryparams.Value) *queryparams.Params {
		return p.Add(key, value)
	})
}

func (q *QueryOps) update(params map[string]interface{}, apply func(*queryparams.Params, string, queryparams.Value) *queryparams.Params) (*types.Result, error) {
	p, err := q.load(params)
	if err != nil {
		return client.FailureFrom(err)
	}
	key, err := client.GetString(params, "key", true)
	if err != nil {
		return client.Failure(err.Error())
	}
	value, err := queryparams.ValueOf(params["value"])
	if err != nil {
		return client.FailureFrom(err)
	}
	return q.result(apply(p, key, value))
}

// Remove drops key
func (q *QueryOps) Remove(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	p, err := q.load(params)
	if err != nil {
		return client.FailureFrom(err)
	}
	key, err := client.GetString(params, "key", true)
	if err != nil {
		return client.Failure(err.Error())
	}
	return q.result(p.Remove(key))
}

// Merge overlays other, given as an encoded string or an object
func (q *QueryOps) Merge(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	p, err := q.load(params)
	if err != nil {
		return client.FailureFrom(err)
	}

	var source queryparams.Source
	switch other := params["other"].(type) {
	case string:
		if err := q.checkQuery(other); err != nil {
			return client.FailureFrom(err)
		}
		source = queryparams.FromString(other)
	case map[string]interface{}:
		if source, err = queryparams.FromObject(other); err != nil {
			return client.FailureFrom(err)
		}
	case nil:
		return client.Failure("other parameter required")
	default:
		return client.Failure(fmt.Sprintf("other must be string or object, got %T", other))
	}

	overlay, err := queryparams.New(source)
	if err != nil {
		return client.FailureFrom(err)
	}
	return q.result(p.Merge(overlay))
}

// Get reads key. Without a default an absent key is an error.
func (q *QueryOps) Get(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	p, err := q.load(params)
	if err != nil {
		return client.FailureFrom(err)
	}
	key, err := client.GetString(params, "key", true)
	if err != nil {
		return client.Failure(err.Error())
	}

	if client.GetBool(params, "all", false) {
		return client.Success(map[string]interface{}{
			"values": p.GetList(key),
			"found":  p.Contains(key),
		})
	}

	def, err := client.GetOptionalString(params, "default")
	if err != nil {
		return client.Failure(err.Error())
	}
	if def != nil {
		value := p.Get(key, *def)
		return client.Success(map[string]interface{}{"value": value, "found": p.Contains(key)})
	}

	value, err := p.Index(key)
	if err != nil {
		return client.FailureFrom(err)
	}
	return client.Success(map[string]interface{}{"value": value, "found": true})
}
