package types

// ExecuteRequest represents a tool execution request
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id" binding:"required"`
	Params map[string]interface{} `json:"params"`
}

// DiscoverRequest asks for services relevant to a free-text intent
type DiscoverRequest struct {
	Message string `json:"message"`
	Limit   int    `json:"limit,omitempty"`
}
