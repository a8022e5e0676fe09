package entity

// Tool is the descriptor handed to an automated agent for one page action.
// Name is non-empty, at most 40 characters and restricted to [a-z0-9_].
type Tool struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"input_schema"`
}

// InputSchema is the JSON schema for a tool's parameters.
type InputSchema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Default     string `json:"default"`
}

// ToolSet is the final ordered list; order mirrors action discovery order.
type ToolSet struct {
	Tools []Tool `json:"tools"`
}
