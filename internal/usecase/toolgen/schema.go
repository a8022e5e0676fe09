package toolgen

import (
	"fmt"

	"pagetools/internal/domain/entity"
)

// BuildSchema produces the JSON Schema for one action: a single required
// selector string defaulting to the synthesized locator. The default carries
// the raw selector, not the escaped label form.
func BuildSchema(action entity.Action, label string) entity.InputSchema {
	return entity.InputSchema{
		Type: "object",
		Properties: map[string]entity.Property{
			"selector": {
				Type:        "string",
				Description: fmt.Sprintf("CSS selector for the %s %s", label, action.Type),
				Default:     action.Selector,
			},
		},
		Required: []string{"selector"},
	}
}
