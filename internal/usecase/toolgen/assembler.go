package toolgen

import (
	"pagetools/internal/application/port/output"
	"pagetools/internal/domain/entity"
)

// GenerateTools maps every extracted action to exactly one tool descriptor.
// Name collisions within a page get numeric suffixes so the set stays
// addressable by name.
func GenerateTools(actions []entity.Action, log output.LoggerPort) entity.ToolSet {
	used := make(map[string]bool, len(actions))
	// Non-nil slice so an empty set marshals as {"tools":[]}.
	tools := make([]entity.Tool, 0, len(actions))

	for _, action := range actions {
		// Names derive from the raw label; escaping is display-only and
		// would otherwise leak entity text into identifiers.
		label := SanitizeLabel(action.Label)
		name := disambiguate(ToolName(action.Type, action.Label), used)
		used[name] = true

		tools = append(tools, entity.Tool{
			Name:        name,
			Description: Describe(action.Type, label),
			InputSchema: BuildSchema(action, label),
		})
	}

	log.Info("tools generated", "count", len(tools))
	return entity.ToolSet{Tools: tools}
}
