package toolgen

import (
	"fmt"

	"pagetools/internal/domain/entity"
)

// Describe renders the human-readable sentence for an action.
func Describe(typ entity.ActionType, label string) string {
	switch typ {
	case entity.ActionButton:
		return fmt.Sprintf("Click the %s button", label)
	case entity.ActionInput:
		return fmt.Sprintf("Enter text in the %s input field", label)
	case entity.ActionSelect:
		return fmt.Sprintf("Select an option from the %s dropdown", label)
	case entity.ActionLink:
		return fmt.Sprintf("Click the %s link", label)
	default:
		return fmt.Sprintf("Interact with the %s %s", label, typ)
	}
}
