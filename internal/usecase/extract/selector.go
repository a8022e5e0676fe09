package extract

import (
	"strings"

	"pagetools/internal/application/port/output"
)

// SynthesizeSelector builds a best-effort CSS locator for an element: id
// first, then class tokens, then the tag name with an optional name
// attribute. The result is not guaranteed to be unique within the document.
func SynthesizeSelector(el output.ElementHandle) string {
	if id, ok := el.Attribute("id"); ok && strings.TrimSpace(id) != "" {
		return "#" + strings.TrimSpace(id)
	}

	if class, ok := el.Attribute("class"); ok {
		if tokens := strings.Fields(class); len(tokens) > 0 {
			return "." + strings.Join(tokens, ".")
		}
	}

	selector := strings.ToLower(el.Tag())
	if name, ok := el.Attribute("name"); ok && name != "" {
		selector += `[name="` + name + `"]`
	}
	return selector
}
