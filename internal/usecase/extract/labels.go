package extract

import (
	"strings"
	"unicode/utf8"

	"pagetools/internal/application/port/output"
)

// maxTextLabelLen bounds the text-content fallback: longer runs are usually
// whole paragraphs, not labels.
const maxTextLabelLen = 100

// labelRule is one step of the fallback chain: an accessor plus the
// predicate its value must pass to be accepted as the label.
type labelRule struct {
	source string
	value  func(output.ElementHandle) string
	accept func(string) bool
}

func nonEmpty(s string) bool { return s != "" }

func attrValue(name string) func(output.ElementHandle) string {
	return func(el output.ElementHandle) string {
		v, _ := el.Attribute(name)
		return strings.TrimSpace(v)
	}
}

var labelChain = []labelRule{
	{"aria-label", attrValue("aria-label"), nonEmpty},
	{"title", attrValue("title"), nonEmpty},
	{"text", func(el output.ElementHandle) string { return strings.TrimSpace(el.Text()) },
		func(s string) bool {
			n := utf8.RuneCountInString(s)
			return n > 0 && n < maxTextLabelLen
		}},
	{"placeholder", attrValue("placeholder"), nonEmpty},
	{"value", attrValue("value"), nonEmpty},
	{"name", attrValue("name"), nonEmpty},
	{"id", func(el output.ElementHandle) string {
		v, _ := el.Attribute("id")
		v = strings.ReplaceAll(v, "-", " ")
		v = strings.ReplaceAll(v, "_", " ")
		return strings.TrimSpace(v)
	}, nonEmpty},
}

// ResolveLabel walks the fallback chain in order and returns the first
// accepted value. The tag name terminates the chain, so the result is never
// empty for a real element.
func ResolveLabel(el output.ElementHandle) string {
	for _, rule := range labelChain {
		if v := rule.value(el); rule.accept(v) {
			return v
		}
	}
	return strings.ToLower(el.Tag())
}
