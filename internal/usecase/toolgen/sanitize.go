package toolgen

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"pagetools/internal/domain/entity"
)

const maxToolNameLen = 40

var (
	tagRe        = regexp.MustCompile(`<[^>]+>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	invalidRe    = regexp.MustCompile(`[^a-z0-9_]`)
	underscoreRe = regexp.MustCompile(`_+`)
)

// SanitizeLabel turns raw DOM text into a display label: strips markup,
// collapses whitespace and HTML-escapes the rest. Unescaping first keeps the
// function idempotent on already-escaped input.
func SanitizeLabel(s string) string {
	s = tagRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = html.EscapeString(html.UnescapeString(s))
	return strings.TrimSpace(s)
}

// ToolName derives the tool identifier from the action type and label, e.g.
// ("button", "Submit Form") -> "button_submit_form". The result always
// matches ^[a-z0-9_]{1,40}$.
func ToolName(typ entity.ActionType, label string) string {
	name := sanitizeName(string(typ) + "_" + label)
	if name == "" {
		name = string(typ) + "_action"
	}
	return name
}

func sanitizeName(s string) string {
	s = strings.ToLower(s)
	s = invalidRe.ReplaceAllString(s, "_")
	s = underscoreRe.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > maxToolNameLen {
		s = strings.TrimRight(s[:maxToolNameLen], "_")
	}
	return s
}

// disambiguate returns name unchanged if unused, otherwise appends _2, _3
// and so on, truncating the base so the result stays within the length cap.
func disambiguate(name string, used map[string]bool) string {
	if !used[name] {
		return name
	}
	for i := 2; ; i++ {
		suffix := fmt.Sprintf("_%d", i)
		base := name
		if len(base)+len(suffix) > maxToolNameLen {
			base = strings.TrimRight(base[:maxToolNameLen-len(suffix)], "_")
		}
		candidate := base + suffix
		if !used[candidate] {
			return candidate
		}
	}
}
