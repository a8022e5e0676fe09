package preview

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"pagetools/internal/domain/entity"
)

// Generate renders a self-contained HTML report of a run: the source URL,
// the action table and the raw tool JSON. All page-derived values are
// escaped before interpolation.
func Generate(url string, actions []entity.Action, set entity.ToolSet, runID string) (string, error) {
	toolJSON, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal tools: %w", err)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>Page tools %s</title>\n", html.EscapeString(runID))
	b.WriteString(`<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
th { background: #f0f0f0; }
pre { background: #f8f8f8; padding: 1em; overflow-x: auto; }
code { font-family: monospace; }
</style>
`)
	b.WriteString("</head>\n<body>\n")

	fmt.Fprintf(&b, "<h1>Page tools</h1>\n<p>Run <code>%s</code> for <a href=\"%s\">%s</a></p>\n",
		html.EscapeString(runID), html.EscapeString(url), html.EscapeString(url))

	fmt.Fprintf(&b, "<h2>Actions (%d)</h2>\n", len(actions))
	b.WriteString("<table>\n<tr><th>#</th><th>Type</th><th>Label</th><th>Selector</th></tr>\n")
	for i, action := range actions {
		fmt.Fprintf(&b, "<tr><td>%d</td><td>%s</td><td>%s</td><td><code>%s</code></td></tr>\n",
			i+1,
			html.EscapeString(string(action.Type)),
			html.EscapeString(action.Label),
			html.EscapeString(action.Selector))
	}
	b.WriteString("</table>\n")

	fmt.Fprintf(&b, "<h2>Tools (%d)</h2>\n<pre>%s</pre>\n", len(set.Tools), escapePre(string(toolJSON)))

	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

// escapePre guards the embedded JSON against a literal </pre> smuggled in
// via a page label.
func escapePre(s string) string {
	s = html.EscapeString(s)
	return strings.ReplaceAll(s, "</pre>", "&lt;/pre&gt;")
}
