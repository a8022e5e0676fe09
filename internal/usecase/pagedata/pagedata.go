package pagedata

import (
	"net/url"
	"regexp"
	"strings"

	"pagetools/internal/application/port/output"
	"pagetools/internal/domain/entity"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Collect gathers the non-interactive page content the input flags ask for:
// body text, outgoing links and image sources. Links and sources are
// resolved against the page URL and normalized before deduplication.
func Collect(snap output.DOMSnapshot, in entity.Input) entity.PageData {
	pageURL := NormalizeURL(snap.URL())
	data := entity.PageData{
		URL:   pageURL,
		Title: snap.Title(),
	}
	base, _ := url.Parse(pageURL)

	if in.ExtractText {
		if body := snap.Query("body"); len(body) > 0 {
			data.Text = SanitizeText(body[0].Text())
		}
	}

	if in.ExtractLinks {
		data.Links = collectAttrs(snap, "a[href]", "href", base)
	}

	if in.ExtractImages {
		data.Images = collectAttrs(snap, "img[src]", "src", base)
	}

	return data
}

func collectAttrs(snap output.DOMSnapshot, selector, attr string, base *url.URL) []string {
	seen := make(map[string]bool)
	var out []string
	for _, el := range snap.Query(selector) {
		v, _ := el.Attribute(attr)
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		v = absolutize(v, base)
		// mailto:, javascript: and friends are not page addresses.
		if strings.Contains(v, ":") && !strings.HasPrefix(v, "http://") && !strings.HasPrefix(v, "https://") {
			continue
		}
		v = NormalizeURL(v)
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// absolutize resolves a relative reference against the page URL so stored
// links are addressable outside the page.
func absolutize(ref string, base *url.URL) string {
	if base == nil {
		return ref
	}
	parsed, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(parsed).String()
}

// SanitizeText collapses runs of whitespace into single spaces.
func SanitizeText(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// NormalizeURL prepends https:// when the scheme is missing and strips the
// trailing slash from bare-host URLs.
func NormalizeURL(rawURL string) string {
	u := strings.TrimSpace(rawURL)
	if u == "" {
		return u
	}
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "https://" + u
	}
	// "https://example.com/" -> "https://example.com", but deeper paths keep
	// whatever slash they came with.
	if strings.HasSuffix(u, "/") && strings.Count(u, "/") == 3 &&
		!strings.ContainsAny(u, "?#") {
		u = strings.TrimSuffix(u, "/")
	}
	return u
}
