package toolgen

import (
	"strings"

	"pagetools/internal/domain/entity"
)

// GenerateResource wraps the collected page content as one addressable
// resource. Empty sections stay empty rather than splitting the page into
// per-section resources.
func GenerateResource(data entity.PageData) entity.Resource {
	name := data.Title
	if name == "" {
		name = data.URL
	}
	return entity.Resource{
		URI:      normalizeURI(data.URL),
		Name:     name,
		MimeType: "text/html",
		Text:     data.Text,
		Links:    data.Links,
		Images:   data.Images,
	}
}

// normalizeURI strips the trailing slash from bare-host URLs only; a slash
// that terminates a real path is part of the address.
func normalizeURI(u string) string {
	u = strings.TrimSpace(u)
	if strings.HasSuffix(u, "/") && strings.Count(u, "/") == 3 &&
		!strings.ContainsAny(u, "?#") {
		return strings.TrimSuffix(u, "/")
	}
	return u
}
