package entity

// PageData is the non-interactive content extracted from a single page.
type PageData struct {
	URL    string   `json:"url"`
	Title  string   `json:"title,omitempty"`
	Text   string   `json:"text,omitempty"`
	Links  []string `json:"links,omitempty"`
	Images []string `json:"images,omitempty"`
}

// Resource is the MCP resource descriptor derived from one PageData.
type Resource struct {
	URI      string   `json:"uri"`
	Name     string   `json:"name"`
	MimeType string   `json:"mimeType"`
	Text     string   `json:"text,omitempty"`
	Links    []string `json:"links,omitempty"`
	Images   []string `json:"images,omitempty"`
}

type Screenshot struct {
	Data   []byte
	Format string
	Width  int
	Height int
}
