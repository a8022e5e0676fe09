package pagedata

import (
	"testing"

	"pagetools/internal/application/port/output"
	"pagetools/internal/domain/entity"
)

type fakeElement struct {
	tag   string
	text  string
	attrs map[string]string
}

func (f *fakeElement) Tag() string  { return f.tag }
func (f *fakeElement) Text() string { return f.text }
func (f *fakeElement) Attribute(name string) (string, bool) {
	v, ok := f.attrs[name]
	return v, ok
}
func (f *fakeElement) Remove() error { return nil }

type fakeSnapshot struct {
	url      string
	title    string
	elements map[string][]*fakeElement
}

func (f *fakeSnapshot) Query(selector string) []output.ElementHandle {
	var out []output.ElementHandle
	for _, el := range f.elements[selector] {
		out = append(out, el)
	}
	return out
}

func (f *fakeSnapshot) QueryVisible(selector string) []output.ElementHandle {
	return f.Query(selector)
}

func (f *fakeSnapshot) URL() string   { return f.url }
func (f *fakeSnapshot) Title() string { return f.title }

func TestCollectNormalizesURLs(t *testing.T) {
	snap := &fakeSnapshot{
		url:   "https://example.com/",
		title: "Example",
		elements: map[string][]*fakeElement{
			"body": {{tag: "BODY", text: "  hello \n world  "}},
			"a[href]": {
				{tag: "A", attrs: map[string]string{"href": "/docs"}},
				{tag: "A", attrs: map[string]string{"href": "https://example.com/docs"}},
				{tag: "A", attrs: map[string]string{"href": "mailto:team@example.com"}},
			},
			"img[src]": {
				{tag: "IMG", attrs: map[string]string{"src": "/logo.png"}},
			},
		},
	}

	in := entity.DefaultInput()
	in.ExtractImages = true

	data := Collect(snap, in)

	if data.URL != "https://example.com" {
		t.Errorf("page URL = %q, want normalized bare host", data.URL)
	}
	if data.Text != "hello world" {
		t.Errorf("text = %q", data.Text)
	}

	// Relative and absolute forms of the same link collapse after
	// normalization; the mailto reference is dropped.
	if len(data.Links) != 1 || data.Links[0] != "https://example.com/docs" {
		t.Errorf("links = %v, want one normalized docs link", data.Links)
	}
	if len(data.Images) != 1 || data.Images[0] != "https://example.com/logo.png" {
		t.Errorf("images = %v", data.Images)
	}
}

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  hello   world  ", "hello world"},
		{"line\none\n\n\tline two", "line one line two"},
		{"", ""},
		{"already clean", "already clean"},
	}
	for _, tt := range tests {
		if got := SanitizeText(tt.in); got != tt.want {
			t.Errorf("SanitizeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "https://example.com"},
		{"https://example.com/", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"https://example.com/path/", "https://example.com/path/"},
		{"https://example.com/?q=1", "https://example.com/?q=1"},
		{"  example.com  ", "https://example.com"},
	}
	for _, tt := range tests {
		if got := NormalizeURL(tt.in); got != tt.want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
