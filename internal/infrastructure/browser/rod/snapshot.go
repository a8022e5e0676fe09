package rod

import (
	"github.com/go-rod/rod"

	"pagetools/internal/application/port/output"
)

var (
	_ output.DOMSnapshot   = (*snapshot)(nil)
	_ output.ElementHandle = (*element)(nil)
)

// snapshot exposes the live page as a queryable DOM. It is a view, not a
// copy: removals mutate the page.
type snapshot struct {
	page *rod.Page
}

func (s *snapshot) Query(selector string) []output.ElementHandle {
	els, err := s.page.Elements(selector)
	if err != nil {
		return nil
	}
	out := make([]output.ElementHandle, 0, len(els))
	for _, el := range els {
		out = append(out, &element{el: el})
	}
	return out
}

func (s *snapshot) QueryVisible(selector string) []output.ElementHandle {
	els, err := s.page.Elements(selector)
	if err != nil {
		return nil
	}
	var out []output.ElementHandle
	for _, el := range els {
		visible, err := el.Visible()
		if err != nil || !visible {
			continue
		}
		out = append(out, &element{el: el})
	}
	return out
}

func (s *snapshot) URL() string {
	info, err := s.page.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

func (s *snapshot) Title() string {
	info, err := s.page.Info()
	if err != nil {
		return ""
	}
	return info.Title
}

type element struct {
	el *rod.Element
}

func (e *element) Tag() string {
	res, err := e.el.Eval(`() => this.tagName.toLowerCase()`)
	if err != nil {
		return ""
	}
	return res.Value.Str()
}

func (e *element) Text() string {
	text, err := e.el.Text()
	if err != nil {
		return ""
	}
	return text
}

func (e *element) Attribute(name string) (string, bool) {
	v, err := e.el.Attribute(name)
	if err != nil || v == nil {
		return "", false
	}
	return *v, true
}

func (e *element) Remove() error {
	return e.el.Remove()
}
