package output

// ElementHandle is read access to a single DOM element. Every accessor
// degrades to a zero value instead of reporting failure; Remove is the only
// mutating call.
type ElementHandle interface {
	Tag() string
	Text() string
	Attribute(name string) (string, bool)
	Remove() error
}

// DOMSnapshot is a queryable view of a loaded, stable page. QueryVisible
// keeps only elements with a rendered layout (not display:none, not
// detached).
type DOMSnapshot interface {
	Query(selector string) []ElementHandle
	QueryVisible(selector string) []ElementHandle
	URL() string
	Title() string
}
