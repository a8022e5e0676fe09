package entity

// ActionType classifies one interactive element on a page.
type ActionType string

const (
	ActionButton ActionType = "button"
	ActionLink   ActionType = "link"
	ActionInput  ActionType = "input"
	ActionSelect ActionType = "select"
)

func (t ActionType) String() string {
	return string(t)
}

// Action is one discovered interactive element: its classification, a
// human-readable label and a best-effort CSS locator.
type Action struct {
	Type     ActionType `json:"type"`
	Label    string     `json:"label"`
	Selector string     `json:"selector"`
}
