package extract

import (
	"strings"

	"pagetools/internal/application/port/output"
	"pagetools/internal/domain/entity"
)

type Config struct {
	MaxActions int
}

// category pairs an action type with its CSS matcher and an optional
// post-match filter.
type category struct {
	typ      entity.ActionType
	selector string
	accept   func(output.ElementHandle) bool
}

// categories are evaluated in this fixed order; truncation at MaxActions
// therefore favors buttons over links over inputs over selects.
var categories = []category{
	{entity.ActionButton, `button, input[type="button"], input[type="submit"]`, nil},
	{entity.ActionLink, `a[href]`, func(el output.ElementHandle) bool {
		href, _ := el.Attribute("href")
		return strings.TrimSpace(href) != ""
	}},
	{entity.ActionInput, `input[type="text"], input[type="email"], input[type="password"], input[type="number"], textarea`, nil},
	{entity.ActionSelect, `select`, nil},
}

// Actions enumerates the interactive elements of the page in category order.
// Elements without a rendered layout are skipped entirely; the result is
// capped at cfg.MaxActions.
func Actions(snap output.DOMSnapshot, cfg Config, log output.LoggerPort) []entity.Action {
	maxActions := cfg.MaxActions
	if maxActions <= 0 {
		maxActions = entity.DefaultMaxActions
	}

	var actions []entity.Action
	for _, cat := range categories {
		for _, el := range snap.QueryVisible(cat.selector) {
			if cat.accept != nil && !cat.accept(el) {
				continue
			}
			actions = append(actions, entity.Action{
				Type:     cat.typ,
				Label:    ResolveLabel(el),
				Selector: SynthesizeSelector(el),
			})
		}
	}

	if len(actions) > maxActions {
		log.Info("actions limited", "total", len(actions), "max", maxActions)
		actions = actions[:maxActions]
	}
	return actions
}
