package extract

import (
	"strings"

	"pagetools/internal/application/port/output"
)

// knownBannerSelectors are consent-widget roots removed without further
// checks.
var knownBannerSelectors = []string{
	"#onetrust-consent-sdk",
	"#Cookiebot",
}

// bannerCandidates matches anything whose id or class hints at a cookie or
// consent widget. A candidate is only removed when its text also mentions
// cookies or consent, so a plain "cookie policy" footer link survives.
const bannerCandidates = `[id*="cookie" i], [id*="onetrust" i], ` +
	`[class*="cookie" i], [class*="onetrust" i]`

// RemoveBanners deletes cookie/consent overlays from the live page so they
// are not picked up as actionable elements. The mutation is irreversible for
// the current page instance.
func RemoveBanners(snap output.DOMSnapshot, log output.LoggerPort) int {
	removed := 0

	for _, selector := range knownBannerSelectors {
		for _, el := range snap.Query(selector) {
			if err := el.Remove(); err != nil {
				log.Warn("banner removal failed", "selector", selector, "error", err)
				continue
			}
			removed++
		}
	}

	for _, el := range snap.Query(bannerCandidates) {
		if !mentionsConsent(el.Text()) {
			continue
		}
		if err := el.Remove(); err != nil {
			log.Warn("banner removal failed", "error", err)
			continue
		}
		removed++
	}

	if removed > 0 {
		log.Info("cookie banners removed", "count", removed)
	}
	return removed
}

func mentionsConsent(text string) bool {
	t := strings.ToLower(text)
	return strings.Contains(t, "cookie") || strings.Contains(t, "consent")
}
