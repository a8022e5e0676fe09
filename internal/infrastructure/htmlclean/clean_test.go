package htmlclean

import (
	"strings"
	"testing"
)

func TestCleanRemovesNoise(t *testing.T) {
	raw := `<html><head><title>t</title></head><body>
<script>alert(1)</script>
<style>.x{}</style>
<!-- comment -->
<div style="color:red" data-track="1" onclick="go()">keep <b>me</b></div>
</body></html>`

	out := Clean(raw, nil)

	for _, gone := range []string{"<script", "<style", "comment", "style=", "data-track", "onclick"} {
		if strings.Contains(out, gone) {
			t.Errorf("output still contains %q", gone)
		}
	}
	if !strings.Contains(out, "keep <b>me</b>") {
		t.Error("content lost")
	}
}

func TestCleanKeepsIdAndClass(t *testing.T) {
	out := Clean(`<html><body><div id="a" class="b">x</div></body></html>`, nil)
	if !strings.Contains(out, `id="a"`) || !strings.Contains(out, `class="b"`) {
		t.Errorf("structural attributes lost: %s", out)
	}
}

func TestCleanTruncates(t *testing.T) {
	cfg := DefaultConfig
	cfg.MaxOutputSize = 50
	out := Clean("<html><body>"+strings.Repeat("x", 500)+"</body></html>", &cfg)
	if len(out) > 50+len("\n<!-- truncated -->") {
		t.Errorf("output not truncated: %d bytes", len(out))
	}
}

func TestCleanWithoutBodyReturnsInput(t *testing.T) {
	// html.Parse synthesizes a body for fragments, so feed it something that
	// genuinely lacks one.
	raw := "plain text"
	out := Clean(raw, nil)
	if !strings.Contains(out, "plain text") {
		t.Errorf("content lost: %s", out)
	}
}
