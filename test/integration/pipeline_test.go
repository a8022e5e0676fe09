package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagetools/internal/domain/entity"
	rodadapter "pagetools/internal/infrastructure/browser/rod"
	"pagetools/internal/infrastructure/logger"
	"pagetools/internal/infrastructure/storage"
	"pagetools/internal/usecase/runner"
)

const fixtureHTML = `<!DOCTYPE html>
<html>
<head><title>Fixture</title></head>
<body>
  <div id="onetrust-consent-sdk">We use cookies. <button>Accept</button></div>
  <h1>Fixture page</h1>
  <form>
    <input type="text" name="q" placeholder="Search query">
    <select id="lang" aria-label="lang"><option>en</option><option>de</option></select>
    <button id="go" type="submit">Run Search</button>
  </form>
  <a href="/docs" id="docs-link">Documentation</a>
  <p>Body text for the resource extractor.</p>
</body>
</html>`

// Needs a local Chromium; run with -short to skip.
func TestPipelineAgainstLiveBrowser(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser integration test in short mode")
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(fixtureHTML))
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg := rodadapter.DefaultConfig()
	cfg.Timeout = 15 * time.Second
	browser, err := rodadapter.NewAdapter(ctx, cfg)
	require.NoError(t, err)
	defer browser.Close()

	root := t.TempDir()
	store, err := storage.NewLocalStore(root)
	require.NoError(t, err)

	r := runner.New(browser, store, logger.NewNop())

	in := entity.DefaultInput()
	in.URL = ts.URL

	artifacts, err := r.Run(ctx, in)
	require.NoError(t, err)

	// Banner removed, so the Accept button must not appear.
	for _, action := range artifacts.Actions {
		assert.NotEqual(t, "Accept", action.Label)
	}

	names := make(map[string]entity.Tool)
	for _, tool := range artifacts.Tools.Tools {
		names[tool.Name] = tool
	}

	goTool, ok := names["button_run_search"]
	require.True(t, ok, "submit button tool missing: %v", artifacts.Tools.Tools)
	assert.Equal(t, "Click the Run Search button", goTool.Description)
	assert.Equal(t, "#go", goTool.InputSchema.Properties["selector"].Default)

	searchTool, ok := names["input_search_query"]
	require.True(t, ok, "search input tool missing")
	assert.Equal(t, `input[name="q"]`, searchTool.InputSchema.Properties["selector"].Default)

	langTool, ok := names["select_lang"]
	require.True(t, ok, "language select tool missing")
	assert.Equal(t, "Select an option from the lang dropdown", langTool.Description)

	docsTool, ok := names["link_documentation"]
	require.True(t, ok, "docs link tool missing")
	assert.Equal(t, "#docs-link", docsTool.InputSchema.Properties["selector"].Default)

	// Stored tool JSON round-trips.
	raw, err := os.ReadFile(filepath.Join(root, "key-value-store", "mcp-"+artifacts.Result.RunID+".json"))
	require.NoError(t, err)
	var set entity.ToolSet
	require.NoError(t, json.Unmarshal(raw, &set))
	assert.Len(t, set.Tools, len(artifacts.Actions))

	// Driving a generated tool against the live page.
	require.NoError(t, browser.Fill(ctx, searchTool.InputSchema.Properties["selector"].Default, "hello"))
	require.NoError(t, browser.Click(ctx, goTool.InputSchema.Properties["selector"].Default))
}
