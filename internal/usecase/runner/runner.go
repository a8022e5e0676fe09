package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pagetools/internal/application/port/output"
	"pagetools/internal/domain/entity"
	"pagetools/internal/usecase/extract"
	"pagetools/internal/usecase/pagedata"
	"pagetools/internal/usecase/preview"
	"pagetools/internal/usecase/toolgen"
)

// Runner drives one extraction end to end: navigate, clean, extract,
// assemble tools and persist the artifacts.
type Runner struct {
	browser output.BrowserPort
	store   output.StoragePort
	log     output.LoggerPort
}

func New(browser output.BrowserPort, store output.StoragePort, log output.LoggerPort) *Runner {
	return &Runner{browser: browser, store: store, log: log}
}

func (r *Runner) Run(ctx context.Context, in entity.Input) (*entity.RunArtifacts, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("validate input: %w", err)
	}

	runID := uuid.NewString()[:8]
	log := r.log.WithField("runId", runID)
	log.Info("run started", "url", in.URL)

	if len(in.Cookies) > 0 {
		if err := r.browser.SetCookies(in.Cookies); err != nil {
			return nil, fmt.Errorf("set cookies: %w", err)
		}
	}

	if err := r.browser.Navigate(ctx, in.URL); err != nil {
		r.captureFailure(ctx, in.URL, err)
		return nil, fmt.Errorf("navigate %s: %w", in.URL, err)
	}

	if err := r.browser.WaitReady(ctx, in.WaitForSelector); err != nil {
		r.captureFailure(ctx, in.URL, err)
		return nil, fmt.Errorf("wait for %q: %w", in.WaitForSelector, err)
	}

	snap := r.browser.Snapshot()

	if in.RemoveBanners {
		extract.RemoveBanners(snap, log)
	}

	actions := extract.Actions(snap, extract.Config{MaxActions: in.MaxActions}, log)
	log.Info("actions extracted", "count", len(actions))

	tools := toolgen.GenerateTools(actions, log)

	toolsKey := fmt.Sprintf("mcp-%s.json", runID)
	if err := r.storeJSON(toolsKey, tools); err != nil {
		return nil, err
	}

	if in.ExtractText || in.ExtractLinks || in.ExtractImages {
		data := pagedata.Collect(snap, in)
		resource := toolgen.GenerateResource(data)
		if err := r.storeJSON(fmt.Sprintf("resources-%s.json", runID), resource); err != nil {
			return nil, err
		}
	}

	screenshotKey := r.saveScreenshot(ctx, runID, log)

	previewKey := fmt.Sprintf("preview-%s.html", runID)
	previewHTML, err := preview.Generate(in.URL, actions, tools, runID)
	if err != nil {
		return nil, fmt.Errorf("render preview: %w", err)
	}
	if err := r.store.SetValue(previewKey, []byte(previewHTML), "text/html"); err != nil {
		return nil, fmt.Errorf("store preview: %w", err)
	}

	result := entity.RunResult{
		RunID:       runID,
		URL:         in.URL,
		ActionCount: len(actions),
		ToolCount:   len(tools.Tools),
		ToolsURL:    r.store.URL(toolsKey),
		PreviewURL:  r.store.URL(previewKey),
	}
	if screenshotKey != "" {
		result.ScreenshotURL = r.store.URL(screenshotKey)
	}
	if err := r.store.PushData(result); err != nil {
		return nil, fmt.Errorf("push result: %w", err)
	}

	log.Info("run finished", "actions", result.ActionCount, "tools", result.ToolCount)

	return &entity.RunArtifacts{
		Result:  result,
		Actions: actions,
		Tools:   tools,
		Preview: previewHTML,
	}, nil
}

func (r *Runner) storeJSON(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := r.store.SetValue(key, data, "application/json"); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

func (r *Runner) saveScreenshot(ctx context.Context, runID string, log output.LoggerPort) string {
	shot, err := r.browser.Screenshot(ctx)
	if err != nil {
		log.Warn("screenshot failed", "error", err)
		return ""
	}
	key := fmt.Sprintf("screenshot-%s.jpg", runID)
	if err := r.store.SetValue(key, shot.Data, "image/jpeg"); err != nil {
		log.Warn("screenshot store failed", "error", err)
		return ""
	}
	return key
}

// captureFailure records what the page looked like when a run died, so a
// failed target can be diagnosed without re-running.
func (r *Runner) captureFailure(ctx context.Context, url string, cause error) {
	record := map[string]any{
		"error": cause.Error(),
		"url":   url,
	}

	if shot, err := r.browser.Screenshot(ctx); err == nil {
		key := fmt.Sprintf("error-%d.jpg", time.Now().UnixMilli())
		if err := r.store.SetValue(key, shot.Data, "image/jpeg"); err == nil {
			record["screenshotKey"] = key
		}
	}

	if content, err := r.browser.PageHTML(ctx); err == nil {
		record["pageContent"] = content
	}

	if err := r.store.PushData(record); err != nil {
		r.log.Warn("failure record not stored", "error", err)
	}
}
