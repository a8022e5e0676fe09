package entity

// RunResult is the dataset record for one completed extraction run.
type RunResult struct {
	RunID         string `json:"runId"`
	URL           string `json:"url"`
	ActionCount   int    `json:"actionsCount"`
	ToolCount     int    `json:"toolCount"`
	ToolsURL      string `json:"mcpJsonUrl"`
	PreviewURL    string `json:"previewUrl"`
	ScreenshotURL string `json:"screenshotUrl"`
}

// RunArtifacts is everything a run produces, kept in memory so the HTTP and
// MCP serving modes can expose it without re-reading storage.
type RunArtifacts struct {
	Result  RunResult
	Actions []Action
	Tools   ToolSet
	Preview string
}
