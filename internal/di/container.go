package di

import (
	"context"
	"fmt"
	"time"

	"pagetools/internal/application/port/output"
	"pagetools/internal/domain/entity"
	rodadapter "pagetools/internal/infrastructure/browser/rod"
	"pagetools/internal/infrastructure/logger"
	"pagetools/internal/infrastructure/storage"
	"pagetools/internal/usecase/runner"
)

type Config struct {
	Input      entity.Input
	LogDir     string
	StorageDir string
	Timeout    time.Duration
}

// Container owns the wired object graph for one run.
type Container struct {
	Logger  output.LoggerPort
	Browser output.BrowserPort
	Store   output.StoragePort
	Runner  *runner.Runner
}

func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	log, err := logger.New(cfg.LogDir)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	store, err := storage.NewLocalStore(cfg.StorageDir)
	if err != nil {
		_ = log.Close()
		return nil, fmt.Errorf("init storage: %w", err)
	}

	browserCfg := rodadapter.DefaultConfig()
	browserCfg.Headless = cfg.Input.Headless
	browserCfg.ViewportWidth = cfg.Input.ViewportWidth
	browserCfg.ViewportHeight = cfg.Input.ViewportHeight
	if cfg.Timeout > 0 {
		browserCfg.Timeout = cfg.Timeout
	}

	browser, err := rodadapter.NewAdapter(ctx, browserCfg)
	if err != nil {
		_ = log.Close()
		return nil, fmt.Errorf("init browser: %w", err)
	}

	return &Container{
		Logger:  log,
		Browser: browser,
		Store:   store,
		Runner:  runner.New(browser, store, log),
	}, nil
}

func (c *Container) Close() {
	if c.Browser != nil {
		c.Browser.Close()
	}
	if c.Logger != nil {
		_ = c.Logger.Close()
	}
}
