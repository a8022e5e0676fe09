package output

import (
	"context"

	"pagetools/internal/domain/entity"
)

type BrowserPort interface {
	SetCookies(cookies []entity.Cookie) error
	Navigate(ctx context.Context, url string) error
	WaitReady(ctx context.Context, selector string) error

	Snapshot() DOMSnapshot
	Screenshot(ctx context.Context) (*entity.Screenshot, error)
	PageHTML(ctx context.Context) (string, error)

	Click(ctx context.Context, selector string) error
	Fill(ctx context.Context, selector, text string) error
	SelectOption(ctx context.Context, selector, value string) error

	CurrentURL() string
	Title() string
	Close()
}
