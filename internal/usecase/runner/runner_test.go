package runner

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"pagetools/internal/application/port/output"
	"pagetools/internal/domain/entity"
	"pagetools/internal/infrastructure/logger"
)

type fakeElement struct {
	tag   string
	text  string
	attrs map[string]string
}

func (f *fakeElement) Tag() string  { return f.tag }
func (f *fakeElement) Text() string { return f.text }
func (f *fakeElement) Attribute(name string) (string, bool) {
	v, ok := f.attrs[name]
	return v, ok
}
func (f *fakeElement) Remove() error { return nil }

type fakeSnapshot struct {
	elements map[string][]*fakeElement
}

func (f *fakeSnapshot) Query(selector string) []output.ElementHandle {
	var out []output.ElementHandle
	for _, el := range f.elements[selector] {
		out = append(out, el)
	}
	return out
}

func (f *fakeSnapshot) QueryVisible(selector string) []output.ElementHandle {
	return f.Query(selector)
}

func (f *fakeSnapshot) URL() string   { return "https://example.com" }
func (f *fakeSnapshot) Title() string { return "Example" }

type fakeBrowser struct {
	snap        *fakeSnapshot
	navErr      error
	waitErr     error
	cookies     []entity.Cookie
	navigatedTo string
}

func (f *fakeBrowser) SetCookies(cookies []entity.Cookie) error {
	f.cookies = cookies
	return nil
}

func (f *fakeBrowser) Navigate(_ context.Context, url string) error {
	f.navigatedTo = url
	return f.navErr
}

func (f *fakeBrowser) WaitReady(context.Context, string) error { return f.waitErr }
func (f *fakeBrowser) Snapshot() output.DOMSnapshot            { return f.snap }

func (f *fakeBrowser) Screenshot(context.Context) (*entity.Screenshot, error) {
	return &entity.Screenshot{Data: []byte("jpeg"), Format: "jpeg"}, nil
}

func (f *fakeBrowser) PageHTML(context.Context) (string, error)          { return "<html></html>", nil }
func (f *fakeBrowser) Click(context.Context, string) error               { return nil }
func (f *fakeBrowser) Fill(context.Context, string, string) error        { return nil }
func (f *fakeBrowser) SelectOption(context.Context, string, string) error { return nil }
func (f *fakeBrowser) CurrentURL() string                                { return "https://example.com" }
func (f *fakeBrowser) Title() string                                     { return "Example" }
func (f *fakeBrowser) Close()                                            {}

type fakeStore struct {
	values  map[string][]byte
	records []any
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: make(map[string][]byte)}
}

func (f *fakeStore) SetValue(key string, data []byte, _ string) error {
	f.values[key] = data
	return nil
}

func (f *fakeStore) PushData(record any) error {
	f.records = append(f.records, record)
	return nil
}

func (f *fakeStore) URL(key string) string { return "file:///store/" + key }

func pageSnapshot() *fakeSnapshot {
	return &fakeSnapshot{elements: map[string][]*fakeElement{
		`button, input[type="button"], input[type="submit"]`: {
			{tag: "BUTTON", text: "Submit Form", attrs: map[string]string{"id": "submit"}},
		},
		`a[href]`: {
			{tag: "A", text: "Docs", attrs: map[string]string{"href": "/docs", "id": "docs"}},
		},
		"body": {
			{tag: "BODY", text: "Welcome to Example", attrs: map[string]string{}},
		},
	}}
}

func TestRunHappyPath(t *testing.T) {
	browser := &fakeBrowser{snap: pageSnapshot()}
	store := newFakeStore()
	r := New(browser, store, logger.NewNop())

	in := entity.DefaultInput()
	in.URL = "https://example.com"

	artifacts, err := r.Run(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}

	if artifacts.Result.ActionCount != 2 {
		t.Errorf("action count = %d, want 2", artifacts.Result.ActionCount)
	}
	if artifacts.Result.ToolCount != len(artifacts.Tools.Tools) {
		t.Error("tool count does not match tool set")
	}
	if browser.navigatedTo != "https://example.com" {
		t.Errorf("navigated to %q", browser.navigatedTo)
	}

	toolsKey := "mcp-" + artifacts.Result.RunID + ".json"
	raw, ok := store.values[toolsKey]
	if !ok {
		t.Fatalf("tool JSON not stored under %q", toolsKey)
	}
	var set entity.ToolSet
	if err := json.Unmarshal(raw, &set); err != nil {
		t.Fatalf("stored tool JSON invalid: %v", err)
	}
	if len(set.Tools) != 2 {
		t.Errorf("stored %d tools, want 2", len(set.Tools))
	}

	if _, ok := store.values["preview-"+artifacts.Result.RunID+".html"]; !ok {
		t.Error("preview not stored")
	}
	if _, ok := store.values["resources-"+artifacts.Result.RunID+".json"]; !ok {
		t.Error("resources not stored")
	}
	if _, ok := store.values["screenshot-"+artifacts.Result.RunID+".jpg"]; !ok {
		t.Error("screenshot not stored")
	}

	if len(store.records) != 1 {
		t.Fatalf("pushed %d records, want 1", len(store.records))
	}
	result, ok := store.records[0].(entity.RunResult)
	if !ok {
		t.Fatalf("pushed record has type %T", store.records[0])
	}
	if result.ToolsURL != "file:///store/"+toolsKey {
		t.Errorf("tools URL = %q", result.ToolsURL)
	}
}

func TestRunInvalidInput(t *testing.T) {
	r := New(&fakeBrowser{snap: pageSnapshot()}, newFakeStore(), logger.NewNop())

	_, err := r.Run(context.Background(), entity.Input{URL: "ftp://example.com"})
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestRunNavigationFailureCaptured(t *testing.T) {
	browser := &fakeBrowser{snap: pageSnapshot(), navErr: errors.New("net::ERR_NAME_NOT_RESOLVED")}
	store := newFakeStore()
	r := New(browser, store, logger.NewNop())

	in := entity.DefaultInput()
	in.URL = "https://does-not-resolve.invalid"

	_, err := r.Run(context.Background(), in)
	if err == nil {
		t.Fatal("expected navigation error")
	}
	if !strings.Contains(err.Error(), "ERR_NAME_NOT_RESOLVED") {
		t.Errorf("cause lost: %v", err)
	}

	if len(store.records) != 1 {
		t.Fatalf("pushed %d failure records, want 1", len(store.records))
	}
	record, ok := store.records[0].(map[string]any)
	if !ok {
		t.Fatalf("failure record has type %T", store.records[0])
	}
	if record["url"] != "https://does-not-resolve.invalid" {
		t.Errorf("failure record url = %v", record["url"])
	}
	if record["pageContent"] != "<html></html>" {
		t.Errorf("failure record missing page content")
	}
}

func TestRunSetsCookies(t *testing.T) {
	browser := &fakeBrowser{snap: pageSnapshot()}
	r := New(browser, newFakeStore(), logger.NewNop())

	in := entity.DefaultInput()
	in.URL = "https://example.com"
	in.Cookies = entity.CookieList{{Name: "session", Value: "abc"}}

	if _, err := r.Run(context.Background(), in); err != nil {
		t.Fatal(err)
	}
	if len(browser.cookies) != 1 || browser.cookies[0].Name != "session" {
		t.Errorf("cookies not forwarded: %+v", browser.cookies)
	}
}
