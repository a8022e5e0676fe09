package entity

import (
	"encoding/json"
	"fmt"
	"net/url"
)

const (
	DefaultMaxActions = 50
	MinMaxActions     = 5
	MaxMaxActions     = 200

	DefaultViewportWidth  = 1920
	DefaultViewportHeight = 1080
	MinViewportWidth      = 320
	MaxViewportWidth      = 3840
	MinViewportHeight     = 240
	MaxViewportHeight     = 2160

	DefaultWaitForSelector = "body"
)

// Cookie is one cookie injected before navigation. Name and Value are
// required; Path defaults to "/" when empty.
type Cookie struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Domain string `json:"domain,omitempty"`
	Path   string `json:"path,omitempty"`
}

// CookieList accepts either a JSON array of cookies or a string containing
// one. Anything unparsable decodes to nil instead of failing the whole input.
type CookieList []Cookie

func (c *CookieList) UnmarshalJSON(data []byte) error {
	var direct []Cookie
	if err := json.Unmarshal(data, &direct); err == nil {
		*c = direct
		return nil
	}

	var embedded string
	if err := json.Unmarshal(data, &embedded); err == nil {
		var parsed []Cookie
		if err := json.Unmarshal([]byte(embedded), &parsed); err == nil {
			*c = parsed
			return nil
		}
	}

	*c = nil
	return nil
}

// Input is the run configuration for one extraction.
type Input struct {
	URL             string     `json:"url"`
	Cookies         CookieList `json:"cookies,omitempty"`
	RemoveBanners   bool       `json:"removeBanners"`
	MaxActions      int        `json:"maxActions"`
	Headless        bool       `json:"headless"`
	ViewportWidth   int        `json:"viewportWidth"`
	ViewportHeight  int        `json:"viewportHeight"`
	WaitForSelector string     `json:"waitForSelector"`
	ExtractText     bool       `json:"extractText"`
	ExtractLinks    bool       `json:"extractLinks"`
	ExtractImages   bool       `json:"extractImages"`
}

func DefaultInput() Input {
	return Input{
		RemoveBanners:   true,
		MaxActions:      DefaultMaxActions,
		Headless:        true,
		ViewportWidth:   DefaultViewportWidth,
		ViewportHeight:  DefaultViewportHeight,
		WaitForSelector: DefaultWaitForSelector,
		ExtractText:     true,
		ExtractLinks:    true,
	}
}

// InputFromJSON decodes an input document over the defaults and validates it.
func InputFromJSON(data []byte) (Input, error) {
	in := DefaultInput()
	if err := json.Unmarshal(data, &in); err != nil {
		return in, fmt.Errorf("decode input: %w", err)
	}
	if err := in.Validate(); err != nil {
		return in, err
	}
	return in, nil
}

// Validate checks the URL and numeric bounds, filling defaults for empty
// optional fields.
func (in *Input) Validate() error {
	if in.URL == "" {
		return fmt.Errorf("url is required")
	}
	parsed, err := url.Parse(in.URL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", in.URL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("url %q must use http or https", in.URL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("url %q has no host", in.URL)
	}

	if in.MaxActions == 0 {
		in.MaxActions = DefaultMaxActions
	}
	if in.MaxActions < MinMaxActions || in.MaxActions > MaxMaxActions {
		return fmt.Errorf("maxActions %d out of range [%d,%d]", in.MaxActions, MinMaxActions, MaxMaxActions)
	}

	if in.ViewportWidth == 0 {
		in.ViewportWidth = DefaultViewportWidth
	}
	if in.ViewportWidth < MinViewportWidth || in.ViewportWidth > MaxViewportWidth {
		return fmt.Errorf("viewportWidth %d out of range [%d,%d]", in.ViewportWidth, MinViewportWidth, MaxViewportWidth)
	}

	if in.ViewportHeight == 0 {
		in.ViewportHeight = DefaultViewportHeight
	}
	if in.ViewportHeight < MinViewportHeight || in.ViewportHeight > MaxViewportHeight {
		return fmt.Errorf("viewportHeight %d out of range [%d,%d]", in.ViewportHeight, MinViewportHeight, MaxViewportHeight)
	}

	if in.WaitForSelector == "" {
		in.WaitForSelector = DefaultWaitForSelector
	}

	valid := in.Cookies[:0]
	for _, c := range in.Cookies {
		if c.Name == "" || c.Value == "" {
			continue
		}
		if c.Path == "" {
			c.Path = "/"
		}
		valid = append(valid, c)
	}
	in.Cookies = valid

	return nil
}
