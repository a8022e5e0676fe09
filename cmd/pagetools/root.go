package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pagetools/internal/domain/entity"
	"pagetools/internal/infrastructure/env"
)

// runOptions collects everything the subcommands need, resolved from flags
// over environment variables over built-in defaults.
type runOptions struct {
	url        string
	inputFile  string
	cookiesRaw string

	maxActions     int
	removeBanners  bool
	headless       bool
	viewportWidth  int
	viewportHeight int
	waitFor        string

	extractText   bool
	extractLinks  bool
	extractImages bool

	storageDir string
	logDir     string
	timeout    time.Duration
	addr       string
}

func newRootCmd() *cobra.Command {
	opts := &runOptions{}

	root := &cobra.Command{
		Use:          "pagetools",
		Short:        "Turn a web page's interactive elements into JSON tool descriptors",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.url, "url", "", "page URL to process")
	flags.StringVar(&opts.inputFile, "input", "", "path to a JSON input document")
	flags.StringVar(&opts.cookiesRaw, "cookies", "", "cookies as a JSON array")
	flags.IntVar(&opts.maxActions, "max-actions", entity.DefaultMaxActions, "cap on extracted actions")
	flags.BoolVar(&opts.removeBanners, "remove-banners", true, "strip cookie/consent banners before extraction")
	flags.BoolVar(&opts.headless, "headless", true, "run the browser headless")
	flags.IntVar(&opts.viewportWidth, "viewport-width", entity.DefaultViewportWidth, "browser viewport width")
	flags.IntVar(&opts.viewportHeight, "viewport-height", entity.DefaultViewportHeight, "browser viewport height")
	flags.StringVar(&opts.waitFor, "wait-for", entity.DefaultWaitForSelector, "CSS selector to wait for after navigation")
	flags.BoolVar(&opts.extractText, "extract-text", true, "collect page text as a resource")
	flags.BoolVar(&opts.extractLinks, "extract-links", true, "collect page links as a resource")
	flags.BoolVar(&opts.extractImages, "extract-images", false, "collect image sources as a resource")
	flags.StringVar(&opts.storageDir, "storage-dir", "", "artifact storage root (default ./storage)")
	flags.StringVar(&opts.logDir, "log-dir", "", "log file directory (default stderr only)")
	flags.DurationVar(&opts.timeout, "timeout", 0, "per-element browser timeout")
	flags.StringVar(&opts.addr, "addr", ":8080", "listen address for serve mode")

	root.AddCommand(newRunCmd(opts), newServeCmd(opts), newMCPCmd(opts))
	return root
}

// buildInput resolves the run configuration. Flags changed on the command
// line win over environment variables, which win over defaults; an --input
// document provides the base when given.
func (o *runOptions) buildInput(cmd *cobra.Command) (entity.Input, error) {
	cfg := env.NewService()

	in := entity.DefaultInput()
	if o.inputFile != "" {
		data, err := os.ReadFile(o.inputFile)
		if err != nil {
			return in, fmt.Errorf("read input file: %w", err)
		}
		in, err = entity.InputFromJSON(data)
		if err != nil {
			return in, err
		}
	}

	if v := cfg.Get("PAGETOOLS_URL"); v != "" && in.URL == "" {
		in.URL = v
	}
	if !changed(cmd, "max-actions") {
		in.MaxActions = cfg.GetInt("PAGETOOLS_MAX_ACTIONS", in.MaxActions)
	}
	if !changed(cmd, "remove-banners") {
		in.RemoveBanners = cfg.GetBool("PAGETOOLS_REMOVE_BANNERS", in.RemoveBanners)
	}
	if !changed(cmd, "headless") {
		in.Headless = cfg.GetBool("PAGETOOLS_HEADLESS", in.Headless)
	}

	if o.url != "" {
		in.URL = o.url
	}
	if changed(cmd, "max-actions") {
		in.MaxActions = o.maxActions
	}
	if changed(cmd, "remove-banners") {
		in.RemoveBanners = o.removeBanners
	}
	if changed(cmd, "headless") {
		in.Headless = o.headless
	}
	if changed(cmd, "viewport-width") {
		in.ViewportWidth = o.viewportWidth
	}
	if changed(cmd, "viewport-height") {
		in.ViewportHeight = o.viewportHeight
	}
	if changed(cmd, "wait-for") {
		in.WaitForSelector = o.waitFor
	}
	if changed(cmd, "extract-text") {
		in.ExtractText = o.extractText
	}
	if changed(cmd, "extract-links") {
		in.ExtractLinks = o.extractLinks
	}
	if changed(cmd, "extract-images") {
		in.ExtractImages = o.extractImages
	}

	if o.cookiesRaw != "" {
		var cookies entity.CookieList
		if err := json.Unmarshal([]byte(o.cookiesRaw), &cookies); err == nil {
			in.Cookies = cookies
		}
	}

	if err := in.Validate(); err != nil {
		return in, err
	}
	return in, nil
}

func changed(cmd *cobra.Command, name string) bool {
	return cmd.Flags().Changed(name)
}
