package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pagetools/internal/di"
	"pagetools/internal/domain/entity"
)

func newRunCmd(opts *runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Extract actions from a page and write the tool JSON to storage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			artifacts, container, err := executeRun(cmd, opts)
			if err != nil {
				return err
			}
			defer container.Close()

			out, err := json.MarshalIndent(artifacts.Result, "", "  ")
			if err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			fmt.Fprintln(os.Stdout, string(out))
			return nil
		},
	}
}

// executeRun wires the container and performs one extraction. The caller
// owns the returned container and must close it; serving modes keep it open
// so MCP handlers can drive the live page.
func executeRun(cmd *cobra.Command, opts *runOptions) (*entity.RunArtifacts, *di.Container, error) {
	in, err := opts.buildInput(cmd)
	if err != nil {
		return nil, nil, err
	}

	// The container ctx stays alive past this call: serving modes keep
	// driving the browser after the run finishes.
	container, err := di.NewContainer(cmd.Context(), di.Config{
		Input:      in,
		LogDir:     opts.logDir,
		StorageDir: opts.storageDir,
		Timeout:    opts.timeout,
	})
	if err != nil {
		return nil, nil, err
	}

	runCtx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
	defer cancel()

	artifacts, err := container.Runner.Run(runCtx, in)
	if err != nil {
		container.Close()
		return nil, nil, err
	}
	return artifacts, container, nil
}
