package main

import (
	"github.com/spf13/cobra"

	"pagetools/internal/infrastructure/mcpserver"
)

func newMCPCmd(opts *runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run one extraction, then serve the tools over MCP stdio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			artifacts, container, err := executeRun(cmd, opts)
			if err != nil {
				return err
			}
			defer container.Close()

			srv := mcpserver.New(artifacts, container.Browser, container.Logger)
			return mcpserver.Serve(srv)
		},
	}
}
