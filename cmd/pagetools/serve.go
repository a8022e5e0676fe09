package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"pagetools/internal/infrastructure/httpserver"
)

func newServeCmd(opts *runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run one extraction, then serve the artifacts over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			artifacts, container, err := executeRun(cmd, opts)
			if err != nil {
				return err
			}
			defer container.Close()

			srv := httpserver.New(opts.addr, artifacts, container.Logger)

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-stop:
				container.Logger.Info("shutting down")
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(ctx)
			}
		},
	}
}
