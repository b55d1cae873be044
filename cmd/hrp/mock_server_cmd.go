package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iota-uz/hrp/internal/server"
	"github.com/iota-uz/hrp/modules/hrp"
)

func newMockServerCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "mock-server",
		Short: "Serve the mock HRP resources over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.conf.MockServerAddr
			}
			logger := a.conf.Logger()
			srv, err := server.Default(&server.DefaultOptions{
				Logger:        logger,
				Configuration: a.conf,
				Fetcher:       hrp.NewMockFetcher(a.conf, logrus.NewEntry(logger)),
			})
			if err != nil {
				return withCode(exitUsage, wrapf(err, "build mock server"))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.WithField("addr", addr).Info("mock hrp server listening")
			if err := srv.Start(ctx, addr); err != nil {
				return withCode(exitUpstream, fmt.Errorf("mock server: %w", err))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from MOCK_SERVER_ADDR)")
	return cmd
}
