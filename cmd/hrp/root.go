package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iota-uz/hrp/modules/hrp"
	"github.com/iota-uz/hrp/pkg/configuration"
	"github.com/iota-uz/hrp/pkg/logging"
)

const shutdownTimeout = 5 * time.Second

// app carries what the subcommands share once the root has loaded the configuration.
type app struct {
	envFiles []string
	format   string

	conf     *configuration.Configuration
	client   *hrp.Client
	shutdown func(context.Context) error
}

func (a *app) setup(cmd *cobra.Command) error {
	switch a.format {
	case formatJSON, formatYAML:
	default:
		return withCode(exitUsage, fmt.Errorf("--format must be %s|%s", formatJSON, formatYAML))
	}

	conf, err := configuration.Load(a.envFiles)
	if err != nil {
		return withCode(exitValidation, wrapf(err, "load configuration"))
	}
	a.conf = conf

	if conf.OpenTelemetry.Enabled {
		shutdown, err := logging.SetupTracing(cmd.Context(), conf.OpenTelemetry.ServiceName, conf.OpenTelemetry.TempoURL, conf.Logger())
		if err != nil {
			return withCode(exitUsage, wrapf(err, "setup tracing"))
		}
		a.shutdown = shutdown
	}

	client, err := hrp.NewFromConfig(conf)
	if err != nil {
		return withCode(exitValidation, wrapf(err, "build hrp client"))
	}
	a.client = client
	return nil
}

// teardown flushes spans and closes the log file. It runs after every
// command, including failed ones, and is safe to call twice.
func (a *app) teardown() {
	if a.shutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.shutdown(ctx); err != nil && a.conf != nil {
			a.conf.Logger().WithError(err).Warn("tracer shutdown failed")
		}
		a.shutdown = nil
	}
	if a.conf != nil {
		a.conf.Unload()
		a.conf = nil
	}
}

// execute runs cmd and always tears down what setup acquired.
func (a *app) execute(cmd *cobra.Command) error {
	defer a.teardown()
	return cmd.Execute()
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "hrp",
		Short:         "Query the HRP web service for persons, workers and appointees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.format = strings.ToLower(strings.TrimSpace(a.format))
			return a.setup(cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&a.format, "format", formatJSON, "output format: json|yaml")
	cmd.PersistentFlags().StringSliceVar(&a.envFiles, "env", []string{".env", ".env.local"}, "env files to load before the process environment")

	cmd.AddCommand(newPersonCmd(a))
	cmd.AddCommand(newWorkerCmd(a))
	cmd.AddCommand(newAppointeeCmd(a))
	cmd.AddCommand(newSearchCmd(a))
	cmd.AddCommand(newMockServerCmd(a))
	cmd.AddCommand(newFixtureDiffCmd(a))
	return cmd, a
}

func (a *app) write(w io.Writer, v any) error {
	return writeOutput(w, a.format, v)
}

func Execute() {
	cmd, a := newRootCmd()
	if err := a.execute(cmd); err != nil {
		code := exitCode(err)
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(code)
	}
}
