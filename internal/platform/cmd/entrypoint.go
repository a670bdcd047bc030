// Package cmd holds the startup steps shared by service binaries: dotenv and
// environment loading, flag overrides, and tracing around the run loop.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/trainingken/site/internal/platform/config"
	"github.com/trainingken/site/internal/platform/otel"
	"github.com/trainingken/site/internal/platform/timeouts"
)

// ServiceWeb names the site server in logs and trace resources.
const ServiceWeb = "web"

// DotEnvFile is read, when present, before environment parsing.
const DotEnvFile = ".env"

// ParseConfig fills cfg from DotEnvFile and the process environment.
// Flags registered afterwards default to these values.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if err := config.LoadDotEnv(DotEnvFile); err != nil {
		return err
	}
	return config.ParseEnv(cfg)
}

// ParseArgs applies command-line overrides.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	return fs.Parse(append([]string(nil), args...))
}

// RunWithTelemetry sets up tracing for service, calls run, and flushes
// pending spans once run returns. A flush failure is joined to run's error.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) (err error) {
	service = strings.TrimSpace(service)
	switch {
	case service == "":
		return errors.New("service name is required")
	case run == nil:
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return fmt.Errorf("set up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), timeouts.TelemetryFlush)
		defer cancel()
		if flushErr := shutdown(flushCtx); flushErr != nil {
			err = errors.Join(err, fmt.Errorf("flush %s traces: %w", service, flushErr))
		}
	}()
	return run(ctx)
}
