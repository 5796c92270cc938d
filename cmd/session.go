package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/rocketdoc/internal/config"
	"github.com/papapumpkin/rocketdoc/internal/convert"
	"github.com/papapumpkin/rocketdoc/internal/logging"
	"github.com/papapumpkin/rocketdoc/internal/openrocket"
	"github.com/papapumpkin/rocketdoc/internal/telemetry"
	"github.com/papapumpkin/rocketdoc/internal/ui"
)

// session bundles what every command needs for one invocation.
type session struct {
	cfg     config.Config
	log     logging.Logger
	conv    *convert.Converter
	printer *ui.Printer
	tel     *telemetry.Emitter
}

// newSession loads configuration and wires the logger, telemetry and
// converter for cmd.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return newSessionFromConfig(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func newSessionFromConfig(cfg config.Config, out, errOut io.Writer) (*session, error) {
	level := cfg.LogLevel
	if cfg.Verbose {
		level = "debug"
	}
	log := logging.New(logging.Config{Level: level, Format: cfg.LogFormat, Output: errOut})

	var tel *telemetry.Emitter
	if cfg.TelemetryPath != "" {
		var err error
		tel, err = telemetry.NewEmitter(cfg.TelemetryPath)
		if err != nil {
			return nil, err
		}
	}

	orOpts := openrocket.DefaultOptions()
	if len(cfg.OpenRocket.FinishRoughnessUM) > 0 {
		orOpts.FinishRoughness = cfg.OpenRocket.FinishRoughnessUM
	}
	orOpts.DefaultRoughness = cfg.OpenRocket.DefaultRoughnessUM

	return &session{
		cfg: cfg,
		log: log,
		conv: &convert.Converter{
			Options: convert.Options{
				CurveSamples: cfg.CurveSamples,
				SVGScale:     cfg.SVG.Scale,
				BuildupTime:  cfg.JSBSim.BuildupTime,
				OpenRocket:   orOpts,
			},
			Logger:    log,
			Telemetry: tel,
		},
		printer: ui.NewWithWriters(out, errOut),
		tel:     tel,
	}, nil
}

func (s *session) close(ctx context.Context) {
	if err := s.tel.Close(); err != nil {
		s.log.Warn(ctx, "closing telemetry", logging.Err(err))
	}
}
