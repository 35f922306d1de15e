package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/recordcheck/pkg/logger"
)

const (
	name      = "recordcheck"
	envPrefix = "RECORDCHECK_"
)

// Config holds settings read from RECORDCHECK_* environment variables. Command-line flags
// override them.
type Config struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	Workers     int    `env:"WORKERS" envDefault:"0"`
	MetricsFile string `env:"METRICS_FILE"`
}

// ErrInvalidRecords is returned by the validate command when at least one record fails.
var ErrInvalidRecords = errors.New("invalid records found")

type runKey struct{}

func newApp(cfg Config, stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     "Validate records against declarative rule documents",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: cfg.LogLevel,
				Usage: "Log level: debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Value: cfg.LogFormat,
				Usage: "Log format: text or json",
			},
		},
		Commands: []*cli.Command{
			validateCmd(cfg),
			lintCmd(),
		},
	}
}

// newLogger builds the command logger from the root flags. Logs go to the command's
// error writer so that reports on stdout stay parseable.
func newLogger(cmd *cli.Command) (*slog.Logger, error) {
	return buildLogger(cmd.String("log-level"), cmd.String("log-format"), cmd.Root().ErrWriter)
}

// processLogger is the logger main reports failures with. Invalid settings fall back to
// info level text so that the failure can still be logged.
func processLogger(cfg Config, w io.Writer) *slog.Logger {
	log, err := buildLogger(cfg.LogLevel, cfg.LogFormat, w)
	if err != nil {
		log, _ = buildLogger("info", string(logger.FormatText), w)
	}
	return log
}

func buildLogger(level, format string, w io.Writer) (*slog.Logger, error) {
	lvl, err := logger.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	f, err := logger.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithLevel(lvl),
		logger.WithFormat(f),
		logger.WithOutput(w),
		logger.WithAttr(slog.String("service", name)),
		logger.WithContextValue("run_id", runKey{}),
	), nil
}

// withRunID tags ctx with a fresh id that every log line of the run carries.
func withRunID(ctx context.Context) context.Context {
	return context.WithValue(ctx, runKey{}, uuid.NewString())
}
