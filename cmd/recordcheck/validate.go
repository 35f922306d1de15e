package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/recordcheck/pkg/batch"
	"github.com/dmitrymomot/recordcheck/pkg/instrument"
	"github.com/dmitrymomot/recordcheck/pkg/logger"
	"github.com/dmitrymomot/recordcheck/pkg/schema"
	"github.com/dmitrymomot/recordcheck/pkg/validator"
)

func validateCmd(cfg Config) *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Validate newline-delimited JSON records against a rule document",
		Description: `Reads one JSON object per line from --input (stdin by default), evaluates the
rules from --rules against every record and prints a report for each invalid record.
The command fails when any record is invalid.

# Examples

Validate a file with YAML rules:
  recordcheck validate --rules rules.yaml --input users.ndjson

Emit machine-readable reports and Prometheus metrics:
  cat users.ndjson | recordcheck validate -r rules.json -f json --metrics-file recordcheck.prom`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "rules",
				Aliases:  []string{"r"},
				Required: true,
				Usage:    "Path to the rule document (.yaml, .yml or .json)",
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Value:   "-",
				Usage:   "Path to the NDJSON records, or - for stdin",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   formatText,
				Usage:   "Report format: text or json",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Value:   cfg.Workers,
				Usage:   "Number of records validated concurrently (0 uses all CPUs)",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Value: cfg.MetricsFile,
				Usage: "Write rule metrics in Prometheus text format to this file",
			},
		},
		Action: runValidate,
	}
}

func runValidate(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String("format")
	if format != formatText && format != formatJSON {
		return fmt.Errorf("unknown report format: %q, valid formats are: text, json", format)
	}

	log, err := newLogger(cmd)
	if err != nil {
		return err
	}

	inputName := cmd.String("input")
	log = log.With(logger.Input(inputName))
	ctx = withRunID(ctx)
	start := time.Now()

	metricsFile := cmd.String("metrics-file")
	var reg *prometheus.Registry
	if metricsFile != "" {
		reg = prometheus.NewRegistry()
	}

	set, err := loadRules(ctx, log, cmd.String("rules"), reg)
	if err != nil {
		return err
	}
	log.DebugContext(ctx, "rules loaded", logger.Count(set.Len()))

	in, err := openInput(cmd, inputName)
	if err != nil {
		return err
	}
	defer in.Close()

	records, err := readRecords(in)
	if err != nil {
		return err
	}

	runner := batch.New(set, batch.WithWorkers(cmd.Int("workers")), batch.WithLogger(log))
	results, err := runner.Run(ctx, records.Records)
	if err != nil {
		return err
	}

	if err := writeFailures(cmd.Root().Writer, format, records, results); err != nil {
		return fmt.Errorf("write reports: %w", err)
	}

	if reg != nil {
		if err := prometheus.WriteToTextfile(metricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	summary := batch.Summarize(results)
	log.InfoContext(ctx, "validation finished",
		logger.Count(summary.Total),
		logger.Duration(time.Since(start)),
	)
	if summary.Invalid > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidRecords, summary.Invalid, summary.Total)
	}
	return nil
}

// loadRules compiles the rule document at path. When reg is not nil every rule is
// instrumented with collectors registered there.
func loadRules(ctx context.Context, log *slog.Logger, path string, reg *prometheus.Registry) (*validator.Set, error) {
	parser, err := schema.ParserFor(path)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	set, err := schema.Load(ctx, parser, content)
	if err != nil {
		return nil, err
	}
	for i, rule := range set.Rules() {
		attrs := []any{logger.Rule(instrument.RuleName(i, rule))}
		if fr, ok := rule.(*validator.FieldRule); ok {
			attrs = append(attrs, logger.Path(fr.Path().String()))
		}
		log.DebugContext(ctx, "rule compiled", attrs...)
	}
	if reg == nil {
		return set, nil
	}

	metrics, err := instrument.NewMetrics(reg, name)
	if err != nil {
		return nil, err
	}
	return validator.NewSet(instrument.WrapFields(metrics, set.Rules()...)...)
}

func openInput(cmd *cli.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.Root().Reader), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}
