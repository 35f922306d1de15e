package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/recordcheck/pkg/logger"
)

// ErrNoRuleFiles is returned by lint when no file argument is given.
var ErrNoRuleFiles = errors.New("no rule documents given")

func lintCmd() *cli.Command {
	return &cli.Command{
		Name:      "lint",
		Usage:     "Check rule documents for definition and configuration errors",
		ArgsUsage: "<rules.yaml> [more.json ...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			files := cmd.Args().Slice()
			if len(files) == 0 {
				return ErrNoRuleFiles
			}

			log, err := newLogger(cmd)
			if err != nil {
				return err
			}
			ctx = withRunID(ctx)

			var errs []error
			for _, file := range files {
				set, err := loadRules(ctx, log.With(logger.Input(file)), file, nil)
				if err != nil {
					log.DebugContext(ctx, "rule document rejected", logger.Input(file), logger.Error(err))
					errs = append(errs, fmt.Errorf("%s: %w", file, err))
					continue
				}
				fmt.Fprintf(cmd.Root().Writer, "%s: %d rules ok\n", file, set.Len())
			}
			return errors.Join(errs...)
		},
	}
}
