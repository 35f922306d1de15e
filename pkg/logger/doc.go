// Package logger builds *slog.Logger instances from functional options and provides
// attribute constructors with consistent keys.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured Format.
// Values registered with WithContextValue are read from the context of every *Context
// call and added to the record. Logs go to stderr by default so that command output on
// stdout stays machine readable.
//
// # Usage
//
//	level, err := logger.ParseLevel(cfg.LogLevel)
//	if err != nil {
//		return err
//	}
//	log := logger.New(
//		logger.WithLevel(level),
//		logger.WithFormat(logger.FormatText),
//		logger.WithContextValue("run_id", runKey{}),
//	)
//	log.InfoContext(ctx, "validated records",
//		logger.Count(len(records)),
//		logger.Duration(time.Since(start)),
//	)
//
// # Attributes
//
// Error returns an empty Attr for a nil error, and Failures returns one for an empty
// report, so call sites need no nil checks:
//
//	log.Debug("record checked", logger.RecordIndex(i), logger.Failures(report))
package logger
