package logger

import (
	"log/slog"
	"maps"
	"slices"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Rule records a rule name under the key "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Path records an attribute path under the key "path".
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Input records the name of the validated input under the key "input".
func Input(name string) slog.Attr {
	return slog.String("input", name)
}

// RecordIndex records the zero-based position of a record under the key "record".
func RecordIndex(i int) slog.Attr {
	return slog.Int("record", i)
}

// Failures groups the failing paths of a report and their messages under "failures",
// paths in sorted order. An empty report yields an empty Attr.
func Failures(report map[string][]string) slog.Attr {
	if len(report) == 0 {
		return slog.Attr{}
	}
	as := make([]slog.Attr, 0, len(report))
	for _, path := range slices.Sorted(maps.Keys(report)) {
		as = append(as, slog.Any(path, report[path]))
	}
	return slog.Attr{Key: "failures", Value: slog.GroupValue(as...)}
}

// Count records a count under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
