package schema

import "errors"

// Package errors. Parse and compile failures are joined with the underlying cause.
var (
	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON rule document")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML rule document")

	// Document structure
	ErrNoRules              = errors.New("rule document contains no rules")
	ErrUnknownRule          = errors.New("unknown rule")
	ErrUnknownPreset        = errors.New("unknown format preset")
	ErrConflictingFormat    = errors.New("format and preset are mutually exclusive")
	ErrInvalidPath          = errors.New("path must be a string or a list of strings")
	ErrInvalidRange         = errors.New("within must have exactly two elements")
	ErrUnsupportedExtension = errors.New("unsupported rule document extension")
	ErrFailedToCompile      = errors.New("failed to compile rule document")
)
