package validator

import (
	"errors"
	"fmt"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError represents a single failed message for one attribute path.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors is the error form of a Report.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Report folds the errors back into a Report.
func (ve ValidationErrors) Report() Report {
	out := Report{}
	for _, err := range ve {
		out.add(err.Field, err.Message)
	}
	return out
}

// Valid reports whether rule accepts record.
func Valid(rule Rule, record Record) bool {
	ok, _ := rule.Validate(record)
	return ok
}

// Invalid is the negation of Valid.
func Invalid(rule Rule, record Record) bool {
	return !Valid(rule, record)
}

// Apply evaluates every rule against record and returns the merged report as
// ValidationErrors, or nil when the record is valid.
func Apply(record Record, rules ...Rule) error {
	report := Report{}
	for _, rule := range rules {
		_, partial := rule.Validate(record)
		report.Merge(partial)
	}
	return report.Err()
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
