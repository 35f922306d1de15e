// Package validator provides a composable validation engine for attribute-bearing
// records: maps keyed by strings, possibly nested, such as decoded JSON or YAML documents.
//
// A Rule evaluates a record and returns a boolean together with a Report, a mapping from
// attribute path to the distinct messages violated for it. The boolean is true exactly
// when the report is empty. Rules are built by one factory per family and composed into a
// Set, which is itself a Rule, so sets nest.
//
// # Architecture
//
// Each source file groups one family of rules (`choice_rules.go`, `numeric_rules.go`,
// `format_rules.go`, `identifier_rules.go`, `length_rules.go`). Every factory returns an immutable *FieldRule
// bound to a Path and configured with functional Option values; there is no hidden global
// state, therefore rules and sets are goroutine-safe and can be shared across requests.
//
// Core building blocks:
//   - Path       – key sequence addressing a (nested) attribute, resolved by Lookup
//   - Rule       – interface with a single Validate method; RuleFunc adapts functions
//   - Report     – path -> sorted set of messages, merged by per-path set union
//   - Set        – ordered composition of rules evaluated together
//   - Predicates – Valid, Invalid and Apply
//
// Rule families:
//   - Presence     – "can't be blank" for absent values
//   - Numericality – number, integer, parity and bound checks, all reported together
//   - Acceptance   – value must be one of true, "true", "1" (or the Accept set)
//   - Inclusion    – "must be one of: a, b"
//   - Exclusion    – "must not be one of: a, b"
//   - Format       – pattern or preset matcher (Email, UUID, URL, Phone, Slug, SemVer, ...)
//   - Length       – exact length or inclusive range
//
// Composition helpers: Some (stop at first failure), When (conditional), Nested (validate
// a sub-record under a prefix) and Predicate (custom record-level check).
//
// # Usage
//
//	signup := validator.MustSet(
//	    validator.Presence(validator.Key("email")),
//	    validator.Format(validator.Key("email"), validator.Matching(validator.Email)),
//	    validator.Numericality(validator.Key("age"), validator.OnlyInteger(), validator.GreaterThan(0)),
//	    validator.Inclusion(validator.Key("role"), validator.InStrings("admin", "user")),
//	    validator.Length(validator.P("address", "zip"), validator.Is(5)),
//	)
//
//	ok, report := signup.Validate(record)
//	if !ok {
//	    for _, field := range report.Fields() {
//	        // report[field] holds the messages for field
//	    }
//	}
//
// # Error Handling
//
// Validation failures are data, never errors. Configuration mistakes, such as a format
// rule without a pattern, are recorded on the rule and returned by NewSet joined with
// ErrInvalidConfig; MustSet panics instead. Evaluating a misconfigured rule directly
// panics so that it can never pass records silently. Report.Err and Apply convert a
// non-empty report into ValidationErrors for call sites that propagate errors.
//
// # Performance Considerations
//
// Evaluation is synchronous and proportional to the number of rules and the depth of the
// paths. Patterns are compiled once at construction.
package validator
