package schema

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/recordcheck/pkg/validator"
)

type ruleBuilder func(validator.Path, ...validator.Option) *validator.FieldRule

var builders = map[string]ruleBuilder{
	"presence":     validator.Presence,
	"numericality": validator.Numericality,
	"acceptance":   validator.Acceptance,
	"inclusion":    validator.Inclusion,
	"exclusion":    validator.Exclusion,
	"format":       validator.Format,
	"length":       validator.Length,
}

var presets = map[string]validator.Matcher{
	"email":        validator.Email,
	"uuid":         validator.UUID,
	"url":          validator.URL,
	"phone":        validator.Phone,
	"ip":           validator.IP,
	"alphanumeric": validator.Alphanumeric,
	"alpha":        validator.Alpha,
	"numeric":      validator.NumericString,
	"slug":         validator.Slug,
	"hex":          validator.Hex,
	"base64":       validator.Base64,
	"semver":       validator.SemVer,
	"domain":       validator.Domain,
}

// Load parses content with parser and compiles the result.
func Load(ctx context.Context, parser Parser, content []byte) (*validator.Set, error) {
	doc, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, err
	}
	return Compile(doc)
}

// Compile builds a validator.Set from doc. All definition and configuration errors are
// reported together, each naming the index of the offending rule.
func Compile(doc Document) (*validator.Set, error) {
	if len(doc.Rules) == 0 {
		return nil, errors.Join(ErrFailedToCompile, ErrNoRules)
	}

	var errs []error
	rules := make([]validator.Rule, 0, len(doc.Rules))
	for i, def := range doc.Rules {
		rule, err := def.Build()
		if err != nil {
			errs = append(errs, fmt.Errorf("rule %d: %w", i, err))
			continue
		}
		rules = append(rules, rule)
	}
	if len(errs) > 0 {
		return nil, errors.Join(ErrFailedToCompile, errors.Join(errs...))
	}

	set, err := validator.NewSet(rules...)
	if err != nil {
		return nil, errors.Join(ErrFailedToCompile, err)
	}
	return set, nil
}

// Build turns the definition into a rule. The returned error covers both unknown
// definitions and rule configuration errors.
func (d Definition) Build() (validator.Rule, error) {
	build, ok := builders[strings.ToLower(d.Rule)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, d.Rule)
	}
	opts, err := d.options()
	if err != nil {
		return nil, err
	}
	rule := build(validator.Path(d.Path), opts...)
	if err := rule.Err(); err != nil {
		return nil, err
	}
	return rule, nil
}

func (d Definition) options() ([]validator.Option, error) {
	var opts []validator.Option

	if d.AllowNil {
		opts = append(opts, validator.AllowNil())
	}
	if d.AllowBlank {
		opts = append(opts, validator.AllowBlank())
	}
	if d.OnlyInteger {
		opts = append(opts, validator.OnlyInteger())
	}
	if d.Odd {
		opts = append(opts, validator.Odd())
	}
	if d.Even {
		opts = append(opts, validator.Even())
	}

	if d.GT != nil {
		opts = append(opts, validator.GreaterThan(*d.GT))
	}
	if d.GTE != nil {
		opts = append(opts, validator.GreaterThanOrEqualTo(*d.GTE))
	}
	if d.LT != nil {
		opts = append(opts, validator.LessThan(*d.LT))
	}
	if d.LTE != nil {
		opts = append(opts, validator.LessThanOrEqualTo(*d.LTE))
	}
	if d.EqualTo != nil {
		opts = append(opts, validator.EqualTo(*d.EqualTo))
	}

	if d.Accept != nil {
		opts = append(opts, validator.Accept(d.Accept...))
	}
	if d.In != nil {
		opts = append(opts, validator.In(d.In...))
	}

	if d.Format != "" && d.Preset != "" {
		return nil, ErrConflictingFormat
	}
	if d.Format != "" {
		opts = append(opts, validator.Pattern(d.Format))
	}
	if d.Preset != "" {
		m, ok := presets[strings.ToLower(d.Preset)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, d.Preset)
		}
		opts = append(opts, validator.Matching(m))
	}

	if d.Is != nil {
		opts = append(opts, validator.Is(*d.Is))
	}
	if d.Within != nil {
		if len(d.Within) != 2 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidRange, len(d.Within))
		}
		opts = append(opts, validator.Within(d.Within[0], d.Within[1]))
	}

	if d.Message != "" {
		opts = append(opts, validator.Message(d.Message))
	}
	if d.BlankMessage != "" {
		opts = append(opts, validator.BlankMessage(d.BlankMessage))
	}
	return opts, nil
}
