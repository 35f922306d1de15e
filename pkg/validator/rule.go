package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Default failure messages.
const (
	MessageBlank       = "can't be blank"
	MessageNotNumber   = "should be a number"
	MessageNotInteger  = "should be an integer"
	MessageNotOdd      = "should be odd"
	MessageNotEven     = "should be even"
	MessageNotAccepted = "must be accepted"
	MessageBadFormat   = "has incorrect format"
)

// Rule evaluates a record. It returns true with an empty report, or false with a report
// holding at least one message.
type Rule interface {
	Validate(record Record) (bool, Report)
}

// RuleFunc adapts a function to the Rule interface. The function must honour the Rule
// contract itself.
type RuleFunc func(record Record) (bool, Report)

func (f RuleFunc) Validate(record Record) (bool, Report) {
	return f(record)
}

// configurable is implemented by rules that can carry a configuration error.
type configurable interface {
	Err() error
}

// ruleErr returns the configuration error of rule, if it has one.
func ruleErr(rule Rule) error {
	if rule == nil {
		return ErrNilRule
	}
	if c, ok := rule.(configurable); ok {
		return c.Err()
	}
	return nil
}

// checkFunc inspects the resolved value of a path and returns the violated messages.
type checkFunc func(value any, present bool, o *options) []string

// FieldRule is a rule bound to a single attribute path. It is immutable once built.
type FieldRule struct {
	name  string
	path  Path
	opts  options
	check checkFunc
	err   error
}

func newFieldRule(name string, path Path, opts []Option, check checkFunc, validate func(*options) error) *FieldRule {
	r := &FieldRule{name: name, path: append(Path(nil), path...), check: check}
	for _, opt := range opts {
		if opt != nil {
			opt(&r.opts)
		}
	}

	var errs []error
	if len(path) == 0 {
		errs = append(errs, ErrEmptyPath)
	}
	errs = append(errs, r.opts.errs...)
	if validate != nil {
		if err := validate(&r.opts); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		r.err = errors.Join(ErrInvalidConfig, fmt.Errorf("%s rule for %q: %w", name, r.path.String(), err))
	}
	return r
}

// Name returns the rule family, e.g. "presence" or "length".
func (r *FieldRule) Name() string {
	return r.name
}

// Path returns a copy of the attribute path the rule is bound to.
func (r *FieldRule) Path() Path {
	return append(Path(nil), r.path...)
}

// Err returns the configuration error of the rule, or nil.
func (r *FieldRule) Err() error {
	return r.err
}

// Validate resolves the rule path in record and checks the value.
// It panics when the rule is misconfigured; use NewSet to surface the error instead.
func (r *FieldRule) Validate(record Record) (bool, Report) {
	if r.err != nil {
		panic(r.err)
	}
	report := Report{}
	value, present := Lookup(record, r.path)
	if messages := r.check(value, present, &r.opts); len(messages) > 0 {
		report.Add(r.path, messages...)
	}
	return report.IsEmpty(), report
}

// Presence fails with "can't be blank" when the value at path is absent.
func Presence(path Path, opts ...Option) *FieldRule {
	return newFieldRule("presence", path, opts, checkPresence, nil)
}

func checkPresence(_ any, present bool, o *options) []string {
	if !present {
		return []string{o.blank()}
	}
	return nil
}

// isBlankString reports whether v is a string made of whitespace only.
func isBlankString(v any) bool {
	s, ok := stringValue(v)
	return ok && strings.TrimSpace(s) == ""
}

// blankGate applies the allow-nil/allow-blank policy. When decided is true the returned
// messages are final and the value must not be checked further.
func blankGate(value any, present bool, o *options) (messages []string, decided bool) {
	blank := present && isBlankString(value)
	switch {
	case !present && !o.allowNil, blank && !o.allowBlank:
		return []string{o.blank()}, true
	case !present, blank:
		return nil, true
	}
	return nil, false
}
