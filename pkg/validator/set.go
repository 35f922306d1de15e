package validator

import (
	"errors"
	"fmt"
	"slices"
)

// Set composes rules into a single rule. Every member is evaluated and the partial reports
// are merged by per-path set union. A Set is immutable and safe for concurrent use; each
// call allocates its own report. Sets nest: a Set is itself a Rule.
type Set struct {
	rules []Rule
}

// NewSet builds a Set from rules, in order. It returns the joined configuration errors of
// all members, each prefixed with the member index.
func NewSet(rules ...Rule) (*Set, error) {
	if err := collectErrors(rules); err != nil {
		return nil, err
	}
	return &Set{rules: slices.Clone(rules)}, nil
}

// MustSet works like NewSet but panics on configuration errors.
// Useful for package-level rule sets built at init time.
func MustSet(rules ...Rule) *Set {
	s, err := NewSet(rules...)
	if err != nil {
		panic(fmt.Sprintf("validator: %v", err))
	}
	return s
}

// Validate evaluates every member rule against record and merges the reports.
func (s *Set) Validate(record Record) (bool, Report) {
	report := Report{}
	for _, rule := range s.rules {
		_, partial := rule.Validate(record)
		report.Merge(partial)
	}
	return report.IsEmpty(), report
}

// Rules returns the member rules in order.
func (s *Set) Rules() []Rule {
	return slices.Clone(s.rules)
}

// Len returns the number of member rules.
func (s *Set) Len() int {
	return len(s.rules)
}

func collectErrors(rules []Rule) error {
	var errs []error
	for i, rule := range rules {
		if err := ruleErr(rule); err != nil {
			errs = append(errs, fmt.Errorf("rule %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Some evaluates rules in order and stops at the first one that fails, returning its
// report. It is used when later rules only make sense for values earlier rules accepted.
func Some(rules ...Rule) Rule {
	return &someRule{rules: slices.Clone(rules), err: collectErrors(rules)}
}

type someRule struct {
	rules []Rule
	err   error
}

func (r *someRule) Err() error { return r.err }

func (r *someRule) Validate(record Record) (bool, Report) {
	if r.err != nil {
		panic(r.err)
	}
	for _, rule := range r.rules {
		if ok, report := rule.Validate(record); !ok {
			return false, report.Clone()
		}
	}
	return true, Report{}
}

// When evaluates rule only for records accepted by cond; other records pass.
func When(cond func(Record) bool, rule Rule) Rule {
	var errs []error
	if cond == nil {
		errs = append(errs, ErrMissingPredicate)
	}
	if err := ruleErr(rule); err != nil {
		errs = append(errs, err)
	}
	return &whenRule{cond: cond, rule: rule, err: wrapConfig("when", errs)}
}

type whenRule struct {
	cond func(Record) bool
	rule Rule
	err  error
}

func (r *whenRule) Err() error { return r.err }

func (r *whenRule) Validate(record Record) (bool, Report) {
	if r.err != nil {
		panic(r.err)
	}
	if !r.cond(record) {
		return true, Report{}
	}
	return r.rule.Validate(record)
}

// Nested evaluates rule against the sub-record found at prefix and prefixes every reported
// path with it. A missing or non-map sub-record is validated as an empty record.
func Nested(prefix Path, rule Rule) Rule {
	var errs []error
	if len(prefix) == 0 {
		errs = append(errs, ErrEmptyPath)
	}
	if err := ruleErr(rule); err != nil {
		errs = append(errs, err)
	}
	return &nestedRule{prefix: append(Path(nil), prefix...), rule: rule, err: wrapConfig("nested", errs)}
}

type nestedRule struct {
	prefix Path
	rule   Rule
	err    error
}

func (r *nestedRule) Err() error { return r.err }

func (r *nestedRule) Validate(record Record) (bool, Report) {
	if r.err != nil {
		panic(r.err)
	}
	sub := Record{}
	if v, ok := Lookup(record, r.prefix); ok {
		if m, ok := subRecord(v); ok {
			sub = m
		}
	}
	ok, report := r.rule.Validate(sub)
	if ok {
		return true, Report{}
	}
	return false, report.prefixed(r.prefix)
}

// Predicate reports message for path whenever fn rejects the record. fn sees the whole
// record, which makes cross-field checks such as password confirmation possible.
func Predicate(path Path, fn func(Record) bool, message string) Rule {
	var errs []error
	if len(path) == 0 {
		errs = append(errs, ErrEmptyPath)
	}
	if fn == nil {
		errs = append(errs, ErrMissingPredicate)
	}
	if message == "" {
		errs = append(errs, ErrMissingMessage)
	}
	return &predicateRule{path: append(Path(nil), path...), fn: fn, message: message, err: wrapConfig("predicate", errs)}
}

type predicateRule struct {
	path    Path
	fn      func(Record) bool
	message string
	err     error
}

func (r *predicateRule) Err() error { return r.err }

func (r *predicateRule) Validate(record Record) (bool, Report) {
	if r.err != nil {
		panic(r.err)
	}
	report := Report{}
	if !r.fn(record) {
		report.Add(r.path, r.message)
	}
	return report.IsEmpty(), report
}

func wrapConfig(name string, errs []error) error {
	if err := errors.Join(errs...); err != nil {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("%s rule: %w", name, err))
	}
	return nil
}
