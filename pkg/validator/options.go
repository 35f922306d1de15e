package validator

import (
	"fmt"
	"regexp"
)

// Option configures a rule built by one of the rule factories. Options that do not apply
// to a rule family are ignored by it.
type Option func(*options)

type options struct {
	allowNil    bool
	allowBlank  bool
	onlyInteger bool
	odd         bool
	even        bool

	gt, gte, lt, lte, equalTo *bound

	accept    []any
	acceptSet bool
	in        []any
	inSet     bool

	matcher Matcher

	is     *int
	within *[2]int

	message      string
	blankMessage string

	errs []error
}

// bound is a configured numeric threshold together with its rendering.
type bound struct {
	value number
	text  string
}

func newBound[T Numeric](n T) *bound {
	v, _ := toNumber(n)
	return &bound{value: v, text: v.String()}
}

// blank returns the message used when the value is absent or blank.
func (o *options) blank() string {
	if o.blankMessage != "" {
		return o.blankMessage
	}
	return MessageBlank
}

// failure returns the configured message or def.
func (o *options) failure(def string) string {
	if o.message != "" {
		return o.message
	}
	return def
}

// AllowNil makes an absent value pass instead of failing with "can't be blank".
func AllowNil() Option {
	return func(o *options) { o.allowNil = true }
}

// AllowBlank makes a whitespace-only string pass format and length rules.
func AllowBlank() Option {
	return func(o *options) { o.allowBlank = true }
}

// OnlyInteger requires a whole number.
func OnlyInteger() Option {
	return func(o *options) { o.onlyInteger = true }
}

// Odd requires an odd whole number.
func Odd() Option {
	return func(o *options) { o.odd = true }
}

// Even requires an even whole number.
func Even() Option {
	return func(o *options) { o.even = true }
}

// GreaterThan requires a number strictly greater than n.
func GreaterThan[T Numeric](n T) Option {
	return func(o *options) { o.gt = newBound(n) }
}

// GreaterThanOrEqualTo requires a number greater than or equal to n.
func GreaterThanOrEqualTo[T Numeric](n T) Option {
	return func(o *options) { o.gte = newBound(n) }
}

// LessThan requires a number strictly less than n.
func LessThan[T Numeric](n T) Option {
	return func(o *options) { o.lt = newBound(n) }
}

// LessThanOrEqualTo requires a number less than or equal to n.
func LessThanOrEqualTo[T Numeric](n T) Option {
	return func(o *options) { o.lte = newBound(n) }
}

// EqualTo requires a number equal to n. Whole numbers compare exactly, so 2^53+1
// does not equal 2^53.
func EqualTo[T Numeric](n T) Option {
	return func(o *options) { o.equalTo = newBound(n) }
}

// Accept replaces the default accepted values (true, "true", "1") of an acceptance rule.
func Accept(values ...any) Option {
	return func(o *options) {
		o.accept = dedupe(values)
		o.acceptSet = true
	}
}

// In sets the membership set of an inclusion or exclusion rule. Members keep the given
// order in messages; duplicates are dropped.
func In(values ...any) Option {
	return func(o *options) {
		o.in = dedupe(values)
		o.inSet = true
	}
}

// InStrings is In for a string slice.
func InStrings(values ...string) Option {
	members := make([]any, len(values))
	for i, v := range values {
		members[i] = v
	}
	return In(members...)
}

// Pattern compiles expr as the pattern of a format rule. A pattern that fails to
// compile is reported as a configuration error.
func Pattern(expr string) Option {
	return func(o *options) {
		re, err := regexp.Compile(expr)
		if err != nil {
			o.errs = append(o.errs, fmt.Errorf("%w: %w", ErrInvalidPattern, err))
			return
		}
		o.matcher = re
	}
}

// Matching sets a precompiled matcher, such as a *regexp.Regexp or a preset, as the
// pattern of a format rule.
func Matching(m Matcher) Option {
	return func(o *options) { o.matcher = m }
}

// Is requires an exact length.
func Is(n int) Option {
	return func(o *options) { o.is = &n }
}

// Within requires a length in the inclusive range [min, max]. It wins over Is.
func Within(min, max int) Option {
	return func(o *options) { o.within = &[2]int{min, max} }
}

// Message replaces the failure message of a rule. "can't be blank" is kept; see BlankMessage.
func Message(msg string) Option {
	return func(o *options) { o.message = msg }
}

// BlankMessage replaces "can't be blank".
func BlankMessage(msg string) Option {
	return func(o *options) { o.blankMessage = msg }
}
