package validator

// Numericality validates that the value at path is a number satisfying every configured
// constraint. All violated constraints are reported together.
//
// An absent value fails with "can't be blank" unless AllowNil is set, and is not checked
// further. A value that is not a number fails with "should be a number" (and "should be an
// integer" under OnlyInteger) without comparison or parity messages.
//
// Options: AllowNil, OnlyInteger, GreaterThan, GreaterThanOrEqualTo, LessThan,
// LessThanOrEqualTo, EqualTo, Odd, Even, Message, BlankMessage.
func Numericality(path Path, opts ...Option) *FieldRule {
	return newFieldRule("numericality", path, opts, checkNumericality, func(o *options) error {
		if o.odd && o.even {
			return ErrConflictingParity
		}
		return nil
	})
}

func checkNumericality(value any, present bool, o *options) []string {
	if !present {
		if o.allowNil {
			return nil
		}
		return []string{o.blank()}
	}

	var violations []string
	n, ok := toNumber(value)
	if !ok {
		violations = append(violations, o.failure(MessageNotNumber))
		if o.onlyInteger {
			violations = append(violations, o.failure(MessageNotInteger))
		}
		return violations
	}

	if o.onlyInteger && !n.integral() {
		violations = append(violations, o.failure(MessageNotInteger))
	}
	if o.odd && !n.odd() {
		violations = append(violations, o.failure(MessageNotOdd))
	}
	if o.even && !n.even() {
		violations = append(violations, o.failure(MessageNotEven))
	}
	if b := o.gt; b != nil && !n.satisfies(b, func(c int) bool { return c > 0 }) {
		violations = append(violations, o.failure("should be greater than "+b.text))
	}
	if b := o.gte; b != nil && !n.satisfies(b, func(c int) bool { return c >= 0 }) {
		violations = append(violations, o.failure("should be greater than or equal to "+b.text))
	}
	if b := o.lt; b != nil && !n.satisfies(b, func(c int) bool { return c < 0 }) {
		violations = append(violations, o.failure("should be less than "+b.text))
	}
	if b := o.lte; b != nil && !n.satisfies(b, func(c int) bool { return c <= 0 }) {
		violations = append(violations, o.failure("should be less than or equal to "+b.text))
	}
	if b := o.equalTo; b != nil && !n.satisfies(b, func(c int) bool { return c == 0 }) {
		violations = append(violations, o.failure("should be equal to "+b.text))
	}
	return violations
}

// satisfies reports whether comparing n with the bound meets want. NaN satisfies nothing.
func (n number) satisfies(b *bound, want func(int) bool) bool {
	c, ok := n.cmp(b.value)
	return ok && want(c)
}
