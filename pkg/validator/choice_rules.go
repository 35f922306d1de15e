package validator

// defaultAccepted are the values an acceptance rule accepts unless Accept is given.
var defaultAccepted = []any{true, "true", "1"}

// Acceptance validates that the value at path is one of the accepted values, typically a
// terms-of-service checkbox. Options: AllowNil, Accept, Message, BlankMessage.
func Acceptance(path Path, opts ...Option) *FieldRule {
	return newFieldRule("acceptance", path, opts, checkAcceptance, func(o *options) error {
		if o.acceptSet && len(o.accept) == 0 {
			return ErrMissingAccepted
		}
		return nil
	})
}

func checkAcceptance(value any, present bool, o *options) []string {
	if !present {
		if o.allowNil {
			return nil
		}
		return []string{o.blank()}
	}
	accepted := defaultAccepted
	if o.acceptSet {
		accepted = o.accept
	}
	if !contains(accepted, value) {
		return []string{o.failure(MessageNotAccepted)}
	}
	return nil
}

// Inclusion validates that the value at path is a member of the set given with In.
// Options: AllowNil, In, Message, BlankMessage.
func Inclusion(path Path, opts ...Option) *FieldRule {
	return newFieldRule("inclusion", path, opts, checkInclusion, requireMembers)
}

// Exclusion validates that the value at path is not a member of the set given with In.
// Options: AllowNil, In, Message, BlankMessage.
func Exclusion(path Path, opts ...Option) *FieldRule {
	return newFieldRule("exclusion", path, opts, checkExclusion, requireMembers)
}

func requireMembers(o *options) error {
	if len(o.in) == 0 {
		return ErrMissingMembers
	}
	return nil
}

func checkInclusion(value any, present bool, o *options) []string {
	if !present {
		if o.allowNil {
			return nil
		}
		return []string{o.blank()}
	}
	if !contains(o.in, value) {
		return []string{o.failure("must be one of: " + joinValues(o.in))}
	}
	return nil
}

func checkExclusion(value any, present bool, o *options) []string {
	if !present {
		if o.allowNil {
			return nil
		}
		return []string{o.blank()}
	}
	if contains(o.in, value) {
		return []string{o.failure("must not be one of: " + joinValues(o.in))}
	}
	return nil
}
