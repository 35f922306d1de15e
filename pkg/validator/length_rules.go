package validator

import "fmt"

// Length validates the length of the value at path: characters for strings (after NFC
// normalization), elements for slices, arrays and maps. Other values fail.
//
// Within(min, max) requires an inclusive range and wins over Is(n), which requires an
// exact length. The blank policy is the one of Format.
//
// Options: AllowNil, AllowBlank, Is, Within, Message, BlankMessage.
func Length(path Path, opts ...Option) *FieldRule {
	return newFieldRule("length", path, opts, checkLength, func(o *options) error {
		switch {
		case o.within != nil:
			if o.within[0] < 0 || o.within[0] > o.within[1] {
				return fmt.Errorf("%w: %d..%d", ErrInvalidRange, o.within[0], o.within[1])
			}
		case o.is != nil:
			if *o.is < 0 {
				return fmt.Errorf("%w: %d", ErrInvalidRange, *o.is)
			}
		default:
			return ErrMissingLength
		}
		return nil
	})
}

func checkLength(value any, present bool, o *options) []string {
	if messages, decided := blankGate(value, present, o); decided {
		return messages
	}
	n, measurable := measure(value)

	if w := o.within; w != nil {
		if !measurable || n < w[0] || n > w[1] {
			return []string{o.failure(fmt.Sprintf("must be from %d to %d characters long", w[0], w[1]))}
		}
		return nil
	}
	if !measurable || n != *o.is {
		return []string{o.failure(fmt.Sprintf("must be %d characters long", *o.is))}
	}
	return nil
}
