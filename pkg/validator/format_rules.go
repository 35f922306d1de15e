package validator

import (
	"net"
	"net/mail"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Matcher decides whether a string has the expected format. *regexp.Regexp implements it.
type Matcher interface {
	MatchString(s string) bool
}

// MatcherFunc adapts a function to the Matcher interface.
type MatcherFunc func(s string) bool

func (f MatcherFunc) MatchString(s string) bool {
	return f(s)
}

var (
	// Phone number regex - international format with optional country code
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	// Alphanumeric regex
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

	// Alpha regex
	alphaRegex = regexp.MustCompile(`^[a-zA-Z]+$`)

	// Numeric string regex
	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)
)

// Format presets for use with Matching.
var (
	Email         Matcher = MatcherFunc(isEmail)
	UUID          Matcher = MatcherFunc(isUUID)
	URL           Matcher = MatcherFunc(isURL)
	Phone         Matcher = MatcherFunc(isPhone)
	IP            Matcher = MatcherFunc(func(s string) bool { return net.ParseIP(s) != nil })
	Alphanumeric  Matcher = alphanumericRegex
	Alpha         Matcher = alphaRegex
	NumericString Matcher = numericStringRegex
)

// Format validates that the value at path is a string matching the pattern given with
// Pattern or Matching.
//
// Blank policy: an absent value fails unless AllowNil is set, a whitespace-only string
// fails unless AllowBlank is set; in both cases "can't be blank" is reported. A blank
// value let through by the policy passes without being matched.
//
// Options: AllowNil, AllowBlank, Pattern, Matching, Message, BlankMessage.
func Format(path Path, opts ...Option) *FieldRule {
	return newFieldRule("format", path, opts, checkFormat, func(o *options) error {
		if nilMatcher(o.matcher) && len(o.errs) == 0 {
			return ErrMissingPattern
		}
		return nil
	})
}

// nilMatcher reports whether m is nil, including a nil *regexp.Regexp or MatcherFunc
// stored in the interface.
func nilMatcher(m Matcher) bool {
	if m == nil {
		return true
	}
	rv := reflect.ValueOf(m)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func checkFormat(value any, present bool, o *options) []string {
	if messages, decided := blankGate(value, present, o); decided {
		return messages
	}
	s, ok := stringValue(value)
	if !ok || !o.matcher.MatchString(s) {
		return []string{o.failure(MessageBadFormat)}
	}
	return nil
}

// isEmail accepts RFC 5322 addresses whose domain has at least one dot.
func isEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return false
	}

	// Domain must contain at least one dot and cannot start/end with dot
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// isUUID accepts the canonical 36 character form only.
func isUUID(value string) bool {
	// Fast rejection: check length and hyphen positions before parsing
	if len(value) != 36 {
		return false
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}
	return uuid.Validate(value) == nil
}

func isURL(value string) bool {
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func isPhone(value string) bool {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(value, " ", ""), "-", "")
	if len(cleaned) < 7 {
		return false
	}
	return phoneRegex.MatchString(cleaned)
}
