package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/recordcheck/pkg/validator"
)

func TestFormat(t *testing.T) {
	t.Parallel()
	zip := validator.Format(validator.Key("zip"), validator.Pattern(`^\d{5}$`))

	t.Run("passes for matching value", func(t *testing.T) {
		ok, _ := assertContract(t, zip, validator.Record{"zip": "12345"})
		assert.True(t, ok)
	})

	t.Run("fails for non-matching value", func(t *testing.T) {
		ok, report := assertContract(t, zip, validator.Record{"zip": "1234a"})
		assert.False(t, ok)
		assert.Equal(t, validator.Report{"zip": {"has incorrect format"}}, report)
	})

	t.Run("fails for non-string value", func(t *testing.T) {
		_, report := zip.Validate(validator.Record{"zip": 12345})
		assert.Equal(t, []string{"has incorrect format"}, report.Get("zip"))
	})

	t.Run("applies blank policy", func(t *testing.T) {
		tests := []struct {
			name   string
			opts   []validator.Option
			record validator.Record
			want   validator.Report
		}{
			{"absent fails by default", nil, validator.Record{}, validator.Report{"zip": {"can't be blank"}}},
			{"blank string fails by default", nil, validator.Record{"zip": "   "}, validator.Report{"zip": {"can't be blank"}}},
			{"absent passes with allow nil", []validator.Option{validator.AllowNil()}, validator.Record{}, validator.Report{}},
			{"blank string fails with allow nil only", []validator.Option{validator.AllowNil()}, validator.Record{"zip": ""}, validator.Report{"zip": {"can't be blank"}}},
			{"blank string passes with allow blank", []validator.Option{validator.AllowBlank()}, validator.Record{"zip": " "}, validator.Report{}},
			{"absent fails with allow blank only", []validator.Option{validator.AllowBlank()}, validator.Record{}, validator.Report{"zip": {"can't be blank"}}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				opts := append([]validator.Option{validator.Pattern(`^\d{5}$`)}, tt.opts...)
				_, report := assertContract(t, validator.Format(validator.Key("zip"), opts...), tt.record)
				assert.Equal(t, tt.want, report)
			})
		}
	})

	t.Run("accepts precompiled regexp", func(t *testing.T) {
		rule := validator.Format(validator.Key("code"), validator.Matching(regexp.MustCompile(`^[A-Z]{3}$`)))
		assert.True(t, validator.Valid(rule, validator.Record{"code": "ABC"}))
		assert.True(t, validator.Invalid(rule, validator.Record{"code": "abc"}))
	})
}

func TestFormatPresets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		matcher validator.Matcher
		valid   []string
		invalid []string
	}{
		{
			name:    "email",
			matcher: validator.Email,
			valid:   []string{"user@example.com", "first.last+tag@sub.example.org"},
			invalid: []string{"user@", "@example.com", "user@example", "user@.example.com", "John <john@example.com>"},
		},
		{
			name:    "uuid",
			matcher: validator.UUID,
			valid:   []string{"550e8400-e29b-41d4-a716-446655440000"},
			invalid: []string{"550e8400e29b41d4a716446655440000", "not-a-uuid", "550e8400-e29b-41d4-a716-44665544000z"},
		},
		{
			name:    "url",
			matcher: validator.URL,
			valid:   []string{"https://example.com/path?q=1"},
			invalid: []string{"example.com", "/relative"},
		},
		{
			name:    "phone",
			matcher: validator.Phone,
			valid:   []string{"+14155552671", "+44 20-7946-0958"},
			invalid: []string{"123", "+0123456789"},
		},
		{
			name:    "ip",
			matcher: validator.IP,
			valid:   []string{"192.168.1.1", "::1"},
			invalid: []string{"999.1.1.1"},
		},
		{
			name:    "alphanumeric",
			matcher: validator.Alphanumeric,
			valid:   []string{"abc123"},
			invalid: []string{"abc-123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := validator.Format(validator.Key("v"), validator.Matching(tt.matcher))
			for _, v := range tt.valid {
				assert.True(t, validator.Valid(rule, validator.Record{"v": v}), "expected %q to be valid", v)
			}
			for _, v := range tt.invalid {
				assert.True(t, validator.Invalid(rule, validator.Record{"v": v}), "expected %q to be invalid", v)
			}
		})
	}
}
