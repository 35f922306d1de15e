package validator_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/recordcheck/pkg/validator"
)

func TestNumericality(t *testing.T) {
	t.Parallel()

	t.Run("passes for any number without constraints", func(t *testing.T) {
		rule := validator.Numericality(validator.Key("n"))
		for _, v := range []any{0, -3, uint8(7), 1.5, float32(2), json.Number("12")} {
			ok, _ := assertContract(t, rule, validator.Record{"n": v})
			assert.True(t, ok, "value %v", v)
		}
	})

	t.Run("fails for absent value with blank message only", func(t *testing.T) {
		rule := validator.Numericality(validator.Key("n"), validator.OnlyInteger(), validator.GreaterThan(0))
		ok, report := assertContract(t, rule, validator.Record{})
		assert.False(t, ok)
		assert.Equal(t, validator.Report{"n": {"can't be blank"}}, report)
	})

	t.Run("allowed absent value skips numeric checks", func(t *testing.T) {
		rule := validator.Numericality(validator.Key("n"), validator.AllowNil(), validator.GreaterThan(0), validator.Odd())
		ok, report := assertContract(t, rule, validator.Record{"n": nil})
		assert.True(t, ok)
		assert.Empty(t, report)
	})

	t.Run("non-number skips comparisons", func(t *testing.T) {
		rule := validator.Numericality(validator.Key("n"), validator.GreaterThan(0), validator.Even())
		ok, report := assertContract(t, rule, validator.Record{"n": "12"})
		assert.False(t, ok)
		assert.Equal(t, validator.Report{"n": {"should be a number"}}, report)
	})

	t.Run("non-number under only integer reports both type messages", func(t *testing.T) {
		rule := validator.Numericality(validator.Key("n"), validator.OnlyInteger(), validator.GreaterThan(0))
		_, report := assertContract(t, rule, validator.Record{"n": "abc"})
		assert.Equal(t, []string{"should be a number", "should be an integer"}, report.Get("n"))
	})

	t.Run("accumulates every violated constraint", func(t *testing.T) {
		rule := validator.Numericality(validator.Key("age"), validator.GreaterThan(0), validator.OnlyInteger())
		ok, report := assertContract(t, rule, validator.Record{"age": -1.5})
		assert.False(t, ok)
		assert.ElementsMatch(t, []string{"should be an integer", "should be greater than 0"}, report.Get("age"))
	})

	t.Run("renders bound messages", func(t *testing.T) {
		tests := []struct {
			name    string
			opt     validator.Option
			value   any
			message string
		}{
			{"greater than", validator.GreaterThan(10), 10, "should be greater than 10"},
			{"greater than or equal", validator.GreaterThanOrEqualTo(2.5), 2, "should be greater than or equal to 2.5"},
			{"less than", validator.LessThan(-1), 0, "should be less than -1"},
			{"less than or equal", validator.LessThanOrEqualTo(int64(100)), 101, "should be less than or equal to 100"},
			{"equal to", validator.EqualTo(42), 41.9, "should be equal to 42"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, report := validator.Numericality(validator.Key("n"), tt.opt).Validate(validator.Record{"n": tt.value})
				assert.Equal(t, []string{tt.message}, report.Get("n"))
			})
		}
	})

	t.Run("passes inclusive bounds at the edge", func(t *testing.T) {
		rule := validator.Numericality(validator.Key("n"),
			validator.GreaterThanOrEqualTo(1), validator.LessThanOrEqualTo(10), validator.EqualTo(10))
		assert.True(t, validator.Valid(rule, validator.Record{"n": 10}))
		assert.True(t, validator.Valid(rule, validator.Record{"n": 10.0}))
	})

	t.Run("checks parity", func(t *testing.T) {
		odd := validator.Numericality(validator.Key("n"), validator.Odd())
		even := validator.Numericality(validator.Key("n"), validator.Even())

		assert.True(t, validator.Valid(odd, validator.Record{"n": 3}))
		assert.True(t, validator.Valid(odd, validator.Record{"n": -3}))
		assert.True(t, validator.Valid(even, validator.Record{"n": 4}))
		assert.True(t, validator.Valid(even, validator.Record{"n": 0}))

		_, report := odd.Validate(validator.Record{"n": 4})
		assert.Equal(t, []string{"should be odd"}, report.Get("n"))

		_, report = even.Validate(validator.Record{"n": 3})
		assert.Equal(t, []string{"should be even"}, report.Get("n"))

		_, report = even.Validate(validator.Record{"n": 2.5})
		assert.Equal(t, []string{"should be even"}, report.Get("n"))
	})

	t.Run("treats integral floats as integers", func(t *testing.T) {
		rule := validator.Numericality(validator.Key("n"), validator.OnlyInteger())
		assert.True(t, validator.Valid(rule, validator.Record{"n": 3.0}))
		assert.True(t, validator.Valid(rule, validator.Record{"n": json.Number("7")}))
		assert.False(t, validator.Valid(rule, validator.Record{"n": json.Number("7.25")}))
	})

	t.Run("compares whole numbers beyond float64 precision exactly", func(t *testing.T) {
		big := json.Number("9007199254740993")

		equal := validator.Numericality(validator.Key("id"), validator.EqualTo(int64(9007199254740992)))
		ok, report := equal.Validate(validator.Record{"id": big})
		assert.False(t, ok)
		assert.Equal(t, []string{"should be equal to 9007199254740992"}, report.Get("id"))

		above := validator.Numericality(validator.Key("id"), validator.GreaterThan(int64(9007199254740992)))
		assert.True(t, validator.Valid(above, validator.Record{"id": big}))

		limit := validator.Numericality(validator.Key("id"), validator.LessThanOrEqualTo(uint64(18446744073709551615)))
		assert.True(t, validator.Valid(limit, validator.Record{"id": uint64(18446744073709551615)}))
		assert.False(t, validator.Valid(limit, validator.Record{"id": json.Number("18446744073709551616")}))
	})

	t.Run("checks parity beyond float64 precision", func(t *testing.T) {
		odd := validator.Numericality(validator.Key("id"), validator.Odd())
		even := validator.Numericality(validator.Key("id"), validator.Even())

		assert.True(t, validator.Valid(odd, validator.Record{"id": json.Number("9007199254740993")}))
		assert.False(t, validator.Valid(even, validator.Record{"id": json.Number("9007199254740993")}))
		assert.True(t, validator.Valid(even, validator.Record{"id": json.Number("1e3")}))
	})

	t.Run("fractions keep float semantics", func(t *testing.T) {
		rule := validator.Numericality(validator.Key("n"), validator.EqualTo(0.1))
		assert.True(t, validator.Valid(rule, validator.Record{"n": json.Number("0.1")}))
		assert.True(t, validator.Valid(rule, validator.Record{"n": 0.1}))
	})

	t.Run("custom message replaces numeric messages", func(t *testing.T) {
		rule := validator.Numericality(validator.Key("n"),
			validator.OnlyInteger(), validator.GreaterThan(0), validator.Message("must be a positive whole number"))
		_, report := rule.Validate(validator.Record{"n": -1.5})
		assert.Equal(t, []string{"must be a positive whole number"}, report.Get("n"))
	})
}
