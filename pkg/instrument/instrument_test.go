package instrument_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordcheck/pkg/instrument"
	"github.com/dmitrymomot/recordcheck/pkg/validator"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics, err := instrument.NewMetrics(reg, "test")
	require.NoError(t, err)

	rule := validator.Length(validator.Key("zip"), validator.Is(5))
	wrapped := instrument.Wrap("zip_length", rule, metrics)

	t.Run("keeps the rule result", func(t *testing.T) {
		for _, rec := range []validator.Record{{"zip": "12345"}, {"zip": "1"}, {}} {
			wantOK, wantReport := rule.Validate(rec)
			gotOK, gotReport := wrapped.Validate(rec)
			assert.Equal(t, wantOK, gotOK)
			assert.Equal(t, wantReport, gotReport)
		}
	})

	t.Run("counts evaluations and failures", func(t *testing.T) {
		expected := `
# HELP test_rule_evaluations_total Total number of rule evaluations
# TYPE test_rule_evaluations_total counter
test_rule_evaluations_total{outcome="invalid",rule="zip_length"} 2
test_rule_evaluations_total{outcome="valid",rule="zip_length"} 1
# HELP test_rule_failures_total Total number of failure messages reported per path
# TYPE test_rule_failures_total counter
test_rule_failures_total{path="zip",rule="zip_length"} 2
`
		err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
			"test_rule_evaluations_total", "test_rule_failures_total")
		assert.NoError(t, err)
		n, err := testutil.GatherAndCount(reg, "test_rule_evaluation_duration_seconds")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestWrap_InsideSet(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics, err := instrument.NewMetrics(reg, "set")
	require.NoError(t, err)

	rules := instrument.WrapFields(metrics,
		validator.Presence(validator.Key("email")),
		validator.Numericality(validator.P("profile", "age"), validator.GreaterThan(17)),
		validator.RuleFunc(func(validator.Record) (bool, validator.Report) { return true, validator.Report{} }),
	)
	set, err := validator.NewSet(rules...)
	require.NoError(t, err)

	ok, report := set.Validate(validator.Record{"profile": map[string]any{"age": 12}})
	assert.False(t, ok)
	assert.Equal(t, []string{"email", "profile.age"}, report.Fields())

	expected := `
# HELP set_rule_evaluations_total Total number of rule evaluations
# TYPE set_rule_evaluations_total counter
set_rule_evaluations_total{outcome="invalid",rule="numericality:profile.age"} 1
set_rule_evaluations_total{outcome="invalid",rule="presence:email"} 1
set_rule_evaluations_total{outcome="valid",rule="rule_2"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "set_rule_evaluations_total"))
}

func TestWrap_ConfigurationErrors(t *testing.T) {
	t.Parallel()

	metrics, err := instrument.NewMetrics(nil, "none")
	require.NoError(t, err)

	_, err = validator.NewSet(instrument.Wrap("zip", validator.Format(validator.Key("zip")), metrics))
	assert.ErrorIs(t, err, validator.ErrMissingPattern)
}

func TestWrap_NilMetrics(t *testing.T) {
	t.Parallel()

	rule := validator.Presence(validator.Key("email"))
	assert.Same(t, rule, instrument.Wrap("email", rule, nil))
}

func TestNewMetrics_SharedRegistry(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	first, err := instrument.NewMetrics(reg, "shared")
	require.NoError(t, err)
	second, err := instrument.NewMetrics(reg, "shared")
	require.NoError(t, err)

	instrument.Wrap("a", validator.Presence(validator.Key("a")), first).Validate(validator.Record{})
	instrument.Wrap("a", validator.Presence(validator.Key("a")), second).Validate(validator.Record{})

	expected := `
# HELP shared_rule_evaluations_total Total number of rule evaluations
# TYPE shared_rule_evaluations_total counter
shared_rule_evaluations_total{outcome="invalid",rule="a"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "shared_rule_evaluations_total"))
}
