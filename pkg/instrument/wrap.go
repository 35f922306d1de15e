package instrument

import (
	"strconv"
	"time"

	"github.com/dmitrymomot/recordcheck/pkg/validator"
)

type instrumented struct {
	name    string
	rule    validator.Rule
	metrics *Metrics
}

// Wrap returns a rule that behaves like rule and records every evaluation under name:
// one evaluation per call labelled with its outcome, one failure per message and path,
// and the evaluation time. A nil metrics returns rule unchanged.
func Wrap(name string, rule validator.Rule, metrics *Metrics) validator.Rule {
	if metrics == nil {
		return rule
	}
	return &instrumented{name: name, rule: rule, metrics: metrics}
}

// Err exposes the configuration error of the wrapped rule to validator.NewSet.
func (r *instrumented) Err() error {
	if c, ok := r.rule.(interface{ Err() error }); ok {
		return c.Err()
	}
	return nil
}

func (r *instrumented) Validate(record validator.Record) (bool, validator.Report) {
	start := time.Now()
	ok, report := r.rule.Validate(record)
	r.metrics.duration.WithLabelValues(r.name).Observe(time.Since(start).Seconds())

	outcome := OutcomeValid
	if !ok {
		outcome = OutcomeInvalid
	}
	r.metrics.evaluations.WithLabelValues(r.name, outcome).Inc()
	for path, messages := range report {
		r.metrics.failures.WithLabelValues(r.name, path).Add(float64(len(messages)))
	}
	return ok, report
}

// WrapFields wraps each rule, naming it "<family>:<path>" when it is a field rule and
// "rule_<index>" otherwise.
func WrapFields(metrics *Metrics, rules ...validator.Rule) []validator.Rule {
	out := make([]validator.Rule, len(rules))
	for i, rule := range rules {
		out[i] = Wrap(RuleName(i, rule), rule, metrics)
	}
	return out
}

// RuleName derives a stable metric label for rule.
func RuleName(i int, rule validator.Rule) string {
	if fr, ok := rule.(*validator.FieldRule); ok {
		return fr.Name() + ":" + fr.Path().String()
	}
	return "rule_" + strconv.Itoa(i)
}
