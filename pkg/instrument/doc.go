// Package instrument counts rule evaluations with Prometheus collectors.
//
// Wrap decorates a validator.Rule without changing its result; the decorated rule can be
// used anywhere the original can, including inside a validator.Set:
//
//	metrics, err := instrument.NewMetrics(prometheus.DefaultRegisterer, "recordcheck")
//	if err != nil {
//		return err
//	}
//	set, err := validator.NewSet(instrument.WrapFields(metrics, rules...)...)
//
// Collected series:
//
//	<ns>_rule_evaluations_total{rule, outcome}
//	<ns>_rule_failures_total{rule, path}
//	<ns>_rule_evaluation_duration_seconds{rule}
package instrument
