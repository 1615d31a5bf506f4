package rules

import (
	"fmt"
	"time"

	"github.com/signadot/jsonlens/debug"
)

// Execute runs the rules of set that apply in mode over msg and returns the
// transformed message. Migration rules run for UPGRADE and DOWNGRADE,
// domain rules for WRITE and READ. DOWNGRADE and READ run the rules last
// to first. The first failing rule aborts execution.
func Execute(set *RuleSet, mode Mode, msg any) (any, error) {
	if set == nil {
		return nil, ErrNoRuleSet
	}
	var rules []Rule
	switch mode {
	case Upgrade, Downgrade:
		rules = set.MigrationRules
	case Write, Read:
		rules = set.DomainRules
	default:
		return nil, fmt.Errorf("%w: cannot execute in mode %s", ErrBadMode, mode)
	}
	n := len(rules)
	for i := range n {
		r := &rules[i]
		if mode.reversed() {
			r = &rules[n-1-i]
		}
		if r.Disabled || !r.Mode.Applies(mode) {
			continue
		}
		res, err := run(r, mode, msg)
		if err != nil {
			return nil, err
		}
		msg = res
	}
	return msg, nil
}

func run(r *Rule, mode Mode, msg any) (any, error) {
	e := Lookup(r.Type)
	if e == nil {
		return nil, fmt.Errorf("%w: %q in rule %s", ErrUnknownExecutor, r.Type, r.Name)
	}
	if r.Kind != "" && r.Kind != e.Kind() {
		return nil, fmt.Errorf("%w: %s is a %s rule, %s runs %s rules", ErrKindMismatch, r.Name, r.Kind, r.Type, e.Kind())
	}
	if debug.Rules() {
		debug.Logf("rule %s in mode %s\n", r, mode)
	}
	start := time.Now()
	res, err := e.Transform(&RuleContext{Rule: r, Mode: mode}, msg)
	Duration.WithLabelValues(r.Type, string(mode)).Observe(time.Since(start).Seconds())
	Executions.WithLabelValues(r.Type, string(mode)).Inc()
	if err != nil {
		Failures.WithLabelValues(r.Type, string(mode)).Inc()
		if debug.Rules() {
			debug.Logf("rule %s failed: %v\n", r, err)
		}
		return nil, err
	}
	return res, nil
}
