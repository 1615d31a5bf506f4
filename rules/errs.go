package rules

import "errors"

var (
	ErrRuleParse       = errors.New("could not parse rule")
	ErrRuleExecution   = errors.New("rule execution failed")
	ErrConditionFailed = errors.New("condition failed")
	ErrUnknownExecutor = errors.New("unknown rule executor")
	ErrExecutorExists  = errors.New("rule executor already registered")
	ErrUnknownVersion  = errors.New("unknown version")
	ErrBadMode         = errors.New("bad rule mode")
	ErrKindMismatch    = errors.New("rule kind does not match executor")
	ErrNoRuleSet       = errors.New("no rule set")
)
