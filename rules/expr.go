package rules

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/expr-lang/expr"
)

const ExprType = "EXPR"

// ExprExecutor evaluates a boolean condition over the message. The
// expression sees the message as "message" and the rule parameters as
// "params"; numbers in the message are float64.
type ExprExecutor struct{}

func (ExprExecutor) Type() string { return ExprType }
func (ExprExecutor) Kind() Kind    { return Condition }

func (ExprExecutor) Transform(rc *RuleContext, msg any) (any, error) {
	env, err := exprEnv(rc, msg)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRuleExecution, rc.Rule.Name, err)
	}
	prg, err := expr.Compile(rc.Rule.Expr, expr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRuleParse, rc.Rule.Name, err)
	}
	out, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRuleExecution, rc.Rule.Name, err)
	}
	ok, isBool := out.(bool)
	if !isBool {
		return nil, fmt.Errorf("%w %s: condition gave %T, not bool", ErrRuleExecution, rc.Rule.Name, out)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrConditionFailed, rc.Rule.Name)
	}
	return msg, nil
}

func exprEnv(rc *RuleContext, msg any) (map[string]any, error) {
	d, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	var m any
	if err := json.Unmarshal(d, &m); err != nil {
		return nil, err
	}
	params := map[string]any{}
	for k, v := range rc.Rule.Params {
		params[k] = v
	}
	return map[string]any{"message": m, "params": params}, nil
}
