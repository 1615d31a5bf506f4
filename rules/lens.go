package rules

import (
	"fmt"

	"github.com/signadot/jsonlens"
	"github.com/signadot/jsonlens/format"
	"github.com/signadot/jsonlens/lensop"
)

const LensType = "JSONLENSES"

// LensExecutor applies the lens held in a rule's expression to a document.
// Downgrades use the reversed lens. The lens is read as JSON unless the
// rule's "format" parameter names another format.
type LensExecutor struct{}

func (LensExecutor) Type() string { return LensType }
func (LensExecutor) Kind() Kind    { return Transform }

func (LensExecutor) Transform(rc *RuleContext, msg any) (any, error) {
	f := format.JSONFormat
	if p := rc.Param("format"); p != "" {
		var err error
		if f, err = format.ParseFormat(p); err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrRuleParse, rc.Rule.Name, err)
		}
	}
	lens, err := lensop.ParseLens([]byte(rc.Rule.Expr), f)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRuleParse, rc.Rule.Name, err)
	}
	if rc.Mode == Downgrade {
		lens = lensop.Reverse(lens)
	}
	res, err := jsonlens.ApplyToDoc(lens, msg, nil)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRuleExecution, rc.Rule.Name, err)
	}
	return res, nil
}
