package lensop

import (
	"fmt"

	"github.com/signadot/jsonlens/patch"
)

type Kind string

const (
	KindAdd     Kind = "add"
	KindRemove  Kind = "remove"
	KindRename  Kind = "rename"
	KindConvert Kind = "convert"
	KindHoist   Kind = "hoist"
	KindPlunge  Kind = "plunge"
	KindWrap    Kind = "wrap"
	KindHead    Kind = "head"
	KindIn      Kind = "in"
	KindMap     Kind = "map"
)

func (k Kind) String() string { return string(k) }

// Op is a single lens operator. The set of operators is closed; the
// unexported method keeps it so.
type Op interface {
	Kind() Kind
	// Apply rewrites one patch operation. A nil result with a nil error
	// means the operation is dropped.
	Apply(op patch.Operation) (*patch.Operation, error)
	// Update records the operator's effect on defaults in ctx.
	Update(ctx *Context)
	// Reverse returns the operator undoing this one.
	Reverse() Op
	fmt.Stringer

	lensOp()
}

func keep(op patch.Operation) (*patch.Operation, error) {
	return &op, nil
}

func drop() (*patch.Operation, error) {
	return nil, nil
}

// rewrite returns op with its path set to the given segments.
func rewrite(op patch.Operation, segs []string) (*patch.Operation, error) {
	res := op.WithPath(patch.Join(segs))
	return &res, nil
}

func prepend(seg string, segs []string) []string {
	res := make([]string, 0, len(segs)+1)
	res = append(res, seg)
	return append(res, segs...)
}
