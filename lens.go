package jsonlens

import (
	"fmt"
	"slices"

	json "github.com/goccy/go-json"

	"github.com/signadot/jsonlens/debug"
	"github.com/signadot/jsonlens/lensop"
	"github.com/signadot/jsonlens/patch"
)

// ApplyToPatch translates p through lens. Compound values are expanded
// before translation, and defaults from add operators are inserted after
// every operation that creates an empty object.
func ApplyToPatch(lens lensop.Lens, p patch.Patch) (patch.Patch, error) {
	return applyToPatch(lensop.NewContext(), lens, p)
}

func applyToPatch(ctx *lensop.Context, lens lensop.Lens, p patch.Patch) (patch.Patch, error) {
	lens.Update(ctx)
	if debug.Context() {
		debug.Logf("context after %s\n%v\n", lens, ctx.Tree())
	}
	var lensed patch.Patch
	for _, op := range patch.ExpandAll(p) {
		res, err := lens.Apply(op)
		if err != nil {
			return nil, err
		}
		if res == nil {
			continue
		}
		lensed = append(lensed, *res)
	}
	res := insertDefaults(ctx, lensed)
	if debug.Patch() {
		debug.Logf("lensed patch %v\n", res)
	}
	return res, nil
}

// ApplyToPatchOp translates a single operation. The operation must already
// be expanded and no defaults are inserted. A nil result means the lens
// drops the operation.
func ApplyToPatchOp(lens lensop.Lens, op patch.Operation) (*patch.Operation, error) {
	return lens.Apply(op)
}

// ApplyToDoc translates the object doc through lens. Properties the lens
// introduces take their defaults. If target is not nil the translated
// properties are written over it: members of target, null ones included,
// are kept unless the translation rewrites them, and defaults only fill
// paths target lacks. Neither doc nor target is modified.
func ApplyToDoc(lens lensop.Lens, doc, target any) (any, error) {
	doc, err := patch.Normalize(doc)
	if err != nil {
		return nil, err
	}
	if _, ok := doc.(map[string]any); !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotObject, doc)
	}
	in, err := patch.Diff(map[string]any{}, doc)
	if err != nil {
		return nil, err
	}
	containersFirst(in)
	ctx := lensop.NewContext()
	out, err := applyToPatch(ctx, lens, in)
	if err != nil {
		return nil, err
	}
	var base any = map[string]any{}
	if target != nil {
		if base, err = patch.Normalize(target); err != nil {
			return nil, err
		}
		if _, ok := base.(map[string]any); !ok {
			return nil, fmt.Errorf("%w: target is %T", ErrNotObject, base)
		}
	}
	if base, err = fillDefaults(ctx, base); err != nil {
		return nil, err
	}
	return patch.Apply(out, base)
}

// containersFirst moves writes of objects and arrays ahead of scalar
// writes, keeping order otherwise, so that an operator moving a member
// into a sibling object finds the object created.
func containersFirst(p patch.Patch) {
	slices.SortStableFunc(p, func(a, b patch.Operation) int {
		return scalarRank(a) - scalarRank(b)
	})
}

func scalarRank(op patch.Operation) int {
	switch op.Value.(type) {
	case map[string]any, []any:
		return 0
	}
	return 1
}

// ApplyToDocJSON is ApplyToDoc over encoded documents. A nil or empty
// target is ignored.
func ApplyToDocJSON(lens lensop.Lens, doc, target []byte) ([]byte, error) {
	d, err := patch.DecodeValue(doc)
	if err != nil {
		return nil, err
	}
	var t any
	if len(target) != 0 {
		if t, err = patch.DecodeValue(target); err != nil {
			return nil, err
		}
	}
	res, err := ApplyToDoc(lens, d, t)
	if err != nil {
		return nil, err
	}
	return json.Marshal(res)
}
