package jsonlens

import (
	"github.com/signadot/jsonlens/lensop"
	"github.com/signadot/jsonlens/patch"
)

// insertDefaults follows every add or replace of an empty object with adds
// for the defaults recorded at the corresponding context node.
func insertDefaults(ctx *lensop.Context, p patch.Patch) patch.Patch {
	res := make(patch.Patch, 0, len(p))
	for _, op := range p {
		res = appendWithDefaults(res, ctx, op)
	}
	return res
}

// appendWithDefaults appends op and, when op creates an empty object, the
// defaults for its members in name order, depth first. Default operations
// keep the op of the operation that created the object.
func appendWithDefaults(dst patch.Patch, ctx *lensop.Context, op patch.Operation) patch.Patch {
	dst = append(dst, op)
	if !op.Op.IsWrite() || !patch.IsEmptyObject(op.Value) {
		return dst
	}
	sub := ctx.Resolve(op.Path)
	for _, name := range sub.Names() {
		v, ok := sub.Default(name)
		if !ok {
			continue
		}
		dst = appendWithDefaults(dst, ctx, op.WithPath(patch.Append(op.Path, name)).WithValue(patch.Clone(v)))
	}
	return dst
}

// fillDefaults adds the root defaults to the object doc at the paths it
// lacks. A default whose parent in doc is not an object is skipped.
func fillDefaults(ctx *lensop.Context, doc any) (any, error) {
	root := patch.Operation{Op: patch.OpAdd, Path: "", Value: map[string]any{}}
	ops := appendWithDefaults(nil, ctx, root)[1:]
	added := map[string]bool{}
	var fill patch.Patch
	for _, op := range ops {
		if _, present := patch.Get(doc, op.Path); present {
			continue
		}
		parent := patch.Parent(op.Path)
		if !added[parent] {
			pv, _ := patch.Get(doc, parent)
			if _, isObj := pv.(map[string]any); !isObj {
				continue
			}
		}
		added[op.Path] = true
		fill = append(fill, op)
	}
	if len(fill) == 0 {
		return doc, nil
	}
	return patch.Apply(fill, doc)
}
