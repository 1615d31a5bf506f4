package patch

import (
	"slices"
	"strconv"

	"github.com/signadot/jsonlens/debug"
)

// Expand rewrites an add or replace whose value is an object or array into
// an operation that writes an empty container followed by one operation per
// member, recursively. Object members are visited in sorted key order.
// Other operations are returned unchanged.
func Expand(op Operation) Patch {
	res := expand(nil, op)
	if debug.Patch() && len(res) > 1 {
		debug.Logf("expand %s into %d ops\n", op, len(res))
	}
	return res
}

// ExpandAll expands every operation of p in order.
func ExpandAll(p Patch) Patch {
	var res Patch
	for _, op := range p {
		res = expand(res, op)
	}
	return res
}

func expand(dst Patch, op Operation) Patch {
	if !op.Op.IsWrite() {
		return append(dst, op)
	}
	switch v := op.Value.(type) {
	case map[string]any:
		dst = append(dst, op.WithValue(map[string]any{}))
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			dst = expand(dst, Operation{Op: op.Op, Path: Append(op.Path, k), Value: v[k]})
		}
		return dst
	case []any:
		dst = append(dst, op.WithValue([]any{}))
		for i, x := range v {
			dst = expand(dst, Operation{Op: op.Op, Path: Append(op.Path, strconv.Itoa(i)), Value: x})
		}
		return dst
	default:
		return append(dst, op)
	}
}

// IsEmptyObject reports whether v is an object with no members.
func IsEmptyObject(v any) bool {
	m, ok := v.(map[string]any)
	return ok && len(m) == 0
}
