package lensop

import (
	"bytes"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/signadot/jsonlens/debug"
	"github.com/signadot/jsonlens/format"
	"github.com/signadot/jsonlens/patch"
)

// Lens is an ordered sequence of operators, applied left to right.
type Lens []Op

// Apply folds op through every operator. Once an operator drops the
// operation the remaining operators are not consulted.
func (l Lens) Apply(op patch.Operation) (*patch.Operation, error) {
	cur := &op
	for _, o := range l {
		res, err := o.Apply(*cur)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", o, err)
		}
		if debug.Op() {
			if res == nil {
				debug.Logf("%s dropped %s\n", o, cur)
			} else if res.Path != cur.Path || res.Op != cur.Op {
				debug.Logf("%s: %s => %s\n", o, cur, res)
			}
		}
		if res == nil {
			return nil, nil
		}
		cur = res
	}
	return cur, nil
}

// Update applies every operator's context effect in order.
func (l Lens) Update(ctx *Context) {
	for _, o := range l {
		o.Update(ctx)
	}
}

// Reverse reverses every operator of l. The order of the operators is
// kept, so a lens whose operators rewrite the same path in sequence, such
// as a rename followed by a convert of the new name, does not invert.
func Reverse(l Lens) Lens {
	res := make(Lens, len(l))
	for i, o := range l {
		res[i] = o.Reverse()
	}
	return res
}

func (l Lens) String() string {
	parts := make([]string, len(l))
	for i, o := range l {
		parts[i] = o.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (l Lens) orEmpty() Lens {
	if l == nil {
		return Lens{}
	}
	return l
}

func (l *Lens) UnmarshalJSON(d []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(d, &raws); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	res := make(Lens, 0, len(raws))
	for i, raw := range raws {
		head := struct {
			Type Kind `json:"type"`
		}{}
		if err := json.Unmarshal(raw, &head); err != nil {
			return fmt.Errorf("%w: operator %d: %w", ErrParse, i, err)
		}
		dec := lookup(head.Type)
		if dec == nil {
			return fmt.Errorf("%w: operator %d: unknown type %q", ErrParse, i, head.Type)
		}
		op, err := dec(raw)
		if err != nil {
			return fmt.Errorf("operator %d: %w", i, err)
		}
		res = append(res, op)
	}
	*l = res
	return nil
}

// ParseLens decodes a lens document in the given format.
func ParseLens(d []byte, f format.Format) (Lens, error) {
	d, err := f.ToJSON(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	var l Lens
	if err := json.Unmarshal(d, &l); err != nil {
		return nil, wrapParse(err)
	}
	return l, nil
}

func decodeJSON(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return wrapParse(err)
	}
	return nil
}
