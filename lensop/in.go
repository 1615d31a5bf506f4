package lensop

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/signadot/jsonlens/patch"
)

// LensIn applies a lens to the object held by a property.
type LensIn struct {
	Name string
	Lens Lens
}

func In(name string, ops ...Op) Op {
	return LensIn{Name: name, Lens: Lens(ops)}
}

func (LensIn) lensOp()    {}
func (LensIn) Kind() Kind { return KindIn }

func (l LensIn) Apply(op patch.Operation) (*patch.Operation, error) {
	segs := patch.Split(op.Path)
	if len(segs) == 0 || segs[0] != l.Name {
		return keep(op)
	}
	res, err := l.Lens.Apply(op.WithPath(patch.Join(segs[1:])))
	if err != nil || res == nil {
		return res, err
	}
	return rewrite(*res, prepend(l.Name, patch.Split(res.Path)))
}

func (l LensIn) Update(ctx *Context) {
	l.Lens.Update(ctx.Child(l.Name))
}

func (l LensIn) Reverse() Op {
	return LensIn{Name: l.Name, Lens: Reverse(l.Lens)}
}

func (l LensIn) String() string {
	return fmt.Sprintf("in(%s, %s)", l.Name, l.Lens)
}

type inJSON struct {
	Type Kind   `json:"type"`
	Name string `json:"name"`
	Lens Lens   `json:"lens"`
}

func (l LensIn) MarshalJSON() ([]byte, error) {
	return json.Marshal(inJSON{Type: KindIn, Name: l.Name, Lens: l.Lens.orEmpty()})
}

func decodeIn(raw []byte) (Op, error) {
	w := inJSON{}
	if err := decodeJSON(raw, &w); err != nil {
		return nil, err
	}
	if w.Name == "" {
		return nil, fmt.Errorf("%w: in: missing name", ErrParse)
	}
	return LensIn{Name: w.Name, Lens: w.Lens}, nil
}
