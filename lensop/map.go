package lensop

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/signadot/jsonlens/patch"
)

// LensMap applies a lens to every element of the current array, or to
// every value of a numerically keyed object.
type LensMap struct {
	Lens Lens
}

func Map(ops ...Op) Op {
	return LensMap{Lens: Lens(ops)}
}

func (LensMap) lensOp()    {}
func (LensMap) Kind() Kind { return KindMap }

func (m LensMap) Apply(op patch.Operation) (*patch.Operation, error) {
	segs := patch.Split(op.Path)
	if len(segs) == 0 || !patch.IsIndex(segs[0]) {
		return keep(op)
	}
	res, err := m.Lens.Apply(op.WithPath(patch.Join(segs[1:])))
	if err != nil || res == nil {
		return res, err
	}
	return rewrite(*res, prepend(segs[0], patch.Split(res.Path)))
}

// Update applies the inner lens to ctx itself: index segments do not
// descend in the context tree.
func (m LensMap) Update(ctx *Context) {
	m.Lens.Update(ctx)
}

func (m LensMap) Reverse() Op {
	return LensMap{Lens: Reverse(m.Lens)}
}

func (m LensMap) String() string {
	return fmt.Sprintf("map(%s)", m.Lens)
}

type mapJSON struct {
	Type Kind `json:"type"`
	Lens Lens `json:"lens"`
}

func (m LensMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(mapJSON{Type: KindMap, Lens: m.Lens.orEmpty()})
}

func decodeMap(raw []byte) (Op, error) {
	w := mapJSON{}
	if err := decodeJSON(raw, &w); err != nil {
		return nil, err
	}
	return LensMap{Lens: w.Lens}, nil
}
