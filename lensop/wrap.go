package lensop

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/signadot/jsonlens/patch"
)

// WrapProperty turns a scalar property into a one element array. Writing
// null to the property empties the array.
type WrapProperty struct {
	Name string
}

func Wrap(name string) Op {
	return WrapProperty{Name: name}
}

func (WrapProperty) lensOp()    {}
func (WrapProperty) Kind() Kind { return KindWrap }

func (w WrapProperty) Apply(op patch.Operation) (*patch.Operation, error) {
	segs := patch.Split(op.Path)
	if len(segs) == 0 || segs[0] != w.Name {
		return keep(op)
	}
	target := append([]string{w.Name, "0"}, segs[1:]...)
	if op.Op.IsWrite() && len(segs) == 1 && op.Value == nil {
		return &patch.Operation{Op: patch.OpRemove, Path: patch.Join(target)}, nil
	}
	return rewrite(op, target)
}

func (w WrapProperty) Update(*Context) {}

func (w WrapProperty) Reverse() Op {
	return Head(w.Name)
}

func (w WrapProperty) String() string {
	return fmt.Sprintf("wrap(%s)", w.Name)
}

type nameJSON struct {
	Type Kind   `json:"type"`
	Name string `json:"name"`
}

func (w WrapProperty) MarshalJSON() ([]byte, error) {
	return json.Marshal(nameJSON{Type: KindWrap, Name: w.Name})
}

func decodeName(raw []byte) (string, error) {
	w := nameJSON{}
	if err := decodeJSON(raw, &w); err != nil {
		return "", err
	}
	if w.Name == "" {
		return "", fmt.Errorf("%w: %s: missing name", ErrParse, w.Type)
	}
	return w.Name, nil
}

func decodeWrap(raw []byte) (Op, error) {
	name, err := decodeName(raw)
	if err != nil {
		return nil, err
	}
	return Wrap(name), nil
}
