package lensop

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/signadot/jsonlens/patch"
)

// ConvertValue maps the scalar value of a property through a lookup table.
type ConvertValue struct {
	Name    string
	Mapping ValueMapping
}

func Convert(name string, m ValueMapping) Op {
	return ConvertValue{Name: name, Mapping: m}
}

func (ConvertValue) lensOp()    {}
func (ConvertValue) Kind() Kind { return KindConvert }

func (c ConvertValue) Apply(op patch.Operation) (*patch.Operation, error) {
	if !op.Op.IsWrite() {
		return keep(op)
	}
	segs := patch.Split(op.Path)
	if len(segs) != 1 || segs[0] != c.Name {
		return keep(op)
	}
	v, err := c.Mapping.Lookup(op.Value)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", op.Path, err)
	}
	res := op.WithValue(v)
	return &res, nil
}

func (c ConvertValue) Update(*Context) {}

func (c ConvertValue) Reverse() Op {
	return Convert(c.Name, c.Mapping.Swap())
}

func (c ConvertValue) String() string {
	return fmt.Sprintf("convert(%s)", c.Name)
}

type convertJSON struct {
	Type    Kind         `json:"type"`
	Name    string       `json:"name"`
	Mapping ValueMapping `json:"mapping"`
}

func (c ConvertValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(convertJSON{Type: KindConvert, Name: c.Name, Mapping: c.Mapping})
}

func decodeConvert(raw []byte) (Op, error) {
	w := convertJSON{}
	if err := decodeJSON(raw, &w); err != nil {
		return nil, err
	}
	if w.Name == "" {
		return nil, fmt.Errorf("%w: convert: missing name", ErrParse)
	}
	return Convert(w.Name, w.Mapping), nil
}
