package lensop

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/signadot/jsonlens/patch"
)

// HeadProperty replaces an array property with its first element. Writes
// to other elements are dropped.
type HeadProperty struct {
	Name string
}

func Head(name string) Op {
	return HeadProperty{Name: name}
}

func (HeadProperty) lensOp()    {}
func (HeadProperty) Kind() Kind { return KindHead }

func (h HeadProperty) Apply(op patch.Operation) (*patch.Operation, error) {
	segs := patch.Split(op.Path)
	if len(segs) == 0 || segs[0] != h.Name {
		return keep(op)
	}
	if len(segs) < 2 || segs[1] != "0" {
		return drop()
	}
	rest := segs[2:]
	target := prepend(h.Name, rest)
	switch op.Op {
	case patch.OpAdd, patch.OpReplace:
		return rewrite(op, target)
	case patch.OpRemove:
		if len(rest) == 0 {
			return &patch.Operation{Op: patch.OpReplace, Path: patch.Join(target)}, nil
		}
		return rewrite(op, target)
	default:
		return keep(op)
	}
}

func (h HeadProperty) Update(*Context) {}

func (h HeadProperty) Reverse() Op {
	return Wrap(h.Name)
}

func (h HeadProperty) String() string {
	return fmt.Sprintf("head(%s)", h.Name)
}

func (h HeadProperty) MarshalJSON() ([]byte, error) {
	return json.Marshal(nameJSON{Type: KindHead, Name: h.Name})
}

func decodeHead(raw []byte) (Op, error) {
	name, err := decodeName(raw)
	if err != nil {
		return nil, err
	}
	return Head(name), nil
}
