package lensop

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/signadot/jsonlens/patch"
)

// RemoveProperty drops a property. Its default is kept so that the reverse
// add can restore it.
type RemoveProperty struct {
	Name    string
	Default any
}

func Remove(name string, def any) Op {
	return RemoveProperty{Name: name, Default: def}
}

func (RemoveProperty) lensOp()    {}
func (RemoveProperty) Kind() Kind { return KindRemove }

func (r RemoveProperty) Apply(op patch.Operation) (*patch.Operation, error) {
	segs := patch.Split(op.Path)
	if len(segs) > 0 && segs[0] == r.Name {
		return drop()
	}
	return keep(op)
}

func (r RemoveProperty) Update(ctx *Context) {
	ctx.Remove(r.Name)
}

func (r RemoveProperty) Reverse() Op {
	return AddProperty(r)
}

func (r RemoveProperty) String() string {
	return fmt.Sprintf("remove(%s)", r.Name)
}

func (r RemoveProperty) MarshalJSON() ([]byte, error) {
	return json.Marshal(propertyJSON{Type: KindRemove, Name: r.Name, DefaultValue: r.Default})
}

func decodeRemove(raw []byte) (Op, error) {
	name, def, err := decodeProperty(raw)
	if err != nil {
		return nil, err
	}
	return Remove(name, def), nil
}
