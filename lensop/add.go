package lensop

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/signadot/jsonlens/patch"
)

// AddProperty introduces a property with a default value. It does not
// rewrite patches: the default is supplied when the enclosing object is
// created.
type AddProperty struct {
	Name    string
	Default any
}

func Add(name string, def any) Op {
	return AddProperty{Name: name, Default: def}
}

func (AddProperty) lensOp()    {}
func (AddProperty) Kind() Kind { return KindAdd }

func (a AddProperty) Apply(op patch.Operation) (*patch.Operation, error) {
	return keep(op)
}

func (a AddProperty) Update(ctx *Context) {
	ctx.SetDefault(a.Name, a.Default)
}

func (a AddProperty) Reverse() Op {
	return RemoveProperty(a)
}

func (a AddProperty) String() string {
	return fmt.Sprintf("add(%s)", a.Name)
}

type propertyJSON struct {
	Type         Kind   `json:"type"`
	Name         string `json:"name"`
	DefaultValue any    `json:"defaultValue"`
}

func (a AddProperty) MarshalJSON() ([]byte, error) {
	return json.Marshal(propertyJSON{Type: KindAdd, Name: a.Name, DefaultValue: a.Default})
}

func decodeProperty(raw []byte) (string, any, error) {
	w := propertyJSON{}
	if err := decodeJSON(raw, &w); err != nil {
		return "", nil, err
	}
	if w.Name == "" {
		return "", nil, fmt.Errorf("%w: %s: missing name", ErrParse, w.Type)
	}
	return w.Name, w.DefaultValue, nil
}

func decodeAdd(raw []byte) (Op, error) {
	name, def, err := decodeProperty(raw)
	if err != nil {
		return nil, err
	}
	return Add(name, def), nil
}
