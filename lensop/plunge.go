package lensop

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/signadot/jsonlens/patch"
)

// PlungeProperty moves name down into host/name. The host object must
// exist when the moved value is written.
type PlungeProperty struct {
	Host string
	Name string
}

func Plunge(host, name string) Op {
	return PlungeProperty{Host: host, Name: name}
}

func (PlungeProperty) lensOp()    {}
func (PlungeProperty) Kind() Kind { return KindPlunge }

func (p PlungeProperty) Apply(op patch.Operation) (*patch.Operation, error) {
	segs := patch.Split(op.Path)
	if len(segs) == 0 || segs[0] != p.Name {
		return keep(op)
	}
	return rewrite(op, prepend(p.Host, segs))
}

func (p PlungeProperty) Update(ctx *Context) {
	if sub := ctx.Remove(p.Name); sub != nil {
		ctx.Child(p.Host).Set(p.Name, sub)
	}
}

func (p PlungeProperty) Reverse() Op {
	return Hoist(p.Host, p.Name)
}

func (p PlungeProperty) String() string {
	return fmt.Sprintf("plunge(%s/%s)", p.Host, p.Name)
}

func (p PlungeProperty) MarshalJSON() ([]byte, error) {
	return json.Marshal(hostJSON{Type: KindPlunge, Host: p.Host, Name: p.Name})
}

func decodePlunge(raw []byte) (Op, error) {
	host, name, err := decodeHost(raw)
	if err != nil {
		return nil, err
	}
	return Plunge(host, name), nil
}
