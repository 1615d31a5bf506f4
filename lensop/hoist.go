package lensop

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/signadot/jsonlens/patch"
)

// HoistProperty moves host/name up to name.
type HoistProperty struct {
	Host string
	Name string
}

func Hoist(host, name string) Op {
	return HoistProperty{Host: host, Name: name}
}

func (HoistProperty) lensOp()    {}
func (HoistProperty) Kind() Kind { return KindHoist }

func (h HoistProperty) Apply(op patch.Operation) (*patch.Operation, error) {
	segs := patch.Split(op.Path)
	if len(segs) < 2 || segs[0] != h.Host || segs[1] != h.Name {
		return keep(op)
	}
	return rewrite(op, segs[1:])
}

func (h HoistProperty) Update(ctx *Context) {
	host := ctx.Lookup(h.Host)
	if host == nil {
		return
	}
	if sub := host.Remove(h.Name); sub != nil {
		ctx.Set(h.Name, sub)
	}
}

func (h HoistProperty) Reverse() Op {
	return Plunge(h.Host, h.Name)
}

func (h HoistProperty) String() string {
	return fmt.Sprintf("hoist(%s/%s)", h.Host, h.Name)
}

type hostJSON struct {
	Type Kind   `json:"type"`
	Host string `json:"host"`
	Name string `json:"name"`
}

func (h HoistProperty) MarshalJSON() ([]byte, error) {
	return json.Marshal(hostJSON{Type: KindHoist, Host: h.Host, Name: h.Name})
}

func decodeHost(raw []byte) (string, string, error) {
	w := hostJSON{}
	if err := decodeJSON(raw, &w); err != nil {
		return "", "", err
	}
	if w.Host == "" || w.Name == "" {
		return "", "", fmt.Errorf("%w: %s: host and name are required", ErrParse, w.Type)
	}
	return w.Host, w.Name, nil
}

func decodeHoist(raw []byte) (Op, error) {
	host, name, err := decodeHost(raw)
	if err != nil {
		return nil, err
	}
	return Hoist(host, name), nil
}
