package lensop

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/signadot/jsonlens/patch"
)

// RenameProperty renames a property of the current object.
type RenameProperty struct {
	Source string
	Target string
}

func Rename(source, target string) Op {
	return RenameProperty{Source: source, Target: target}
}

func (RenameProperty) lensOp()    {}
func (RenameProperty) Kind() Kind { return KindRename }

func (r RenameProperty) Apply(op patch.Operation) (*patch.Operation, error) {
	if !op.Op.IsWrite() {
		return keep(op)
	}
	segs := patch.Split(op.Path)
	if len(segs) == 0 || segs[0] != r.Source {
		return keep(op)
	}
	segs[0] = r.Target
	return rewrite(op, segs)
}

func (r RenameProperty) Update(ctx *Context) {
	if sub := ctx.Remove(r.Source); sub != nil {
		ctx.Set(r.Target, sub)
	}
}

func (r RenameProperty) Reverse() Op {
	return Rename(r.Target, r.Source)
}

func (r RenameProperty) String() string {
	return fmt.Sprintf("rename(%s->%s)", r.Source, r.Target)
}

type renameJSON struct {
	Type   Kind   `json:"type"`
	Source string `json:"source"`
	Target string `json:"target"`
}

func (r RenameProperty) MarshalJSON() ([]byte, error) {
	return json.Marshal(renameJSON{Type: KindRename, Source: r.Source, Target: r.Target})
}

func decodeRename(raw []byte) (Op, error) {
	w := renameJSON{}
	if err := decodeJSON(raw, &w); err != nil {
		return nil, err
	}
	if w.Source == "" || w.Target == "" {
		return nil, fmt.Errorf("%w: rename: source and target are required", ErrParse)
	}
	return Rename(w.Source, w.Target), nil
}
