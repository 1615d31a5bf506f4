package patch

import (
	"bytes"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

type OpType string

const (
	OpAdd     OpType = "add"
	OpRemove  OpType = "remove"
	OpReplace OpType = "replace"
	OpMove    OpType = "move"
	OpCopy    OpType = "copy"
	OpTest    OpType = "test"
)

func (t OpType) Valid() bool {
	switch t {
	case OpAdd, OpRemove, OpReplace, OpMove, OpCopy, OpTest:
		return true
	}
	return false
}

// HasValue reports whether operations of this type carry a value.
func (t OpType) HasValue() bool {
	return t == OpAdd || t == OpReplace || t == OpTest
}

// IsWrite reports whether t is add or replace.
func (t OpType) IsWrite() bool {
	return t == OpAdd || t == OpReplace
}

// Operation is a single RFC 6902 edit. Operations are treated as immutable:
// the With* methods return modified copies.
type Operation struct {
	Op    OpType
	Path  string
	From  string
	Value any
}

// Patch is an ordered list of operations.
type Patch []Operation

func (o Operation) WithPath(path string) Operation {
	o.Path = path
	return o
}

func (o Operation) WithValue(v any) Operation {
	o.Value = v
	return o
}

func (o Operation) WithOp(t OpType) Operation {
	o.Op = t
	if !t.HasValue() {
		o.Value = nil
	}
	return o
}

func (o Operation) String() string {
	switch {
	case o.Op == OpMove || o.Op == OpCopy:
		return fmt.Sprintf("%s %q -> %q", o.Op, o.From, o.Path)
	case o.Op.HasValue():
		d, err := json.Marshal(o.Value)
		if err != nil {
			return fmt.Sprintf("%s %q %v", o.Op, o.Path, o.Value)
		}
		return fmt.Sprintf("%s %q %s", o.Op, o.Path, d)
	default:
		return fmt.Sprintf("%s %q", o.Op, o.Path)
	}
}

type wireOp struct {
	Op    OpType          `json:"op"`
	Path  string          `json:"path"`
	From  string          `json:"from,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

func (o Operation) MarshalJSON() ([]byte, error) {
	w := wireOp{Op: o.Op, Path: o.Path, From: o.From}
	if o.Op.HasValue() {
		d, err := json.Marshal(o.Value)
		if err != nil {
			return nil, fmt.Errorf("encoding value of %s %q: %w", o.Op, o.Path, err)
		}
		w.Value = d
	}
	return json.Marshal(w)
}

func (o *Operation) UnmarshalJSON(d []byte) error {
	w := wireOp{}
	if err := json.Unmarshal(d, &w); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if !w.Op.Valid() {
		return fmt.Errorf("%w: unknown op %q", ErrDecode, w.Op)
	}
	if err := CheckPointer(w.Path); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	res := Operation{Op: w.Op, Path: w.Path, From: w.From}
	if w.Op == OpMove || w.Op == OpCopy {
		if err := CheckPointer(w.From); err != nil {
			return fmt.Errorf("%w: from: %w", ErrDecode, err)
		}
	}
	if w.Op.HasValue() && len(w.Value) != 0 {
		v, err := DecodeValue(w.Value)
		if err != nil {
			return err
		}
		res.Value = v
	}
	*o = res
	return nil
}

// DecodePatch decodes an RFC 6902 patch document.
func DecodePatch(d []byte) (Patch, error) {
	var p Patch
	if err := json.Unmarshal(d, &p); err != nil {
		return nil, wrapDecode(err)
	}
	return p, nil
}

// DecodeValue decodes a JSON value into the generic model, keeping numbers as
// json.Number.
func DecodeValue(d []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return v, nil
}

// Normalize converts any JSON-marshalable Go value to the generic model used
// by this package.
func Normalize(v any) (any, error) {
	switch v.(type) {
	case nil, bool, string, json.Number, map[string]any, []any:
		return v, nil
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return DecodeValue(d)
}

func wrapDecode(err error) error {
	if err == nil || errors.Is(err, ErrDecode) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrDecode, err)
}
