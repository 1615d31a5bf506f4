package lensop

import (
	"bytes"
	"fmt"
	"maps"
	"math"
	"strconv"

	json "github.com/goccy/go-json"
)

// ValueMapping is a pair of scalar lookup tables. Keys are canonical scalar
// keys as produced by ScalarKey, so the string "true" and the boolean true
// are distinct keys.
//
// In JSON, table member names that are JSON scalar text (true, 1.5, null,
// "quoted") stand for that scalar; any other name is a string.
type ValueMapping struct {
	Forward map[string]any
	Reverse map[string]any
}

type mappingJSON struct {
	Forward map[string]any `json:"forward"`
	Reverse map[string]any `json:"reverse"`
}

func (m ValueMapping) MarshalJSON() ([]byte, error) {
	return json.Marshal(mappingJSON{Forward: wireTable(m.Forward), Reverse: wireTable(m.Reverse)})
}

func (m *ValueMapping) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	w := mappingJSON{}
	if err := dec.Decode(&w); err != nil {
		return fmt.Errorf("%w: mapping: %w", ErrParse, err)
	}
	f, err := keyTable(parseWireTable(w.Forward))
	if err != nil {
		return fmt.Errorf("%w: mapping forward: %w", ErrParse, err)
	}
	r, err := keyTable(parseWireTable(w.Reverse))
	if err != nil {
		return fmt.Errorf("%w: mapping reverse: %w", ErrParse, err)
	}
	*m = ValueMapping{Forward: f, Reverse: r}
	return nil
}

func parseWireTable(in map[string]any) map[any]any {
	res := make(map[any]any, len(in))
	for name, v := range in {
		if sv, ok := scalarText(name); ok {
			res[sv] = v
			continue
		}
		res[name] = v
	}
	return res
}

// wireTable renders keys as member names that parseWireTable reads back
// as the same scalars.
func wireTable(in map[string]any) map[string]any {
	if in == nil {
		return map[string]any{}
	}
	res := make(map[string]any, len(in))
	for k, v := range in {
		name := k
		if sv, ok := scalarText(k); ok {
			if s, isStr := sv.(string); isStr {
				if _, ambiguous := scalarText(s); !ambiguous {
					name = s
				}
			}
		}
		res[name] = v
	}
	return res
}

// scalarText decodes s if it is the JSON text of a scalar.
func scalarText(s string) (any, bool) {
	if !json.Valid([]byte(s)) {
		return nil, false
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	switch v.(type) {
	case map[string]any, []any:
		return nil, false
	}
	return v, true
}

// NewValueMapping builds a mapping from tables keyed by arbitrary scalars.
func NewValueMapping(forward, reverse map[any]any) (ValueMapping, error) {
	f, err := keyTable(forward)
	if err != nil {
		return ValueMapping{}, fmt.Errorf("forward: %w", err)
	}
	r, err := keyTable(reverse)
	if err != nil {
		return ValueMapping{}, fmt.Errorf("reverse: %w", err)
	}
	return ValueMapping{Forward: f, Reverse: r}, nil
}

func MustValueMapping(forward, reverse map[any]any) ValueMapping {
	m, err := NewValueMapping(forward, reverse)
	if err != nil {
		panic(err)
	}
	return m
}

func keyTable(in map[any]any) (map[string]any, error) {
	res := make(map[string]any, len(in))
	for k, v := range in {
		sk, err := ScalarKey(k)
		if err != nil {
			return nil, err
		}
		res[sk] = v
	}
	return res, nil
}

// Lookup maps v through the forward table.
func (m ValueMapping) Lookup(v any) (any, error) {
	k, err := ScalarKey(v)
	if err != nil {
		return nil, err
	}
	res, ok := m.Forward[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoMapping, k)
	}
	return res, nil
}

// Swap returns the mapping with its tables exchanged.
func (m ValueMapping) Swap() ValueMapping {
	return ValueMapping{Forward: maps.Clone(m.Reverse), Reverse: maps.Clone(m.Forward)}
}

// ScalarKey renders a scalar as a lookup key, its JSON text: strings are
// quoted, booleans are true or false, null is null and numbers use their
// shortest decimal form. Composite values are rejected.
func ScalarKey(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "null", nil
	case string:
		d, err := json.Marshal(x)
		if err != nil {
			return "", err
		}
		return string(d), nil
	case bool:
		return strconv.FormatBool(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return x.String(), nil
		}
		return numberKey(f), nil
	case float64:
		return numberKey(x), nil
	case float32:
		return numberKey(float64(x)), nil
	case int:
		return strconv.Itoa(x), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	}
	return "", fmt.Errorf("%w: %T", ErrNotScalar, v)
}

func numberKey(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
