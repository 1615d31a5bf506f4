package lensop

import (
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/signadot/jsonlens/format"
)

const lensJSON = `[
  {"type": "rename", "source": "title", "target": "name"},
  {"type": "add", "name": "description", "defaultValue": ""},
  {"type": "remove", "name": "legacy", "defaultValue": null},
  {"type": "convert", "name": "complete", "mapping": {"forward": {"true": "done", "false": "todo"}, "reverse": {"done": true, "todo": false}}},
  {"type": "hoist", "host": "metadata", "name": "created_at"},
  {"type": "plunge", "host": "metadata", "name": "title"},
  {"type": "wrap", "name": "assignee"},
  {"type": "head", "name": "owners"},
  {"type": "in", "name": "tags", "lens": [{"type": "map", "lens": [{"type": "add", "name": "important", "defaultValue": false}]}]}
]`

func wantLens() Lens {
	return Lens{
		Rename("title", "name"),
		Add("description", ""),
		Remove("legacy", nil),
		Convert("complete", MustValueMapping(
			map[any]any{true: "done", false: "todo"},
			map[any]any{"done": true, "todo": false},
		)),
		Hoist("metadata", "created_at"),
		Plunge("metadata", "title"),
		Wrap("assignee"),
		Head("owners"),
		In("tags", Map(Add("important", false))),
	}
}

func TestParseLensJSON(t *testing.T) {
	l, err := ParseLens([]byte(lensJSON), format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(wantLens(), l); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	d, err := json.Marshal(l)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ParseLens(d, format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(l, back); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestParseLensYAML(t *testing.T) {
	src := `
- type: rename
  source: title
  target: name
- type: in
  name: details
  lens:
  - type: add
    name: weight
    defaultValue: 0
`
	l, err := ParseLens([]byte(src), format.YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	want := Lens{Rename("title", "name"), In("details", Add("weight", json.Number("0")))}
	if diff := cmp.Diff(want, l); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseLensErrors(t *testing.T) {
	for _, src := range []string{
		`[{"type": "frob"}]`,
		`[{"type": "rename", "source": "a"}]`,
		`[{"type": "add"}]`,
		`[{"type": "in", "name": "x", "lens": [{"type": "nope"}]}]`,
		`{"type": "add"}`,
		`[1]`,
	} {
		_, err := ParseLens([]byte(src), format.JSONFormat)
		if !errors.Is(err, ErrParse) {
			t.Errorf("%s: expected ErrParse, got %v", src, err)
		}
	}
}

func TestEmptyLensJSON(t *testing.T) {
	d, err := json.Marshal(Map())
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"type":"map","lens":[]}` {
		t.Errorf("got %s", d)
	}
}

func TestKinds(t *testing.T) {
	want := []Kind{KindAdd, KindConvert, KindHead, KindHoist, KindIn, KindMap, KindPlunge, KindRemove, KindRename, KindWrap}
	if diff := cmp.Diff(want, Kinds()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if Known("frob") {
		t.Error("frob is not an operator")
	}
}

func TestScalarKey(t *testing.T) {
	tests := []struct {
		in   any
		want string
		err  error
	}{
		{in: nil, want: "null"},
		{in: true, want: "true"},
		{in: "x", want: `"x"`},
		{in: "true", want: `"true"`},
		{in: "1", want: `"1"`},
		{in: json.Number("1.0"), want: "1"},
		{in: json.Number("2.5"), want: "2.5"},
		{in: 3, want: "3"},
		{in: float64(3), want: "3"},
		{in: []any{}, err: ErrNotScalar},
		{in: map[string]any{}, err: ErrNotScalar},
	}
	for _, tc := range tests {
		got, err := ScalarKey(tc.in)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("%v: expected %v got %v", tc.in, tc.err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%v: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v: got %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestValueMapping(t *testing.T) {
	m := MustValueMapping(map[any]any{1: "one", "2": "two"}, nil)
	if v, err := m.Lookup(json.Number("1")); err != nil || v != "one" {
		t.Errorf("got %v %v", v, err)
	}
	if v, err := m.Lookup("2"); err != nil || v != "two" {
		t.Errorf("got %v %v", v, err)
	}
	for _, miss := range []any{2, "1", 3} {
		if _, err := m.Lookup(miss); !errors.Is(err, ErrNoMapping) {
			t.Errorf("%#v: expected ErrNoMapping, got %v", miss, err)
		}
	}
	b := MustValueMapping(map[any]any{true: "done"}, nil)
	if _, err := b.Lookup("true"); !errors.Is(err, ErrNoMapping) {
		t.Errorf("string true: expected ErrNoMapping, got %v", err)
	}
	if _, err := NewValueMapping(map[any]any{1.5: []int{1}}, map[any]any{struct{}{}: 1}); !errors.Is(err, ErrNotScalar) {
		t.Errorf("expected ErrNotScalar, got %v", err)
	}
}

func TestValueMappingJSON(t *testing.T) {
	const in = `{
		"forward": {"true": "done", "\"true\"": "yes", "todo": 1, "1.0": "one", "null": "none", "[1]": "list"},
		"reverse": {}
	}`
	var m ValueMapping
	if err := json.Unmarshal([]byte(in), &m); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		in   any
		want any
	}{
		{in: true, want: "done"},
		{in: "true", want: "yes"},
		{in: "todo", want: json.Number("1")},
		{in: json.Number("1"), want: "one"},
		{in: nil, want: "none"},
		{in: "[1]", want: "list"},
	}
	for _, tc := range tests {
		got, err := m.Lookup(tc.in)
		if err != nil {
			t.Errorf("%#v: %v", tc.in, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%#v (-want +got):\n%s", tc.in, diff)
		}
	}
	d, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	var back ValueMapping
	if err := json.Unmarshal(d, &back); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(m, back); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}
