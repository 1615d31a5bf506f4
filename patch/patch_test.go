package patch

import (
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

func mustValue(t *testing.T, s string) any {
	t.Helper()
	v, err := DecodeValue([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func mustPatch(t *testing.T, s string) Patch {
	t.Helper()
	p, err := DecodePatch([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestPointer(t *testing.T) {
	tests := []struct {
		ptr  string
		segs []string
	}{
		{"", nil},
		{"/a", []string{"a"}},
		{"/a/0/b", []string{"a", "0", "b"}},
		{"/a~1b/c~0d", []string{"a/b", "c~d"}},
		{"/~01", []string{"~1"}},
		{"/", []string{""}},
	}
	for _, tc := range tests {
		segs := Split(tc.ptr)
		if diff := cmp.Diff(tc.segs, segs); diff != "" {
			t.Errorf("Split(%q) (-want +got):\n%s", tc.ptr, diff)
		}
		if got := Join(segs); got != tc.ptr {
			t.Errorf("Join(Split(%q)) = %q", tc.ptr, got)
		}
	}
}

func TestIsIndex(t *testing.T) {
	for seg, want := range map[string]bool{
		"0":   true,
		"123": true,
		"":    false,
		"-":   false,
		"1a":  false,
		"a":   false,
	} {
		if got := IsIndex(seg); got != want {
			t.Errorf("IsIndex(%q) = %t, want %t", seg, got, want)
		}
	}
}

func TestCheckPointer(t *testing.T) {
	if err := CheckPointer("a/b"); !errors.Is(err, ErrBadPointer) {
		t.Errorf("expected ErrBadPointer, got %v", err)
	}
	if err := CheckPointer("/a/b"); err != nil {
		t.Error(err)
	}
}

func TestOperationJSON(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{
			op:   Operation{Op: OpAdd, Path: "/a", Value: nil},
			want: `{"op":"add","path":"/a","value":null}`,
		},
		{
			op:   Operation{Op: OpRemove, Path: "/a/0"},
			want: `{"op":"remove","path":"/a/0"}`,
		},
		{
			op:   Operation{Op: OpMove, Path: "/b", From: "/a"},
			want: `{"op":"move","path":"/b","from":"/a"}`,
		},
		{
			op:   Operation{Op: OpReplace, Path: "/x", Value: map[string]any{"y": true}},
			want: `{"op":"replace","path":"/x","value":{"y":true}}`,
		},
	}
	for _, tc := range tests {
		d, err := json.Marshal(tc.op)
		if err != nil {
			t.Fatal(err)
		}
		if string(d) != tc.want {
			t.Errorf("got %s want %s", d, tc.want)
		}
		var back Operation
		if err := json.Unmarshal(d, &back); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(tc.op, back); diff != "" {
			t.Errorf("round trip (-want +got):\n%s", diff)
		}
	}
}

func TestDecodePatchErrors(t *testing.T) {
	for _, in := range []string{
		`[{"op":"frob","path":"/a"}]`,
		`[{"op":"add","path":"a","value":1}]`,
		`{"op":"add"}`,
		`[`,
	} {
		if _, err := DecodePatch([]byte(in)); !errors.Is(err, ErrDecode) {
			t.Errorf("%s: expected ErrDecode, got %v", in, err)
		}
	}
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name string
		in   Operation
		want string
	}{
		{
			name: "scalar",
			in:   Operation{Op: OpAdd, Path: "/title", Value: "hi"},
			want: `[{"op":"add","path":"/title","value":"hi"}]`,
		},
		{
			name: "remove",
			in:   Operation{Op: OpRemove, Path: "/title"},
			want: `[{"op":"remove","path":"/title"}]`,
		},
		{
			name: "nested",
			in: Operation{Op: OpAdd, Path: "/tags", Value: mustValue(t,
				`{"123": {"name": "bug", "color": "red"}, "a/b": [1, {"x": null}]}`)},
			want: `[
				{"op":"add","path":"/tags","value":{}},
				{"op":"add","path":"/tags/123","value":{}},
				{"op":"add","path":"/tags/123/color","value":"red"},
				{"op":"add","path":"/tags/123/name","value":"bug"},
				{"op":"add","path":"/tags/a~1b","value":[]},
				{"op":"add","path":"/tags/a~1b/0","value":1},
				{"op":"add","path":"/tags/a~1b/1","value":{}},
				{"op":"add","path":"/tags/a~1b/1/x","value":null}
			]`,
		},
		{
			name: "replace",
			in:   Operation{Op: OpReplace, Path: "/a", Value: []any{"x"}},
			want: `[
				{"op":"replace","path":"/a","value":[]},
				{"op":"replace","path":"/a/0","value":"x"}
			]`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Expand(tc.in)
			if diff := cmp.Diff(mustPatch(t, tc.want), got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestExpandAll(t *testing.T) {
	p := mustPatch(t, `[{"op":"add","path":"/a","value":{"b":1}},{"op":"remove","path":"/c"}]`)
	want := mustPatch(t, `[
		{"op":"add","path":"/a","value":{}},
		{"op":"add","path":"/a/b","value":1},
		{"op":"remove","path":"/c"}
	]`)
	if diff := cmp.Diff(want, ExpandAll(p)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestExpandApply(t *testing.T) {
	tests := []struct {
		name string
		op   string
	}{
		{name: "scalar", op: `{"op":"add","path":"/x","value":1}`},
		{name: "nested objects", op: `{"op":"add","path":"/x","value":{"a":{"b":{"c":true}},"d":null}}`},
		{name: "arrays", op: `{"op":"add","path":"/x","value":[[1,2],[],{"a":[3]}]}`},
		{name: "escaped keys", op: `{"op":"add","path":"/x~1y","value":{"a/b":{"c~d":"e"},"f":1}}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := mustPatch(t, "["+tc.op+"]")
			base := map[string]any{}
			want, err := Apply(p, base)
			if err != nil {
				t.Fatal(err)
			}
			got, err := Apply(Expand(p[0]), base)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiff(t *testing.T) {
	got, err := Diff(map[string]any{}, mustValue(t, `{"title": "hi", "details": {"age": 3}}`))
	if err != nil {
		t.Fatal(err)
	}
	want := mustPatch(t, `[
		{"op":"add","path":"/details","value":{"age":3}},
		{"op":"add","path":"/title","value":"hi"}
	]`)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	got, err = Diff(map[string]any{}, mustValue(t, `{"id": 9007199254740993}`))
	if err != nil {
		t.Fatal(err)
	}
	want = Patch{{Op: OpAdd, Path: "/id", Value: json.Number("9007199254740993")}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("big integer (-want +got):\n%s", diff)
	}
	got, err = Diff(map[string]any{"a": 1}, map[string]any{"a": 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty diff, got %v", got)
	}
}

func TestApply(t *testing.T) {
	doc := mustValue(t, `{"a": {"b": [1]}}`)
	p := mustPatch(t, `[
		{"op":"add","path":"/a/c","value":"x"},
		{"op":"remove","path":"/a/b/0"},
		{"op":"move","from":"/a/c","path":"/d"}
	]`)
	got, err := Apply(p, doc)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(mustValue(t, `{"a": {"b": []}, "d": "x"}`), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(mustValue(t, `{"a": {"b": [1]}}`), doc); diff != "" {
		t.Errorf("input modified (-want +got):\n%s", diff)
	}
	_, err = Apply(mustPatch(t, `[{"op":"add","path":"/x/y","value":1}]`), doc)
	if !errors.Is(err, ErrApply) {
		t.Errorf("expected ErrApply, got %v", err)
	}
}

func TestGet(t *testing.T) {
	doc := mustValue(t, `{"a": {"b": [1, {"c~d": null}]}, "e/f": 2}`)
	tests := []struct {
		ptr   string
		want  any
		found bool
	}{
		{ptr: "", want: doc, found: true},
		{ptr: "/a/b/0", want: json.Number("1"), found: true},
		{ptr: "/a/b/1/c~0d", want: nil, found: true},
		{ptr: "/e~1f", want: json.Number("2"), found: true},
		{ptr: "/a/b/2"},
		{ptr: "/a/b/x"},
		{ptr: "/a/x"},
		{ptr: "/e~1f/g"},
	}
	for _, tc := range tests {
		got, found := Get(doc, tc.ptr)
		if found != tc.found {
			t.Errorf("%q: found %t", tc.ptr, found)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tc.ptr, diff)
		}
	}
}

func TestParent(t *testing.T) {
	for ptr, want := range map[string]string{"": "", "/a": "", "/a/b": "/a", "/a~1b/0": "/a~1b"} {
		if got := Parent(ptr); got != want {
			t.Errorf("Parent(%q) = %q want %q", ptr, got, want)
		}
	}
}

func TestNormalize(t *testing.T) {
	type item struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	got, err := Normalize(item{Name: "x", Count: 2})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]any{"name": "x", "count": json.Number("2")}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestClone(t *testing.T) {
	orig := map[string]any{"a": []any{map[string]any{"b": "c"}}}
	c := Clone(orig).(map[string]any)
	c["a"].([]any)[0].(map[string]any)["b"] = "d"
	if orig["a"].([]any)[0].(map[string]any)["b"] != "c" {
		t.Error("clone shares nested state")
	}
	if Clone(nil) != nil {
		t.Error("Clone(nil) != nil")
	}
}
