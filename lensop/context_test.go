package lensop

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestContextDefaults(t *testing.T) {
	ctx := NewContext()
	if _, ok := ctx.Default("a"); ok {
		t.Error("unexpected default")
	}
	ctx.SetDefault("a", "x")
	if v, ok := ctx.Default("a"); !ok || v != "x" {
		t.Errorf("got %v %t", v, ok)
	}
	ctx.SetDefault("a", nil)
	if _, ok := ctx.Default("a"); ok {
		t.Error("nil default was recorded")
	}
	ctx.SetDefault("b", false)
	if v, ok := ctx.TakeDefault("b"); !ok || v != false {
		t.Errorf("got %v %t", v, ok)
	}
	if _, ok := ctx.TakeDefault("b"); ok {
		t.Error("default survived take")
	}
	if diff := cmp.Diff([]string{"a", "b"}, ctx.Names()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestContextResolve(t *testing.T) {
	ctx := NewContext()
	sub := ctx.Resolve("/tags/123/name")
	if sub != ctx.Child("tags").Child("name") {
		t.Error("index segment descended")
	}
	if ctx.Resolve("") != ctx {
		t.Error("root pointer did not resolve to root")
	}
	if ctx.Resolve("/a~1b") != ctx.Lookup("a/b") {
		t.Error("escaped segment")
	}
}

func TestContextUpdate(t *testing.T) {
	tests := []struct {
		name string
		lens Lens
		want map[string]any
	}{
		{
			name: "add",
			lens: Lens{Add("a", "x")},
			want: map[string]any{"children": map[string]any{"a": map[string]any{"default": "x"}}},
		},
		{
			name: "add remove",
			lens: Lens{Add("a", "x"), Remove("a", "x")},
			want: map[string]any{},
		},
		{
			name: "rename moves subtree",
			lens: Lens{In("a", Add("b", 1)), Rename("a", "c")},
			want: map[string]any{"children": map[string]any{
				"c": map[string]any{"children": map[string]any{"b": map[string]any{"default": 1}}},
			}},
		},
		{
			name: "hoist",
			lens: Lens{In("h", Add("n", true)), Hoist("h", "n")},
			want: map[string]any{"children": map[string]any{
				"h": map[string]any{},
				"n": map[string]any{"default": true},
			}},
		},
		{
			name: "hoist missing host",
			lens: Lens{Hoist("h", "n")},
			want: map[string]any{},
		},
		{
			name: "plunge",
			lens: Lens{Add("n", "v"), Plunge("h", "n")},
			want: map[string]any{"children": map[string]any{
				"h": map[string]any{"children": map[string]any{"n": map[string]any{"default": "v"}}},
			}},
		},
		{
			name: "map stays in place",
			lens: Lens{In("tags", Map(Add("name", "")))},
			want: map[string]any{"children": map[string]any{
				"tags": map[string]any{"children": map[string]any{"name": map[string]any{"default": ""}}},
			}},
		},
		{
			name: "no effect",
			lens: Lens{Wrap("a"), Head("a"), Convert("a", statusMapping)},
			want: map[string]any{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := NewContext()
			tc.lens.Update(ctx)
			if diff := cmp.Diff(tc.want, ctx.Tree()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}
