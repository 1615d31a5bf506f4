package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/jsonlens/format"
	"github.com/signadot/jsonlens/lensop"
)

func TestInFormat(t *testing.T) {
	cfg := &MainConfig{}
	for path, want := range map[string]format.Format{
		"lens.yaml": format.YAMLFormat,
		"lens.yml":  format.YAMLFormat,
		"lens.json": format.JSONFormat,
		"lens":      format.JSONFormat,
		"-":         format.JSONFormat,
	} {
		if got := cfg.inFormat(path); got != want {
			t.Errorf("%s: got %s want %s", path, got, want)
		}
	}
	y := format.YAMLFormat
	cfg.InFormat = &y
	if got := cfg.inFormat("lens.json"); got != format.YAMLFormat {
		t.Errorf("-I not honored, got %s", got)
	}
}

func TestGetLens(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"lens.json": `[{"type": "rename", "source": "a", "target": "b"}]`,
		"lens.yaml": "- type: rename\n  source: a\n  target: b\n",
	}
	want := lensop.Lens{lensop.Rename("a", "b")}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		got, err := getLens(&MainConfig{}, nil, path)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", name, diff)
		}
	}
}

func TestGetDocYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")
	if err := os.WriteFile(path, []byte("name: x\ntags: [a]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := getDoc(&MainConfig{}, nil, path)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"name": "x", "tags": []any{"a"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestStdinArg(t *testing.T) {
	tests := []struct {
		args []string
		n    int
		want []string
	}{
		{[]string{"lens.json"}, 2, []string{"lens.json", "-"}},
		{[]string{"lens.json", "doc.json"}, 2, []string{"lens.json", "doc.json"}},
		{nil, 1, []string{"-"}},
		{nil, 2, nil},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, stdinArg(tc.args, tc.n)); diff != "" {
			t.Errorf("%v (-want +got):\n%s", tc.args, diff)
		}
	}
}
