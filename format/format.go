// Package format names the encodings jsonlens reads and writes for lenses,
// rule sets, patches and documents. JSON is the native form; the others are
// converted to and from JSON at the edges.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
)

type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

type spec struct {
	name    string
	aliases []string
	exts    []string
}

var specs = []spec{
	JSONFormat: {name: "json", aliases: []string{"j"}, exts: []string{".json"}},
	YAMLFormat: {name: "yaml", aliases: []string{"y", "yml"}, exts: []string{".yaml", ".yml"}},
}

// AllFormats returns the formats in preference order.
func AllFormats() []Format {
	res := make([]Format, len(specs))
	for i := range specs {
		res[i] = Format(i)
	}
	return res
}

// ParseFormat accepts a format name or alias in any case.
func ParseFormat(v string) (Format, error) {
	lv := strings.ToLower(v)
	for i, s := range specs {
		if lv == s.name || slices.Contains(s.aliases, lv) {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromPath gives the format of a file by its extension. Unknown
// extensions, and stdin, are JSON.
func FromPath(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	for i, s := range specs {
		if slices.Contains(s.exts, ext) {
			return Format(i)
		}
	}
	return JSONFormat
}

func (f Format) valid() bool { return f >= 0 && int(f) < len(specs) }

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("format(%d)", int(f))
	}
	return specs[f].name
}

func (f Format) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(specs[f].name), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix is the preferred file extension, with the dot.
func (f Format) Suffix() string {
	if !f.valid() {
		return ""
	}
	return specs[f].exts[0]
}

// ToJSON converts d, encoded in f, to JSON.
func (f Format) ToJSON(d []byte) ([]byte, error) {
	switch f {
	case JSONFormat:
		return d, nil
	case YAMLFormat:
		j, err := yaml.YAMLToJSON(d)
		if err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
		return j, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
}

// FromJSON converts the JSON d to f.
func (f Format) FromJSON(d []byte) ([]byte, error) {
	switch f {
	case JSONFormat:
		return d, nil
	case YAMLFormat:
		y, err := yaml.JSONToYAML(d)
		if err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
		return y, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
}
