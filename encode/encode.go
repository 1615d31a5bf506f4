package encode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/signadot/jsonlens/patch"
)

// Encode writes v as JSON or YAML. JSON output is indented unless
// EncodeWire is given.
func Encode(v any, w io.Writer, opts ...EncodeOption) error {
	d, err := render(v, newEncState(opts))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func render(v any, es *EncState) ([]byte, error) {
	var (
		d   []byte
		err error
	)
	if es.wire && !es.format.IsYAML() {
		d, err = json.Marshal(v)
	} else {
		d, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("encoding %T: %w", v, err)
	}
	if es.format.IsYAML() {
		if d, err = es.format.FromJSON(d); err != nil {
			return nil, fmt.Errorf("converting to yaml: %w", err)
		}
		return d, nil
	}
	return append(d, '\n'), nil
}

// EncodePatch writes p. With colors it writes one operation per line as
// "op path value"; otherwise it behaves as Encode.
func EncodePatch(p patch.Patch, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if es.colors == nil {
		if p == nil {
			p = patch.Patch{}
		}
		return Encode(p, w, opts...)
	}
	buf := bytes.NewBuffer(nil)
	for i := range p {
		if err := encodeOpLine(&p[i], buf, es.colors); err != nil {
			return err
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func encodeOpLine(op *patch.Operation, buf *bytes.Buffer, c *Colors) error {
	buf.WriteString(c.Color(Colorable{Op: op.Op, Attr: OpColor}, fmt.Sprintf("%-7s", op.Op)))
	buf.WriteByte(' ')
	if op.Op == patch.OpMove || op.Op == patch.OpCopy {
		buf.WriteString(c.Color(Colorable{Attr: PathColor}, quotePath(op.From)))
		buf.WriteString(" -> ")
	}
	buf.WriteString(c.Color(Colorable{Attr: PathColor}, quotePath(op.Path)))
	if op.Op.HasValue() {
		d, err := json.Marshal(op.Value)
		if err != nil {
			return fmt.Errorf("encoding value at %s: %w", op.Path, err)
		}
		buf.WriteByte(' ')
		buf.WriteString(c.Color(Colorable{Attr: ValueColor}, string(d)))
	}
	buf.WriteByte('\n')
	return nil
}

func quotePath(p string) string {
	if p == "" {
		return `""`
	}
	return p
}

// MustString renders v as compact JSON.
func MustString(v any) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, EncodeWire(true)); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
