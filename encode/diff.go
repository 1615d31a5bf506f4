package encode

import (
	"bytes"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// EncodeDiff writes a line diff between the renderings of from and to,
// prefixing lines with "-", "+" or " ".
func EncodeDiff(from, to any, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	es.wire = false
	fd, err := render(from, es)
	if err != nil {
		return err
	}
	td, err := render(to, es)
	if err != nil {
		return err
	}
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(fd), string(td))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	buf := bytes.NewBuffer(nil)
	for _, d := range diffs {
		prefix, able := " ", Colorable{}
		color := false
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix, able, color = "+", Colorable{Attr: InsertColor}, true
		case diffmatchpatch.DiffDelete:
			prefix, able, color = "-", Colorable{Attr: DeleteColor}, true
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			line = prefix + line
			if color && es.colors != nil {
				line = es.colors.Color(able, strings.TrimSuffix(line, "\n")) + "\n"
			}
			buf.WriteString(line)
		}
	}
	_, err = w.Write(buf.Bytes())
	return err
}
