package patch

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/wI2L/jsondiff"
)

// Diff computes a patch transforming from into to. Object members are
// compared in sorted key order, so the result is deterministic.
func Diff(from, to any) (Patch, error) {
	fd, err := json.Marshal(from)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding source: %w", ErrDiff, err)
	}
	td, err := json.Marshal(to)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding target: %w", ErrDiff, err)
	}
	return DiffJSON(fd, td)
}

// DiffJSON is Diff over encoded documents. Numbers are compared and
// emitted by their decimal text.
func DiffJSON(from, to []byte) (Patch, error) {
	jp, err := jsondiff.CompareJSON(from, to, jsondiff.UnmarshalFunc(unmarshalNumbers))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDiff, err)
	}
	if len(jp) == 0 {
		return Patch{}, nil
	}
	d, err := json.Marshal(jp)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDiff, err)
	}
	res, err := DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDiff, err)
	}
	return res, nil
}

func unmarshalNumbers(d []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	return dec.Decode(v)
}
