package patch

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	json "github.com/goccy/go-json"

	"github.com/signadot/jsonlens/debug"
)

// ApplyJSON applies p to the encoded document doc.
func ApplyJSON(p Patch, doc []byte) ([]byte, error) {
	pd, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding patch: %w", ErrApply, err)
	}
	jp, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrApply, err)
	}
	res, err := jp.Apply(doc)
	if err != nil {
		if debug.Patch() {
			debug.Logf("apply failed on %s\n%s\n", doc, pd)
		}
		return nil, fmt.Errorf("%w: %w", ErrApply, err)
	}
	return res, nil
}

// Apply applies p to doc and returns the resulting document. doc is not
// modified.
func Apply(p Patch, doc any) (any, error) {
	d, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding document: %w", ErrApply, err)
	}
	res, err := ApplyJSON(p, d)
	if err != nil {
		return nil, err
	}
	return DecodeValue(res)
}
