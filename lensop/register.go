package lensop

import (
	"errors"
	"fmt"
	"slices"
)

type decodeFunc func(raw []byte) (Op, error)

var decoders = map[Kind]decodeFunc{}

func init() {
	register(KindAdd, decodeAdd)
	register(KindRemove, decodeRemove)
	register(KindRename, decodeRename)
	register(KindConvert, decodeConvert)
	register(KindHoist, decodeHoist)
	register(KindPlunge, decodePlunge)
	register(KindWrap, decodeWrap)
	register(KindHead, decodeHead)
	register(KindIn, decodeIn)
	register(KindMap, decodeMap)
}

func register(k Kind, f decodeFunc) {
	if _, present := decoders[k]; present {
		panic(fmt.Sprintf("lens operator %q registered twice", k))
	}
	decoders[k] = f
}

func lookup(k Kind) decodeFunc {
	return decoders[k]
}

// Kinds returns the operator kinds in sorted order.
func Kinds() []Kind {
	res := make([]Kind, 0, len(decoders))
	for k := range decoders {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// Known reports whether k names an operator.
func Known(k Kind) bool {
	return decoders[k] != nil
}

func wrapParse(err error) error {
	if err == nil || errors.Is(err, ErrParse) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrParse, err)
}
