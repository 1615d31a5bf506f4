package lensop

import "errors"

var (
	ErrParse     = errors.New("lens parse error")
	ErrNoMapping = errors.New("no mapping for value")
	ErrNotScalar = errors.New("value is not a scalar")
)
