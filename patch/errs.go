package patch

import "errors"

var (
	ErrBadPointer = errors.New("bad json pointer")
	ErrDecode     = errors.New("decode error")
	ErrApply      = errors.New("apply error")
	ErrDiff       = errors.New("diff error")
)
