package jsonlens

import "errors"

var ErrNotObject = errors.New("document is not an object")
