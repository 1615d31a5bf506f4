package patch

import (
	"github.com/huandu/go-clone"
)

// Clone deep copies a value of the generic model.
func Clone(v any) any {
	if v == nil {
		return nil
	}
	return clone.Clone(v)
}
