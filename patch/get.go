package patch

import "strconv"

// Get returns the value ptr refers to in doc. A null member is found with
// a nil value.
func Get(doc any, ptr string) (any, bool) {
	cur := doc
	for _, seg := range Split(ptr) {
		switch x := cur.(type) {
		case map[string]any:
			v, ok := x[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			if !IsIndex(seg) {
				return nil, false
			}
			i, err := strconv.Atoi(seg)
			if err != nil || i >= len(x) {
				return nil, false
			}
			cur = x[i]
		default:
			return nil, false
		}
	}
	return cur, true
}
