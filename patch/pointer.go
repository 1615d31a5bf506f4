package patch

import (
	"fmt"
	"strings"
)

var (
	escaper   = strings.NewReplacer("~", "~0", "/", "~1")
	unescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

// Escape encodes a single reference token per RFC 6901.
func Escape(seg string) string {
	return escaper.Replace(seg)
}

// Unescape decodes a single reference token per RFC 6901.
func Unescape(seg string) string {
	return unescaper.Replace(seg)
}

// Split returns the unescaped reference tokens of a JSON Pointer. The root
// pointer "" has no tokens. The returned slice is never shared.
func Split(ptr string) []string {
	if ptr == "" {
		return nil
	}
	parts := strings.Split(strings.TrimPrefix(ptr, "/"), "/")
	for i := range parts {
		parts[i] = Unescape(parts[i])
	}
	return parts
}

// Join is the inverse of Split.
func Join(segs []string) string {
	if len(segs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, s := range segs {
		b.WriteByte('/')
		b.WriteString(Escape(s))
	}
	return b.String()
}

// Parent returns ptr without its last token. The parent of the root is
// the root.
func Parent(ptr string) string {
	i := strings.LastIndexByte(ptr, '/')
	if i < 0 {
		return ""
	}
	return ptr[:i]
}

// Append appends one unescaped token to a pointer.
func Append(ptr, seg string) string {
	return ptr + "/" + Escape(seg)
}

// IsIndex reports whether seg is an array index token.
func IsIndex(seg string) bool {
	if seg == "" {
		return false
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return false
		}
	}
	return true
}

// CheckPointer verifies that ptr is syntactically a JSON Pointer.
func CheckPointer(ptr string) error {
	if ptr == "" || strings.HasPrefix(ptr, "/") {
		return nil
	}
	return fmt.Errorf("%w: %q must be empty or start with '/'", ErrBadPointer, ptr)
}
