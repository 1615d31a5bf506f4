// Package lensop provides the lens operators and the default value context
// they maintain.
//
// Each operator rewrites single RFC 6902 operations whose values are
// scalars or empty containers, so patches are expanded before they reach a
// lens. Paths are matched by whole reference tokens.
//
// Lenses encode as JSON arrays of operator objects discriminated by their
// "type" member:
//
//	[
//	  {"type": "rename", "source": "title", "target": "name"},
//	  {"type": "add", "name": "description", "defaultValue": ""},
//	  {"type": "in", "name": "details", "lens": [{"type": "wrap", "name": "tags"}]}
//	]
package lensop
