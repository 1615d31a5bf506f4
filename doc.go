// Package jsonlens translates JSON documents and RFC 6902 patches between
// schema versions using bidirectional lenses.
//
// A lens is a sequence of operators from package lensop. ApplyToPatch
// rewrites a patch written against the source schema into one for the
// target schema, inserting defaults for properties the lens introduces.
// ApplyToDoc does the same for whole documents by diffing them against
// the empty object first.
package jsonlens
