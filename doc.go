// Package shape holds the types shared by the structural transforms in this
// module.
//
// # Overview
//
// The module provides two transforms over arbitrary nested Go values:
//
//   - github.com/shapetools/go-shape/skeleton - replace every leaf value
//     with a uniform marker, preserving keys, nesting and array structure.
//   - github.com/shapetools/go-shape/prune - remove keys and elements whose
//     values are nil or (optionally) empty strings, recursively, with
//     protection against cycles in self-referential structures.
//
// Both transforms are pure functions of (value, options): they construct new
// containers at every level and never mutate the caller's structure. Neither
// transform depends on the other; this package only carries the error type
// they have in common.
//
// # Value Model
//
// The transforms work on native Go values via reflection:
//
//   - string-keyed maps are objects
//   - slices and arrays are sequences
//   - structs with exported fields are record-like values, carrying their
//     type name as a tag
//   - pointers to scalars are single-value containers, handled as a unit
//   - everything else is a leaf
//
// # Thread Safety
//
// Each call keeps all of its state on the stack or in call-local sets, so
// concurrent calls are safe as long as the input is not mutated during
// traversal.
package shape
