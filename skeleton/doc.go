// Package skeleton blanks the leaves of a nested value while preserving its
// shape.
//
// Deflesh walks a value made of string-keyed maps, slices and record-like
// structs and replaces every leaf with a uniform marker, so the result shows
// the "schema" of a deep structure without its data:
//
//	doc := map[string]any{
//	    "id":   4,
//	    "tags": []any{"a", "b"},
//	    "meta": map[string]any{"owner": "sam"},
//	}
//	out, err := skeleton.Deflesh(doc)
//	// out = map[string]any{"id": "", "tags": "", "meta": map[string]any{"owner": ""}}
//
// A sequence whose elements are all scalars carries no structural information
// and collapses to the marker as a unit, which is why "tags" above becomes ""
// rather than a list of markers.
//
// Structs with exported fields are skeletonized like maps and annotated with
// a synthetic BLESSED_AS key holding the type name. Note that this changes
// the logical key set of the record's skeleton; it is a visible, intentional
// side effect. Structs without exported fields (live handles and the like)
// degrade to the string "<TypeName> object".
//
// Deflesh builds a new structure at every level and never mutates its input.
package skeleton
