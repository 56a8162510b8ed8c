// Package prune removes empty entries from a nested value.
//
// Prune walks a value made of string-keyed maps and slices and deletes keys
// and elements whose values are nil or, by default, the empty string:
//
//	doc := map[string]any{
//	    "id":            4,
//	    "last_modified": nil,
//	    "sections": []any{
//	        map[string]any{"content": "x", "class": "textile"},
//	        map[string]any{"content": "y", "class": ""},
//	    },
//	}
//	out, err := prune.Prune(doc)
//	// out = map[string]any{
//	//     "id": 4,
//	//     "sections": []any{
//	//         map[string]any{"content": "x", "class": "textile"},
//	//         map[string]any{"content": "y"},
//	//     },
//	// }
//
// Deletion only triggers at the leaf level: a sub-map that prunes to zero
// keys stays in its parent as an empty map. A sequence with no map or
// sequence elements collapses to "" as a unit, matching the skeleton
// package's sequence rule.
//
// Each call tracks the identity of every map and slice it descends into and
// skips any it has already seen, so self-referential structures terminate
// with a finite result instead of recursing forever. The seen set lives for
// exactly one call; it is never shared across calls.
//
// Prune builds a new structure at every level and never mutates its input.
package prune
