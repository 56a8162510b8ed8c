package prune

import "reflect"

// concrete unwraps interface values so dispatch sees the underlying kind.
func concrete(val reflect.Value) reflect.Value {
	for val.Kind() == reflect.Interface && !val.IsNil() {
		val = val.Elem()
	}
	if val.Kind() == reflect.Interface {
		return reflect.Value{}
	}
	return val
}

func isStringMap(val reflect.Value) bool {
	return val.IsValid() && val.Kind() == reflect.Map && val.Type().Key().Kind() == reflect.String
}

func isSequence(val reflect.Value) bool {
	if !val.IsValid() {
		return false
	}
	k := val.Kind()
	return k == reflect.Slice || k == reflect.Array
}

func isContainer(val reflect.Value) bool {
	return isStringMap(val) || isSequence(val)
}

// ref identifies a map or non-empty slice for cycle detection. Maps are
// identified by their header pointer alone. Slices need the length too:
// distinct subslices of one backing array share a base pointer.
type ref struct {
	ptr uintptr
	n   int
}

// identity returns the reference identity of a map or non-empty slice.
// Values that cannot participate in a cycle get none. Empty slices are
// excluded: they may share a base pointer without sharing anything, and a
// cycle needs at least one element.
func identity(val reflect.Value) (ref, bool) {
	switch val.Kind() {
	case reflect.Map:
		if val.IsNil() {
			return ref{}, false
		}
		return ref{ptr: val.Pointer(), n: -1}, true
	case reflect.Slice:
		if val.IsNil() || val.Len() == 0 {
			return ref{}, false
		}
		return ref{ptr: val.Pointer(), n: val.Len()}, true
	default:
		return ref{}, false
	}
}
