package skeleton

import (
	"reflect"

	shape "github.com/shapetools/go-shape"
	"github.com/shapetools/go-shape/debug"
)

// BlessedAsKey is the synthetic key added to the skeleton of a record-like
// struct. Its value is the struct's type name.
const BlessedAsKey = "BLESSED_AS"

// Deflesh returns a copy of v with every leaf replaced by the marker,
// preserving keys, nesting and array structure. The top-level value must be
// a string-keyed map, a slice or array, or a struct (or pointer to struct)
// with exported fields; anything else returns *shape.UnsupportedInputError.
func Deflesh(v any, opts ...Option) (any, error) {
	sOpts := &skelOpts{marker: ""}
	for _, f := range opts {
		f(sOpts)
	}
	val := concrete(reflect.ValueOf(v))
	if debug.Skeleton() {
		debug.Logf("deflesh: %v\n", v)
	}
	switch {
	case isStringMap(val):
		return sOpts.mapValue(val), nil
	case isSequence(val):
		return sOpts.seqValue(val), nil
	case isRecord(val):
		return sOpts.recordValue(val), nil
	}
	got := "nil"
	if val.IsValid() {
		got = val.Type().String()
	}
	return nil, &shape.UnsupportedInputError{
		Op:   "deflesh",
		Got:  got,
		Want: "either a map, a slice, or a record-like struct",
	}
}

// value dispatches on the kind of a single map value or record field.
func (o *skelOpts) value(val reflect.Value) any {
	val = concrete(val)
	if !val.IsValid() {
		return o.marker
	}
	switch val.Kind() {
	case reflect.Map:
		if isStringMap(val) {
			return o.mapValue(val)
		}
		// not expressible as an object; leave it alone
		return val.Interface()
	case reflect.Slice, reflect.Array:
		return o.seqValue(val)
	case reflect.Pointer:
		if val.IsNil() {
			return o.marker
		}
		elem := val.Elem()
		switch elem.Kind() {
		case reflect.Struct:
			return o.recordValue(val)
		case reflect.Map, reflect.Slice, reflect.Array:
			return o.value(elem)
		default:
			// a scalar ref is blanked as a unit, never dereferenced
			return o.marker
		}
	case reflect.Struct:
		return o.recordValue(val)
	default:
		return o.marker
	}
}

func (o *skelOpts) mapValue(val reflect.Value) map[string]any {
	out := make(map[string]any, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = o.value(iter.Value())
	}
	return out
}

// seqValue applies the sequence rule: a sequence with no map or sequence
// elements collapses to the marker as a unit; otherwise container elements
// are skeletonized and everything else becomes the marker.
func (o *skelOpts) seqValue(val reflect.Value) any {
	n := val.Len()
	structured := false
	for i := 0; i < n; i++ {
		if isContainer(concrete(val.Index(i))) {
			structured = true
			break
		}
	}
	if !structured {
		return o.marker
	}
	out := make([]any, 0, n)
	for i := 0; i < n; i++ {
		ev := concrete(val.Index(i))
		if isContainer(ev) {
			out = append(out, o.value(ev))
		} else {
			out = append(out, o.marker)
		}
	}
	return out
}

// recordValue skeletonizes a struct (or pointer to struct). With exported
// fields it becomes a map of blanked fields plus the BLESSED_AS tag; without
// any it degrades to a "<TypeName> object" placeholder.
func (o *skelOpts) recordValue(val reflect.Value) any {
	sv := val
	if sv.Kind() == reflect.Pointer {
		sv = sv.Elem()
	}
	tag := typeTag(sv.Type())
	typ := sv.Type()
	var out map[string]any
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		if out == nil {
			out = make(map[string]any, typ.NumField()+1)
		}
		out[field.Name] = o.value(sv.Field(i))
	}
	if out == nil {
		return tag + " object"
	}
	out[BlessedAsKey] = tag
	return out
}
