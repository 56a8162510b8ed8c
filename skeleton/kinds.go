package skeleton

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

// isRecord reports whether val is a struct, or pointer to struct, with at
// least one exported field.
func isRecord(val reflect.Value) bool {
	if !val.IsValid() {
		return false
	}
	sv := val
	if sv.Kind() == reflect.Pointer {
		if sv.IsNil() {
			return false
		}
		sv = sv.Elem()
	}
	if sv.Kind() != reflect.Struct {
		return false
	}
	typ := sv.Type()
	for i := 0; i < typ.NumField(); i++ {
		if typ.Field(i).IsExported() {
			return true
		}
	}
	return false
}

// typeTag names a record's type the way its skeleton reports it.
func typeTag(typ reflect.Type) string {
	if name := typ.Name(); name != "" {
		return name
	}
	return typ.String()
}
