package types

import (
	"reflect"
	"strings"
)

// GetFieldByPath walks a dot-separated field path ("A.B.C") through structs
// and struct pointers, returning the addressed field value.
func GetFieldByPath(instance any, fieldPath string) (any, bool) {
	valueOfIns := reflect.ValueOf(instance)
	fieldNames := strings.Split(fieldPath, ".")
	for _, name := range fieldNames {
		v := reflect.Indirect(valueOfIns)
		if v.Type().Kind() != reflect.Struct {
			return nil, false
		}
		v = v.FieldByName(name)
		if !v.IsValid() {
			return nil, false
		}
		valueOfIns = v
	}
	return valueOfIns.Interface(), true
}

// FieldPath2Index resolves a field path once into index form so repeated
// lookups can use FieldByIndex instead of re-parsing the path.
func FieldPath2Index(instance any, fieldPath string) (any, []int, bool) {
	valueOfIns := reflect.ValueOf(instance)
	fieldNames := strings.Split(fieldPath, ".")
	indices := make([]int, 0, 4)
	for _, name := range fieldNames {
		v := reflect.Indirect(valueOfIns)
		if v.Type().Kind() != reflect.Struct {
			return nil, nil, false
		}
		field, ok := v.Type().FieldByName(name)
		if !ok {
			return nil, nil, false
		}
		indices = append(indices, field.Index[0])
		valueOfIns = v.FieldByName(name)
	}
	return valueOfIns.Interface(), indices, true
}
