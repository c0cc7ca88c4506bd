package asset

import (
	"reflect"
)

// callAllDefaultInitializers walks obj depth first and calls DefaultInitialize
// on every exported field (and slice element) that implements
// DefaultInitializer, then on obj itself.  Nil pointers are skipped.
func callAllDefaultInitializers(obj any) {
	if obj == nil {
		return
	}
	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).IsExported() {
				initializeValue(v.Field(i))
			}
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			initializeValue(v.Index(i))
		}
	}

	if di, ok := obj.(DefaultInitializer); ok {
		di.DefaultInitialize()
	}
}

func initializeValue(v reflect.Value) {
	switch {
	case v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer:
		if !v.IsNil() {
			callAllDefaultInitializers(v.Interface())
		}
	case v.CanAddr():
		callAllDefaultInitializers(v.Addr().Interface())
	}
}
