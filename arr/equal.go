package arr

import (
	"math"
	"reflect"
)

// Identical reports whether a and b are strictly equal: same dynamic type and
// same value, without any conversion. 1 and "1" are never identical, nor are
// int(1) and int64(1).
//
// Values whose dynamic type is not comparable never cause a panic. Slices
// are identical when they share the same backing array start and length;
// maps when they are the same map. Functions are identical only when both
// are nil. Any other non-comparable value is identical to nothing.
func Identical[T any](a, b T) bool {
	x, y := any(a), any(b)
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	va, vb := reflect.ValueOf(x), reflect.ValueOf(y)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() && vb.Comparable() {
		return x == y
	}
	switch va.Kind() {
	case reflect.Slice:
		return va.Len() == vb.Len() && va.Pointer() == vb.Pointer()
	case reflect.Map:
		return va.Pointer() == vb.Pointer()
	case reflect.Func:
		return va.IsNil() && vb.IsNil()
	}
	return false
}

// Truthy reports whether v counts as true in a loose test.
//
// Falsy values are: nil, false, numeric zero, NaN, the empty string and nil
// pointers, maps, slices, channels, functions and interfaces. Everything else,
// including empty non-nil slices and maps and every struct, is truthy.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() != 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return !rv.IsNil()
	}
	return true
}
