package list

import (
	"fmt"
	"reflect"
	"strconv"
)

// Valuer lets a node payload report its own printable form. Returning
// false marks the value as unreadable.
type Valuer interface {
	ListValue() (string, bool)
}

// Printable returns the printable form of v.
//
// Resolution order: [Valuer], then fmt.Stringer, then scalar kinds
// (strings, booleans, integers, floats, complex numbers, including named
// types over them). Anything else, such as structs, slices, maps, or
// pointers without a String method, is not readable.
func Printable(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case Valuer:
		return x.ListValue()
	case fmt.Stringer:
		return x.String(), true
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return fmt.Sprint(v), true
	default:
		return "", false
	}
}
