package assert

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Unexported fields take part in the comparison.
var compareOptions = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

func equal(expected, actual any) bool {
	expected, actual = harmonize(expected, actual)
	return cmp.Equal(expected, actual, compareOptions...)
}

// harmonize converts expected to the type of actual when both are basic
// values of different but convertible types, so that Eq(1, int64(1)) holds.
func harmonize(expected, actual any) (any, any) {
	if expected == nil || actual == nil {
		return expected, actual
	}

	ev := reflect.ValueOf(expected)
	av := reflect.ValueOf(actual)
	if ev.Type() == av.Type() || !isBasic(ev.Kind()) || !isBasic(av.Kind()) {
		return expected, actual
	}

	if isNumber(ev.Kind()) != isNumber(av.Kind()) || !ev.CanConvert(av.Type()) {
		return expected, actual
	}

	if isSigned(ev.Kind()) && ev.Int() < 0 && isUnsigned(av.Kind()) {
		return expected, actual
	}

	converted := ev.Convert(av.Type())
	if isUnsigned(ev.Kind()) && isSigned(av.Kind()) && converted.Int() < 0 {
		return expected, actual
	}

	// Reject lossy conversions such as 1.5 -> 1
	if !converted.CanConvert(ev.Type()) || converted.Convert(ev.Type()).Interface() != expected {
		return expected, actual
	}

	return converted.Interface(), actual
}

func isBasic(k reflect.Kind) bool {
	return isNumber(k) || k == reflect.String || k == reflect.Bool
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// mismatch renders the failure message and appends a diff for composite
// values of the same type.
func mismatch(format string, expected, actual any) string {
	message := fmt.Sprintf(format, expected, actual)
	if expected == nil || actual == nil || reflect.TypeOf(expected) != reflect.TypeOf(actual) {
		return message
	}

	switch reflect.TypeOf(expected).Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array, reflect.Pointer:
		if diff := cmp.Diff(expected, actual, compareOptions...); diff != "" {
			message += fmt.Sprintf("\ndiff (-expected +actual):\n%s", diff)
		}
	}

	return message
}
