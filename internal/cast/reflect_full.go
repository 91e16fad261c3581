//go:build !micro && !tiny

package cast

import (
	"fmt"
	"reflect"
)

// fallbackInt64, fallbackUint64 and fallbackFloat64 use reflect to accept
// named types derived from a built-in numeric kind (e.g. type Count
// int32), the way the teacher package's num_int.back.go / num_float.back.go
// fall back to reflect.ValueOf(arg).Kind() for the host build. Gated out
// of the micro and tiny tiers exactly as the teacher gates reflect out of
// its wasm build: those tiers target environments where reflect's
// metadata footprint isn't welcome.

func fallbackInt64(i any) (int64, error) {
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return int64(v.Float()), nil
	}
	return 0, fmt.Errorf("cast: cannot convert %T to int64", i)
}

func fallbackUint64(i any) (uint64, error) {
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := v.Int()
		if n < 0 {
			return 0, fmt.Errorf("cast: negative value %d to uint64", n)
		}
		return uint64(n), nil
	}
	return 0, fmt.Errorf("cast: cannot convert %T to uint64", i)
}

func fallbackFloat64(i any) (float64, error) {
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	}
	return 0, fmt.Errorf("cast: cannot convert %T to float64", i)
}
