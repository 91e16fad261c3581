// Package cast extracts the scalar types the format engine's converters
// need (int64, uint64, float64, string) out of an untyped variadic
// argument, the way a C va_arg call extracts a typed value from a va_list.
// The direct type-switch below covers every built-in numeric type; named
// types that don't match any case fall through to a build-specific
// fallback (see reflect_full.go / reflect_embedded.go).
package cast

import "fmt"

func ToInt64E(i any) (int64, error) {
	switch v := i.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case uint:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case float32:
		return int64(v), nil
	}
	return fallbackInt64(i)
}

func ToUint64E(i any) (uint64, error) {
	switch v := i.(type) {
	case uint:
		return uint64(v), nil
	case uint64:
		return v, nil
	case uint32:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint8:
		return uint64(v), nil
	case int:
		if v < 0 {
			return 0, fmt.Errorf("cast: negative value %d to uint64", v)
		}
		return uint64(v), nil
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("cast: negative value %d to uint64", v)
		}
		return uint64(v), nil
	case int32:
		if v < 0 {
			return 0, fmt.Errorf("cast: negative value %d to uint64", v)
		}
		return uint64(v), nil
	case int16:
		if v < 0 {
			return 0, fmt.Errorf("cast: negative value %d to uint64", v)
		}
		return uint64(v), nil
	case int8:
		if v < 0 {
			return 0, fmt.Errorf("cast: negative value %d to uint64", v)
		}
		return uint64(v), nil
	}
	return fallbackUint64(i)
}

func ToFloat64E(i any) (float64, error) {
	switch v := i.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	}
	return fallbackFloat64(i)
}

// ToString renders a value as a string without going through the format
// engine itself (it is used by the engine, so it must not call back in).
func ToString(i any) string {
	switch s := i.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	case error:
		return s.Error()
	case fmt.Stringer:
		return s.String()
	case nil:
		return ""
	}
	return fmt.Sprintf("%v", i)
}
