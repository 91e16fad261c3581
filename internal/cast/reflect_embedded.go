//go:build micro || tiny

package cast

import "fmt"

// The micro and tiny tiers accept only the built-in numeric types handled
// directly in cast.go's type switch; no reflect fallback is linked in.

func fallbackInt64(i any) (int64, error) {
	return 0, fmt.Errorf("cast: cannot convert %T to int64", i)
}

func fallbackUint64(i any) (uint64, error) {
	return 0, fmt.Errorf("cast: cannot convert %T to uint64", i)
}

func fallbackFloat64(i any) (float64, error) {
	return 0, fmt.Errorf("cast: cannot convert %T to float64", i)
}
