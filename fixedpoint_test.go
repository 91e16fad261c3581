//go:build !micro && !tiny

package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// %k's default width is Q16.16 (newFormatSpec), so a raw value of 1<<16
// represents exactly 1.0.
func TestFixedConvDefaultWidth(t *testing.T) {
	out, _, err := runFormat(t, "%.0k", int64(1<<16))
	require.NoError(t, err)
	assert.Equal(t, "1", out)
}

func TestFixedConvZero(t *testing.T) {
	out, _, err := runFormat(t, "%.0k", int64(0))
	require.NoError(t, err)
	assert.Equal(t, "0", out)
}

// An explicit {8.8} modifier packs the raw value into a Q8.8 layout: 256
// (0x0100) is exactly 1.0 under that scale (256 / 2^8).
func TestFixedConvExplicitWidth(t *testing.T) {
	out, _, err := runFormat(t, "%.0{8.8}k", int64(256))
	require.NoError(t, err)
	assert.Equal(t, "1", out)
}

// The sign bit of the fixed-point word is extracted the same way %k
// extracts any signed value: -256 at Q8.8 is exactly -1.0.
func TestFixedConvNegative(t *testing.T) {
	out, _, err := runFormat(t, "%.0{8.8}k", int64(-256))
	require.NoError(t, err)
	assert.Equal(t, "-1", out)
}

// A fractional Q8.8 value: 384 (0x0180) is 1.5 (384 / 2^8).
func TestFixedConvFraction(t *testing.T) {
	out, _, err := runFormat(t, "%.1{8.8}k", int64(384))
	require.NoError(t, err)
	assert.Equal(t, "1.5", out)
}

func TestFixedConvWidthOutOfRange(t *testing.T) {
	_, _, err := runFormat(t, "%{40.30}k", int64(0))
	assert.Error(t, err)
}
