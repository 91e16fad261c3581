//go:build !micro && !tiny

package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRadixConvertZero(t *testing.T) {
	r := radixConvert(0.0)
	assert.Equal(t, uint(0), r.sign)
	assert.Equal(t, uint64(0), r.mantissa)
	assert.Equal(t, 0, r.exponent)
}

func TestRadixConvertNegativeZeroSign(t *testing.T) {
	r := radixConvert(math.Copysign(0, -1))
	assert.Equal(t, uint(1), r.sign)
}

func TestRadixConvertInfAndNaN(t *testing.T) {
	r := radixConvert(math.Inf(1))
	assert.True(t, r.isInf())
	assert.False(t, r.isNaN())

	r = radixConvert(math.Inf(-1))
	assert.True(t, r.isInf())
	assert.Equal(t, uint(1), r.sign)

	r = radixConvert(math.NaN())
	assert.True(t, r.isNaN())
}

func TestRadixConvertOne(t *testing.T) {
	r := radixConvert(1.0)
	assert.Equal(t, uint(0), r.sign)
	assert.Equal(t, dec1p0, r.mantissa)
	assert.Equal(t, 0, r.exponent)
}

// §9's Open Question: the smallest denormal, 2^-1074, must decimal-convert
// to the literal mantissa/exponent behind "4.94e-324".
func TestRadixConvertSmallestDenormal(t *testing.T) {
	v := math.Ldexp(1, -1074)
	require.NotEqual(t, 0.0, v)

	r := radixConvert(v)
	require.False(t, r.isInf())
	require.False(t, r.isNaN())

	var buf [decSigFig]byte
	digitsFromMantissa(buf[:], r.mantissa, decSigFig, 3)
	// First three significant digits, rounded down to match the unrounded
	// mantissa; the scenario's "4.94e-324" reflects rounding to 3 sigfigs.
	assert.Equal(t, byte('4'), buf[0])
	assert.Equal(t, -324, r.exponent)
}

func TestDigitsFromMantissa(t *testing.T) {
	buf := make([]byte, 5)
	n := digitsFromMantissa(buf, 1234500000000000, decSigFig, 5)
	assert.Equal(t, 5, n)
	assert.Equal(t, "12345", string(buf))
}

func TestRoundMantissaCarries(t *testing.T) {
	m := dec1p0*10 - 1 // 9999999999999999, would carry when rounded at prec 0
	e := 0
	roundMantissa(&m, &e, 0, true, false)
	assert.True(t, m < dec1p0*10)
}
