//go:build !micro && !tiny

package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatConvInfAndNaN(t *testing.T) {
	out, _, err := runFormat(t, "%f", math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, "inf", out)

	out, _, err = runFormat(t, "%F", math.Inf(-1))
	require.NoError(t, err)
	assert.Equal(t, "-INF", out)

	out, _, err = runFormat(t, "%f", math.NaN())
	require.NoError(t, err)
	assert.Equal(t, "nan", out)
}

func TestFloatConvPlainF(t *testing.T) {
	out, _, err := runFormat(t, "%.2f", 3.14159)
	require.NoError(t, err)
	assert.Equal(t, "3.14", out)
}

func TestFloatConvHashKeepsDecimalPoint(t *testing.T) {
	out, _, err := runFormat(t, "%#.0f", 3.0)
	require.NoError(t, err)
	assert.Equal(t, "3.", out)
}

// %g with default precision 6 picks f-style once the decimal exponent is
// >= -4, but leading zeros after the point still count against precision
// for the purposes of do_conv_efg's over-length trim, so a value needing
// several leading zeros loses trailing significant digits it would keep
// under a naive "6 significant digits" reading.
func TestFloatConvGChoosesFWhenSmall(t *testing.T) {
	out, _, err := runFormat(t, "%g", 0.0001234)
	require.NoError(t, err)
	assert.Equal(t, "0.000123", out)
}

// %g with default precision 6 picks e-style once the decimal exponent
// would be >= precision; unlike the small-value case above, e-style never
// has leading zeros to eat into the budget, so this one shows all 6
// digits after the point rather than being rounded down to 6 total
// significant digits (see TestFormatScenario_GeneralFloat in
// format_test.go and DESIGN.md for the same e-style-prec-cap quirk).
func TestFloatConvGChoosesEWhenLarge(t *testing.T) {
	out, _, err := runFormat(t, "%g", 123456789.0)
	require.NoError(t, err)
	assert.Equal(t, "1.234567e+08", out)
}

func TestFloatConvLongDoubleRejected(t *testing.T) {
	_, _, err := runFormat(t, "%Lf", 1.0)
	assert.Error(t, err)
}

func TestFloatConvCaretCentering(t *testing.T) {
	out, n, err := runFormat(t, "%^8.1f", 1.5)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, 8, len(out))
}
