//go:build !micro && !tiny

package format

import (
	"math"

	"github.com/cznic/mathutil"
)

// fixedConv implements the %k conversion of spec.md §4.7: a signed
// fixed-point integer with w_int integer bits and w_frac fractional bits
// (set by the `I.F` modifier ahead of the conversion letter, or the 16.16
// default from newFormatSpec) is reinterpreted as a binary64 and then
// rendered exactly like an 'f' conversion. Grounded on format_fp.c's
// do_conv_k, which packs the extracted mantissa/exponent into an IEEE
// double bit pattern purely to reuse radix_convert and do_conv_efg; this
// port keeps that same roundabout path rather than hand-rolling a second
// decimal layout engine for fixed-point values.
func fixedConv(sink Sink, state any, f *formatSpec, args *argCursor) (any, error) {
	totalBits := f.fixedInt + f.fixedFrac
	if totalBits <= 0 || totalBits > 63 {
		return nil, badFormat("k: invalid fixed-point width")
	}

	raw, err := args.nextInt()
	if err != nil {
		return nil, err
	}

	var sign uint
	var mantissa uint64
	var exponent int

	if raw == 0 {
		sign, mantissa, exponent = 0, 0, 0
	} else {
		v := raw
		if (v>>(totalBits-1))&1 != 0 {
			sign = 1
			v = -v
		}
		v &= (int64(1) << uint(totalBits-1)) - 1

		// Highest set bit of v, via mathutil.Log2Uint64 rather than a
		// hand-rolled shift-and-count loop.
		i := mathutil.Log2Uint64(uint64(v))
		exponent = i - f.fixedFrac

		m := uint64(v)
		for m&^binMantMask == 0 {
			m <<= 1
		}

		bits := (uint64(sign) << 63) |
			((uint64(exponent+binExpBias) & binExpMask) << binMantWidth) |
			(m & binMantMask)

		r := radixConvert(math.Float64frombits(bits))
		sign, mantissa, exponent = r.sign, r.mantissa, r.exponent
	}

	return floatLayout(sink, state, f, 'f', sign, mantissa, exponent)
}
