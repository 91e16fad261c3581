package format

// digitAlphabet is shared by every base 2..36 conversion, across all three
// tiers; lowercase conversions OR 0x20 onto the letter digits, matching
// the source's "convert to lower case?" comment in do_conv_numeric.
const digitAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// writeDigits fills buf right-to-left with the base-N representation of uv
// and returns the number of digits written (at the tail of buf). Like the
// source's digit loop, a zero value produces zero digits — the "0" seen
// for a bare %d of 0 comes from the default-precision-of-1 zero-pad the
// caller applies, not from this function. Base 10 gets no special-casing
// here; the source's separate "fast path" loop for base 10 exists to dodge
// libgcc's generic division routine on 8/16-bit targets, a concern that
// doesn't apply to a Go binary.
func writeDigits(buf []byte, uv uint64, base int, lower bool) int {
	n := 0
	b := uint64(base)
	for uv > 0 {
		d := uv % b
		c := digitAlphabet[d]
		if lower {
			c |= 0x20
		}
		n++
		buf[len(buf)-n] = c
		uv /= b
	}
	return n
}
