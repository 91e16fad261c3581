//go:build !micro && !tiny

package format

// siTable is the centred SI/engineering-notation prefix table used by the
// '!' flag on f/F conversions, grounded on format_fp.c's static sitab in
// do_conv_efg: index 8 (the zero byte) is the unscaled centre, indices
// below it are the negative (sub-unity) prefixes and indices above it the
// positive ones.
var siTable = [...]byte{'y', 'z', 'a', 'f', 'p', 'n', 'u', 'm',
	0,
	'k', 'M', 'G', 'T', 'P', 'E', 'Z', 'Y'}

func signPrefix(sign uint, f *formatSpec) []byte {
	switch {
	case sign != 0:
		return []byte{'-'}
	case f.flags&fPlus != 0:
		return []byte{'+'}
	case f.flags&fSpace != 0:
		return []byte{' '}
	}
	return nil
}

// floatInfNan implements format_fp.c's do_conv_infnan: infinities and NaNs
// are rendered directly, bypassing the mantissa/exponent layout engine.
func floatInfNan(sink Sink, state any, f *formatSpec, code byte, r radixDecoded) (any, error) {
	var word string
	upper := code == 'F' || code == 'E' || code == 'G'
	if r.isNaN() {
		word = "nan"
	} else {
		word = "inf"
	}
	if upper {
		word = toUpperASCII(word)
	}

	prefix := signPrefix(r.sign, f)
	length := len(prefix) + len(word)
	ps1, ps2 := padCounts(length, f)

	state, n, err := genOut(sink, state, ps1, prefix, 0, []byte(word), ps2)
	if err != nil {
		return nil, err
	}
	f.charsEmitted += n
	return state, nil
}

func toUpperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 0x20
		}
	}
	return string(b)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// floatConv implements the e/E/f/F/g/G conversions of spec.md §4.5/§4.6,
// following format_fp.c's do_conv_efg field-by-field layout model:
//
//	E:  [space+][sign?][zero+][digit]     [.]    [digit+][zero+][eE][sign][digit+][space+]
//	F:  [space+][sign?][zero+][digit+][zero+][.][zero+][digit+][zero+]              [space+]
func floatConv(sink Sink, state any, f *formatSpec, args *argCursor, code byte) (any, error) {
	if f.qual == qBigL {
		return nil, badFormat("long double not supported")
	}
	dv, err := args.nextFloat()
	if err != nil {
		return nil, err
	}
	r := radixConvert(dv)
	if r.isNaN() || r.isInf() {
		return floatInfNan(sink, state, f, code, r)
	}
	return floatLayout(sink, state, f, code, r.sign, r.mantissa, r.exponent)
}

// floatLayout is shared by floatConv (%e/%f/%g family) and fixedConv (%k),
// mirroring do_conv_efg's role as the common backend for both.
func floatLayout(sink Sink, state any, f *formatSpec, code byte, sign uint, mantissa uint64, exponent int) (any, error) {
	reallyG := false
	isF := false
	var si byte

	if f.prec < 0 {
		f.prec = 6
	}

	if code == 'g' || code == 'G' {
		reallyG = true
		f.flags &^= fBang
		if f.prec == 0 {
			f.prec = 1
		}
		if exponent < -4 || exponent >= f.prec {
			if code == 'g' {
				code = 'e'
			} else {
				code = 'E'
			}
		} else {
			if code == 'g' {
				code = 'f'
			} else {
				code = 'F'
			}
		}
	}
	if code == 'f' || code == 'F' {
		isF = true
	}

	prefix := signPrefix(sign, f)

	roundMantissa(&mantissa, &exponent, f.prec, isF, f.flags&fBang != 0)

	sigfig := decSigFig
	if mantissa != 0 {
		for ; sigfig > 0; sigfig-- {
			if mantissa%10 != 0 {
				break
			}
			mantissa /= 10
		}
	}

	var nLeft, nRight int
	if isF {
		if f.flags&fBang != 0 {
			idx := len(siTable) / 2
			for idx > 0 && idx < len(siTable)-1 {
				if exponent >= 3 {
					idx++
					exponent -= 3
					continue
				}
				if exponent < 0 {
					idx--
					exponent += 3
					continue
				}
				break
			}
			si = siTable[idx]
		}
		if exponent > -1 {
			nLeft = 1 + exponent
		}
	} else {
		nLeft = 1
		if f.flags&fBang != 0 {
			m := exponent % 3
			if m < 0 {
				m += 3
			}
			nLeft += m
			exponent -= m
		}
	}

	nRight = minInt(maxInt(sigfig-nLeft, 0), f.prec)

	if isF && reallyG {
		m := mantissa
		for i := sigfig; i > nLeft+nRight; i-- {
			m /= 10
		}
		for nRight > 0 && m%10 == 0 {
			m /= 10
			nRight--
		}
	}

	length := len(prefix) + nLeft + nRight

	var pz1, pz2, pz3, pz4 int
	var nExp int

	if isF {
		if nLeft == 0 {
			pz1 = 1
			length++
		}
		if nLeft > sigfig {
			pz2 = nLeft - sigfig
		}
		if exponent < -1 && f.prec > 0 {
			x := -1 - exponent
			pz3 = minInt(x, f.prec)
			length += pz3
		}
		if si != 0 {
			length++
		}
	} else {
		n := 0
		for i := absInt(exponent); i > 0; i /= 10 {
			n++
		}
		nExp = maxInt(n, 2)
		length += 2 + nExp
	}

	wantDP := false
	if pz3+nRight < f.prec && !(reallyG && f.flags&fHash == 0) {
		pz4 = f.prec - pz3 - nRight
		length += pz4
	} else if isF && pz3+nRight > f.prec {
		x := pz3 + nRight - f.prec
		length -= x
		nRight -= x
	}

	if pz3+pz4 > 0 || nRight > 0 || f.flags&fHash != 0 {
		wantDP = true
		length++
	}

	ps1, ps2 := padCounts(length, f)

	// Centering (CARET) takes precedence over zero-fill: the left/right
	// split computed by padCounts must survive as spaces, not collapse
	// into a single zero-padded left run. Grounded on this package's own
	// unification of the CARET flag (absent from format_fp.c's original
	// source branch) with the zero-fill rule format_fp.c does specify.
	if f.flags&fZero != 0 && f.flags&fMinus == 0 && f.flags&fCaret == 0 {
		pz1 += ps1
		ps1 = 0
	}

	var total int
	var bufArr [decSigFig]byte
	buf := bufArr[:]

	var eN int
	if nLeft > 0 {
		eN = digitsFromMantissa(buf, mantissa, sigfig, nLeft-pz2)
	}
	sigfig -= eN

	state, n, err := genOut(sink, state, ps1, prefix, pz1, buf[:eN], 0)
	if err != nil {
		return nil, err
	}
	total += n

	state, n, err = genOut(sink, state, 0, nil, pz2, nil, 0)
	if err != nil {
		return nil, err
	}
	total += n

	eN = 0
	if nRight > 0 {
		eN = digitsFromMantissa(buf, mantissa, sigfig, nRight)
	}

	dpPrefix := []byte{}
	dpLen := 0
	if wantDP {
		dpPrefix = []byte{'.'}
		dpLen = 1
	}
	state, n, err = genOut(sink, state, 0, dpPrefix[:dpLen], pz3, buf[:eN], 0)
	if err != nil {
		return nil, err
	}
	total += n

	state, n, err = genOut(sink, state, 0, nil, pz4, nil, 0)
	if err != nil {
		return nil, err
	}
	total += n

	if nExp != 0 {
		absExp := absInt(exponent)
		epfx := []byte{code, '+'}
		if exponent < 0 {
			epfx[1] = '-'
		}
		ebuf := make([]byte, nExp)
		for i := nExp - 1; i >= 0; i-- {
			ebuf[i] = byte('0' + absExp%10)
			absExp /= 10
		}
		state, n, err = genOut(sink, state, 0, epfx, 0, ebuf, 0)
		if err != nil {
			return nil, err
		}
		total += n
	}

	var siBuf []byte
	if si != 0 {
		siBuf = []byte{si}
	}
	state, n, err = genOut(sink, state, 0, nil, 0, siBuf, ps2)
	if err != nil {
		return nil, err
	}
	total += n

	f.charsEmitted += total
	return state, nil
}
