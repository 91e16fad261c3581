//go:build !micro && !tiny

package format

// intConv implements spec.md §4.2 for the d/i/I/b/o/u/U/x/X conversions.
func intConv(sink Sink, state any, f *formatSpec, args *argCursor, code byte) (any, error) {
	base := f.base
	if base == 0 {
		switch code {
		case 'd', 'i', 'I', 'u', 'U':
			base = 10
		case 'x', 'X':
			base = 16
		case 'o':
			base = 8
		case 'b':
			base = 2
		}
	}

	signed := code == 'd' || code == 'i' || code == 'I'

	var uv uint64
	var signByte byte
	var prefix []byte

	if signed {
		v, err := args.nextInt()
		if err != nil {
			return nil, err
		}
		v = applyQual(v, f.qual)
		if v < 0 {
			uv = uint64(-v)
			signByte = '-'
		} else {
			uv = uint64(v)
			if f.flags&fPlus != 0 {
				signByte = '+'
			} else if f.flags&fSpace != 0 {
				signByte = ' '
			}
		}
		if signByte != 0 {
			prefix = []byte{signByte}
			f.flags |= fHash
		}
	} else {
		v, err := args.nextUint()
		if err != nil {
			return nil, err
		}
		uv = applyQualU(v, f.qual)
	}

	lower := code != 'X' && code != 'I' && code != 'U'

	var altPrefix []byte
	if code == 'o' {
		if uv != 0 {
			altPrefix = []byte{'0'}
		}
	} else if code == 'x' || code == 'X' || code == 'b' {
		if f.flags&fBang != 0 || uv != 0 {
			p := code
			if f.flags&fBang != 0 {
				p |= 0x20
			}
			altPrefix = []byte{'0', p}
		}
	}
	if altPrefix != nil {
		if len(prefix) > 0 {
			prefix = append(prefix, altPrefix...)
		} else {
			prefix = altPrefix
		}
	}

	if f.flags&fHash == 0 {
		prefix = nil
	}

	bufp := getScratch()
	defer putScratch(bufp)
	buf := *bufp
	n := writeDigits(buf, uv, base, lower)
	digits := string(buf[len(buf)-n:])

	// Apply default precision, per do_conv_numeric: an absent precision
	// behaves as precision 1 (so a bare %d of 0 still prints "0"); an
	// explicit precision, even 0, disables the ZERO flag and otherwise
	// leaves a genuinely empty digit sequence alone (precision 0 on value
	// 0 prints nothing, per spec.md §4.2 step 5).
	prec := f.prec
	if prec < 0 {
		prec = 1
	} else {
		f.flags &^= fZero
	}
	for len(digits) < prec {
		digits = "0" + digits
	}

	grouped, err := applyGrouping(digits, f.grouping, args)
	if err != nil {
		return nil, err
	}
	digitWidth := len(grouped)

	length := len(prefix) + digitWidth
	left, right := padCounts(length, f)

	pz := 0
	if f.flags&fZero != 0 && f.flags&fMinus == 0 && f.flags&fCaret == 0 {
		pz = left
		left = 0
	}

	newState, nn, err := genOut(sink, state, left, prefix, pz, []byte(grouped), right)
	if err != nil {
		return nil, err
	}
	f.charsEmitted += nn
	return newState, nil
}

func applyQual(v int64, q lengthQual) int64 {
	switch q {
	case qH:
		return int64(int16(v))
	case qHH:
		return int64(int8(v))
	}
	return v
}

func applyQualU(v uint64, q lengthQual) uint64 {
	switch q {
	case qH:
		return uint64(uint16(v))
	case qHH:
		return uint64(uint8(v))
	}
	return v
}
