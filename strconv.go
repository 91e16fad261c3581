//go:build !micro && !tiny

package format

// charConv implements the %c and %C conversions of spec.md §4.3.
func charConv(sink Sink, state any, f *formatSpec, args *argCursor, code byte) (any, error) {
	var cc byte
	if code == 'c' {
		v, err := args.nextInt()
		if err != nil {
			return nil, err
		}
		cc = byte(v)
	} else {
		cc = f.repChar
	}

	rep := f.prec
	if rep < 0 || rep > maxPrec {
		rep = 1
	}
	if rep < 1 {
		rep = 1
	}

	var total int
	for ; rep > 0; rep-- {
		newState, n, err := genOut(sink, state, 0, nil, 0, []byte{cc}, 0)
		if err != nil {
			return nil, err
		}
		state = newState
		total += n
	}
	f.charsEmitted += total
	return state, nil
}

// stringConv implements the %s conversion of spec.md §4.3. A nil string
// argument renders as the literal "(null)", matching the full and tiny
// tiers; the micro tier's deliberate divergence (a bare '?') lives in
// micro.go's microStringConv and is never reached from this build.
func stringConv(sink Sink, state any, f *formatSpec, args *argCursor) (any, error) {
	s, isNil, err := args.nextString()
	if err != nil {
		return nil, err
	}
	if isNil {
		s = "(null)"
	}

	length := len(s)
	if f.prec >= 0 && f.prec < length {
		length = f.prec
	}
	s = s[:length]

	left, right := padCounts(length, f)

	newState, n, err := genOut(sink, state, left, nil, 0, []byte(s), right)
	if err != nil {
		return nil, err
	}
	f.charsEmitted += n
	return newState, nil
}
