package format

// Padding source strings, used only by padRun. Kept as fixed-size arrays
// rather than a single mutable buffer so there is no shared state between
// concurrent calls — see spec.md's "Global padding strings" design note.
var spacesPad = [16]byte{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
var zeroesPad = [16]byte{'0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0', '0'}

// padRun emits n copies of the padding string pad's first byte, looping
// internally so a caller never needs more than a 16-byte constant buffer
// regardless of how large n is.
func padRun(sink Sink, state any, pad []byte, n int) (any, error) {
	for n > 0 {
		j := n
		if j > len(pad) {
			j = len(pad)
		}
		var err error
		state, err = emit(sink, state, pad[:j])
		if err != nil {
			return nil, err
		}
		n -= j
	}
	return state, nil
}

// genOut is the output composer of spec.md §4.8: it emits left-space,
// prefix, zero-pad, body and right-space in that fixed order and returns
// the total number of bytes requested of the sink.
func genOut(sink Sink, state any, ps1 int, prefix []byte, pz int, body []byte, ps2 int) (any, int, error) {
	var n int
	var err error

	if ps1 > 0 {
		if state, err = padRun(sink, state, spacesPad[:], ps1); err != nil {
			return nil, 0, err
		}
		n += ps1
	}

	if len(prefix) > 0 {
		if state, err = emit(sink, state, prefix); err != nil {
			return nil, 0, err
		}
		n += len(prefix)
	}

	if pz > 0 {
		if state, err = padRun(sink, state, zeroesPad[:], pz); err != nil {
			return nil, 0, err
		}
		n += pz
	}

	if len(body) > 0 {
		if state, err = emit(sink, state, body); err != nil {
			return nil, 0, err
		}
		n += len(body)
	}

	if ps2 > 0 {
		if state, err = padRun(sink, state, spacesPad[:], ps2); err != nil {
			return nil, 0, err
		}
		n += ps2
	}

	return state, n, nil
}
