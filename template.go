//go:build !micro && !tiny

package format

import "github.com/golang/glog"

// scanTemplate implements format.c's format() scan loop (spec.md §4.1):
// emit literal runs verbatim, then at each '%' parse a FormatSpec and
// dispatch to the matching converter. A '%' reaching the template
// terminator without a conversion letter triggers the continuation
// feature (spec.md §4.1 step 10 / §6): the next argument supplies a new
// template, read through alternate memory when that argument is an
// AltString. The HASH flag plays no part in that choice.
func scanTemplate(sink Sink, state any, src memSource, args *argCursor) (any, int, error) {
	total := 0
	i := 0

	for {
		runStart := i
		for i < src.len() && src.readByte(i) != '%' {
			i++
		}
		if i > runStart {
			var err error
			state, err = emit(sink, state, []byte(src.slice(runStart, i)))
			if err != nil {
				return state, -1, err
			}
			total += i - runStart
		}

		if i >= src.len() {
			return state, total, nil
		}

		// at '%'
		i++
		f := newFormatSpec()
		f.charsEmitted = total

		i = parseFlags(src, i, &f)

		var err error
		i, err = parseWidth(src, i, &f, args)
		if err != nil {
			return state, -1, err
		}
		i, err = parsePrecision(src, i, &f, args)
		if err != nil {
			return state, -1, err
		}
		i, err = parseBase(src, i, &f, args)
		if err != nil {
			return state, -1, err
		}
		i, err = parseGrouping(src, i, &f)
		if err != nil {
			return state, -1, err
		}
		i, err = parseFixed(src, i, &f)
		if err != nil {
			return state, -1, err
		}
		i = parseLengthQual(src, i, &f)

		if i >= src.len() {
			// continuation
			v, ok := args.next()
			if !ok {
				return state, -1, badFormat("continuation: missing template argument")
			}
			var next memSource
			switch t := v.(type) {
			case AltString:
				next = altSource(t)
			case string:
				next = normalSource(t)
			default:
				return state, -1, badFormat("continuation: argument not a string")
			}
			src = next
			i = 0
			continue
		}

		code := src.readByte(i)
		i++

		var repChar byte
		if code == 'C' {
			if i >= src.len() {
				return state, -1, badFormat("%C: missing repeat character")
			}
			repChar = src.readByte(i)
			i++
		}
		f.repChar = repChar

		newState, n, err := dispatch(sink, state, &f, args, code)
		if err != nil {
			return state, -1, err
		}
		state = newState
		total += n
	}
}

// dispatch implements format.c's do_conv: route by conversion letter to
// the matching converter, returning the number of bytes this conversion
// emitted. '%p' is rewritten to a hex integer conversion per spec.md §4.1's
// closing policy.
func dispatch(sink Sink, state any, f *formatSpec, args *argCursor, code byte) (any, int, error) {
	before := f.charsEmitted

	if glog.V(2) {
		glog.Infof("format: dispatch %%%c at byte %d, width=%d prec=%d", code, before, f.width, f.prec)
	}

	switch code {
	case '%':
		newState, n, err := genOut(sink, state, 0, nil, 0, []byte{'%'}, 0)
		if err != nil {
			return nil, 0, err
		}
		f.charsEmitted += n
		return newState, f.charsEmitted - before, nil

	case 'n':
		if err := nConv(f, args); err != nil {
			return nil, 0, err
		}
		return state, 0, nil

	case 'c', 'C':
		newState, err := charConv(sink, state, f, args, code)
		if err != nil {
			return nil, 0, err
		}
		return newState, f.charsEmitted - before, nil

	case 's':
		newState, err := stringConv(sink, state, f, args)
		if err != nil {
			return nil, 0, err
		}
		return newState, f.charsEmitted - before, nil

	case 'p':
		f.flags = fHash | fBang
		f.width = pointerHexWidth
		f.prec = pointerHexWidth
		f.qual = qL
		newState, err := intConv(sink, state, f, args, 'X')
		if err != nil {
			return nil, 0, err
		}
		return newState, f.charsEmitted - before, nil

	case 'd', 'i', 'I', 'u', 'U', 'x', 'X', 'o', 'b':
		newState, err := intConv(sink, state, f, args, code)
		if err != nil {
			return nil, 0, err
		}
		return newState, f.charsEmitted - before, nil

	case 'e', 'E', 'f', 'F', 'g', 'G':
		newState, err := floatConv(sink, state, f, args, code)
		if err != nil {
			return nil, 0, err
		}
		return newState, f.charsEmitted - before, nil

	case 'k':
		newState, err := fixedConv(sink, state, f, args)
		if err != nil {
			return nil, 0, err
		}
		return newState, f.charsEmitted - before, nil
	}

	return nil, 0, badFormat("unknown conversion specifier")
}

// pointerHexWidth is sizeof(int*)*2 on the source's reference platform
// (8-byte pointers, two hex digits per byte).
const pointerHexWidth = 16
