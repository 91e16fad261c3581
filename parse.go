//go:build !micro && !tiny

package format

// parseFlags consumes zero or more of " +-#0!^" starting at s[i], setting
// the corresponding bits in f.flags. Grounded on format.c's scan loop,
// which walks a parallel (fchar, fbit) table; spec.md's full tier adds '!'
// and '^' to the trunk's five.
func parseFlags(s memSource, i int, f *formatSpec) int {
	for i < s.len() {
		switch s.readByte(i) {
		case ' ':
			f.flags |= fSpace
		case '+':
			f.flags |= fPlus
		case '-':
			f.flags |= fMinus
		case '#':
			f.flags |= fHash
		case '0':
			f.flags |= fZero
		case '!':
			f.flags |= fBang
		case '^':
			f.flags |= fCaret
		default:
			return i
		}
		i++
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// parseWidth implements spec.md §4.1 step 4.
func parseWidth(s memSource, i int, f *formatSpec, args *argCursor) (int, error) {
	if i < s.len() && s.readByte(i) == '*' {
		v, err := args.nextInt()
		if err != nil {
			return i, err
		}
		if v < 0 {
			v = -v
			f.flags |= fMinus
		}
		f.width = int(v)
		i++
	} else {
		w := 0
		for i < s.len() && isDigit(s.readByte(i)) {
			w = w*10 + int(s.readByte(i)-'0')
			i++
		}
		f.width = w
	}
	if f.width > maxWidth {
		return i, badFormat("width exceeds maximum")
	}
	return i, nil
}

// parsePrecision implements spec.md §4.1 step 5.
func parsePrecision(s memSource, i int, f *formatSpec, args *argCursor) (int, error) {
	if i >= s.len() || s.readByte(i) != '.' {
		f.prec = -1
		return i, nil
	}
	i++
	if i < s.len() && s.readByte(i) == '*' {
		v, err := args.nextInt()
		if err != nil {
			return i, err
		}
		if v < 0 {
			f.prec = -1
		} else if v > maxPrec {
			return i, badFormat("precision exceeds maximum")
		} else {
			f.prec = int(v)
		}
		i++
		return i, nil
	}
	p := 0
	for i < s.len() && isDigit(s.readByte(i)) {
		p = p*10 + int(s.readByte(i)-'0')
		i++
	}
	if p > maxPrec {
		return i, badFormat("precision exceeds maximum")
	}
	f.prec = p
	return i, nil
}

// parseBase implements spec.md §4.1 step 6: a full-tier-only ':' modifier
// with no precedent in the original C sources (format_fp.c's base
// conversions are hardwired per conversion letter); synthesized directly
// from the spec grammar.
func parseBase(s memSource, i int, f *formatSpec, args *argCursor) (int, error) {
	if i >= s.len() || s.readByte(i) != ':' {
		return i, nil
	}
	i++
	if i < s.len() && s.readByte(i) == '*' {
		v, err := args.nextInt()
		if err != nil {
			return i, err
		}
		i++
		if v > 1 {
			if v < 2 || v > maxBase {
				return i, badFormat("base out of range")
			}
			f.base = int(v)
		}
		return i, nil
	}
	b := 0
	for i < s.len() && isDigit(s.readByte(i)) {
		b = b*10 + int(s.readByte(i)-'0')
		i++
	}
	if b != 0 {
		if b < 2 || b > maxBase {
			return i, badFormat("base out of range")
		}
		f.base = b
	}
	return i, nil
}

// parseGrouping implements spec.md §4.1 step 7 / §6's `grouping := '['
// (group-spec)* ']'` grammar. Only the raw substring is captured here;
// applyGrouping parses the pairs lazily, since the integer converter is
// the only consumer.
func parseGrouping(s memSource, i int, f *formatSpec) (int, error) {
	if i >= s.len() || s.readByte(i) != '[' {
		return i, nil
	}
	i++
	start := i
	for i < s.len() && s.readByte(i) != ']' {
		i++
	}
	if i >= s.len() {
		return i, badFormat("unterminated grouping")
	}
	f.grouping = groupingPattern{spec: s.slice(start, i), set: true}
	i++
	return i, nil
}

// parseFixed implements spec.md §4.1 step 8 / §6's `fixed := '{' digits?
// '.' digits? '}'` grammar, used only ahead of the 'k' specifier.
func parseFixed(s memSource, i int, f *formatSpec) (int, error) {
	if i >= s.len() || s.readByte(i) != '{' {
		return i, nil
	}
	i++
	wInt := 0
	sawInt := false
	for i < s.len() && isDigit(s.readByte(i)) {
		wInt = wInt*10 + int(s.readByte(i)-'0')
		i++
		sawInt = true
	}
	if i >= s.len() || s.readByte(i) != '.' {
		return i, badFormat("malformed fixed-point modifier")
	}
	i++
	wFrac := 0
	sawFrac := false
	for i < s.len() && isDigit(s.readByte(i)) {
		wFrac = wFrac*10 + int(s.readByte(i)-'0')
		i++
		sawFrac = true
	}
	if i >= s.len() || s.readByte(i) != '}' {
		return i, badFormat("malformed fixed-point modifier")
	}
	i++
	if sawInt {
		f.fixedInt = wInt
	}
	if sawFrac {
		f.fixedFrac = wFrac
	}
	return i, nil
}

// lengthQualChars pairs each qualifier letter with its enum value, per
// spec.md §4.1 step 9. Doubling is detected by the scanner re-reading the
// same byte, not by the source's DOUBLE_QUAL ASCII-parity trick (per
// SPEC_FULL.md's design note, the Go representation is an explicit enum).
var lengthQualChars = map[byte]lengthQual{
	'h': qH, 'l': qL, 'j': qJ, 'z': qZ, 't': qT, 'L': qBigL,
}

// parseLengthQual implements spec.md §4.1 step 9.
func parseLengthQual(s memSource, i int, f *formatSpec) int {
	if i >= s.len() {
		return i
	}
	c := s.readByte(i)
	q, ok := lengthQualChars[c]
	if !ok {
		return i
	}
	i++
	if i < s.len() && s.readByte(i) == c {
		switch q {
		case qH:
			q = qHH
		case qL:
			q = qLL
		}
		i++
	}
	f.qual = q
	return i
}
