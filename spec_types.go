package format

// flag bits, mirroring the source's FSPACE/FPLUS/.../F_IS_SIGNED bitset.
// Kept as a bitset rather than a struct of bools because the parser sets
// them incrementally, one flag character at a time, exactly as the source
// does.
type flags uint16

const (
	fSpace flags = 1 << iota
	fPlus
	fMinus
	fHash
	fZero
	fBang
	fCaret
	fIsSigned // internal only, never set by the parser directly
)

// lengthQual is the length-qualifier enum spec.md's Design Notes ask for,
// in place of the source's even-ASCII-code bit trick. The parser detects a
// doubled qualifier by comparing the next byte with the first (see
// parseLengthQual), and the value it produces here is a plain tag.
type lengthQual uint8

const (
	qNone lengthQual = iota
	qH
	qHH
	qL
	qLL
	qJ
	qZ
	qT
	qBigL
)

// groupingPattern captures the raw `[...]` substring from the template,
// per spec.md §4.1 step 7: parsing the separator/run-length pairs is
// deferred to the integer converter (full tier only — micro and tiny never
// populate this field), which is the only consumer, and only runs when the
// converter actually has digits to group.
type groupingPattern struct {
	spec string // contents between '[' and ']', excluding the brackets
	set  bool
}

// formatSpec is the per-conversion working record described in spec.md §3.
// One is created by the parser at each '%' and discarded after the
// conversion runs; nothing about it survives across conversions.
type formatSpec struct {
	charsEmitted int // running output count, needed for %n and the final return

	flags flags
	width int
	prec  int // -1 means absent
	base  int // 0 means "default"; 2..36 otherwise

	qual    lengthQual
	repChar byte // %C's inline character

	grouping groupingPattern

	fixedInt  int // %k integer bit width
	fixedFrac int // %k fraction bit width
}

func newFormatSpec() formatSpec {
	return formatSpec{prec: -1, fixedInt: 16, fixedFrac: 16}
}
