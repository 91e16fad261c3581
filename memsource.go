//go:build !micro && !tiny

package format

// AltString marks a byte sequence as living in the "alternate" memory
// space described in spec.md §6 and §9 (ROM, in the source's embedded
// targets). On a hosted Go platform there is no second address space to
// read through, but the tagged-variant shape is preserved for interface
// fidelity: a continuation whose argument is an AltString reads the new
// template through the Alt variant of memSource, and one whose argument is
// a plain string through the Normal variant. The choice follows the
// argument's type alone; the HASH flag is not consulted, and %s (with or
// without HASH) renders an AltString's bytes exactly like a plain string.
type AltString string

// memSource is the {Normal(byte_ptr), Alt(rom_ptr)} tagged variant spec.md's
// Design Notes call for. Converters never need to know which variant they
// hold; they just call readByte.
type memSource struct {
	alt bool
	s   string
}

func normalSource(s string) memSource { return memSource{s: s} }
func altSource(s AltString) memSource { return memSource{alt: true, s: string(s)} }

func (m memSource) len() int { return len(m.s) }

func (m memSource) readByte(i int) byte { return m.s[i] }

func (m memSource) slice(i, j int) string { return m.s[i:j] }
