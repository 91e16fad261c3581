//go:build micro || tiny

package format

// The micro and tiny tiers target single-threaded, allocation-wary
// environments; a sync.Pool's bookkeeping isn't worth it for a 16-byte
// buffer used once per conversion. Mirrors the teacher package's wasm
// branch (memory.front.go), which drops sync.Pool in favor of plain
// allocation and a no-op release.

func getScratch() *[]byte {
	b := make([]byte, scratchLen+1)
	return &b
}

func putScratch(*[]byte) {}
