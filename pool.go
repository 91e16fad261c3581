//go:build !micro && !tiny

package format

import "sync"

// scratchPool reuses the fixed-size digit scratch buffer across calls,
// generalizing the teacher package's !wasm sync.Pool pattern (memory.back.go)
// from its Conv objects to this package's much smaller per-conversion
// byte buffer.
var scratchPool = sync.Pool{
	New: func() any {
		b := make([]byte, scratchLen+1)
		return &b
	},
}

// getScratch returns a scratch buffer of scratchLen+1 bytes, borrowed from
// the pool.
func getScratch() *[]byte {
	return scratchPool.Get().(*[]byte)
}

// putScratch returns a scratch buffer to the pool for reuse.
func putScratch(b *[]byte) {
	scratchPool.Put(b)
}
