//go:build !micro && !tiny

package format

// Limits for the full tier. See spec.md §6.
const (
	maxWidth  = 500
	maxPrec   = 500
	maxBase   = 36
	scratchLen = 130
)
