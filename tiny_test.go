//go:build tiny

package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collectTiny(t *testing.T, template string, args ...any) (string, int) {
	t.Helper()
	var buf []byte
	PutByte = func(c byte) int {
		buf = append(buf, c)
		return 1
	}
	defer func() { PutByte = nil }()
	n := FormatByte(template, args...)
	return string(buf), n
}

func TestTinyBasicDecimal(t *testing.T) {
	out, n := collectTiny(t, "%d", int64(-123))
	assert.Equal(t, "-123", out)
	assert.Equal(t, 4, n)
}

// Scenario 10: unlike the micro tier, the tiny tier does support format
// continuation, using a plain string rather than the full tier's
// alternate-memory-aware variant.
func TestTinyContinuation(t *testing.T) {
	out, n := collectTiny(t, "hello %", "world")
	assert.Equal(t, "hello world", out)
	assert.Equal(t, 11, n)
}

// Scenario 11: the tiny tier prints "(null)" like the full tier; only the
// micro tier prints "?".
func TestTinyNullString(t *testing.T) {
	var s *string
	out, n := collectTiny(t, "%s", s)
	assert.Equal(t, "(null)", out)
	assert.Equal(t, 6, n)
}

func TestTinyPointerRewrite(t *testing.T) {
	out, _ := collectTiny(t, "%p", int64(0xBEEF))
	assert.Equal(t, "BEEF", out)
}

func TestTinyNoGroupingOrFloat(t *testing.T) {
	_, n := collectTiny(t, "%f", 1.5)
	assert.Equal(t, -1, n, "tiny tier has no floating point support")

	_, n = collectTiny(t, "%[,3]d", int64(1234))
	assert.Equal(t, -1, n, "tiny tier has no grouping support")
}
