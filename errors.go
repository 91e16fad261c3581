package format

import "github.com/pkg/errors"

// ErrBadFormat is the single failure sentinel the engine ever surfaces to a
// caller. Every internal error path wraps it with a short description via
// errors.Wrap before returning, so callers should test with errors.Is
// rather than direct equality.
var ErrBadFormat = errors.New("format: bad format")

// badFormat wraps ErrBadFormat with a short, non-localized description of
// where parsing or conversion gave up. It never appears bare: it is always
// the return value that unwinds the whole call.
func badFormat(ctx string) error {
	return errors.Wrap(ErrBadFormat, ctx)
}
