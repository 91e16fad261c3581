//go:build !micro && !tiny

package format

// Format interprets template, consuming values from args according to its
// conversion specifiers, and passes the resulting bytes to sink in order.
// It is the full tier's entry point described in spec.md §6, generalizing
// format.c's format() from a fixed va_list/cons signature to a borrowed
// Go value slice and the Sink abstraction of sink.go.
//
// On success it returns the total number of bytes handed to sink. On any
// parse or sink failure it returns -1 and a non-nil error wrapping
// ErrBadFormat, mirroring the source's single BAD_FORMAT sentinel while
// still giving Go callers something to inspect with errors.Is/As.
func Format(sink Sink, state any, template string, args ...any) (int, error) {
	cursor := newArgCursor(args)
	_, n, err := scanTemplate(sink, state, normalSource(template), cursor)
	if err != nil {
		return -1, err
	}
	return n, nil
}
