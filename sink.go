package format

// Sink receives runs of formatted bytes in left-to-right output order. It
// returns the state to use for the next call, or a non-nil error to abort
// the format call immediately. state is opaque to the engine; it is
// threaded through unchanged between calls the way the C original threads
// its consumer's void * argument.
type Sink func(state any, p []byte) (any, error)

// emit sends p to sink in a single call and folds any failure into
// ErrBadFormat.
func emit(sink Sink, state any, p []byte) (any, error) {
	if len(p) == 0 {
		return state, nil
	}
	next, err := sink(state, p)
	if err != nil {
		return nil, badFormat("sink refused bytes")
	}
	return next, nil
}
