package format

import "github.com/nejohnson/format/internal/cast"

// argCursor is the borrowed mutable cursor over the variadic argument list
// that spec.md's Design Notes call for, in place of the source's
// platform-dependent VARGS/VALPARM/VALST macros. Every converter advances
// it in strict left-to-right order and never rewinds.
type argCursor struct {
	args []any
	i    int
}

func newArgCursor(args []any) *argCursor {
	return &argCursor{args: args}
}

// next returns the next argument, or false if the list is exhausted. A
// caller reaching this false case has hit the "missing argument" undefined
// behavior spec.md §4.1 documents; this package treats it as a format
// error rather than faulting.
func (c *argCursor) next() (any, bool) {
	if c.i >= len(c.args) {
		return nil, false
	}
	v := c.args[c.i]
	c.i++
	return v, true
}

func (c *argCursor) nextInt() (int64, error) {
	v, ok := c.next()
	if !ok {
		return 0, badFormat("missing argument")
	}
	n, err := cast.ToInt64E(v)
	if err != nil {
		return 0, badFormat("argument not an integer")
	}
	return n, nil
}

func (c *argCursor) nextUint() (uint64, error) {
	v, ok := c.next()
	if !ok {
		return 0, badFormat("missing argument")
	}
	n, err := cast.ToUint64E(v)
	if err != nil {
		return 0, badFormat("argument not an unsigned integer")
	}
	return n, nil
}

func (c *argCursor) nextFloat() (float64, error) {
	v, ok := c.next()
	if !ok {
		return 0, badFormat("missing argument")
	}
	n, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, badFormat("argument not a float")
	}
	return n, nil
}

func (c *argCursor) nextString() (string, bool, error) {
	v, ok := c.next()
	if !ok {
		return "", false, badFormat("missing argument")
	}
	switch s := v.(type) {
	case nil:
		return "", true, nil
	case *string:
		if s == nil {
			return "", true, nil
		}
		return *s, false, nil
	case string:
		return s, false, nil
	}
	return cast.ToString(v), false, nil
}
