//go:build !micro && !tiny

package format

// nConv implements the %n conversion, grounded on format.c's do_conv_n: the
// argument is a pointer that receives the running emitted-character count.
// Go's type system gives us the qualifier for free via a type switch
// instead of the source's qual-tag dispatch.
func nConv(f *formatSpec, args *argCursor) error {
	v, ok := args.next()
	if !ok {
		return badFormat("%n: missing argument")
	}
	n := f.charsEmitted
	switch p := v.(type) {
	case *int:
		*p = n
	case *int64:
		*p = int64(n)
	case *int32:
		*p = int32(n)
	case *int16:
		*p = int16(n)
	case *int8:
		*p = int8(n)
	case nil:
		// a null pointer is a silent no-op, per the source.
	default:
		return badFormat("%n: unsupported pointer type")
	}
	return nil
}
