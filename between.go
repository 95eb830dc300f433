package bisect

// Integer limits the built-in index types Search accepts. The ~ prefix
// admits defined types whose underlying type is one of these, so callers
// may search over their own index types (offsets, sequence numbers, ...)
// without conversion. Floating-point types are deliberately absent: the
// search space is discrete.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Between returns the floor midpoint strictly between low and high, or
// ok=false when no index lies strictly between them (high <= low+1).
//
// The midpoint is computed as (low >> 1) + (high >> 1) + (low & high & 1)
// rather than (low + high) / 2, which is the same value wherever the sum
// does not overflow, and is additionally safe at the extremes of both
// signed and unsigned index types. For high > low it equals
// low + (high-low)/2 under floor division, biasing the midpoint toward
// the low side on even-length intervals.
func Between[X Integer](low, high X) (mid X, ok bool) {
	if high <= low+1 {
		var zero X
		return zero, false
	}
	return (low >> 1) + (high >> 1) + (low & high & 1), true
}
