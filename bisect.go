// Package bisect locates the boundary of a monotone classifier over a
// discrete ordered range: the largest index classified Low and the
// smallest index classified High. Alongside each bound it threads a
// caller-supplied witness value, so the caller gets back not only the
// two boundary indices but whatever artifact the classifier produced
// when it last confirmed each side.
package bisect

// Endpoint is one side of the current search interval: an index into
// the search space paired with the witness produced by the classifier
// call that most recently confirmed that side (or the caller's initial
// witness, if that side was never refined).
type Endpoint[X, W any] struct {
	Index   X
	Witness W
}

// Classifier maps a candidate index to a Direction. It must be monotone
// over the searched range: there is some threshold such that every index
// below it classifies Low and every index at or above it classifies High.
type Classifier[X, A, B any] func(X) Direction[A, B]

// Search finds the boundary of classify between low and high.
//
// Given a monotone classifier, it returns the refined endpoints
// (largestLow, smallestHigh) with no index remaining strictly between
// them: largestLow.Index is the largest index known to classify Low and
// smallestHigh.Index is the smallest index known to classify High. Each
// returned witness comes from the last classifier call that refined that
// side, or from the input endpoint if that side was never probed.
//
// The midpoint of each remaining interval is the floor midpoint
// (equivalent to low + (high-low)/2 under floor division), so on
// even-length intervals the probe is biased toward the low side. The
// classifier is invoked ceil(log2(high.Index-low.Index)) times, each at
// a distinct index, and the probe sequence is deterministic. Bounds that
// are already adjacent are returned unchanged without invoking classify.
//
// Preconditions, NOT validated: low.Index < high.Index, and classify is
// monotone on [low.Index, high.Index]. Callers who cannot establish
// monotonicity up front should probe both initial indices themselves and
// tighten the bounds first. Violating either precondition still returns
// some adjacent pair, but not a meaningful one.
func Search[X Integer, A, B any](low Endpoint[X, A], high Endpoint[X, B], classify Classifier[X, A, B]) (Endpoint[X, A], Endpoint[X, B]) {
	return SearchFunc(low, high, Between[X], classify)
}

// SearchFunc is Search over an arbitrary discrete totally-ordered index
// type. The between function supplies the midpoint rule: it must return
// an index strictly between its arguments, or ok=false when none exists
// (which terminates the search). Search is SearchFunc specialized with
// Between.
func SearchFunc[X, A, B any](low Endpoint[X, A], high Endpoint[X, B], between func(X, X) (X, bool), classify Classifier[X, A, B]) (Endpoint[X, A], Endpoint[X, B]) {
	for {
		mid, ok := between(low.Index, high.Index)
		if !ok {
			return low, high
		}
		if d := classify(mid); d.side == SideLow {
			low = Endpoint[X, A]{Index: mid, Witness: d.low}
		} else {
			high = Endpoint[X, B]{Index: mid, Witness: d.high}
		}
	}
}
