//go:generate go run github.com/dmarkham/enumer -type=Side -trimprefix=Side -transform=kebab
package bisect

// Side identifies which side of the boundary a probed index fell on.
type Side int

const (
	SideLow Side = iota
	SideHigh
)

// Direction is the result of one classifier probe: the probed index is
// either below the boundary (Low, carrying a witness of type A) or at or
// above it (High, carrying a witness of type B). The two witness types
// are independent; only the variant's own witness is ever consumed.
//
// The zero value is Low with a zero witness; construct values with Low
// or High.
type Direction[A, B any] struct {
	side Side
	low  A
	high B
}

// Low reports that the probed index classifies below the boundary,
// carrying witness as the new low-side witness.
func Low[A, B any](witness A) Direction[A, B] {
	return Direction[A, B]{side: SideLow, low: witness}
}

// High reports that the probed index classifies at or above the
// boundary, carrying witness as the new high-side witness.
func High[A, B any](witness B) Direction[A, B] {
	return Direction[A, B]{side: SideHigh, high: witness}
}

// Side returns which variant this Direction is.
func (d Direction[A, B]) Side() Side {
	return d.side
}

// LowWitness returns the low-side witness and whether this Direction is
// the Low variant.
func (d Direction[A, B]) LowWitness() (A, bool) {
	return d.low, d.side == SideLow
}

// HighWitness returns the high-side witness and whether this Direction
// is the High variant.
func (d Direction[A, B]) HighWitness() (B, bool) {
	return d.high, d.side == SideHigh
}
