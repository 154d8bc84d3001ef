package editset

import "fmt"

// Position addresses a point in the edited result. It is either
// source-relative (an offset into the original text) or change-relative (an
// offset into one change's replacement text). The boundary between a change
// and the surrounding source is representable both ways; EditSet.Normalize
// rewrites the source-relative form into the change-relative one, and every
// operation treats the two forms as the same point.
type Position struct {
	change *Change
	offset int
}

// At returns a source-relative position for the given offset.
func At(offset int) Position {
	return Position{offset: offset}
}

// InChange reports whether the position is change-relative.
func (p Position) InChange() bool { return p.change != nil }

// Change returns the change this position addresses, or nil for
// source-relative positions.
func (p Position) Change() *Change { return p.change }

// Offset returns the source offset, or for change-relative positions the
// offset into the change's replacement text.
func (p Position) Offset() int { return p.offset }

// String returns a human-readable representation of the position.
func (p Position) String() string {
	if p.change != nil {
		return fmt.Sprintf("%d in %s", p.offset, p.change)
	}
	return fmt.Sprintf("%d", p.offset)
}

// advanced returns the position n characters further into the same fragment.
func (p Position) advanced(n int) Position {
	return Position{change: p.change, offset: p.offset + n}
}

// Range is a contiguous span of the edited result, from Start (inclusive)
// to End (exclusive). The two ends need not use the same coordinate space.
type Range struct {
	Start Position
	End   Position
}

// NewRange creates a range from two positions.
func NewRange(start, end Position) Range {
	return Range{Start: start, End: end}
}

// Span returns a source-relative range covering [start, end).
func Span(start, end int) Range {
	return Range{Start: At(start), End: At(end)}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s:%s)", r.Start, r.End)
}
