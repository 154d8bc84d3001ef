package editset

import "fmt"

// Change is one whitespace-for-whitespace replacement over a contiguous
// span of the source text. Changes are immutable: merging or revising a
// change installs a new value, and the pointer returned by Add is the only
// fresh handle afterwards. A handle held across a later Add may be stale.
type Change struct {
	start       int
	end         int
	replacement string
}

// Start returns the source offset where the replaced span begins (inclusive).
func (c *Change) Start() int { return c.start }

// End returns the source offset where the replaced span ends (exclusive).
func (c *Change) End() int { return c.end }

// Replacement returns the text substituted for the replaced span.
func (c *Change) Replacement() string { return c.replacement }

// Pos returns a position inside this change's replacement text. Offset 0 is
// the very start of the change's output; len(Replacement()) is its very end.
func (c *Change) Pos(offset int) Position {
	return Position{change: c, offset: offset}
}

// String returns a human-readable representation of the change.
func (c *Change) String() string {
	return fmt.Sprintf("[%d:%d)->%q", c.start, c.end, c.replacement)
}
