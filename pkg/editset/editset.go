// Package editset tracks whitespace-only edits against an immutable source
// text and answers queries over the edited result without materializing it.
//
// An EditSet owns the source text and an ordered set of changes, each
// replacing a whitespace-only span of the source with other whitespace.
// Changes never overlap and never touch: an edit adjacent to an existing
// change is merged into it by Add, so at most one change is ever current at
// a given source offset. Read-side queries (Fragments, CountLineBreaks,
// CountSpaces, Search) address spans of the edited result, in either
// source-relative or change-relative coordinates, and Render materializes
// the final string.
package editset

import (
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/wsedit/internal/logging"
)

// EditSet owns an immutable source text and the ordered set of changes
// applied to it. It is not safe for concurrent use; callers must serialize
// access, and must not call Add while a Fragments sequence is being
// consumed.
type EditSet struct {
	src     string
	changes []*Change // sorted by start, unique, pairwise disjoint and non-adjacent
	logger  *log.Logger
}

// Option configures an EditSet.
type Option func(*EditSet)

// WithLogger sets the logger used for debug traces of merge decisions.
// The default logger discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(s *EditSet) { s.logger = logger }
}

// New creates an EditSet over src. src is never mutated.
func New(src string, opts ...Option) *EditSet {
	s := &EditSet{src: src, logger: logging.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Source returns the original text.
func (s *EditSet) Source() string { return s.src }

// Changes returns the current changes in source order.
func (s *EditSet) Changes() []*Change {
	return slices.Clone(s.changes)
}

// floor returns the change with the greatest start <= offset, or nil.
func (s *EditSet) floor(offset int) *Change {
	i := sort.Search(len(s.changes), func(i int) bool {
		return s.changes[i].start > offset
	})
	if i == 0 {
		return nil
	}
	return s.changes[i-1]
}

// next returns the change with the smallest start > offset, or nil.
func (s *EditSet) next(offset int) *Change {
	i := sort.Search(len(s.changes), func(i int) bool {
		return s.changes[i].start > offset
	})
	if i == len(s.changes) {
		return nil
	}
	return s.changes[i]
}

// successor returns the change immediately after c in source order, or nil.
func (s *EditSet) successor(c *Change) *Change {
	return s.next(c.start)
}

func (s *EditSet) insert(c *Change) {
	i := sort.Search(len(s.changes), func(i int) bool {
		return s.changes[i].start > c.start
	})
	s.changes = slices.Insert(s.changes, i, c)
}

func (s *EditSet) remove(c *Change) {
	if i := slices.Index(s.changes, c); i >= 0 {
		s.changes = slices.Delete(s.changes, i, i+1)
	}
}

// contains reports whether c is a live handle in this set. Handles returned
// before a later merge are stale and must not anchor new edits.
func (s *EditSet) contains(c *Change) bool {
	return slices.Index(s.changes, c) >= 0
}

// Normalize rewrites a source-relative position sitting exactly on a change
// boundary into the equivalent change-relative position: a change's start
// boundary becomes offset 0 in that change, its end boundary becomes offset
// len(Replacement()). Positions already change-relative, and source
// positions on no boundary, are returned unchanged. Normalize is idempotent
// and has no side effects.
func (s *EditSet) Normalize(p Position) Position {
	if p.change != nil {
		return p
	}
	c := s.floor(p.offset)
	if c == nil {
		return p
	}
	// Changes never touch, so at most one change can match either boundary.
	if c.start == p.offset {
		return c.Pos(0)
	}
	if c.end == p.offset {
		return c.Pos(len(c.replacement))
	}
	return p
}

// Add records the replacement of r, a span of the edited result, with the
// given whitespace text. An edit that sits flush against one or two
// existing changes is merged with them, and an edit inside a single change
// revises that change's replacement text in place. The returned change is
// the surviving handle; handles previously returned for merged changes are
// stale afterwards.
//
// Add either fully succeeds or leaves the set exactly as it was. Errors are
// caller contract violations: *NonWhitespaceReplacementError,
// *NonWhitespaceSourceError, *IntersectingChangeError, *InvalidRangeError.
func (s *EditSet) Add(r Range, replacement string) (*Change, error) {
	if i := nonWhitespaceIndex(replacement); i >= 0 {
		return nil, &NonWhitespaceReplacementError{Replacement: replacement, Offset: i}
	}

	start := s.Normalize(r.Start)
	end := s.Normalize(r.End)

	// One case per combination of coordinate spaces; each either rejects the
	// edit or produces a single contiguous change that preserves the
	// disjoint, non-adjacent ordering of the set.
	switch {
	case !start.InChange() && !end.InChange():
		return s.addNew(r, start.offset, end.offset, replacement)
	case start.InChange() && !end.InChange():
		return s.extendRight(r, start, end.offset, replacement)
	case !start.InChange() && end.InChange():
		return s.extendLeft(r, start.offset, end, replacement)
	case start.InChange() && end.InChange():
		return s.revise(r, start, end, replacement)
	}
	panic("unreachable")
}

// addNew inserts a brand-new change: neither range end touches an existing
// change boundary.
func (s *EditSet) addNew(r Range, startOff, endOff int, replacement string) (*Change, error) {
	if startOff < 0 || endOff > len(s.src) {
		return nil, &InvalidRangeError{Range: r, Message: "offset out of bounds"}
	}
	if endOff < startOff {
		return nil, &InvalidRangeError{Range: r, Message: "end before start"}
	}
	if c := s.floor(startOff); c != nil && c.end > startOff {
		// Start lies strictly inside an existing change's source span.
		return nil, &IntersectingChangeError{Range: r, Change: c}
	}
	if c := s.next(startOff); c != nil && c.start < endOff {
		// An existing change lies strictly inside the new range.
		return nil, &IntersectingChangeError{Range: r, Change: c}
	}
	if i := nonWhitespaceIndex(s.src[startOff:endOff]); i >= 0 {
		return nil, &NonWhitespaceSourceError{Start: startOff, End: endOff, Offset: startOff + i}
	}

	c := &Change{start: startOff, end: endOff, replacement: replacement}
	s.insert(c)
	s.logger.Debug("added change", "change", c)
	return c, nil
}

// extendRight merges an edit that begins exactly at the end of an existing
// change and extends into plain source text.
func (s *EditSet) extendRight(r Range, start Position, endOff int, replacement string) (*Change, error) {
	c := start.change
	if !s.contains(c) {
		return nil, &InvalidRangeError{Range: r, Message: "stale change handle"}
	}
	if start.offset != len(c.replacement) {
		return nil, &IntersectingChangeError{Range: r, Change: c}
	}
	if endOff > len(s.src) {
		return nil, &InvalidRangeError{Range: r, Message: "offset out of bounds"}
	}
	if endOff < c.end {
		return nil, &InvalidRangeError{Range: r, Message: "end before start"}
	}
	if n := s.successor(c); n != nil && n.start < endOff {
		return nil, &IntersectingChangeError{Range: r, Change: n}
	}
	if i := nonWhitespaceIndex(s.src[c.end:endOff]); i >= 0 {
		return nil, &NonWhitespaceSourceError{Start: c.end, End: endOff, Offset: c.end + i}
	}

	merged := &Change{start: c.start, end: endOff, replacement: c.replacement + replacement}
	s.remove(c)
	s.insert(merged)
	s.logger.Debug("merged on right edge", "old", c, "merged", merged)
	return merged, nil
}

// extendLeft merges an edit that begins in plain source text and ends
// exactly at the start of an existing change.
func (s *EditSet) extendLeft(r Range, startOff int, end Position, replacement string) (*Change, error) {
	c := end.change
	if !s.contains(c) {
		return nil, &InvalidRangeError{Range: r, Message: "stale change handle"}
	}
	if end.offset != 0 {
		return nil, &IntersectingChangeError{Range: r, Change: c}
	}
	if startOff < 0 {
		return nil, &InvalidRangeError{Range: r, Message: "offset out of bounds"}
	}
	if startOff > c.start {
		return nil, &InvalidRangeError{Range: r, Message: "end before start"}
	}
	if f := s.floor(startOff); f != nil && f.end > startOff {
		return nil, &IntersectingChangeError{Range: r, Change: f}
	}
	// The next change after startOff must be c itself; anything in between
	// means the range straddles an unrelated change.
	if n := s.next(startOff); n != c {
		return nil, &IntersectingChangeError{Range: r, Change: n}
	}
	if i := nonWhitespaceIndex(s.src[startOff:c.start]); i >= 0 {
		return nil, &NonWhitespaceSourceError{Start: startOff, End: c.start, Offset: startOff + i}
	}

	merged := &Change{start: startOff, end: c.end, replacement: replacement + c.replacement}
	s.remove(c)
	s.insert(merged)
	s.logger.Debug("merged on left edge", "old", c, "merged", merged)
	return merged, nil
}

// revise handles edits with both ends change-relative: a splice within one
// change's replacement text, or the bridging of two immediate neighbors.
func (s *EditSet) revise(r Range, start, end Position, replacement string) (*Change, error) {
	a, b := start.change, end.change
	if !s.contains(a) || !s.contains(b) {
		return nil, &InvalidRangeError{Range: r, Message: "stale change handle"}
	}

	if a == b {
		if start.offset < 0 || end.offset > len(a.replacement) {
			return nil, &InvalidRangeError{Range: r, Message: "offset outside replacement text"}
		}
		if end.offset < start.offset {
			return nil, &InvalidRangeError{Range: r, Message: "end before start"}
		}
		revised := &Change{
			start:       a.start,
			end:         a.end,
			replacement: a.replacement[:start.offset] + replacement + a.replacement[end.offset:],
		}
		s.remove(a)
		s.insert(revised)
		s.logger.Debug("revised change", "old", a, "new", revised)
		return revised, nil
	}

	if b.start < a.start {
		return nil, &InvalidRangeError{Range: r, Message: "end before start"}
	}
	// Bridging two changes requires the edit to span exactly the gap
	// between immediate neighbors.
	if start.offset != len(a.replacement) || end.offset != 0 {
		return nil, &IntersectingChangeError{Range: r, Change: a}
	}
	if n := s.successor(a); n != b {
		return nil, &IntersectingChangeError{Range: r, Change: n}
	}
	if i := nonWhitespaceIndex(s.src[a.end:b.start]); i >= 0 {
		return nil, &NonWhitespaceSourceError{Start: a.end, End: b.start, Offset: a.end + i}
	}

	merged := &Change{start: a.start, end: b.end, replacement: a.replacement + replacement + b.replacement}
	s.remove(a)
	s.remove(b)
	s.insert(merged)
	s.logger.Debug("bridged changes", "left", a, "right", b, "merged", merged)
	return merged, nil
}

// Render materializes the edited result: source slices between changes,
// with each change's replacement substituted for its source span.
func (s *EditSet) Render() string {
	if len(s.changes) == 0 {
		return s.src
	}

	delta := 0
	for _, c := range s.changes {
		delta += len(c.replacement) - (c.end - c.start)
	}

	var b strings.Builder
	b.Grow(len(s.src) + delta)

	cursor := 0
	for _, c := range s.changes {
		b.WriteString(s.src[cursor:c.start])
		b.WriteString(c.replacement)
		cursor = c.end
	}
	b.WriteString(s.src[cursor:])

	return b.String()
}

// nonWhitespaceIndex returns the index of the first byte outside space,
// tab, CR, LF, or -1 if the string is whitespace-only.
func nonWhitespaceIndex(s string) int {
	for i := 0; i < len(s); i++ {
		if !isWhitespace(s[i]) {
			return i
		}
	}
	return -1
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

func isLineBreak(b byte) bool {
	return b == '\n' || b == '\r'
}
