package editset

// SpaceCount reports whitespace tallies over a range of the edited result.
type SpaceCount struct {
	// Spaces is the number of literal space characters.
	Spaces int

	// Tabs is the number of literal tab characters.
	Tabs int

	// Width is the total visual width consumed, with tabs expanded to the
	// next multiple of the tab width.
	Width int
}

// CountLineBreaks returns the number of line breaks ("\r\n", "\n", or "\r",
// with "\r\n" counted once) in the edited result covered by r. Each
// fragment is counted independently: a "\r" ending one fragment and a "\n"
// starting the next count as two separate breaks.
func (s *EditSet) CountLineBreaks(r Range) int {
	total := 0
	for f := range s.Fragments(r) {
		total += lineBreakCount(f.Text)
	}
	return total
}

func lineBreakCount(text string) int {
	n := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			n++
		case '\r':
			n++
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
		}
	}
	return n
}

// CountSpaces walks the edited result covered by r and tallies spaces, tabs,
// and visual width. The column counter starts at 0 and resets on every CR
// or LF; a space advances it by 1, a tab to the next multiple of tabWidth,
// and any other character by 1. Line breaks consume no width. tabWidth
// values below 1 are treated as 1.
func (s *EditSet) CountSpaces(r Range, tabWidth int) SpaceCount {
	if tabWidth < 1 {
		tabWidth = 1
	}

	var count SpaceCount
	col := 0
	for f := range s.Fragments(r) {
		for i := 0; i < len(f.Text); i++ {
			switch f.Text[i] {
			case '\r', '\n':
				col = 0
			case ' ':
				count.Spaces++
				count.Width++
				col++
			case '\t':
				adv := tabWidth - col%tabWidth
				count.Tabs++
				count.Width += adv
				col += adv
			default:
				// Non-whitespace shows up when the range spans outside the
				// edits; it occupies one column.
				count.Width++
				col++
			}
		}
	}
	return count
}

// Direction selects the scan order for Search.
type Direction int

const (
	// Forward finds the first match in the range.
	Forward Direction = iota

	// Backward finds the last match in the range.
	Backward
)

// CharClass selects which characters Search matches.
type CharClass int

const (
	// ClassNonWhitespace matches any character outside space, tab, CR, LF.
	ClassNonWhitespace CharClass = iota + 1

	// ClassLineBreak matches CR or LF.
	ClassLineBreak

	// ClassEither matches both classes; a character satisfying both reports
	// as ClassNonWhitespace.
	ClassEither
)

// classify returns the class b matches under the requested filter.
func classify(b byte, class CharClass) (CharClass, bool) {
	switch class {
	case ClassNonWhitespace:
		if !isWhitespace(b) {
			return ClassNonWhitespace, true
		}
	case ClassLineBreak:
		if isLineBreak(b) {
			return ClassLineBreak, true
		}
	case ClassEither:
		if !isWhitespace(b) {
			return ClassNonWhitespace, true
		}
		if isLineBreak(b) {
			return ClassLineBreak, true
		}
	}
	return 0, false
}

// Search scans the edited result covered by r for a character of the
// requested class. Forward returns the first match, Backward the last; both
// directions agree on per-character class priority because the scan itself
// always runs front to back. The returned position addresses the matched
// character. ok is false when the range contains no match.
func (s *EditSet) Search(r Range, dir Direction, class CharClass) (pos Position, matched CharClass, ok bool) {
	for f := range s.Fragments(r) {
		for i := 0; i < len(f.Text); i++ {
			cls, hit := classify(f.Text[i], class)
			if !hit {
				continue
			}
			pos = f.Origin.advanced(i)
			matched = cls
			ok = true
			if dir == Forward {
				return pos, matched, true
			}
		}
	}
	return pos, matched, ok
}
