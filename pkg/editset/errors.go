package editset

import "fmt"

// NonWhitespaceReplacementError reports a proposed replacement text
// containing a character outside space, tab, CR, LF.
type NonWhitespaceReplacementError struct {
	Replacement string
	Offset      int // index of the offending byte within Replacement
}

func (e *NonWhitespaceReplacementError) Error() string {
	return fmt.Sprintf("replacement %q contains non-whitespace at offset %d", e.Replacement, e.Offset)
}

// NonWhitespaceSourceError reports a source span that a new edit would
// cover containing a character outside space, tab, CR, LF.
type NonWhitespaceSourceError struct {
	Start  int // inclusive start of the offending source span
	End    int // exclusive end of the offending source span
	Offset int // source offset of the offending byte
}

func (e *NonWhitespaceSourceError) Error() string {
	return fmt.Sprintf("source span [%d:%d) contains non-whitespace at offset %d", e.Start, e.End, e.Offset)
}

// IntersectingChangeError reports a range that overlaps an existing change,
// or straddles one with a gap, in a way the merge rules do not allow.
type IntersectingChangeError struct {
	Range  Range
	Change *Change // the change in the way, if one was identified
}

func (e *IntersectingChangeError) Error() string {
	if e.Change != nil {
		return fmt.Sprintf("range %s intersects existing change %s", e.Range, e.Change)
	}
	return fmt.Sprintf("range %s intersects an existing change", e.Range)
}

// InvalidRangeError reports coordinates that do not address the edited
// result: negative or out-of-bounds offsets, or an end before its start.
type InvalidRangeError struct {
	Range   Range
	Message string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range %s: %s", e.Range, e.Message)
}
