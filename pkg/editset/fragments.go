package editset

import "iter"

// Fragment is a maximal contiguous run of literal text from the edited
// result: either a slice of the source between changes, or (part of) one
// change's replacement text. Origin is the position of the fragment's first
// character, so Origin advanced by an index within Text addresses that
// character.
type Fragment struct {
	Text   string
	Origin Position
}

// Fragments returns a single-pass, lazy traversal of the edited result
// covered by r. Both range ends are normalized first, and the sequence
// stops exactly at r.End even when that end sits strictly inside the final
// fragment. Each call produces a fresh sequence; the set must not be
// mutated while a sequence is being consumed.
func (s *EditSet) Fragments(r Range) iter.Seq[Fragment] {
	return func(yield func(Fragment) bool) {
		cur := s.Normalize(r.Start)
		end := s.Normalize(r.End)

		for {
			if c := cur.change; c != nil {
				if end.change == c {
					if cur.offset < end.offset {
						yield(Fragment{Text: c.replacement[cur.offset:end.offset], Origin: cur})
					}
					return
				}
				if cur.offset < len(c.replacement) {
					if !yield(Fragment{Text: c.replacement[cur.offset:], Origin: cur}) {
						return
					}
				}
				// Past the change's output; its end never needs
				// re-normalizing because changes never touch.
				cur = Position{offset: c.end}
				continue
			}

			off := cur.offset
			if end.change == nil && end.offset <= off {
				return
			}
			next := s.next(off)

			if ec := end.change; ec != nil && (next == nil || ec.start <= next.start) {
				// The change holding r.End is the next one in range.
				if off < ec.start {
					if !yield(Fragment{Text: s.src[off:ec.start], Origin: cur}) {
						return
					}
				}
				if end.offset > 0 {
					yield(Fragment{Text: ec.replacement[:end.offset], Origin: ec.Pos(0)})
				}
				return
			}

			if next == nil || (end.change == nil && end.offset <= next.start) {
				yield(Fragment{Text: s.src[off:end.offset], Origin: cur})
				return
			}

			if off < next.start {
				if !yield(Fragment{Text: s.src[off:next.start], Origin: cur}) {
					return
				}
			}
			cur = next.Pos(0)
		}
	}
}
