package textdiff

import "github.com/yaklabco/wsedit/pkg/editset"

// Preview returns the unified diff between an edit set's source text and
// its rendered result, or nil when the edits change nothing. The diff is
// line-based: edits that only add or drop a final newline do not register.
func Preview(set *editset.EditSet) *Diff {
	return Compute(set.Source(), set.Render())
}
