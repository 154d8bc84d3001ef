// Package textdiff renders a line-based unified diff between two texts.
// It exists so a tool built on editset can show the whitespace changes it
// is about to apply.
package textdiff

import (
	"fmt"
	"strings"
)

// Diff is a unified diff between an original and a modified text.
type Diff struct {
	// Hunks contains the diff hunks in order.
	Hunks []Hunk

	// Additions is the number of lines added.
	Additions int

	// Deletions is the number of lines removed.
	Deletions int
}

// Hunk is a single hunk in a unified diff.
type Hunk struct {
	// OriginalStart is the 1-based line number where the hunk starts in the
	// original text.
	OriginalStart int

	// OriginalCount is the number of original lines in this hunk.
	OriginalCount int

	// ModifiedStart is the 1-based line number where the hunk starts in the
	// modified text.
	ModifiedStart int

	// ModifiedCount is the number of modified lines in this hunk.
	ModifiedCount int

	// Lines contains the hunk's lines.
	Lines []Line
}

// Line is a single line in a diff hunk.
type Line struct {
	// Kind indicates whether this is a context, add, or remove line.
	Kind LineKind

	// Content is the line content without the diff prefix.
	Content string
}

// LineKind indicates the type of a diff line.
type LineKind int

const (
	// Context is an unchanged line shown around changes.
	Context LineKind = iota

	// Add is a line present only in the modified text.
	Add

	// Remove is a line present only in the original text.
	Remove
)

// contextLines is the number of context lines shown around changes.
const contextLines = 3

// Compute returns the unified diff between original and modified, or nil
// when the two are identical.
func Compute(original, modified string) *Diff {
	origLines := splitLines(original)
	modLines := splitLines(modified)

	hunks := computeHunks(origLines, modLines)
	if len(hunks) == 0 {
		return nil
	}

	var additions, deletions int
	for _, hunk := range hunks {
		for _, line := range hunk.Lines {
			switch line.Kind {
			case Add:
				additions++
			case Remove:
				deletions++
			}
		}
	}

	return &Diff{
		Hunks:     hunks,
		Additions: additions,
		Deletions: deletions,
	}
}

// HasChanges reports whether the diff contains any changed lines.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String returns the diff in unified format, hunk headers included.
func (d *Diff) String() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}

	var builder strings.Builder
	for _, hunk := range d.Hunks {
		fmt.Fprintf(&builder, "@@ -%d,%d +%d,%d @@\n",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)

		for _, line := range hunk.Lines {
			switch line.Kind {
			case Context:
				fmt.Fprintf(&builder, " %s\n", line.Content)
			case Add:
				fmt.Fprintf(&builder, "+%s\n", line.Content)
			case Remove:
				fmt.Fprintf(&builder, "-%s\n", line.Content)
			}
		}
	}

	return builder.String()
}

// splitLines splits text into lines, dropping the trailing empty line left
// by a final newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// computeHunks computes diff hunks using an LCS-based algorithm.
func computeHunks(orig, mod []string) []Hunk {
	lcs := longestCommonSubsequence(orig, mod)

	ops := buildOps(orig, mod, lcs)
	if len(ops) == 0 {
		return nil
	}

	return groupIntoHunks(ops)
}

// op is a single diff operation over one line.
type op struct {
	kind    LineKind
	content string
}

// buildOps builds the operation sequence from original, modified, and their
// LCS. Lines outside the LCS become removes (original side) or adds
// (modified side); only genuinely changed inputs yield non-context ops.
func buildOps(orig, mod, lcs []string) []op {
	changed := false
	var ops []op
	origIdx, modIdx, lcsIdx := 0, 0, 0

	for origIdx < len(orig) || modIdx < len(mod) {
		if lcsIdx < len(lcs) &&
			origIdx < len(orig) && modIdx < len(mod) &&
			orig[origIdx] == lcs[lcsIdx] && mod[modIdx] == lcs[lcsIdx] {
			ops = append(ops, op{kind: Context, content: orig[origIdx]})
			origIdx++
			modIdx++
			lcsIdx++
			continue
		}

		for origIdx < len(orig) && (lcsIdx >= len(lcs) || orig[origIdx] != lcs[lcsIdx]) {
			ops = append(ops, op{kind: Remove, content: orig[origIdx]})
			origIdx++
			changed = true
		}

		for modIdx < len(mod) && (lcsIdx >= len(lcs) || mod[modIdx] != lcs[lcsIdx]) {
			ops = append(ops, op{kind: Add, content: mod[modIdx]})
			modIdx++
			changed = true
		}
	}

	if !changed {
		return nil
	}
	return ops
}

// groupIntoHunks groups operations into hunks, merging changes whose
// context windows would overlap.
func groupIntoHunks(ops []op) []Hunk {
	type changeRange struct {
		start, end int // indices into ops
	}

	var ranges []changeRange
	inChange := false
	rangeStart := 0

	for opIdx, o := range ops {
		isChange := o.kind != Context
		if isChange && !inChange {
			rangeStart = opIdx
			inChange = true
		} else if !isChange && inChange {
			ranges = append(ranges, changeRange{rangeStart, opIdx})
			inChange = false
		}
	}
	if inChange {
		ranges = append(ranges, changeRange{rangeStart, len(ops)})
	}

	if len(ranges) == 0 {
		return nil
	}

	var hunks []Hunk
	for rangeIdx := 0; rangeIdx < len(ranges); {
		mergeEnd := rangeIdx + 1
		for mergeEnd < len(ranges) {
			gap := ranges[mergeEnd].start - ranges[mergeEnd-1].end
			if gap > contextLines*2 {
				break
			}
			mergeEnd++
		}

		hunk := buildHunk(ops, ranges[rangeIdx].start, ranges[mergeEnd-1].end)
		if len(hunk.Lines) > 0 {
			hunks = append(hunks, hunk)
		}

		rangeIdx = mergeEnd
	}

	return hunks
}

// buildHunk builds a single hunk covering ops[changeStart:changeEnd] plus
// surrounding context.
func buildHunk(ops []op, changeStart, changeEnd int) Hunk {
	start := max(changeStart-contextLines, 0)
	end := min(changeEnd+contextLines, len(ops))

	hunk := Hunk{OriginalStart: 1, ModifiedStart: 1}
	for opIdx := range start {
		if ops[opIdx].kind != Add {
			hunk.OriginalStart++
		}
		if ops[opIdx].kind != Remove {
			hunk.ModifiedStart++
		}
	}

	for i := start; i < end; i++ {
		hunk.Lines = append(hunk.Lines, Line{Kind: ops[i].kind, Content: ops[i].content})

		switch ops[i].kind {
		case Context:
			hunk.OriginalCount++
			hunk.ModifiedCount++
		case Remove:
			hunk.OriginalCount++
		case Add:
			hunk.ModifiedCount++
		}
	}

	return hunk
}

// longestCommonSubsequence computes the LCS of two line slices.
func longestCommonSubsequence(orig, mod []string) []string {
	origLen, modLen := len(orig), len(mod)
	if origLen == 0 || modLen == 0 {
		return nil
	}

	dp := make([][]int, origLen+1)
	for idx := range dp {
		dp[idx] = make([]int, modLen+1)
	}

	for row := 1; row <= origLen; row++ {
		for col := 1; col <= modLen; col++ {
			if orig[row-1] == mod[col-1] {
				dp[row][col] = dp[row-1][col-1] + 1
			} else {
				dp[row][col] = max(dp[row-1][col], dp[row][col-1])
			}
		}
	}

	lcsLen := dp[origLen][modLen]
	if lcsLen == 0 {
		return nil
	}

	lcs := make([]string, lcsLen)
	row, col, idx := origLen, modLen, lcsLen-1
	for row > 0 && col > 0 {
		switch {
		case orig[row-1] == mod[col-1]:
			lcs[idx] = orig[row-1]
			row--
			col--
			idx--
		case dp[row-1][col] > dp[row][col-1]:
			row--
		default:
			col--
		}
	}

	return lcs
}
