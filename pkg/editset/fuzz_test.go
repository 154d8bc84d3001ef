package editset_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/wsedit/pkg/editset"
)

// FuzzRender replaces every maximal whitespace run in the input with a
// single newline and cross-checks the edit set against a straightforward
// string rebuild.
func FuzzRender(f *testing.F) {
	f.Add("")
	f.Add("hello world")
	f.Add("  leading and trailing  ")
	f.Add("a\t\tb\r\nc d")
	f.Add(" \t\r\n ")
	f.Add("one")

	f.Fuzz(func(t *testing.T, src string) {
		set := editset.New(src)

		isWS := func(b byte) bool {
			return b == ' ' || b == '\t' || b == '\r' || b == '\n'
		}

		var want strings.Builder
		i := 0
		for i < len(src) {
			if !isWS(src[i]) {
				want.WriteByte(src[i])
				i++
				continue
			}
			j := i
			for j < len(src) && isWS(src[j]) {
				j++
			}
			if _, err := set.Add(editset.Span(i, j), "\n"); err != nil {
				t.Fatalf("Add(%d, %d) = %v", i, j, err)
			}
			want.WriteString("\n")
			i = j
		}

		got := set.Render()
		if got != want.String() {
			t.Errorf("Render() = %q, want %q", got, want.String())
		}

		// The fragment walk over the full range must reproduce the render.
		var joined strings.Builder
		for frag := range set.Fragments(editset.Span(0, len(src))) {
			joined.WriteString(frag.Text)
		}
		if joined.String() != got {
			t.Errorf("joined fragments = %q, want %q", joined.String(), got)
		}

		// Line-break count over the full range must match a naive scan of
		// the rendered result (fragment boundaries never split the rendered
		// CRLF pairs this workload produces).
		breaks := set.CountLineBreaks(editset.Span(0, len(src)))
		if naive := naiveLineBreaks(got); breaks != naive {
			t.Errorf("CountLineBreaks = %d, want %d", breaks, naive)
		}
	})
}
