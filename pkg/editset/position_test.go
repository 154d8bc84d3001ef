package editset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/wsedit/pkg/editset"
)

func TestPositionAccessors(t *testing.T) {
	t.Parallel()

	p := editset.At(7)
	assert.False(t, p.InChange())
	assert.Nil(t, p.Change())
	assert.Equal(t, 7, p.Offset())

	set := editset.New("a   b")
	c, err := set.Add(editset.Span(1, 3), "\n")
	require.NoError(t, err)

	q := c.Pos(1)
	assert.True(t, q.InChange())
	assert.Same(t, c, q.Change())
	assert.Equal(t, 1, q.Offset())
}

func TestSpan(t *testing.T) {
	t.Parallel()

	r := editset.Span(2, 5)
	assert.Equal(t, editset.At(2), r.Start)
	assert.Equal(t, editset.At(5), r.End)
	assert.Equal(t, r, editset.NewRange(editset.At(2), editset.At(5)))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	// src: "a   b", change replaces [1,3) with a single newline.
	set := editset.New("a   b")
	c, err := set.Add(editset.Span(1, 3), "\n")
	require.NoError(t, err)

	tests := []struct {
		name string
		in   editset.Position
		want editset.Position
	}{
		{"before any change", editset.At(0), editset.At(0)},
		{"start boundary", editset.At(1), c.Pos(0)},
		{"end boundary", editset.At(3), c.Pos(1)},
		{"after the change", editset.At(4), editset.At(4)},
		{"inside the replaced span", editset.At(2), editset.At(2)},
		{"already change-relative", c.Pos(0), c.Pos(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := set.Normalize(tt.in)
			assert.Equal(t, tt.want, got)

			// Normalization is idempotent.
			assert.Equal(t, got, set.Normalize(got))
		})
	}
}

func TestNormalizeNoChanges(t *testing.T) {
	t.Parallel()

	set := editset.New("  \t  ")
	for off := 0; off <= 5; off++ {
		assert.Equal(t, editset.At(off), set.Normalize(editset.At(off)))
	}
}

func TestNormalizeInsertionChange(t *testing.T) {
	t.Parallel()

	// An empty source span makes both boundaries the same offset; the start
	// boundary wins.
	set := editset.New("ab")
	c, err := set.Add(editset.Span(1, 1), " ")
	require.NoError(t, err)

	assert.Equal(t, c.Pos(0), set.Normalize(editset.At(1)))
}
