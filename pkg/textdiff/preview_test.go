package textdiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/wsedit/pkg/editset"
	"github.com/yaklabco/wsedit/pkg/textdiff"
)

func TestPreviewNoEdits(t *testing.T) {
	t.Parallel()

	set := editset.New("a\nb\n")
	assert.Nil(t, textdiff.Preview(set))
}

func TestPreview(t *testing.T) {
	t.Parallel()

	set := editset.New("func  main()   {\nreturn\n}\n")
	_, err := set.Add(editset.Span(4, 6), " ")
	require.NoError(t, err)
	_, err = set.Add(editset.Span(12, 15), " ")
	require.NoError(t, err)

	diff := textdiff.Preview(set)
	require.NotNil(t, diff)
	assert.True(t, diff.HasChanges())

	out := diff.String()
	assert.Contains(t, out, "-func  main()   {")
	assert.Contains(t, out, "+func main() {")
}
