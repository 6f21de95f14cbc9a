package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdstyle/pkg/mdast"
)

func TestIsFenceMarker(t *testing.T) {
	t.Parallel()

	assert.True(t, IsFenceMarker("```"))
	assert.True(t, IsFenceMarker("```go"))
	assert.True(t, IsFenceMarker("~~~"))
	assert.False(t, IsFenceMarker("``"))
	assert.False(t, IsFenceMarker("text ```"))
}

func TestPadAndTrim(t *testing.T) {
	t.Parallel()

	got := PadAndTrim([]string{"  a ", "b"})
	assert.Equal(t, []string{"", "a", "b", ""}, got)
	assert.Equal(t, []string{"", ""}, PadAndTrim(nil))
}

func TestLineSet(t *testing.T) {
	t.Parallel()

	var set LineSet
	assert.Nil(t, set.Lines())

	set.Add(5)
	set.Add(2)
	set.Add(5)
	set.Add(9)

	assert.Equal(t, []int{2, 5, 9}, set.Lines())
}

func TestIndentOf(t *testing.T) {
	t.Parallel()

	b := mdast.NewBuilder()
	b.Open(mdast.TokBulletListOpen, mdast.SpanOf(0, 2))
	b.Open(mdast.TokListItemOpen, mdast.SpanOf(1, 2))
	doc := mdast.NewDocument("", []byte("text\n   * item"), b.Tokens())

	items := doc.Filter(mdast.TokListItemOpen)
	assert.Len(t, items, 1)
	assert.Equal(t, 3, IndentOf(doc, items[0]))
}
