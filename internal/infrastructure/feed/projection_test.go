package feed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cambiazo/internal/infrastructure/feed"
)

func TestProjectionReplaceIsWholesale(t *testing.T) {
	p := feed.NewProjection[string]()

	p.Replace([]string{"a", "b", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, p.Items())

	// The next snapshot fully replaces the previous one, including removals.
	p.Replace([]string{"c", "d"})
	assert.Equal(t, []string{"c", "d"}, p.Items())

	p.Replace(nil)
	assert.Empty(t, p.Items())
	assert.Equal(t, 0, p.Len())
}

func TestProjectionReadyAfterFirstSnapshot(t *testing.T) {
	p := feed.NewProjection[int]()

	assert.False(t, p.Ready())

	p.Replace([]int{})
	assert.True(t, p.Ready())
}

func TestProjectionItemsAreIsolatedCopies(t *testing.T) {
	p := feed.NewProjection[int]()

	source := []int{1, 2, 3}
	p.Replace(source)
	source[0] = 99

	items := p.Items()
	assert.Equal(t, []int{1, 2, 3}, items)

	items[1] = 99
	assert.Equal(t, []int{1, 2, 3}, p.Items())
}
