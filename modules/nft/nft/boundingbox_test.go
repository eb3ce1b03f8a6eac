package nft

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBoundingBox(t *testing.T) {
	t.Parallel()

	t.Run("centered", func(t *testing.T) {
		t.Parallel()
		box := NewBoundingBox(50, 50, 10)
		assert.Equal(t, BoundingBox{MinLat: 40, MinLong: 40, MaxLat: 60, MaxLong: 60}, box)
	})

	t.Run("clamped at zero", func(t *testing.T) {
		t.Parallel()
		box := NewBoundingBox(3, 5, 10)
		assert.Equal(t, BoundingBox{MinLat: 0, MinLong: 0, MaxLat: 13, MaxLong: 15}, box)
	})
}

func TestBoundingBoxContains(t *testing.T) {
	t.Parallel()

	box := NewBoundingBox(50, 50, 10)

	assert.True(t, box.Contains(50, 50))
	assert.True(t, box.Contains(40, 40), "edges are inside")
	assert.True(t, box.Contains(60, 60), "edges are inside")
	assert.False(t, box.Contains(39, 50))
	assert.False(t, box.Contains(50, 61))
}
