package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, CosineSimilarity([]float64{1, 0, 0}, []float64{1, 0, 0}), 1e-9)
	assert.InDelta(t, 0.0, CosineSimilarity([]float64{1, 0}, []float64{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, CosineSimilarity([]float64{1, 2}, []float64{-1, -2}), 1e-9)

	// scale invariance
	assert.InDelta(t, 1.0, CosineSimilarity([]float64{1, 2, 3}, []float64{2, 4, 6}), 1e-9)
}

func TestCosineSimilarity_Degenerate(t *testing.T) {
	assert.Equal(t, 0.0, CosineSimilarity(nil, nil))
	assert.Equal(t, 0.0, CosineSimilarity([]float64{1, 2}, []float64{1, 2, 3}))
	assert.Equal(t, 0.0, CosineSimilarity([]float64{0, 0}, []float64{1, 2}))
}

func TestMaxCosineSimilarity(t *testing.T) {
	vec := []float64{1, 0}
	refs := [][]float64{
		{0, 1},  // 0
		{1, 1},  // ~0.707
		{-1, 0}, // -1
	}
	assert.InDelta(t, 0.7071, MaxCosineSimilarity(vec, refs), 1e-3)

	// empty reference set must never pass a threshold
	assert.Equal(t, -1.0, MaxCosineSimilarity(vec, nil))
}

func TestLRUCache(t *testing.T) {
	lru := NewLRUCache(2)

	lru.Put("a", []float64{1})
	lru.Put("b", []float64{2})

	v, ok := lru.Get("a")
	assert.True(t, ok)
	assert.Equal(t, []float64{1}, v)

	// "b" is now least recently used and gets evicted
	lru.Put("c", []float64{3})
	_, ok = lru.Get("b")
	assert.False(t, ok)

	_, ok = lru.Get("a")
	assert.True(t, ok)
	_, ok = lru.Get("c")
	assert.True(t, ok)
}
