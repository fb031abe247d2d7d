package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightedIndex_NormalizesBySum(t *testing.T) {
	// Non-normalized weights summing to 10.
	weights := []float64{1, 2, 3, 4}

	tests := []struct {
		draw float64
		want int
	}{
		{0.0, 0},
		{0.05, 0},
		{0.15, 1},
		{0.45, 2},
		{0.65, 3},
		{0.99, 3},
	}
	for _, tt := range tests {
		src := &stubSource{floats: []float64{tt.draw}}
		assert.Equal(t, tt.want, weightedIndex(src, weights), "draw %v", tt.draw)
	}
}

func TestWeightedIndex_SkipsZeroWeights(t *testing.T) {
	weights := []float64{0, 5, 0}

	for _, draw := range []float64{0, 0.5, 0.999} {
		src := &stubSource{floats: []float64{draw}}
		assert.Equal(t, 1, weightedIndex(src, weights), "draw %v", draw)
	}
}

func TestNewSource_ProducesValuesInRange(t *testing.T) {
	src := NewSource(1)
	for i := 0; i < 100; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)

		f := src.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}
