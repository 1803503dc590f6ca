package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCosineSimilarity tests similarity values and bounds
func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    []float32
		b    []float32
		want float64
	}{
		{
			name: "identical vectors",
			a:    []float32{1, 2, 3},
			b:    []float32{1, 2, 3},
			want: 1,
		},
		{
			name: "opposite vectors",
			a:    []float32{1, 0},
			b:    []float32{-1, 0},
			want: -1,
		},
		{
			name: "orthogonal vectors",
			a:    []float32{1, 0},
			b:    []float32{0, 1},
			want: 0,
		},
		{
			name: "scale invariant",
			a:    []float32{2, 4, 6},
			b:    []float32{1, 2, 3},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

// TestCosineSimilarity_Degenerate tests zero vectors and mismatches
func TestCosineSimilarity_Degenerate(t *testing.T) {
	nonZero := []float32{0.5, 0.5, 0.5}

	assert.Zero(t, CosineSimilarity([]float32{0, 0, 0}, nonZero))
	assert.Zero(t, CosineSimilarity(nonZero, []float32{0, 0, 0}))
	assert.Zero(t, CosineSimilarity(nil, nonZero))
	assert.Zero(t, CosineSimilarity(nonZero, nil))
	assert.Zero(t, CosineSimilarity([]float32{1, 2}, []float32{1, 2, 3}),
		"dimension mismatch must score 0, not error")

	// Never NaN or Inf, whatever the input
	got := CosineSimilarity([]float32{0}, []float32{0})
	assert.False(t, math.IsNaN(got))
	assert.False(t, math.IsInf(got, 0))
}

// TestCosineSimilarity_Bounds tests results stay in [-1, 1]
func TestCosineSimilarity_Bounds(t *testing.T) {
	vectors := [][]float32{
		{1, 2, 3},
		{-4, 0.001, 9},
		{1e10, 1e-10, 5},
		{0.3, 0.3, 0.3},
	}

	for _, a := range vectors {
		for _, b := range vectors {
			got := CosineSimilarity(a, b)
			assert.GreaterOrEqual(t, got, -1.0)
			assert.LessOrEqual(t, got, 1.0)
		}
	}
}

// TestEncodeDecodeVector tests the little-endian byte round trip
func TestEncodeDecodeVector(t *testing.T) {
	v := []float32{0.25, -1.5, 3.1415927, 0}

	encoded := EncodeVector(v)
	require.Len(t, encoded, 16, "four bytes per float32")

	decoded := DecodeVector(encoded)
	assert.Equal(t, v, decoded)
}

// TestEncodeVector_LittleEndian tests the byte order explicitly
func TestEncodeVector_LittleEndian(t *testing.T) {
	// 1.0 as IEEE 754 float32 is 0x3F800000
	encoded := EncodeVector([]float32{1.0})
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3F}, encoded)
}

// TestDecodeVector_TruncatedInput tests trailing bytes are ignored
func TestDecodeVector_TruncatedInput(t *testing.T) {
	encoded := EncodeVector([]float32{1, 2})
	decoded := DecodeVector(encoded[:7])
	assert.Equal(t, []float32{1}, decoded)

	assert.Empty(t, DecodeVector(nil))
}
