package domain

import (
	"encoding/binary"
	"math"
)

// CosineSimilarity computes the cosine similarity of two vectors after
// L2-normalising both sides. Degenerate inputs degrade instead of
// failing: a zero-magnitude vector on either side, a dimension
// mismatch, or an empty vector all yield exactly 0, never NaN or an
// error. The result is always in [-1, 1].
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))

	// Guard against floating point drift past the bounds.
	if sim > 1 {
		return 1
	}
	if sim < -1 {
		return -1
	}
	return sim
}

// EncodeVector serialises a vector as a fixed-width little-endian
// float32 byte array. This is the persisted form: stores keep vectors
// as bytes rather than JSON number arrays to bound file size.
func EncodeVector(v []float32) []byte {
	buf := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// DecodeVector parses the little-endian float32 byte form produced by
// EncodeVector. Trailing bytes that do not fill a float32 are ignored.
func DecodeVector(b []byte) []float32 {
	n := len(b) / 4
	v := make([]float32, n)
	for i := 0; i < n; i++ {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v
}
