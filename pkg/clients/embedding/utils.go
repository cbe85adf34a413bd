package embedding

import (
	"math"
)

// CosineSimilarity computes the cosine similarity of two vectors.
// Returns 0 for mismatched or zero-length vectors.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// MaxCosineSimilarity computes the maximum cosine similarity between a vector
// and a set of reference vectors. Returns -1 for an empty reference set so a
// threshold check always fails.
func MaxCosineSimilarity(vec []float64, refs [][]float64) float64 {
	maxSim := -1.0
	for _, ref := range refs {
		if sim := CosineSimilarity(vec, ref); sim > maxSim {
			maxSim = sim
		}
	}
	return maxSim
}
