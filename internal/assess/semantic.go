package assess

import (
	"context"
	"math"
	"sort"
)

// LexicalEstimator is the default semantic similarity strategy: cosine
// similarity over synonym-canonicalized, frequency-weighted term vectors.
// It credits paraphrased expression of the same concepts without needing
// any external model, and an answer with zero concept overlap scores
// exactly zero no matter how fluent it is.
type LexicalEstimator struct{}

func NewLexicalEstimator() *LexicalEstimator {
	return &LexicalEstimator{}
}

// Estimate implements domain.SimilarityEstimator. The context is unused;
// the computation is bounded and CPU-only.
func (e *LexicalEstimator) Estimate(_ context.Context, studentAnswer, referenceAnswer string) (float64, error) {
	student := termVector(Normalize(studentAnswer))
	reference := termVector(Normalize(referenceAnswer))
	return cosine(student, reference), nil
}

// termVector builds a canonical-term frequency vector from the content
// tokens.
func termVector(n Normalized) map[string]float64 {
	vector := make(map[string]float64, len(n.Tokens))
	for _, token := range n.Tokens {
		vector[Canonical(token)]++
	}
	return vector
}

// cosine computes cosine similarity between two sparse vectors. Keys are
// iterated in sorted order so the float accumulation order, and therefore
// the result, is identical across runs.
func cosine(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var dot, magA float64
	for _, k := range keys {
		dot += a[k] * b[k]
		magA += a[k] * a[k]
	}

	bKeys := make([]string, 0, len(b))
	for k := range b {
		bKeys = append(bKeys, k)
	}
	sort.Strings(bKeys)

	var magB float64
	for _, k := range bKeys {
		magB += b[k] * b[k]
	}

	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
