package domain

import "context"

// AnswerAssessor defines the interface for grading a free-text answer
// against its reference answer.
type AnswerAssessor interface {
	// Assess scores a student answer and returns the full result.
	Assess(ctx context.Context, req *AssessmentRequest) (*AssessmentResult, error)
}

// SimilarityEstimator estimates meaning-overlap between a student answer
// and the reference answer as a value in [0, 1]. This is the explicit
// substitution point: the default lexical estimator can be swapped for an
// embedding-backed one without touching any other component.
type SimilarityEstimator interface {
	Estimate(ctx context.Context, studentAnswer, referenceAnswer string) (float64, error)
}

// EmbeddingService defines the interface for generating text embeddings.
type EmbeddingService interface {
	Generate(ctx context.Context, text string) ([]float32, error)
}
