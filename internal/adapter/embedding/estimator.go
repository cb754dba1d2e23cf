package embedding

import (
	"context"

	"essay-assess/internal/domain"
	"essay-assess/internal/util"
)

// Estimator adapts a domain.EmbeddingService into the engine's
// domain.SimilarityEstimator strategy: it embeds both texts and compares
// them by cosine similarity. Negative cosine values are clamped to zero;
// for the engine's purposes "opposite" and "unrelated" are both a miss.
type Estimator struct {
	service domain.EmbeddingService
}

// NewEstimator wraps an embedding service as a similarity estimator.
func NewEstimator(service domain.EmbeddingService) *Estimator {
	return &Estimator{service: service}
}

// Estimate implements domain.SimilarityEstimator.
func (e *Estimator) Estimate(ctx context.Context, studentAnswer, referenceAnswer string) (float64, error) {
	studentVec, err := e.service.Generate(ctx, studentAnswer)
	if err != nil {
		return 0, domain.NewEstimatorError(err)
	}
	referenceVec, err := e.service.Generate(ctx, referenceAnswer)
	if err != nil {
		return 0, domain.NewEstimatorError(err)
	}

	similarity, err := util.CosineSimilarity(studentVec, referenceVec)
	if err != nil {
		return 0, domain.NewEstimatorError(err)
	}
	return domain.Clamp(similarity, 0, 1), nil
}
