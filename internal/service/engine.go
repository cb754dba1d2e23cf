package service

import (
	"context"
	"fmt"
	"math"

	"essay-assess/internal/assess"
	"essay-assess/internal/config"
	"essay-assess/internal/domain"
	"essay-assess/internal/logger"

	"go.uber.org/zap"
)

// dimensionMax is the per-dimension scale. Raw dimension scores live in
// [0, dimensionMax]; aggregation works on the normalized fraction, so the
// scale only affects presentation.
const dimensionMax = 10.0

// neutralScore is the documented fallback when a single dimension fails
// internally: half credit, flagged in the detailed analysis, instead of
// aborting the whole assessment.
const neutralScore = 0.5

// semanticCurveExponent shapes the raw overlap measure into the semantic
// dimension score. Values below 1 lift mid-range overlap so paraphrased
// answers are not punished for every non-shared function word; the
// mapping stays strictly monotonic and keeps 0 at 0 and 1 at 1.
const semanticCurveExponent = 0.8

// Engine is the essay answer quality assessment engine: a pure,
// synchronous scoring function over the request. It owns no durable
// state; the injected ConceptCache is its only shared resource.
type Engine struct {
	concepts  *ConceptCache
	estimator domain.SimilarityEstimator
	policy    config.AssessmentConfig
}

// NewEngine creates an Engine. The estimator is the semantic similarity
// strategy; pass assess.NewLexicalEstimator() for the self-contained
// default.
func NewEngine(concepts *ConceptCache, estimator domain.SimilarityEstimator, policy config.AssessmentConfig) *Engine {
	return &Engine{
		concepts:  concepts,
		estimator: estimator,
		policy:    policy,
	}
}

// Assess implements domain.AnswerAssessor. Identical inputs always yield
// identical results: there is no randomness and no dependence on call
// order.
func (e *Engine) Assess(ctx context.Context, req *domain.AssessmentRequest) (*domain.AssessmentResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	student := assess.Normalize(req.StudentAnswer)
	if student.IsEmpty() {
		return e.unansweredResult(), nil
	}

	reference := assess.Normalize(req.ReferenceAnswer)
	concepts := e.concepts.GetOrExtract(req.ReferenceAnswer, req.Question.Text)

	var metrics domain.DetailedMetrics
	degraded := func(name string) {
		metrics.Degraded = append(metrics.Degraded, name)
	}

	content := e.runDimension(domain.DimContentAccuracy, degraded, func() float64 {
		result := assess.ScoreContent(student, concepts)
		metrics.KeywordCoverage = domain.RoundPercent(result.Coverage * 100)
		return result.Coverage
	})

	semantic := e.runDimension(domain.DimSemanticSimilarity, degraded, func() float64 {
		similarity, err := e.estimator.Estimate(ctx, req.StudentAnswer, req.ReferenceAnswer)
		if err != nil {
			// Treated exactly like an internal dimension failure.
			panic(fmt.Sprintf("similarity estimator: %v", err))
		}
		similarity = domain.Clamp(similarity, 0, 1)
		metrics.SemanticSimilarity = domain.RoundPercent(similarity * 100)
		return math.Pow(similarity, semanticCurveExponent)
	})

	writing := e.runDimension(domain.DimWritingQuality, degraded, func() float64 {
		result := assess.ScoreWriting(student)
		metrics.SentenceStructure = domain.RoundPercent(result.SentenceStructure * 100)
		metrics.Grammar = domain.RoundPercent(result.Grammar * 100)
		metrics.Vocabulary = domain.RoundPercent(result.Vocabulary * 100)
		return result.Overall
	})

	critical := e.runDimension(domain.DimCriticalThinking, degraded, func() float64 {
		return assess.ScoreCriticalThinking(student, concepts).Score
	})

	precision := e.runDimension(domain.DimTechnicalPrecision, degraded, func() float64 {
		result := assess.ScorePrecision(student, reference, concepts)
		metrics.TopicConsistency = domain.RoundPercent(result.TopicConsistency * 100)
		return result.Score
	})

	breakdown := []domain.DimensionScore{
		domain.NewDimensionScore(domain.DimContentAccuracy, content, dimensionMax),
		domain.NewDimensionScore(domain.DimSemanticSimilarity, semantic, dimensionMax),
		domain.NewDimensionScore(domain.DimWritingQuality, writing, dimensionMax),
		domain.NewDimensionScore(domain.DimCriticalThinking, critical, dimensionMax),
		domain.NewDimensionScore(domain.DimTechnicalPrecision, precision, dimensionMax),
	}

	percentage := domain.RoundPercent(e.aggregate(breakdown) * 100)
	totalScore := domain.RoundPercent(percentage / 100 * req.MaxMarks)
	band := e.policy.BandFor(percentage)

	return &domain.AssessmentResult{
		TotalScore: totalScore,
		Percentage: percentage,
		Grade:      band.Grade,
		Band:       band.Band,
		Assessment: band.Assessment,
		Feedback:   buildFeedback(breakdown, band),
		Breakdown:  breakdown,
		Metrics:    metrics,
	}, nil
}

// runDimension executes one scorer with partial-failure isolation: a
// panic inside a single dimension degrades that dimension to the neutral
// default and flags it, rather than failing the whole assessment.
func (e *Engine) runDimension(name string, degraded func(string), fn func() float64) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			logger.Get().Error("Assessment dimension failed, using neutral default",
				zap.String("dimension", name),
				zap.Any("cause", r))
			degraded(name)
			score = neutralScore
		}
	}()
	return domain.Clamp(fn(), 0, 1)
}

// aggregate combines normalized dimension scores with the policy weights.
// Breakdown order matches domain.DimensionOrder.
func (e *Engine) aggregate(breakdown []domain.DimensionScore) float64 {
	w := e.policy.Weights
	weights := []float64{
		w.ContentAccuracy,
		w.SemanticSimilarity,
		w.WritingQuality,
		w.CriticalThinking,
		w.TechnicalPrecision,
	}
	var total float64
	for i, dimension := range breakdown {
		total += weights[i] * dimension.Normalized()
	}
	return domain.Clamp(total, 0, 1)
}

// unansweredResult is the fixed zero result for an empty or
// whitespace-only student answer, with feedback that explicitly says so:
// an unanswered question must be distinguishable from a wrong answer.
func (e *Engine) unansweredResult() *domain.AssessmentResult {
	breakdown := make([]domain.DimensionScore, 0, len(domain.DimensionOrder))
	for _, name := range domain.DimensionOrder {
		breakdown = append(breakdown, domain.DimensionScore{Name: name, Max: dimensionMax})
	}
	band := e.policy.BandFor(0)
	return &domain.AssessmentResult{
		Grade:      band.Grade,
		Band:       band.Band,
		Assessment: band.Assessment,
		Feedback:   noAnswerFeedback,
		Breakdown:  breakdown,
	}
}
