package domain

import (
	"math"
	"strings"
)

// Difficulty is the declared difficulty of a question
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// ParseDifficulty normalizes a difficulty string, defaulting to EASY
func ParseDifficulty(s string) Difficulty {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MEDIUM":
		return DifficultyMedium
	case "HARD":
		return DifficultyHard
	default:
		return DifficultyEasy
	}
}

// QuestionMetadata carries the question context an assessment is scored
// under. The question text feeds the key-concept extractor: terms the
// question itself names are assumed most salient.
type QuestionMetadata struct {
	Text       string
	Difficulty Difficulty
	Type       string
	Marks      float64
}

// AssessmentRequest is the immutable input of one scoring call.
type AssessmentRequest struct {
	StudentAnswer   string
	ReferenceAnswer string
	MaxMarks        float64
	Question        QuestionMetadata
}

// Validate rejects configurations the engine cannot score meaningfully.
// An empty student answer is NOT an error: it produces a zero result
// with explicit "no answer" feedback downstream.
func (r *AssessmentRequest) Validate() error {
	if strings.TrimSpace(r.ReferenceAnswer) == "" {
		return NewMissingReferenceError()
	}
	if r.MaxMarks <= 0 {
		return NewInvalidMarksError(r.MaxMarks)
	}
	return nil
}

// Dimension names, in fixed aggregation order.
const (
	DimContentAccuracy    = "content_accuracy"
	DimSemanticSimilarity = "semantic_similarity"
	DimWritingQuality     = "writing_quality"
	DimCriticalThinking   = "critical_thinking"
	DimTechnicalPrecision = "technical_precision"
)

// DimensionOrder is the canonical ordering of the five dimensions.
var DimensionOrder = []string{
	DimContentAccuracy,
	DimSemanticSimilarity,
	DimWritingQuality,
	DimCriticalThinking,
	DimTechnicalPrecision,
}

// DimensionLabels maps dimension names to human-readable labels used in
// feedback text.
var DimensionLabels = map[string]string{
	DimContentAccuracy:    "coverage of the core concepts",
	DimSemanticSimilarity: "overall grasp of the topic",
	DimWritingQuality:     "clarity and structure of the writing",
	DimCriticalThinking:   "use of examples and reasoning",
	DimTechnicalPrecision: "precise use of terminology",
}

// DimensionScore is one dimension's result. RawScore is clamped to
// [0, Max].
type DimensionScore struct {
	Name     string
	RawScore float64
	Max      float64
}

// NewDimensionScore builds a DimensionScore from a normalized value in
// [0, 1], clamping out-of-range inputs.
func NewDimensionScore(name string, normalized, max float64) DimensionScore {
	return DimensionScore{
		Name:     name,
		RawScore: Clamp(normalized, 0, 1) * max,
		Max:      max,
	}
}

// Normalized returns the score as a fraction of its maximum.
func (d DimensionScore) Normalized() float64 {
	if d.Max == 0 {
		return 0
	}
	return d.RawScore / d.Max
}

// DetailedMetrics are the finer-grained percentages surfaced for
// transparency alongside the dimension scores. Degraded lists any
// dimension that failed internally and fell back to its neutral default.
type DetailedMetrics struct {
	KeywordCoverage    float64
	SemanticSimilarity float64
	SentenceStructure  float64
	Grammar            float64
	Vocabulary         float64
	TopicConsistency   float64
	Degraded           []string
}

// AssessmentResult is the complete outcome of one scoring call. Created
// fresh per request and never mutated after construction.
type AssessmentResult struct {
	TotalScore float64
	Percentage float64
	Grade      string
	Band       string
	Assessment string
	Feedback   string
	Breakdown  []DimensionScore
	Metrics    DetailedMetrics
}

// Dimension returns the named dimension score, or a zero value when the
// breakdown does not contain it.
func (r *AssessmentResult) Dimension(name string) DimensionScore {
	for _, d := range r.Breakdown {
		if d.Name == name {
			return d
		}
	}
	return DimensionScore{Name: name}
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// RoundPercent rounds a percentage to two decimal places, which keeps
// results byte-identical across runs when serialized.
func RoundPercent(v float64) float64 {
	return math.Round(v*100) / 100
}
