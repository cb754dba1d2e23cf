package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"essay-assess/internal/assess"
	"essay-assess/internal/config"
	"essay-assess/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const engineReference = `Inheritance is a mechanism where a subclass acquires the properties and
methods of a superclass. It promotes code reuse because shared behavior lives
in one place. For example, a Dog subclass can extend an Animal superclass and
override its methods. However, deep inheritance hierarchies can make programs
fragile.`

const engineQuestion = "Explain inheritance in object-oriented programming."

func testPolicy() config.AssessmentConfig {
	return config.AssessmentConfig{
		Weights: config.DimensionWeights{
			ContentAccuracy:    0.30,
			SemanticSimilarity: 0.25,
			WritingQuality:     0.15,
			CriticalThinking:   0.15,
			TechnicalPrecision: 0.15,
		},
		GradeBands: config.DefaultGradeBands(),
	}
}

func newTestEngine() *Engine {
	return NewEngine(NewConceptCache(), assess.NewLexicalEstimator(), testPolicy())
}

func engineRequest(studentAnswer string) *domain.AssessmentRequest {
	return &domain.AssessmentRequest{
		StudentAnswer:   studentAnswer,
		ReferenceAnswer: engineReference,
		MaxMarks:        10,
		Question: domain.QuestionMetadata{
			Text:       engineQuestion,
			Difficulty: domain.DifficultyMedium,
			Type:       "essay",
			Marks:      10,
		},
	}
}

type failingEstimator struct{}

func (failingEstimator) Estimate(context.Context, string, string) (float64, error) {
	return 0, errors.New("embedding backend unavailable")
}

func TestEngineIdenticalAnswerScoresExcellent(t *testing.T) {
	engine := newTestEngine()
	result, err := engine.Assess(context.Background(), engineRequest(engineReference))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.Percentage, 90.0)
	assert.Equal(t, "A", result.Grade)
	assert.Equal(t, "Excellent", result.Band)
	assert.InDelta(t, 100.0, result.Metrics.SemanticSimilarity, 1e-6)
	assert.InDelta(t, 100.0, result.Metrics.KeywordCoverage, 1e-6)
}

func TestEngineOffTopicAnswerScoresPoor(t *testing.T) {
	engine := newTestEngine()
	offTopic := "Photosynthesis converts sunlight into chemical energy in plants. Chlorophyll absorbs light in the leaves."
	result, err := engine.Assess(context.Background(), engineRequest(offTopic))
	require.NoError(t, err)

	assert.Less(t, result.Percentage, 30.0)
	assert.Zero(t, result.Metrics.KeywordCoverage)
}

func TestEngineEmptyAnswerYieldsZeroResult(t *testing.T) {
	engine := newTestEngine()
	for _, empty := range []string{"", "   ", "\n\t"} {
		result, err := engine.Assess(context.Background(), engineRequest(empty))
		require.NoError(t, err)

		assert.Zero(t, result.TotalScore)
		assert.Zero(t, result.Percentage)
		assert.Equal(t, "F", result.Grade)
		assert.Contains(t, result.Feedback, "No answer was submitted")
		require.Len(t, result.Breakdown, len(domain.DimensionOrder))
		for _, d := range result.Breakdown {
			assert.Zero(t, d.RawScore)
		}
	}
}

func TestEngineMissingReferenceFailsFast(t *testing.T) {
	engine := newTestEngine()
	req := engineRequest("A perfectly fine answer.")
	req.ReferenceAnswer = "   "

	_, err := engine.Assess(context.Background(), req)
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeMissingReference, domainErr.Code)
}

func TestEngineRejectsNonPositiveMaxMarks(t *testing.T) {
	engine := newTestEngine()
	for _, marks := range []float64{0, -5} {
		req := engineRequest("An answer.")
		req.MaxMarks = marks

		_, err := engine.Assess(context.Background(), req)
		require.Error(t, err)

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeInvalidMarks, domainErr.Code)
	}
}

func TestEngineDeterministic(t *testing.T) {
	engine := newTestEngine()
	student := "A subclass inherits methods from its superclass, which promotes code reuse."

	first, err := engine.Assess(context.Background(), engineRequest(student))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := engine.Assess(context.Background(), engineRequest(student))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEngineMonotonicInCoverage(t *testing.T) {
	engine := newTestEngine()

	partial, err := engine.Assess(context.Background(),
		engineRequest("Inheritance is a mechanism in object-oriented programming."))
	require.NoError(t, err)

	fuller, err := engine.Assess(context.Background(),
		engineRequest("Inheritance is a mechanism where a subclass acquires the methods of a superclass. It promotes code reuse because shared behavior lives in one place."))
	require.NoError(t, err)

	assert.Greater(t, fuller.Percentage, partial.Percentage)
}

func TestEngineLengthPaddingDoesNotInflate(t *testing.T) {
	engine := newTestEngine()
	base := "Inheritance lets a subclass reuse the methods of its superclass."

	once, err := engine.Assess(context.Background(), engineRequest(base))
	require.NoError(t, err)

	padded, err := engine.Assess(context.Background(),
		engineRequest(strings.Repeat(base+" ", 15)))
	require.NoError(t, err)

	assert.LessOrEqual(t, padded.Percentage, once.Percentage+1.0)
}

func TestEngineParaphraseTolerance(t *testing.T) {
	engine := newTestEngine()

	identical, err := engine.Assess(context.Background(), engineRequest(engineReference))
	require.NoError(t, err)

	paraphrase := `Inheritance means a derived class obtains the attributes and
functions of its parent class. It enables code reuse because common behavior
stays in a single place. For instance, a Dog type can extend an Animal type
and override its functions. However, very deep hierarchies can make software
fragile.`
	paraphrased, err := engine.Assess(context.Background(), engineRequest(paraphrase))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, paraphrased.Percentage, 0.70*identical.Percentage)
	assert.LessOrEqual(t, paraphrased.Percentage, identical.Percentage)
}

func TestEngineParaphrasedPrinciplesLandInGoodBand(t *testing.T) {
	engine := newTestEngine()

	reference := `The four principles of object oriented programming are encapsulation,
inheritance, polymorphism and abstraction. Encapsulation hides the internal state
of an object behind methods. Inheritance lets a class reuse behavior from a parent
class. Polymorphism lets one interface drive many implementations, for example a
shape method that draws circles and squares. Abstraction exposes only the
essential features of an object because details would distract.`

	// Covers every principle in different words. Sharing a question word
	// with the reference must not let incidental word pairs crowd the
	// principle terms out of the concept set.
	student := `Object oriented programming is built on four main ideas. Encapsulation
means an object keeps its data private and reachable only through functions.
Inheritance lets a child class take on the traits of its parent. Polymorphism
allows the same call to behave differently, for example a draw call producing
either a square or a triangle. Abstraction hides unnecessary detail because
users only need the simple surface.`

	req := &domain.AssessmentRequest{
		StudentAnswer:   student,
		ReferenceAnswer: reference,
		MaxMarks:        10,
		Question: domain.QuestionMetadata{
			Text:       "Describe the four principles of object oriented programming.",
			Difficulty: domain.DifficultyMedium,
			Type:       "essay",
			Marks:      10,
		},
	}

	result, err := engine.Assess(context.Background(), req)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.Percentage, 70.0)
	assert.LessOrEqual(t, result.Percentage, 95.0)
	assert.GreaterOrEqual(t, result.Metrics.KeywordCoverage, 70.0)
}

func TestEngineScoresStayInBounds(t *testing.T) {
	engine := newTestEngine()
	inputs := []string{
		"short",
		strings.Repeat("inheritance ", 500),
		"1. First point.\n2. Second point.\n3. Third point.",
		"An answer with no relation to the topic at all, discussing cooking recipes instead.",
	}
	for _, input := range inputs {
		result, err := engine.Assess(context.Background(), engineRequest(input))
		require.NoError(t, err)

		assert.GreaterOrEqual(t, result.Percentage, 0.0)
		assert.LessOrEqual(t, result.Percentage, 100.0)
		assert.GreaterOrEqual(t, result.TotalScore, 0.0)
		assert.LessOrEqual(t, result.TotalScore, 10.0)
		for _, d := range result.Breakdown {
			assert.GreaterOrEqual(t, d.RawScore, 0.0)
			assert.LessOrEqual(t, d.RawScore, d.Max)
		}
	}
}

func TestEngineEstimatorFailureDegradesToNeutral(t *testing.T) {
	engine := NewEngine(NewConceptCache(), failingEstimator{}, testPolicy())

	result, err := engine.Assess(context.Background(), engineRequest("A subclass inherits from a superclass."))
	require.NoError(t, err)

	assert.Contains(t, result.Metrics.Degraded, domain.DimSemanticSimilarity)
	semantic := result.Dimension(domain.DimSemanticSimilarity)
	assert.InDelta(t, 0.5, semantic.Normalized(), 1e-9)
}

func TestEngineTotalScoreScalesWithMaxMarks(t *testing.T) {
	engine := newTestEngine()
	req := engineRequest(engineReference)
	req.MaxMarks = 50

	result, err := engine.Assess(context.Background(), req)
	require.NoError(t, err)
	assert.InDelta(t, result.Percentage/100*50, result.TotalScore, 0.01)
	assert.LessOrEqual(t, result.TotalScore, 50.0)
}
