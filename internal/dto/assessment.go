package dto

import "essay-assess/internal/domain"

// QuestionData carries the question context alongside an assessment request
// @Description Question metadata used during scoring
type QuestionData struct {
	Text       string  `json:"text"`
	Difficulty string  `json:"difficulty"`
	Type       string  `json:"type"`
	Marks      float64 `json:"marks"`
}

// AssessmentRequest is the request body for a direct assessment
// @Description Request body for assessing a student answer against an inline reference answer
type AssessmentRequest struct {
	StudentAnswer string       `json:"studentAnswer"`
	CorrectAnswer string       `json:"correctAnswer"`
	MaxMarks      float64      `json:"maxMarks"`
	QuestionData  QuestionData `json:"questionData"`
}

// AssessByQuestionRequest assesses against a stored question. MaxMarks is
// optional; when zero the question's own marks are used.
// @Description Request body for assessing a student answer against a stored question
type AssessByQuestionRequest struct {
	QuestionID    string  `json:"questionId"`
	StudentAnswer string  `json:"studentAnswer"`
	MaxMarks      float64 `json:"maxMarks,omitempty"`
}

// DimensionBreakdown is one dimension's score out of its maximum
type DimensionBreakdown struct {
	Score    float64 `json:"score"`
	MaxScore float64 `json:"maxScore"`
}

// DetailedBreakdown holds the five dimension scores.
// Field names here are part of the wire contract consumed by the exam
// platform frontend; do not rename them.
type DetailedBreakdown struct {
	ContentAccuracy       DimensionBreakdown `json:"contentAccuracy"`
	SemanticUnderstanding DimensionBreakdown `json:"semanticUnderstanding"`
	WritingQuality        DimensionBreakdown `json:"writingQuality"`
	CriticalThinking      DimensionBreakdown `json:"criticalThinking"`
	TechnicalPrecision    DimensionBreakdown `json:"technicalPrecision"`
}

// KeywordAnalysis reports key-concept coverage as a percentage
type KeywordAnalysis struct {
	KeywordCoverage float64 `json:"keywordCoverage"`
}

// SemanticSimilarity reports answer/reference similarity as a percentage
type SemanticSimilarity struct {
	Similarity float64 `json:"similarity"`
}

// ContentStructure reports sentence structure quality as a percentage
type ContentStructure struct {
	SentenceStructure float64 `json:"sentenceStructure"`
}

// LanguageQuality reports surface language metrics as percentages
type LanguageQuality struct {
	Grammar    float64 `json:"grammar"`
	Vocabulary float64 `json:"vocabulary"`
}

// Coherence reports how consistently the answer stays on topic
type Coherence struct {
	TopicConsistency float64 `json:"topicConsistency"`
}

// DetailedAnalysis groups the secondary metrics behind the breakdown
type DetailedAnalysis struct {
	KeywordAnalysis    KeywordAnalysis    `json:"keywordAnalysis"`
	SemanticSimilarity SemanticSimilarity `json:"semanticSimilarity"`
	ContentStructure   ContentStructure   `json:"contentStructure"`
	LanguageQuality    LanguageQuality    `json:"languageQuality"`
	Coherence          Coherence          `json:"coherence"`
	DegradedDimensions []string           `json:"degradedDimensions,omitempty"`
}

// AssessmentResponse is the full assessment result in the API response
// @Description Assessment result with dimension breakdown and detailed analysis
type AssessmentResponse struct {
	TotalScore        float64           `json:"totalScore"`
	Percentage        float64           `json:"percentage"`
	Grade             string            `json:"grade"`
	Band              string            `json:"band"`
	Assessment        string            `json:"assessment"`
	DetailedBreakdown DetailedBreakdown `json:"detailedBreakdown"`
	DetailedAnalysis  DetailedAnalysis  `json:"detailedAnalysis"`
	Feedback          string            `json:"feedback"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FromDomainResult maps a domain result onto the wire shape.
func FromDomainResult(result *domain.AssessmentResult) *AssessmentResponse {
	breakdown := func(name string) DimensionBreakdown {
		d := result.Dimension(name)
		return DimensionBreakdown{
			Score:    domain.RoundPercent(d.RawScore),
			MaxScore: d.Max,
		}
	}

	return &AssessmentResponse{
		TotalScore: result.TotalScore,
		Percentage: result.Percentage,
		Grade:      result.Grade,
		Band:       result.Band,
		Assessment: result.Assessment,
		DetailedBreakdown: DetailedBreakdown{
			ContentAccuracy:       breakdown(domain.DimContentAccuracy),
			SemanticUnderstanding: breakdown(domain.DimSemanticSimilarity),
			WritingQuality:        breakdown(domain.DimWritingQuality),
			CriticalThinking:      breakdown(domain.DimCriticalThinking),
			TechnicalPrecision:    breakdown(domain.DimTechnicalPrecision),
		},
		DetailedAnalysis: DetailedAnalysis{
			KeywordAnalysis:    KeywordAnalysis{KeywordCoverage: result.Metrics.KeywordCoverage},
			SemanticSimilarity: SemanticSimilarity{Similarity: result.Metrics.SemanticSimilarity},
			ContentStructure:   ContentStructure{SentenceStructure: result.Metrics.SentenceStructure},
			LanguageQuality: LanguageQuality{
				Grammar:    result.Metrics.Grammar,
				Vocabulary: result.Metrics.Vocabulary,
			},
			Coherence:          Coherence{TopicConsistency: result.Metrics.TopicConsistency},
			DegradedDimensions: result.Metrics.Degraded,
		},
		Feedback: result.Feedback,
	}
}
