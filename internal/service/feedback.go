package service

import (
	"fmt"

	"essay-assess/internal/config"
	"essay-assess/internal/domain"
)

const noAnswerFeedback = "No answer was submitted for this question, so no marks could be awarded."

// strengthPhrases and gapPhrases are keyed by dimension name. Keeping the
// phrasing in one place makes the generated feedback easy to audit and
// keeps identical inputs producing identical feedback.
var strengthPhrases = map[string]string{
	domain.DimContentAccuracy:    "the answer covers the key concepts well",
	domain.DimSemanticSimilarity: "the answer stays close to the expected explanation",
	domain.DimWritingQuality:     "the answer is clearly written and well structured",
	domain.DimCriticalThinking:   "the answer shows good reasoning and use of examples",
	domain.DimTechnicalPrecision: "technical terms are used accurately",
}

var gapPhrases = map[string]string{
	domain.DimContentAccuracy:    "cover more of the key concepts from the expected answer",
	domain.DimSemanticSimilarity: "explain the ideas in terms closer to what the question asks for",
	domain.DimWritingQuality:     "work on sentence structure, grammar and vocabulary",
	domain.DimCriticalThinking:   "add examples, comparisons or step-by-step reasoning",
	domain.DimTechnicalPrecision: "use technical terms in their correct context",
}

// buildFeedback produces a short, deterministic summary naming the
// strongest and weakest dimensions. Ties are broken by the canonical
// dimension order so the same breakdown always yields the same text.
func buildFeedback(breakdown []domain.DimensionScore, band config.GradeBand) string {
	if len(breakdown) == 0 {
		return band.Assessment + "."
	}

	strongest, weakest := breakdown[0], breakdown[0]
	for _, dimension := range breakdown[1:] {
		if dimension.Normalized() > strongest.Normalized() {
			strongest = dimension
		}
		if dimension.Normalized() < weakest.Normalized() {
			weakest = dimension
		}
	}

	if strongest.Name == weakest.Name {
		return fmt.Sprintf("%s. Performance is even across all assessed areas.", band.Assessment)
	}
	return fmt.Sprintf("%s. In particular, %s. To improve, %s.",
		band.Assessment,
		strengthPhrases[strongest.Name],
		gapPhrases[weakest.Name])
}
