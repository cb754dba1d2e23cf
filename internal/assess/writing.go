package assess

import "unicode"

// WritingResult carries the surface-quality sub-scores, each in [0, 1].
// This dimension is deliberately blind to content correctness: a fluent
// but factually wrong answer scores well here and is penalized by the
// content and semantic dimensions instead.
type WritingResult struct {
	SentenceStructure float64
	Grammar           float64
	Vocabulary        float64
	Overall           float64
}

// Plausible average sentence length range, in words.
const (
	idealSentenceMin = 8.0
	idealSentenceMax = 22.0
	sentenceFloorLen = 2.0
	sentenceCeilLen  = 45.0
)

// ScoreWriting evaluates surface form: sentence length and boundary
// well-formedness, capitalization and punctuation consistency, and
// vocabulary diversity.
func ScoreWriting(n Normalized) WritingResult {
	if n.IsEmpty() {
		return WritingResult{}
	}

	structure := sentenceStructureScore(n)
	grammar := grammarScore(n)
	vocabulary := vocabularyScore(n.Words)

	return WritingResult{
		SentenceStructure: structure,
		Grammar:           grammar,
		Vocabulary:        vocabulary,
		Overall:           0.4*structure + 0.3*grammar + 0.3*vocabulary,
	}
}

func sentenceStructureScore(n Normalized) float64 {
	totalWords := 0
	malformed := 0
	for _, sentence := range n.Sentences {
		length := len(sentence.Words)
		totalWords += length
		// Single-word fragments and extreme run-ons are both malformed.
		if length < 3 || length > 40 {
			malformed++
		}
	}

	average := float64(totalWords) / float64(len(n.Sentences))
	lengthScore := rangeScore(average, sentenceFloorLen, idealSentenceMin, idealSentenceMax, sentenceCeilLen)

	malformedFraction := float64(malformed) / float64(len(n.Sentences))
	return lengthScore * (1 - 0.5*malformedFraction)
}

// rangeScore is 1.0 inside [idealLo, idealHi] and falls off linearly to 0
// at the hard floor/ceiling.
func rangeScore(v, floor, idealLo, idealHi, ceiling float64) float64 {
	switch {
	case v >= idealLo && v <= idealHi:
		return 1
	case v <= floor || v >= ceiling:
		return 0
	case v < idealLo:
		return (v - floor) / (idealLo - floor)
	default:
		return (ceiling - v) / (ceiling - idealHi)
	}
}

func grammarScore(n Normalized) float64 {
	capitalized := 0
	terminated := 0
	for _, sentence := range n.Sentences {
		for _, r := range sentence.Raw {
			if unicode.IsLetter(r) {
				if unicode.IsUpper(r) {
					capitalized++
				}
				break
			}
			if unicode.IsDigit(r) {
				// Enumerated items ("1. ...") get the benefit of the doubt.
				capitalized++
				break
			}
		}
		if sentence.Terminated {
			terminated++
		}
	}

	count := float64(len(n.Sentences))
	capFraction := float64(capitalized) / count
	termFraction := float64(terminated) / count
	return 0.6*capFraction + 0.4*termFraction
}

func vocabularyScore(words []string) float64 {
	unique := make(map[string]int, len(words))
	for _, w := range words {
		unique[w]++
	}

	total := float64(len(words))
	diversity := float64(len(unique)) / total

	// Short answers are naturally diverse; normalize against a prose
	// baseline rather than demanding a perfect type/token ratio.
	score := diversity / 0.6
	if score > 1 {
		score = 1
	}

	// Penalize extreme repetition of any single word (padding attacks).
	top := 0
	for _, count := range unique {
		if count > top {
			top = count
		}
	}
	repetition := float64(top) / total
	if repetition > 0.12 {
		penalty := 1 - (repetition-0.12)*4
		if penalty < 0.2 {
			penalty = 0.2
		}
		score *= penalty
	}
	return score
}
