package assess

import "strings"

// ContentResult is the outcome of the content accuracy scorer.
type ContentResult struct {
	// Coverage is the salience-weighted fraction of key concepts present
	// in the student answer, in [0, 1].
	Coverage float64
	// Matched lists the concept terms that were found.
	Matched []string
}

// ScoreContent measures how much of the key-concept set the student
// answer covers. Each concept counts once no matter how often it is
// repeated, so neither repetition nor sheer length inflates the score; an
// answer sharing no salient concepts with the reference scores zero here
// regardless of its length.
func ScoreContent(student Normalized, concepts ConceptSet) ContentResult {
	if student.IsEmpty() || concepts.IsEmpty() {
		return ContentResult{}
	}

	unigrams := make(map[string]bool, len(student.Tokens))
	canonical := make(map[string]bool, len(student.Tokens))
	for _, token := range student.Tokens {
		unigrams[token] = true
		canonical[Canonical(token)] = true
	}
	bigrams := make(map[string]bool)
	for _, sentence := range student.Sentences {
		for _, bigram := range sentence.Bigrams() {
			bigrams[bigram] = true
		}
	}

	result := ContentResult{}
	var matchedWeight float64
	for _, concept := range concepts.Concepts {
		if !conceptPresent(concept, unigrams, canonical, bigrams) {
			continue
		}
		matchedWeight += concept.Weight
		result.Matched = append(result.Matched, concept.Term)
	}

	result.Coverage = matchedWeight / concepts.TotalWeight
	return result
}

// conceptPresent checks for a concept in the student token sets, exactly
// or through the synonym table. Bigram concepts also match when both
// words appear anywhere in the answer, which tolerates reordered phrasing.
func conceptPresent(concept Concept, unigrams, canonical, bigrams map[string]bool) bool {
	if !concept.Bigram {
		return unigrams[concept.Term] || canonical[Canonical(concept.Term)]
	}
	if bigrams[concept.Term] {
		return true
	}
	for _, word := range strings.Fields(concept.Term) {
		if !canonical[Canonical(word)] {
			return false
		}
	}
	return true
}
