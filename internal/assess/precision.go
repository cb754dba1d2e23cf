package assess

// Per-term credit levels. Misuse scores below absence: terminology used
// out of context signals a specific misconception, while absence merely
// signals omission (already penalized by content accuracy).
const (
	creditCorrect = 1.0
	creditAbsent  = 0.35
	creditMisused = 0.10
)

// PrecisionResult is the outcome of the technical precision checker.
type PrecisionResult struct {
	Score float64
	// Misused lists terms that appear in the answer but in contexts that
	// share nothing with their reference usage.
	Misused []string
	// TopicConsistency is the fraction of student sentences touching at
	// least one key concept, in [0, 1].
	TopicConsistency float64
}

// ScorePrecision verifies that the domain terms of the key-concept set
// are used in contexts consistent with their reference usage. A term
// counts as correctly used when at least one of the content words
// surrounding it in the student answer also surrounds it in the
// reference answer.
func ScorePrecision(student, reference Normalized, concepts ConceptSet) PrecisionResult {
	if concepts.IsEmpty() {
		return PrecisionResult{Score: creditAbsent}
	}
	if student.IsEmpty() {
		return PrecisionResult{}
	}

	referenceContexts := contextIndex(reference, concepts)
	studentContexts := contextIndex(student, concepts)

	result := PrecisionResult{}
	var totalWeight, earned float64
	for _, concept := range concepts.Concepts {
		if concept.Bigram {
			continue
		}
		term := Canonical(concept.Term)
		totalWeight += concept.Weight

		studentContext, present := studentContexts[term]
		if !present {
			earned += creditAbsent * concept.Weight
			continue
		}

		if contextsAgree(studentContext, referenceContexts[term]) {
			earned += creditCorrect * concept.Weight
		} else {
			earned += creditMisused * concept.Weight
			result.Misused = append(result.Misused, concept.Term)
		}
	}

	if totalWeight > 0 {
		result.Score = earned / totalWeight
	}
	result.TopicConsistency = topicConsistency(student, concepts)
	return result
}

// contextIndex maps each concept term to the set of canonical content
// words that co-occur with it in the same sentence.
func contextIndex(n Normalized, concepts ConceptSet) map[string]map[string]bool {
	terms := make(map[string]bool)
	for _, concept := range concepts.Concepts {
		if !concept.Bigram {
			terms[Canonical(concept.Term)] = true
		}
	}

	index := make(map[string]map[string]bool)
	for _, sentence := range n.Sentences {
		canonical := CanonicalSet(sentence.Tokens)
		for term := range canonical {
			if !terms[term] {
				continue
			}
			context, ok := index[term]
			if !ok {
				context = make(map[string]bool)
				index[term] = context
			}
			for word := range canonical {
				if word != term {
					context[word] = true
				}
			}
		}
	}
	return index
}

// contextsAgree reports whether the student's usage context overlaps the
// reference's. An empty context on either side constrains nothing: a
// bare mention like "Encapsulation." carries no evidence of misuse, so
// it counts as consistent rather than misused.
func contextsAgree(student, reference map[string]bool) bool {
	if len(reference) == 0 || len(student) == 0 {
		return true
	}
	for word := range student {
		if reference[word] {
			return true
		}
	}
	return false
}

func topicConsistency(student Normalized, concepts ConceptSet) float64 {
	if len(student.Sentences) == 0 {
		return 0
	}
	onTopic := 0
	for _, sentence := range student.Sentences {
		if distinctConceptsIn(sentence, concepts) >= 1 {
			onTopic++
		}
	}
	return float64(onTopic) / float64(len(student.Sentences))
}
