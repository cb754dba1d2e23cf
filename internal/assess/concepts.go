package assess

import (
	"sort"
	"strings"
)

// maxConcepts caps the key-concept set size; past this point additional
// terms carry almost no salience and only dilute coverage.
const maxConcepts = 20

const questionBoost = 2.0

// Concept is one salient term or phrase extracted from the reference
// answer, with its salience weight.
type Concept struct {
	Term   string
	Weight float64
	Bigram bool
}

// ConceptSet is the weighted key-concept set derived once per reference
// answer. It is the single source of truth for "what correctness looks
// like": every scorer consults it, none re-derives it. Immutable after
// extraction, safe for concurrent reads.
type ConceptSet struct {
	Concepts    []Concept
	TotalWeight float64
}

// IsEmpty reports whether extraction found no content-bearing terms.
func (cs ConceptSet) IsEmpty() bool {
	return len(cs.Concepts) == 0
}

// UnigramTerms returns the single-word concept terms in salience order.
func (cs ConceptSet) UnigramTerms() []string {
	var terms []string
	for _, c := range cs.Concepts {
		if !c.Bigram {
			terms = append(terms, c.Term)
		}
	}
	return terms
}

type conceptCandidate struct {
	term   string
	weight float64
	first  int
	bigram bool
}

// ExtractConcepts derives the key-concept set from the normalized
// reference answer: frequency-weighted content unigrams and repeated
// bigrams, boosted when the term also appears in the question text (the
// question naming a concept marks it as what is being tested). Ties break
// by first occurrence.
func ExtractConcepts(reference Normalized, questionText string) ConceptSet {
	if reference.IsEmpty() {
		return ConceptSet{}
	}

	questionTerms := CanonicalSet(Normalize(questionText).Tokens)

	counts := make(map[string]*conceptCandidate)
	position := 0

	note := func(term string, weight float64, bigram bool) {
		if existing, ok := counts[term]; ok {
			existing.weight += weight
			return
		}
		counts[term] = &conceptCandidate{term: term, weight: weight, first: position, bigram: bigram}
	}

	for _, sentence := range reference.Sentences {
		for _, token := range sentence.Tokens {
			if len(token) < 3 {
				continue
			}
			note(token, 1, false)
			position++
		}
		for _, bigram := range sentence.Bigrams() {
			note(bigram, 1.5, true)
			position++
		}
	}

	ordered := make([]*conceptCandidate, 0, len(counts))
	for _, c := range counts {
		// A bigram seen only once is incidental adjacency. Repetition is
		// the only evidence that two words form a phrase; a question
		// mention of one word is not.
		if c.bigram && c.weight <= 1.5 {
			continue
		}
		if c.questionMentions(questionTerms) {
			c.weight *= questionBoost
		}
		ordered = append(ordered, c)
	}

	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].weight != ordered[j].weight {
			return ordered[i].weight > ordered[j].weight
		}
		return ordered[i].first < ordered[j].first
	})
	if len(ordered) > maxConcepts {
		ordered = ordered[:maxConcepts]
	}

	set := ConceptSet{Concepts: make([]Concept, 0, len(ordered))}
	for _, c := range ordered {
		set.Concepts = append(set.Concepts, Concept{Term: c.term, Weight: c.weight, Bigram: c.bigram})
		set.TotalWeight += c.weight
	}
	return set
}

func (c *conceptCandidate) questionMentions(questionTerms map[string]bool) bool {
	if c.bigram {
		return bigramInQuestion(c.term, questionTerms)
	}
	return questionTerms[Canonical(c.term)]
}

// bigramInQuestion reports whether the question names the whole phrase.
// One shared word is not enough: boosting on that would promote glue
// adjacencies over the terms actually being tested.
func bigramInQuestion(bigram string, questionTerms map[string]bool) bool {
	for _, word := range strings.Fields(bigram) {
		if !questionTerms[Canonical(word)] {
			return false
		}
	}
	return true
}
