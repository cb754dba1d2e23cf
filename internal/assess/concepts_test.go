package assess

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oopReference = `Inheritance is a mechanism where a subclass acquires the properties and
methods of a superclass. Inheritance promotes code reuse because shared
behavior lives in the superclass. A subclass can override inherited methods
to specialize behavior.`

func TestExtractConceptsEmptyReference(t *testing.T) {
	assert.True(t, ExtractConcepts(Normalize(""), "question").IsEmpty())
}

func TestExtractConceptsFindsSalientTerms(t *testing.T) {
	set := ExtractConcepts(Normalize(oopReference), "Explain inheritance in OOP.")
	require.False(t, set.IsEmpty())

	terms := make(map[string]bool)
	for _, c := range set.Concepts {
		terms[c.Term] = true
	}
	assert.True(t, terms["inheritance"])
	assert.True(t, terms["subclass"])
	assert.True(t, terms["superclass"])
}

func TestExtractConceptsQuestionBoost(t *testing.T) {
	reference := "Inheritance enables reuse. Encapsulation hides state."

	boosted := ExtractConcepts(Normalize(reference), "What is inheritance?")
	plain := ExtractConcepts(Normalize(reference), "")

	weight := func(set ConceptSet, term string) float64 {
		for _, c := range set.Concepts {
			if c.Term == term {
				return c.Weight
			}
		}
		return 0
	}
	assert.Greater(t, weight(boosted, "inheritance"), weight(plain, "inheritance"))
	assert.Equal(t, weight(boosted, "encapsulation"), weight(plain, "encapsulation"))
}

func TestExtractConceptsCapsSize(t *testing.T) {
	var sb strings.Builder
	words := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf",
		"hotel", "india", "juliet", "kilo", "lima", "mike", "november",
		"oscar", "papa", "quebec", "romeo", "sierra", "tango", "uniform",
		"victor", "whiskey", "xray", "yankee", "zulu",
	}
	for _, w := range words {
		sb.WriteString(w + ". ")
	}

	set := ExtractConcepts(Normalize(sb.String()), "")
	assert.LessOrEqual(t, len(set.Concepts), maxConcepts)
}

func TestExtractConceptsDropsSingleOccurrenceBigrams(t *testing.T) {
	// "code reuse" appears twice, "avoid duplication" once.
	reference := "Code reuse matters. Code reuse avoids duplication."
	set := ExtractConcepts(Normalize(reference), "")

	var bigrams []string
	for _, c := range set.Concepts {
		if c.Bigram {
			bigrams = append(bigrams, c.Term)
		}
	}
	assert.Contains(t, bigrams, "code reuse")
	assert.NotContains(t, bigrams, "avoid duplication")
}

func TestExtractConceptsQuestionWordDoesNotRescueBigrams(t *testing.T) {
	reference := `The four principles of object oriented programming are encapsulation,
inheritance, polymorphism and abstraction. Encapsulation hides the internal state
of an object behind methods. Inheritance lets a class reuse behavior from a parent
class. Polymorphism lets one interface drive many implementations. Abstraction
exposes only the essential features of an object.`
	question := "Describe the four principles of object oriented programming."

	set := ExtractConcepts(Normalize(reference), question)
	require.False(t, set.IsEmpty())

	terms := make(map[string]bool)
	for _, c := range set.Concepts {
		// Word pairs seen once are incidental adjacency even when a
		// question word appears in them, and must not displace the
		// terms the question is actually about.
		assert.False(t, c.Bigram, "unexpected bigram concept %q", c.Term)
		terms[c.Term] = true
	}
	for _, principle := range []string{"encapsulation", "inheritance", "polymorphism", "abstraction"} {
		assert.True(t, terms[Canonical(principle)], "missing principle term %q", principle)
	}
}

func TestExtractConceptsDeterministic(t *testing.T) {
	first := ExtractConcepts(Normalize(oopReference), "Explain inheritance.")
	second := ExtractConcepts(Normalize(oopReference), "Explain inheritance.")
	assert.Equal(t, first, second)
}
