package assess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t  \n", "...!?"} {
		n := Normalize(input)
		assert.True(t, n.IsEmpty(), "input %q should normalize to empty", input)
		assert.Empty(t, n.Sentences)
	}
}

func TestNormalizeSentenceSplitting(t *testing.T) {
	n := Normalize("Inheritance is a mechanism. It promotes reuse! Does it?")

	assert.Len(t, n.Sentences, 3)
	for _, s := range n.Sentences {
		assert.True(t, s.Terminated, "sentence %q should be terminated", s.Raw)
	}
}

func TestNormalizeUnterminatedLines(t *testing.T) {
	n := Normalize("first point\nsecond point")

	assert.Len(t, n.Sentences, 2)
	assert.False(t, n.Sentences[0].Terminated)
	assert.False(t, n.Sentences[1].Terminated)
}

func TestNormalizeDropsStopWordsFromTokens(t *testing.T) {
	n := Normalize("The class is a blueprint for the object.")

	assert.NotContains(t, n.Tokens, "the")
	assert.NotContains(t, n.Tokens, "is")
	assert.Contains(t, n.Tokens, "class")
	assert.Contains(t, n.Tokens, "blueprint")
	// Words keeps everything for structural analysis.
	assert.Contains(t, n.Words, "the")
}

func TestNormalizeLowercasesAndStripsPunctuation(t *testing.T) {
	n := Normalize("Encapsulation, POLYMORPHISM; and abstraction.")

	assert.Contains(t, n.Tokens, "encapsulation")
	assert.Contains(t, n.Tokens, "polymorphism")
	assert.Contains(t, n.Tokens, "abstraction")
}

func TestStem(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"classes", "class"},
		{"boxes", "box"},
		{"matches", "match"},
		{"branches", "branch"},
		{"objects", "object"},
		{"inheriting", "inherit"},
		{"inherited", "inherit"},
		{"properties", "property"},
		{"class", "class"},
		{"process", "process"},
		{"status", "status"},
		{"analysis", "analysis"},
		{"cat", "cat"},
		{"quickly", "quick"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Stem(tt.word))
		})
	}
}

func TestSentenceBigrams(t *testing.T) {
	n := Normalize("Inheritance promotes code reuse.")
	if assert.Len(t, n.Sentences, 1) {
		bigrams := n.Sentences[0].Bigrams()
		assert.Contains(t, bigrams, "inheritance promote")
	}

	short := Normalize("Inheritance.")
	if assert.Len(t, short.Sentences, 1) {
		assert.Nil(t, short.Sentences[0].Bigrams())
	}
}

func TestNormalizeDeterminism(t *testing.T) {
	input := "A class defines attributes and methods. An object is an instance of a class."
	first := Normalize(input)
	second := Normalize(input)
	assert.Equal(t, first, second)
}
