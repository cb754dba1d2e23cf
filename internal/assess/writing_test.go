package assess

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreWritingEmptyInput(t *testing.T) {
	result := ScoreWriting(Normalize(""))
	assert.Zero(t, result.Overall)
}

func TestScoreWritingWellFormedProse(t *testing.T) {
	text := `Inheritance allows a subclass to reuse the behavior of its parent class.
The subclass can also override inherited methods to specialize behavior.
This keeps shared logic in one place and reduces duplication across the codebase.`

	result := ScoreWriting(Normalize(text))
	assert.Greater(t, result.SentenceStructure, 0.8)
	assert.Greater(t, result.Grammar, 0.8)
	assert.Greater(t, result.Vocabulary, 0.7)
	assert.Greater(t, result.Overall, 0.75)
}

func TestScoreWritingPenalizesFragments(t *testing.T) {
	fragments := "Yes. Code. Reuse. Class. Object. Things."
	prose := "Inheritance allows a subclass to reuse behavior defined in its parent class."

	fragScore := ScoreWriting(Normalize(fragments)).SentenceStructure
	proseScore := ScoreWriting(Normalize(prose)).SentenceStructure
	assert.Less(t, fragScore, proseScore)
}

func TestScoreWritingPenalizesMissingCapitalization(t *testing.T) {
	capitalized := "Inheritance promotes reuse. Subclasses extend parents."
	lowercase := "inheritance promotes reuse. subclasses extend parents."

	capScore := ScoreWriting(Normalize(capitalized)).Grammar
	lowScore := ScoreWriting(Normalize(lowercase)).Grammar
	assert.Greater(t, capScore, lowScore)
}

func TestScoreWritingPenalizesWordRepetition(t *testing.T) {
	varied := "Inheritance allows a subclass to reuse and extend the behavior of its parent."
	repeated := strings.TrimSpace(strings.Repeat("inheritance ", 20)) + "."

	variedScore := ScoreWriting(Normalize(varied)).Vocabulary
	repeatedScore := ScoreWriting(Normalize(repeated)).Vocabulary
	assert.Greater(t, variedScore, repeatedScore)
}

func TestScoreWritingSubScoresBounded(t *testing.T) {
	inputs := []string{
		"word",
		strings.Repeat("a very long run on sentence that never stops ", 30),
		"Normal sentence here. Another normal sentence follows it.",
	}
	for _, input := range inputs {
		result := ScoreWriting(Normalize(input))
		for name, v := range map[string]float64{
			"structure":  result.SentenceStructure,
			"grammar":    result.Grammar,
			"vocabulary": result.Vocabulary,
			"overall":    result.Overall,
		} {
			assert.GreaterOrEqual(t, v, 0.0, "%s for %q", name, input)
			assert.LessOrEqual(t, v, 1.0, "%s for %q", name, input)
		}
	}
}
