package assess

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func contentFixture(t *testing.T) ConceptSet {
	t.Helper()
	return ExtractConcepts(Normalize(oopReference), "Explain inheritance in OOP.")
}

func TestScoreContentFullCoverageForReferenceItself(t *testing.T) {
	concepts := contentFixture(t)
	result := ScoreContent(Normalize(oopReference), concepts)
	assert.InDelta(t, 1.0, result.Coverage, 1e-9)
}

func TestScoreContentZeroForOffTopicAnswer(t *testing.T) {
	concepts := contentFixture(t)
	offTopic := "Photosynthesis converts sunlight into chemical energy in plants."
	result := ScoreContent(Normalize(offTopic), concepts)
	assert.Zero(t, result.Coverage)
	assert.Empty(t, result.Matched)
}

func TestScoreContentEmptyInputs(t *testing.T) {
	concepts := contentFixture(t)
	assert.Zero(t, ScoreContent(Normalize(""), concepts).Coverage)
	assert.Zero(t, ScoreContent(Normalize("inheritance"), ConceptSet{}).Coverage)
}

func TestScoreContentSynonymTolerance(t *testing.T) {
	reference := "A method defines behavior. An object holds state."
	concepts := ExtractConcepts(Normalize(reference), "")

	literal := ScoreContent(Normalize("A method defines behavior of an object."), concepts)
	paraphrased := ScoreContent(Normalize("A function defines behavior of an instance."), concepts)

	assert.Greater(t, paraphrased.Coverage, 0.0)
	assert.InDelta(t, literal.Coverage, paraphrased.Coverage, 0.35)
}

func TestScoreContentRepetitionDoesNotInflate(t *testing.T) {
	concepts := contentFixture(t)

	once := ScoreContent(Normalize("Inheritance lets a subclass reuse superclass methods."), concepts)
	padded := ScoreContent(Normalize(strings.Repeat("Inheritance lets a subclass reuse superclass methods. ", 10)), concepts)

	assert.InDelta(t, once.Coverage, padded.Coverage, 1e-9)
}

func TestScoreContentMonotonicInConceptsCovered(t *testing.T) {
	concepts := contentFixture(t)

	partial := ScoreContent(Normalize("Inheritance is a mechanism."), concepts)
	fuller := ScoreContent(Normalize("Inheritance is a mechanism where a subclass acquires methods of a superclass and promotes code reuse."), concepts)

	assert.Greater(t, fuller.Coverage, partial.Coverage)
}
