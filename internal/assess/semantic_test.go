package assess

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexicalEstimatorIdenticalText(t *testing.T) {
	estimator := NewLexicalEstimator()
	similarity, err := estimator.Estimate(context.Background(), oopReference, oopReference)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, similarity, 1e-9)
}

func TestLexicalEstimatorDisjointText(t *testing.T) {
	estimator := NewLexicalEstimator()
	similarity, err := estimator.Estimate(context.Background(),
		"Photosynthesis converts sunlight into chemical energy.",
		oopReference)
	require.NoError(t, err)
	assert.Less(t, similarity, 0.05)
}

func TestLexicalEstimatorEmptyText(t *testing.T) {
	estimator := NewLexicalEstimator()
	similarity, err := estimator.Estimate(context.Background(), "", oopReference)
	require.NoError(t, err)
	assert.Zero(t, similarity)
}

func TestLexicalEstimatorParaphraseCreditsSynonyms(t *testing.T) {
	estimator := NewLexicalEstimator()
	reference := "A method defines the behavior of an object."

	paraphrase, err := estimator.Estimate(context.Background(),
		"A function defines the behavior of an instance.", reference)
	require.NoError(t, err)

	unrelated, err := estimator.Estimate(context.Background(),
		"The weather today is sunny and warm.", reference)
	require.NoError(t, err)

	assert.Greater(t, paraphrase, 0.7)
	assert.Greater(t, paraphrase, unrelated)
}

func TestLexicalEstimatorDeterministic(t *testing.T) {
	estimator := NewLexicalEstimator()
	student := "Inheritance lets a subclass reuse the methods of its superclass."

	first, err := estimator.Estimate(context.Background(), student, oopReference)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := estimator.Estimate(context.Background(), student, oopReference)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
