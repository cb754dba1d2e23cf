package domain

import (
	"context"
	"time"
)

// Question is an essay question as stored by the question bank. The
// question bank itself is an external collaborator; the engine only
// reads (text, reference answer, difficulty, marks) from it.
type Question struct {
	ID              string
	Text            string
	ReferenceAnswer string
	Difficulty      Difficulty
	Type            string
	Marks           float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate validates the question
func (q *Question) Validate() error {
	if q.Text == "" {
		return NewInvalidInputError("question text is required")
	}
	if q.ReferenceAnswer == "" {
		return NewMissingReferenceError()
	}
	if q.Marks <= 0 {
		return NewInvalidMarksError(q.Marks)
	}
	return nil
}

// Metadata derives the assessment metadata record from the question.
func (q *Question) Metadata() QuestionMetadata {
	return QuestionMetadata{
		Text:       q.Text,
		Difficulty: q.Difficulty,
		Type:       q.Type,
		Marks:      q.Marks,
	}
}

// QuestionRepository defines the interface for question persistence
type QuestionRepository interface {
	// GetQuestionByID retrieves a question by its ID
	GetQuestionByID(ctx context.Context, id string) (*Question, error)

	// SaveQuestion persists a new question
	SaveQuestion(ctx context.Context, question *Question) error
}
