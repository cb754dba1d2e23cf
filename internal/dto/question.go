package dto

import "essay-assess/internal/domain"

// QuestionResponse represents a question in the API response.
// The reference answer is deliberately absent: it must never reach
// students through this surface.
type QuestionResponse struct {
	ID         string  `json:"id"`
	Text       string  `json:"text"`
	Difficulty string  `json:"difficulty"`
	Type       string  `json:"type"`
	Marks      float64 `json:"marks"`
}

// CreateQuestionRequest is the request body for registering a question
// @Description Request body for creating a question with its reference answer
type CreateQuestionRequest struct {
	Text            string  `json:"text"`
	ReferenceAnswer string  `json:"referenceAnswer"`
	Difficulty      string  `json:"difficulty"`
	Type            string  `json:"type"`
	Marks           float64 `json:"marks"`
}

// FromDomainQuestion maps a domain question onto the public wire shape.
func FromDomainQuestion(q *domain.Question) *QuestionResponse {
	return &QuestionResponse{
		ID:         q.ID,
		Text:       q.Text,
		Difficulty: string(q.Difficulty),
		Type:       q.Type,
		Marks:      q.Marks,
	}
}
