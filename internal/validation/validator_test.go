package validation

import (
	"strings"
	"testing"

	"essay-assess/internal/dto"

	"github.com/stretchr/testify/assert"
)

const validID = "01HZXF8Q4N5T1V2W3X4Y5Z6A7B"

func validAssessmentRequest() *dto.AssessmentRequest {
	return &dto.AssessmentRequest{
		StudentAnswer: "An answer.",
		CorrectAnswer: "The reference answer.",
		MaxMarks:      10,
		QuestionData: dto.QuestionData{
			Text:       "A question?",
			Difficulty: "EASY",
			Type:       "essay",
			Marks:      10,
		},
	}
}

func TestValidateAssessmentRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateAssessmentRequest(validAssessmentRequest()))

	t.Run("EmptyStudentAnswerIsAllowed", func(t *testing.T) {
		req := validAssessmentRequest()
		req.StudentAnswer = ""
		assert.Empty(t, v.ValidateAssessmentRequest(req))
	})

	t.Run("MissingCorrectAnswer", func(t *testing.T) {
		req := validAssessmentRequest()
		req.CorrectAnswer = "   "
		assert.NotEmpty(t, v.ValidateAssessmentRequest(req))
	})

	t.Run("NonPositiveMaxMarks", func(t *testing.T) {
		req := validAssessmentRequest()
		req.MaxMarks = 0
		assert.NotEmpty(t, v.ValidateAssessmentRequest(req))
	})

	t.Run("OversizedAnswer", func(t *testing.T) {
		req := validAssessmentRequest()
		req.StudentAnswer = strings.Repeat("a", maxAnswerLength+1)
		assert.NotEmpty(t, v.ValidateAssessmentRequest(req))
	})
}

func TestValidateAssessByQuestionRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateAssessByQuestionRequest(&dto.AssessByQuestionRequest{
		QuestionID:    validID,
		StudentAnswer: "An answer.",
	}))

	t.Run("MissingID", func(t *testing.T) {
		errs := v.ValidateAssessByQuestionRequest(&dto.AssessByQuestionRequest{StudentAnswer: "x"})
		assert.NotEmpty(t, errs)
	})

	t.Run("MalformedID", func(t *testing.T) {
		errs := v.ValidateAssessByQuestionRequest(&dto.AssessByQuestionRequest{
			QuestionID:    "not-a-ulid",
			StudentAnswer: "x",
		})
		assert.NotEmpty(t, errs)
	})
}

func TestValidateQuestionID(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.ValidateQuestionID(validID))
	assert.NotEmpty(t, v.ValidateQuestionID(""))
	assert.NotEmpty(t, v.ValidateQuestionID("short"))
	// I, L, O and U are not in Crockford's Base32.
	assert.NotEmpty(t, v.ValidateQuestionID("IIIIIIIIIIIIIIIIIIIIIIIIII"))
}

func TestValidateCreateQuestionRequest(t *testing.T) {
	v := NewValidator()

	valid := &dto.CreateQuestionRequest{
		Text:            "Explain inheritance.",
		ReferenceAnswer: "Inheritance is a mechanism for reuse.",
		Difficulty:      "MEDIUM",
		Type:            "essay",
		Marks:           10,
	}
	assert.Empty(t, v.ValidateCreateQuestionRequest(valid))

	t.Run("MissingReferenceAnswer", func(t *testing.T) {
		req := *valid
		req.ReferenceAnswer = ""
		assert.NotEmpty(t, v.ValidateCreateQuestionRequest(&req))
	})

	t.Run("NonPositiveMarks", func(t *testing.T) {
		req := *valid
		req.Marks = -1
		assert.NotEmpty(t, v.ValidateCreateQuestionRequest(&req))
	})
}
