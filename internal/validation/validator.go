package validation

import (
	"regexp"
	"strings"

	"essay-assess/internal/domain"
	"essay-assess/internal/dto"
)

const (
	maxAnswerLength   = 20000
	maxQuestionLength = 4000
	maxMarksCeiling   = 1000
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAssessmentRequest validates a direct assessment request.
// An empty student answer is allowed here: the engine turns it into a
// zero result with explicit feedback rather than a request error.
func (v *Validator) ValidateAssessmentRequest(req *dto.AssessmentRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.CorrectAnswer) == "" {
		errors = append(errors, domain.NewMissingFieldError("correctAnswer"))
	}

	errors = append(errors, v.validateAnswerLengths(req.StudentAnswer, req.CorrectAnswer)...)

	if req.MaxMarks <= 0 || req.MaxMarks > maxMarksCeiling {
		errors = append(errors, domain.NewOutOfRangeError("maxMarks", req.MaxMarks, 1, maxMarksCeiling))
	}

	if len(req.QuestionData.Text) > maxQuestionLength {
		errors = append(errors, domain.NewOutOfRangeError("questionData.text", len(req.QuestionData.Text), 0, maxQuestionLength))
	}

	return errors
}

// ValidateAssessByQuestionRequest validates an assessment against a stored
// question. MaxMarks of zero means "use the question's marks".
func (v *Validator) ValidateAssessByQuestionRequest(req *dto.AssessByQuestionRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.QuestionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("questionId"))
	} else if !isValidULID(req.QuestionID) {
		errors = append(errors, domain.NewInvalidFormatError("questionId", req.QuestionID))
	}

	if len(req.StudentAnswer) > maxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError("studentAnswer", len(req.StudentAnswer), 0, maxAnswerLength))
	}

	if req.MaxMarks < 0 || req.MaxMarks > maxMarksCeiling {
		errors = append(errors, domain.NewOutOfRangeError("maxMarks", req.MaxMarks, 0, maxMarksCeiling))
	}

	return errors
}

// ValidateQuestionID validates a question identifier path parameter.
func (v *Validator) ValidateQuestionID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("id"))
	} else if !isValidULID(id) {
		errors = append(errors, domain.NewInvalidFormatError("id", id))
	}

	return errors
}

// ValidateCreateQuestionRequest validates a question registration request.
func (v *Validator) ValidateCreateQuestionRequest(req *dto.CreateQuestionRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Text) == "" {
		errors = append(errors, domain.NewMissingFieldError("text"))
	} else if len(req.Text) > maxQuestionLength {
		errors = append(errors, domain.NewOutOfRangeError("text", len(req.Text), 1, maxQuestionLength))
	}

	if strings.TrimSpace(req.ReferenceAnswer) == "" {
		errors = append(errors, domain.NewMissingFieldError("referenceAnswer"))
	} else if len(req.ReferenceAnswer) > maxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError("referenceAnswer", len(req.ReferenceAnswer), 1, maxAnswerLength))
	}

	if req.Marks <= 0 || req.Marks > maxMarksCeiling {
		errors = append(errors, domain.NewOutOfRangeError("marks", req.Marks, 1, maxMarksCeiling))
	}

	return errors
}

func (v *Validator) validateAnswerLengths(studentAnswer, correctAnswer string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(studentAnswer) > maxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError("studentAnswer", len(studentAnswer), 0, maxAnswerLength))
	}
	if len(correctAnswer) > maxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError("correctAnswer", len(correctAnswer), 1, maxAnswerLength))
	}

	return errors
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	if len(s) != 26 {
		return false
	}
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}
