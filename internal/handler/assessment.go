package handler

import (
	"essay-assess/internal/domain"
	"essay-assess/internal/dto"
	"essay-assess/internal/logger"
	"essay-assess/internal/service"
	"essay-assess/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AssessmentHandler handles assessment-related HTTP requests
type AssessmentHandler struct {
	service   service.AssessmentService
	validator *validation.Validator
}

// NewAssessmentHandler creates a new AssessmentHandler instance
func NewAssessmentHandler(service service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// Assess godoc
// @Summary Assess a student answer
// @Description Scores a student answer against an inline reference answer across five dimensions
// @Tags assessments
// @Accept json
// @Produce json
// @Param request body dto.AssessmentRequest true "Assessment Request"
// @Success 200 {object} dto.AssessmentResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /assessments [post]
func (h *AssessmentHandler) Assess(c *fiber.Ctx) error {
	var req dto.AssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body is not valid JSON")
	}

	if errs := h.validator.ValidateAssessmentRequest(&req); len(errs) > 0 {
		return errs
	}

	result, err := h.service.Assess(c.Context(), &req)
	if err != nil {
		return err
	}

	logger.Get().Info("Assessment completed",
		zap.Float64("percentage", result.Percentage),
		zap.String("grade", result.Grade),
	)
	return c.JSON(result)
}

// AssessByQuestion godoc
// @Summary Assess a student answer against a stored question
// @Description Resolves the reference answer through the question store, then scores
// @Tags assessments
// @Accept json
// @Produce json
// @Param request body dto.AssessByQuestionRequest true "Assessment Request"
// @Success 200 {object} dto.AssessmentResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /assessments/by-question [post]
func (h *AssessmentHandler) AssessByQuestion(c *fiber.Ctx) error {
	var req dto.AssessByQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body is not valid JSON")
	}

	if errs := h.validator.ValidateAssessByQuestionRequest(&req); len(errs) > 0 {
		return errs
	}

	result, err := h.service.AssessByQuestion(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// GetQuestion godoc
// @Summary Get question metadata
// @Description Returns public question metadata without the reference answer
// @Tags questions
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/{id} [get]
func (h *AssessmentHandler) GetQuestion(c *fiber.Ctx) error {
	id := c.Params("id")
	if errs := h.validator.ValidateQuestionID(id); len(errs) > 0 {
		return errs
	}

	question, err := h.service.GetQuestion(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(question)
}

// CreateQuestion godoc
// @Summary Register a question
// @Description Stores a question with its reference answer for later by-question assessments
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.CreateQuestionRequest true "Question"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /questions [post]
func (h *AssessmentHandler) CreateQuestion(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body is not valid JSON")
	}

	if errs := h.validator.ValidateCreateQuestionRequest(&req); len(errs) > 0 {
		return errs
	}

	question, err := h.service.CreateQuestion(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(question)
}
