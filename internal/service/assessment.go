package service

import (
	"context"

	"essay-assess/internal/domain"
	"essay-assess/internal/dto"
	"essay-assess/internal/logger"
	"essay-assess/internal/util"

	"go.uber.org/zap"
)

// AssessmentService is the application-facing surface over the scoring
// engine, the question store and the result cache.
type AssessmentService interface {
	Assess(ctx context.Context, req *dto.AssessmentRequest) (*dto.AssessmentResponse, error)
	AssessByQuestion(ctx context.Context, req *dto.AssessByQuestionRequest) (*dto.AssessmentResponse, error)
	GetQuestion(ctx context.Context, id string) (*dto.QuestionResponse, error)
	CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
}

type assessmentServiceImpl struct {
	assessor domain.AnswerAssessor
	repo     domain.QuestionRepository
	results  ResultCacheService
	concepts *ConceptCache
}

// NewAssessmentService creates an AssessmentService. repo may be nil when
// the deployment runs without a question store; only the by-question and
// question operations require it.
func NewAssessmentService(
	assessor domain.AnswerAssessor,
	repo domain.QuestionRepository,
	results ResultCacheService,
	concepts *ConceptCache,
) AssessmentService {
	return &assessmentServiceImpl{
		assessor: assessor,
		repo:     repo,
		results:  results,
		concepts: concepts,
	}
}

// Assess scores a student answer against an inline reference answer.
func (s *assessmentServiceImpl) Assess(ctx context.Context, req *dto.AssessmentRequest) (*dto.AssessmentResponse, error) {
	domainReq := &domain.AssessmentRequest{
		StudentAnswer:   req.StudentAnswer,
		ReferenceAnswer: req.CorrectAnswer,
		MaxMarks:        req.MaxMarks,
		Question: domain.QuestionMetadata{
			Text:       req.QuestionData.Text,
			Difficulty: domain.ParseDifficulty(req.QuestionData.Difficulty),
			Type:       req.QuestionData.Type,
			Marks:      req.QuestionData.Marks,
		},
	}

	// Inline requests have no stable question ID, so the cache identity
	// is the reference answer plus the question text.
	questionKey := util.HashString(req.CorrectAnswer + "\x00" + req.QuestionData.Text)
	return s.assess(ctx, questionKey, domainReq)
}

// AssessByQuestion resolves the reference answer and question context
// through the question store, then scores.
func (s *assessmentServiceImpl) AssessByQuestion(ctx context.Context, req *dto.AssessByQuestionRequest) (*dto.AssessmentResponse, error) {
	if s.repo == nil {
		return nil, domain.NewInternalError("question store is not configured", nil)
	}

	question, err := s.repo.GetQuestionByID(ctx, req.QuestionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(req.QuestionID)
	}

	maxMarks := req.MaxMarks
	if maxMarks == 0 {
		maxMarks = question.Marks
	}

	domainReq := &domain.AssessmentRequest{
		StudentAnswer:   req.StudentAnswer,
		ReferenceAnswer: question.ReferenceAnswer,
		MaxMarks:        maxMarks,
		Question:        question.Metadata(),
	}
	return s.assess(ctx, question.ID, domainReq)
}

// assess is the shared read-through path: cache lookup, engine call,
// best-effort cache write. Cache failures never fail the request.
func (s *assessmentServiceImpl) assess(ctx context.Context, questionKey string, req *domain.AssessmentRequest) (*dto.AssessmentResponse, error) {
	if s.results != nil {
		cached, err := s.results.GetResultFromCache(ctx, questionKey, req.StudentAnswer, req.MaxMarks)
		if err != nil {
			logger.Get().Warn("Result cache lookup failed, scoring directly",
				zap.Error(err), zap.String("questionKey", questionKey))
		} else if cached != nil {
			return dto.FromDomainResult(cached), nil
		}
	}

	result, err := s.assessor.Assess(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.results != nil {
		if err := s.results.PutResultToCache(ctx, questionKey, req.StudentAnswer, req.MaxMarks, result); err != nil {
			logger.Get().Warn("Failed to cache assessment result",
				zap.Error(err), zap.String("questionKey", questionKey))
		}
	}
	return dto.FromDomainResult(result), nil
}

// GetQuestion returns public question metadata without the reference answer.
func (s *assessmentServiceImpl) GetQuestion(ctx context.Context, id string) (*dto.QuestionResponse, error) {
	if s.repo == nil {
		return nil, domain.NewInternalError("question store is not configured", nil)
	}
	question, err := s.repo.GetQuestionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(id)
	}
	return dto.FromDomainQuestion(question), nil
}

// CreateQuestion registers a question with its reference answer and
// invalidates any state derived from a previous version of it.
func (s *assessmentServiceImpl) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	if s.repo == nil {
		return nil, domain.NewInternalError("question store is not configured", nil)
	}

	question := &domain.Question{
		ID:              util.NewULID(),
		Text:            req.Text,
		ReferenceAnswer: req.ReferenceAnswer,
		Difficulty:      domain.ParseDifficulty(req.Difficulty),
		Type:            req.Type,
		Marks:           req.Marks,
	}
	if err := question.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.SaveQuestion(ctx, question); err != nil {
		return nil, err
	}

	if s.concepts != nil {
		s.concepts.Reset()
	}
	if s.results != nil {
		if err := s.results.InvalidateQuestion(ctx, question.ID); err != nil {
			logger.Get().Warn("Failed to invalidate cached results for question",
				zap.Error(err), zap.String("questionID", question.ID))
		}
	}
	return dto.FromDomainQuestion(question), nil
}
