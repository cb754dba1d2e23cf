package integration

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"essay-assess/internal/assess"
	"essay-assess/internal/config"
	"essay-assess/internal/domain"
	"essay-assess/internal/handler"
	"essay-assess/internal/logger"
	"essay-assess/internal/middleware"
	"essay-assess/internal/service"

	"github.com/gofiber/fiber/v2"
)

var (
	app  *fiber.App
	repo *memoryQuestionRepository
)

// memoryQuestionRepository backs the integration suite so it runs
// without an Oracle instance. The scoring path itself is fully real.
type memoryQuestionRepository struct {
	mu        sync.RWMutex
	questions map[string]domain.Question
}

func newMemoryQuestionRepository() *memoryQuestionRepository {
	return &memoryQuestionRepository{questions: make(map[string]domain.Question)}
}

func (r *memoryQuestionRepository) GetQuestionByID(ctx context.Context, id string) (*domain.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.questions[id]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

func (r *memoryQuestionRepository) SaveQuestion(ctx context.Context, q *domain.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.questions[q.ID] = *q
	return nil
}

func TestMain(m *testing.M) {
	os.Setenv("ENV", "test")

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	repo = newMemoryQuestionRepository()
	concepts := service.NewConceptCache()
	engine := service.NewEngine(concepts, assess.NewLexicalEstimator(), cfg.Assessment)
	// No Redis in this suite: a nil result cache means every request is
	// scored directly, which is exactly what the assertions need.
	results := service.NewResultCacheService(nil, 0)
	svc := service.NewAssessmentService(engine, repo, results, concepts)

	app = fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	h := handler.NewAssessmentHandler(svc)
	api := app.Group("/api")
	api.Post("/assessments", h.Assess)
	api.Post("/assessments/by-question", h.AssessByQuestion)
	api.Get("/questions/:id", h.GetQuestion)
	api.Post("/questions", h.CreateQuestion)

	os.Exit(m.Run())
}
