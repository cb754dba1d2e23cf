package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"essay-assess/internal/domain"
	"essay-assess/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.DB
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// GetQuestionByID implements domain.QuestionRepository. A missing row is
// (nil, nil); the service layer decides how to report it.
func (a *QuestionDatabaseAdapter) GetQuestionByID(ctx context.Context, id string) (*domain.Question, error) {
	var model models.Question
	// Oracle folds unquoted identifiers to upper case; the quoted aliases
	// keep sqlx struct mapping working.
	query := `SELECT
		id "id",
		text "text",
		reference_answer "reference_answer",
		difficulty "difficulty",
		question_type "question_type",
		marks "marks",
		created_at "created_at",
		updated_at "updated_at"
	FROM questions
	WHERE id = :1
	AND deleted_at IS NULL`

	err := a.db.GetContext(ctx, &model, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by id: %w", err)
	}
	return toDomainQuestion(&model), nil
}

// SaveQuestion implements domain.QuestionRepository using an Oracle MERGE
// so re-registering a question updates it in place.
func (a *QuestionDatabaseAdapter) SaveQuestion(ctx context.Context, q *domain.Question) error {
	now := time.Now()
	query := `MERGE INTO questions t
	USING (SELECT :1 id FROM dual) s
	ON (t.id = s.id)
	WHEN MATCHED THEN UPDATE SET
		t.text = :2,
		t.reference_answer = :3,
		t.difficulty = :4,
		t.question_type = :5,
		t.marks = :6,
		t.updated_at = :7
	WHEN NOT MATCHED THEN INSERT
		(id, text, reference_answer, difficulty, question_type, marks, created_at, updated_at)
	VALUES (:8, :9, :10, :11, :12, :13, :14, :15)`

	_, err := a.db.ExecContext(ctx, query,
		q.ID,
		q.Text, q.ReferenceAnswer, string(q.Difficulty), q.Type, q.Marks, now,
		q.ID, q.Text, q.ReferenceAnswer, string(q.Difficulty), q.Type, q.Marks, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}
	return nil
}

func toDomainQuestion(m *models.Question) *domain.Question {
	return &domain.Question{
		ID:              m.ID,
		Text:            m.Text,
		ReferenceAnswer: m.ReferenceAnswer,
		Difficulty:      domain.ParseDifficulty(m.Difficulty),
		Type:            m.Type,
		Marks:           m.Marks,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
