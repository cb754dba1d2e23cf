package models

import (
	"database/sql"
	"time"
)

// Question is the database model for the questions table.
type Question struct {
	ID              string       `db:"id"`
	Text            string       `db:"text"`
	ReferenceAnswer string       `db:"reference_answer"`
	Difficulty      string       `db:"difficulty"`
	Type            string       `db:"question_type"`
	Marks           float64      `db:"marks"`
	CreatedAt       time.Time    `db:"created_at"`
	UpdatedAt       time.Time    `db:"updated_at"`
	DeletedAt       sql.NullTime `db:"deleted_at"`
}
