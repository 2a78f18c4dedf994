package models

import (
	"database/sql"
	"time"
)

// Submission is one student hand-in: a topic, the student's name, and
// optionally an uploaded file and/or an external link
type Submission struct {
	ID        int64          `json:"id" db:"id"`
	Topic     string         `json:"topic" db:"topic"`
	Name      string         `json:"name" db:"name"`
	FilePath  sql.NullString `json:"file_path" db:"file_path"`
	Link      sql.NullString `json:"link" db:"link"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}
