package database

import (
	"fmt"

	"github.com/example/physquest/pkg/models"
)

// SubmissionRepository handles database operations for student submissions
type SubmissionRepository struct{}

// NewSubmissionRepository creates a new repository instance
func NewSubmissionRepository() *SubmissionRepository {
	return &SubmissionRepository{}
}

// Create inserts a new submission. Submissions are append-only: there is
// no update or delete path, and duplicates are allowed.
func (r *SubmissionRepository) Create(s *models.Submission) error {
	query := DB.Rebind(`
		INSERT INTO submissions (topic, name, file_path, link)
		VALUES (?, ?, ?, ?)
	`)

	_, err := DB.Exec(query, s.Topic, s.Name, s.FilePath, s.Link)
	if err != nil {
		return fmt.Errorf("failed to create submission: %v", err)
	}
	return nil
}

// GetAll returns every submission, newest first
func (r *SubmissionRepository) GetAll() ([]models.Submission, error) {
	submissions := []models.Submission{}

	err := DB.Select(&submissions,
		"SELECT * FROM submissions ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to get submissions: %v", err)
	}

	return submissions, nil
}

// Count returns the number of stored submissions
func (r *SubmissionRepository) Count() (int, error) {
	var count int
	err := DB.Get(&count, "SELECT COUNT(*) FROM submissions")
	if err != nil {
		return 0, fmt.Errorf("failed to count submissions: %v", err)
	}
	return count, nil
}
