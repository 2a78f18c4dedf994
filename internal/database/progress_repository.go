package database

import (
	"fmt"

	"github.com/example/physquest/pkg/models"
)

// ProgressRepository handles database operations for saved game progress
type ProgressRepository struct{}

// NewProgressRepository creates a new repository instance
func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{}
}

// Create inserts a new progress record and fills in its ID
func (r *ProgressRepository) Create(p *models.ProgressRecord) error {
	if DriverName() == "postgres" {
		// PostgreSQL has no LastInsertId; use RETURNING instead
		query := DB.Rebind(`
			INSERT INTO progress (player_name, level, score, time)
			VALUES (?, ?, ?, ?)
			RETURNING id
		`)
		err := DB.QueryRow(query, p.PlayerName, p.Level, p.Score, p.Time).Scan(&p.ID)
		if err != nil {
			return fmt.Errorf("failed to create progress record: %v", err)
		}
		return nil
	}

	result, err := DB.Exec(`
		INSERT INTO progress (player_name, level, score, time)
		VALUES (?, ?, ?, ?)
	`, p.PlayerName, p.Level, p.Score, p.Time)
	if err != nil {
		return fmt.Errorf("failed to create progress record: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %v", err)
	}
	p.ID = id

	return nil
}

// GetLeaderboard returns the top 10 progress records. Ranking is computed
// at read time: level descending, then score descending, then time
// ascending.
func (r *ProgressRepository) GetLeaderboard() ([]models.ProgressRecord, error) {
	records := []models.ProgressRecord{}

	err := DB.Select(&records, `
		SELECT id, player_name, level, score, time, created_at
		FROM progress
		ORDER BY level DESC, score DESC, time ASC
		LIMIT 10
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %v", err)
	}

	return records, nil
}

// Count returns the number of stored progress records
func (r *ProgressRepository) Count() (int, error) {
	var count int
	err := DB.Get(&count, "SELECT COUNT(*) FROM progress")
	if err != nil {
		return 0, fmt.Errorf("failed to count progress records: %v", err)
	}
	return count, nil
}
