package models

import "time"

// ProgressRecord is one saved game session, ranked on the leaderboard by
// level, then score, then elapsed time
type ProgressRecord struct {
	ID         int64     `json:"id" db:"id"`
	PlayerName string    `json:"player_name" db:"player_name"`
	Level      int       `json:"level" db:"level"`
	Score      int       `json:"score" db:"score"`
	Time       int       `json:"time" db:"time"` // elapsed seconds
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
