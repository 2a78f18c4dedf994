package database

import (
	"fmt"

	"github.com/example/physquest/pkg/models"
)

// WrongAnswerRepository handles database operations for the wrong-answer log
type WrongAnswerRepository struct{}

// NewWrongAnswerRepository creates a new repository instance
func NewWrongAnswerRepository() *WrongAnswerRepository {
	return &WrongAnswerRepository{}
}

// Create appends one entry to the wrong-answer log
func (r *WrongAnswerRepository) Create(w *models.WrongAnswer) error {
	query := DB.Rebind(`
		INSERT INTO wrong_answers (question, wrong_answer, correct_answer, topic)
		VALUES (?, ?, ?, ?)
	`)

	_, err := DB.Exec(query, w.Question, w.WrongAnswer, w.CorrectAnswer, w.Topic)
	if err != nil {
		return fmt.Errorf("failed to track wrong answer: %v", err)
	}
	return nil
}

// GetReviewQuestions returns the 5 most-frequently-wrong questions, grouped
// by question text. Topic and correct answer are carried through from an
// arbitrary row in each group.
func (r *WrongAnswerRepository) GetReviewQuestions() ([]models.ReviewQuestion, error) {
	questions := []models.ReviewQuestion{}

	err := DB.Select(&questions, `
		SELECT question,
		       MIN(correct_answer) AS correct_answer,
		       MIN(topic) AS topic,
		       COUNT(*) AS times_wrong
		FROM wrong_answers
		GROUP BY question
		ORDER BY times_wrong DESC
		LIMIT 5
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get review questions: %v", err)
	}

	return questions, nil
}

// Count returns the number of logged wrong answers
func (r *WrongAnswerRepository) Count() (int, error) {
	var count int
	err := DB.Get(&count, "SELECT COUNT(*) FROM wrong_answers")
	if err != nil {
		return 0, fmt.Errorf("failed to count wrong answers: %v", err)
	}
	return count, nil
}
