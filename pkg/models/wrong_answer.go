package models

import "time"

// WrongAnswer is one logged incorrect quiz response
type WrongAnswer struct {
	ID            int64     `json:"id" db:"id"`
	Question      string    `json:"question" db:"question"`
	WrongAnswer   string    `json:"wrong_answer" db:"wrong_answer"`
	CorrectAnswer string    `json:"correct_answer" db:"correct_answer"`
	Topic         string    `json:"topic" db:"topic"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// ReviewQuestion aggregates the wrong-answer log by question text for the
// review list
type ReviewQuestion struct {
	Question      string `json:"question" db:"question"`
	CorrectAnswer string `json:"correct_answer" db:"correct_answer"`
	Topic         string `json:"topic" db:"topic"`
	TimesWrong    int    `json:"times_wrong" db:"times_wrong"`
}
