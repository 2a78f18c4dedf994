package models

// Flashcard is a single question/answer study pair
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
