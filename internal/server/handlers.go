package server

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/physquest/internal/content"
	"github.com/example/physquest/internal/excel"
	"github.com/example/physquest/pkg/models"
)

// Home renders the game's landing page
func (s *Server) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// AIExplain returns an explanation for a topic: generated when the AI
// client is configured, otherwise resolved from the static catalog.
func (s *Server) AIExplain(c *gin.Context) {
	var req struct {
		Topic string `json:"topic"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Topic required"})
		return
	}

	if s.ai != nil {
		explanation, err := s.ai.Explain(req.Topic)
		if err != nil {
			log.Printf("AI explain error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to generate explanation",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"explanation": explanation})
		return
	}

	c.JSON(http.StatusOK, gin.H{"explanation": content.Explain(req.Topic)})
}

// GenerateFlashcards returns three flashcards for a topic
func (s *Server) GenerateFlashcards(c *gin.Context) {
	var req struct {
		Topic string `json:"topic"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Topic required"})
		return
	}

	if s.ai != nil {
		flashcards, err := s.ai.GenerateFlashcards(req.Topic)
		if err != nil {
			log.Printf("Flashcard generation error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate flashcards"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"flashcards": flashcards})
		return
	}

	c.JSON(http.StatusOK, gin.H{"flashcards": content.Flashcards(req.Topic)})
}

// AskQuestion answers a free-form question about a topic
func (s *Server) AskQuestion(c *gin.Context) {
	var req struct {
		Topic    string `json:"topic"`
		Question string `json:"question"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Topic == "" || req.Question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Topic and question required"})
		return
	}

	if s.ai != nil {
		answer, err := s.ai.AnswerQuestion(req.Topic, req.Question)
		if err != nil {
			log.Printf("Q&A error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to answer question"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"answer": answer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": content.Answer(req.Topic, req.Question)})
}

// saveUpload validates and stores one uploaded PDF, returning the stored
// filename. The original client filename is reduced to its base name so
// path separators never reach the uploads directory.
func (s *Server) saveUpload(c *gin.Context) (string, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return "", err
	}
	if file.Header.Get("Content-Type") != "application/pdf" {
		return "", fmt.Errorf("Only PDF files allowed")
	}
	if file.Size > maxUploadSize {
		return "", fmt.Errorf("File exceeds the 10MB limit")
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(s.cfg.UploadsDir, filename)); err != nil {
		return "", fmt.Errorf("failed to save file: %v", err)
	}
	return filename, nil
}

// Upload accepts a PDF and acknowledges it. Problem generation from the
// PDF itself is not implemented; the acknowledgement text reflects whether
// the AI client is configured.
func (s *Server) Upload(c *gin.Context) {
	if _, err := c.FormFile("file"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	filename, err := s.saveUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	problems := "PDF uploaded successfully! Add OpenAI API key to generate custom problems from your PDF."
	if s.ai != nil {
		problems = "PDF uploaded! AI problem generation coming soon. For now, practice problems from your textbook."
	}

	c.JSON(http.StatusOK, gin.H{"problems": problems, "filename": filename})
}

// Submit stores a student submission: topic and name are required, the
// file and link are optional. Responds in plain text like the original
// form flow expects.
func (s *Server) Submit(c *gin.Context) {
	topic := c.PostForm("topic")
	name := c.PostForm("name")
	link := c.PostForm("link")

	if topic == "" || name == "" {
		c.String(http.StatusBadRequest, "Topic and name are required")
		return
	}

	var filePath sql.NullString
	if _, err := c.FormFile("file"); err == nil {
		filename, err := s.saveUpload(c)
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		filePath = sql.NullString{String: filepath.Join(s.cfg.UploadsDir, filename), Valid: true}
	}

	var linkValue sql.NullString
	if link != "" {
		linkValue = sql.NullString{String: link, Valid: true}
	}

	submission := models.Submission{
		Topic:    topic,
		Name:     name,
		FilePath: filePath,
		Link:     linkValue,
	}
	if err := s.submissions.Create(&submission); err != nil {
		log.Printf("Database error: %v", err)
		c.String(http.StatusInternalServerError, "Error saving submission")
		return
	}

	c.String(http.StatusOK, "Submission successful!")
}

// Submissions renders the list of all submissions, newest first
func (s *Server) Submissions(c *gin.Context) {
	submissions, err := s.submissions.GetAll()
	if err != nil {
		log.Printf("Database error: %v", err)
		c.String(http.StatusInternalServerError, "Error fetching submissions")
		return
	}
	c.HTML(http.StatusOK, "submissions.html", gin.H{"submissions": submissions})
}

// ExportSubmissions streams all submissions as an Excel workbook
func (s *Server) ExportSubmissions(c *gin.Context) {
	submissions, err := s.submissions.GetAll()
	if err != nil {
		log.Printf("Database error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export submissions"})
		return
	}

	f := excel.ExportSubmissions(submissions)
	c.Header("Content-Disposition", `attachment; filename="submissions.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		log.Printf("Export error: %v", err)
	}
}

// SaveProgress appends one game-session result
func (s *Server) SaveProgress(c *gin.Context) {
	var req struct {
		PlayerName string `json:"player_name"`
		Level      int    `json:"level"`
		Score      int    `json:"score"`
		Time       int    `json:"time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.PlayerName == "" {
		req.PlayerName = "Anonymous"
	}

	record := models.ProgressRecord{
		PlayerName: req.PlayerName,
		Level:      req.Level,
		Score:      req.Score,
		Time:       req.Time,
	}
	if err := s.progress.Create(&record); err != nil {
		log.Printf("Progress save error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": record.ID})
}

// Leaderboard returns the top 10 progress records
func (s *Server) Leaderboard(c *gin.Context) {
	records, err := s.progress.GetLeaderboard()
	if err != nil {
		log.Printf("Leaderboard error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": records})
}

// TrackWrongAnswer appends one entry to the wrong-answer log
func (s *Server) TrackWrongAnswer(c *gin.Context) {
	var req struct {
		Question      string `json:"question"`
		WrongAnswer   string `json:"wrong_answer"`
		CorrectAnswer string `json:"correct_answer"`
		Topic         string `json:"topic"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question required"})
		return
	}

	entry := models.WrongAnswer{
		Question:      req.Question,
		WrongAnswer:   req.WrongAnswer,
		CorrectAnswer: req.CorrectAnswer,
		Topic:         req.Topic,
	}
	if err := s.wrongAnswers.Create(&entry); err != nil {
		log.Printf("Wrong answer tracking error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to track answer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ReviewQuestions returns the 5 most-frequently-wrong questions
func (s *Server) ReviewQuestions(c *gin.Context) {
	questions, err := s.wrongAnswers.GetReviewQuestions()
	if err != nil {
		log.Printf("Review questions error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review questions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}
