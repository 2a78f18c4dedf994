package server

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/example/physquest/internal/ai"
	"github.com/example/physquest/internal/database"
)

// maxUploadSize is the upload limit for PDFs (10MB)
const maxUploadSize = 10 * 1024 * 1024

// Server holds the request handlers' dependencies
type Server struct {
	cfg          *Config
	ai           *ai.Client // nil when no API key is configured
	submissions  *database.SubmissionRepository
	progress     *database.ProgressRepository
	wrongAnswers *database.WrongAnswerRepository
}

// New creates the server. The AI client is constructed here, once, iff an
// API key is present; everything downstream branches on that.
func New(cfg *Config) *Server {
	s := &Server{
		cfg:          cfg,
		submissions:  database.NewSubmissionRepository(),
		progress:     database.NewProgressRepository(),
		wrongAnswers: database.NewWrongAnswerRepository(),
	}
	if cfg.OpenAIKey != "" {
		s.ai = ai.New(cfg.OpenAIKey)
	}
	os.MkdirAll(cfg.UploadsDir, 0o755)
	return s
}

// AIEnabled reports whether the external generation service is configured
func (s *Server) AIEnabled() bool {
	return s.ai != nil
}

// SetupRouter builds the route table
func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = maxUploadSize

	r.LoadHTMLGlob(s.cfg.TemplatesGlob)
	r.Static("/public", s.cfg.PublicDir)
	r.Static("/uploads", s.cfg.UploadsDir)

	r.GET("/", s.Home)

	r.POST("/ai-explain", s.AIExplain)
	r.POST("/generate-flashcards", s.GenerateFlashcards)
	r.POST("/ask-question", s.AskQuestion)

	r.POST("/upload", s.Upload)
	r.POST("/submit", s.Submit)
	r.GET("/submissions", s.Submissions)
	r.GET("/submissions/export", s.ExportSubmissions)

	r.POST("/save-progress", s.SaveProgress)
	r.GET("/leaderboard", s.Leaderboard)
	r.POST("/track-wrong-answer", s.TrackWrongAnswer)
	r.GET("/review-questions", s.ReviewQuestions)

	return r
}
