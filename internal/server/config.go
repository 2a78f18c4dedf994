package server

import "os"

// Config carries everything the server needs, resolved once at startup.
// OpenAIKey decides the AI-vs-fallback mode for the whole process: handlers
// never re-check the environment per request.
type Config struct {
	Port          string
	OpenAIKey     string
	UploadsDir    string
	PublicDir     string
	TemplatesGlob string
}

// FromEnv builds the configuration from process environment variables
func FromEnv() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "uploads"
	}

	return &Config{
		Port:          port,
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		UploadsDir:    uploadsDir,
		PublicDir:     "public",
		TemplatesGlob: "web/templates/*.html",
	}
}
