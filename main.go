package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/example/physquest/internal/database"
	"github.com/example/physquest/internal/scheduler"
	"github.com/example/physquest/internal/server"
)

func main() {
	// .env is optional; real deployments set the environment directly
	godotenv.Load()

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	cfg := server.FromEnv()
	srv := server.New(cfg)
	r := srv.SetupRouter()

	if os.Getenv("ENABLE_SCHEDULER") != "false" {
		sched := scheduler.New()
		sched.Start()
		defer sched.Stop()
	}

	// Close the store handle on interrupt. In-flight requests are not
	// drained.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v", sig)
		if err := database.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
		log.Println("Database closed. Server shutting down.")
		os.Exit(0)
	}()

	if !srv.AIEnabled() {
		log.Println("No OpenAI API key found. Using fallback content.")
	}
	log.Printf("Physics game server running at http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
