package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/physquest/internal/database"
)

// Scheduler runs periodic background tasks for the application. The only
// task today is an hourly snapshot of store sizes, logged for operators;
// it never writes to the store.
type Scheduler struct {
	scheduler *gocron.Scheduler
}

// New creates a new scheduler instance
func New() *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Hour().Do(s.snapshotStats)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// snapshotStats logs the current row counts of the three tables
func (s *Scheduler) snapshotStats() {
	submissions, err := database.NewSubmissionRepository().Count()
	if err != nil {
		log.Printf("Error counting submissions: %v", err)
		return
	}
	progress, err := database.NewProgressRepository().Count()
	if err != nil {
		log.Printf("Error counting progress records: %v", err)
		return
	}
	wrongAnswers, err := database.NewWrongAnswerRepository().Count()
	if err != nil {
		log.Printf("Error counting wrong answers: %v", err)
		return
	}

	log.Printf("Store stats: submissions=%d progress=%d wrong_answers=%d",
		submissions, progress, wrongAnswers)
}
