package services

import (
	"context"
	"log"

	"pawsitter/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// SweepService periodically closes expired announcements. The lifecycle
// itself is trigger-agnostic; this is the scheduler that invokes the
// same batch the admin close-expired endpoint runs.
type SweepService struct {
	announcementRepo repositories.AnnouncementRepository
	schedule         string
	cron             *cron.Cron
}

// NewSweepService creates a new sweep service
func NewSweepService(announcementRepo repositories.AnnouncementRepository, schedule string) *SweepService {
	return &SweepService{
		announcementRepo: announcementRepo,
		schedule:         schedule,
		cron:             cron.New(),
	}
}

// Start registers the sweep job and starts the scheduler
func (s *SweepService) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.run); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("🚀 SweepService started [schedule: %s]", s.schedule)
	return nil
}

// Stop stops the scheduler, waiting for a running sweep to finish
func (s *SweepService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 SweepService stopped")
}

func (s *SweepService) run() {
	closed, err := s.announcementRepo.CloseExpiredBefore(context.Background(), startOfToday())
	if err != nil {
		log.Printf("❌ Sweep error: %v", err)
		return
	}
	if closed > 0 {
		log.Printf("✅ Sweep closed %d expired announcements", closed)
	}
}
