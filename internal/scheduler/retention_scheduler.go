package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/okiroth/gallery_backend/internal/application"
)

// RetentionScheduler purges old contact and report messages once a day.
type RetentionScheduler struct {
	contacts *application.ContactService
	maxAge   time.Duration
	ticker   *time.Ticker
}

func NewRetentionScheduler(contacts *application.ContactService, maxAge time.Duration) *RetentionScheduler {
	return &RetentionScheduler{
		contacts: contacts,
		maxAge:   maxAge,
	}
}

// Start runs one purge immediately, then schedules a daily run shortly
// after midnight.
func (s *RetentionScheduler) Start() {
	log.Printf("retention scheduler started, purging messages older than %v", s.maxAge)

	s.Purge()

	now := time.Now()
	nextRun := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 1, 0, 0, now.Location())

	time.AfterFunc(time.Until(nextRun), func() {
		s.Purge()

		s.ticker = time.NewTicker(24 * time.Hour)
		go func() {
			for range s.ticker.C {
				s.Purge()
			}
		}()
	})
}

func (s *RetentionScheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
		log.Println("retention scheduler stopped")
	}
}

func (s *RetentionScheduler) Purge() {
	n, err := s.contacts.PurgeOlderThan(context.Background(), s.maxAge)
	if err != nil {
		log.Printf("retention: purge failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("retention: purged %d old messages", n)
	}
}
