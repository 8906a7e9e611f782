package scheduler

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"easypark/internal/config"
	"easypark/internal/service"
)

// autoCloseTimeout bounds one auto-close sweep across all businesses.
const autoCloseTimeout = 2 * time.Minute

// Scheduler runs the periodic auto-close job: any business day still
// open past the configured closing time is closed, carrying inside
// vehicles over as debts.
type Scheduler struct {
	cron            *cron.Cron
	operations      *service.OperationsService
	settingsService *service.SettingsService
}

// New creates a scheduler with the auto-close job registered.
func New(cfg config.SchedulerConfig, operations *service.OperationsService, settingsService *service.SettingsService) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(time.Local),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron:            c,
		operations:      operations,
		settingsService: settingsService,
	}

	if _, err := c.AddFunc(cfg.AutoCloseSpec, s.runAutoClose); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Println("Scheduler started")
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("Scheduler stopped")
}

func (s *Scheduler) runAutoClose() {
	ctx, cancel := context.WithTimeout(context.Background(), autoCloseTimeout)
	defer cancel()

	days, err := s.operations.ListOpenDays(ctx)
	if err != nil {
		log.Printf("auto-close: listing open days failed: %v", err)
		return
	}

	now := time.Now()
	for _, day := range days {
		settings, err := s.settingsService.Get(ctx, day.BusinessID)
		if err != nil {
			log.Printf("auto-close: settings lookup failed for business %s: %v", day.BusinessID, err)
			continue
		}

		if !pastClosingTime(day.Date, settings.ClosingTime, now) {
			continue
		}

		_, err = s.operations.CloseDay(ctx, day.BusinessID, day.InitialCash, "auto-closed at closing time")
		if err != nil {
			// Another transition may hold the lock; the next sweep retries.
			if errors.Is(err, service.ErrOperationLocked) || errors.Is(err, service.ErrOperationNotOpen) {
				continue
			}
			log.Printf("auto-close: closing day for business %s failed: %v", day.BusinessID, err)
			continue
		}

		log.Printf("auto-close: closed day %s for business %s", day.Date, day.BusinessID)
	}
}

// pastClosingTime reports whether now is past the closing time of the
// given operation date. Days left open across midnight are always past
// closing.
func pastClosingTime(date, closing string, now time.Time) bool {
	closeAt, err := time.ParseInLocation("2006-01-02 15:04", date+" "+closing, now.Location())
	if err != nil {
		return false
	}
	return now.After(closeAt)
}
