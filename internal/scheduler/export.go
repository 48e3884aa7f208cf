package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/quotebook/internal/config"
	"github.com/mrlokans/quotebook/internal/exporters"
)

// Exporter runs one markdown export of the collection.
type Exporter interface {
	Run(ctx context.Context, trigger string) (exporters.ExportResult, error)
}

// RunStatus describes the most recent export run.
type RunStatus struct {
	StartedAt time.Time              `json:"started_at"`
	Duration  time.Duration          `json:"duration"`
	Result    exporters.ExportResult `json:"result"`
	Error     string                 `json:"error,omitempty"`
}

// ExportScheduler manages periodic markdown exports of the quote collection
type ExportScheduler struct {
	exporter Exporter
	config   config.Export

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	runMu      sync.Mutex
	isRunning  bool
	ctx        context.Context
	cancelFunc context.CancelFunc
	lastRun    *RunStatus
}

// NewExportScheduler creates a new scheduler instance
func NewExportScheduler(exporter Exporter, cfg config.Export) *ExportScheduler {
	return &ExportScheduler{
		exporter: exporter,
		config:   cfg,
		cron:     cron.New(cron.WithParser(cronParser)),
		ctx:      context.Background(),
	}
}

// Start begins the scheduler if export is enabled
func (s *ExportScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.config.Enabled {
		log.Printf("Export scheduler: disabled")
		return nil
	}

	if s.config.Dir == "" {
		log.Printf("Export scheduler: export directory not configured, skipping")
		return nil
	}

	if err := ValidateCronSchedule(s.config.Schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.config.Schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.config.Schedule, func() {
		s.runExport()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule export job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)
	s.ctx = cancelCtx

	s.cron.Start()
	s.isRunning = true

	nextRun, _ := NextRunAfter(s.config.Schedule, time.Now())
	log.Printf("Export scheduler: started with schedule '%s' (%s). Next run: %v",
		s.config.Schedule,
		GetCronDescription(s.config.Schedule),
		nextRun)

	// Monitor for context cancellation. A restarted scheduler has a new
	// context, so a stale monitor leaves it alone.
	go func() {
		<-cancelCtx.Done()
		s.mu.RLock()
		current := s.ctx == cancelCtx
		s.mu.RUnlock()
		if current {
			s.Stop()
		}
	}()

	return nil
}

// Stop waits for a running export to finish and stops the scheduler
func (s *ExportScheduler) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	entryID := s.entryID
	cancel := s.cancelFunc
	s.cancelFunc = nil
	s.ctx = context.Background()
	s.mu.Unlock()

	// Running jobs take s.mu when they finish, so wait outside the lock.
	<-s.cron.Stop().Done()
	s.cron.Remove(entryID)
	if cancel != nil {
		cancel()
	}

	log.Printf("Export scheduler: stopped")
}

// RunNow triggers an immediate export in the background
func (s *ExportScheduler) RunNow() {
	go s.runExport()
}

// IsRunning returns whether the scheduler is active
func (s *ExportScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next export will occur
func (s *ExportScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

// LastRun returns the status of the most recent export, or nil.
func (s *ExportScheduler) LastRun() *RunStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.lastRun == nil {
		return nil
	}
	status := *s.lastRun
	return &status
}

// runExport performs one export. Overlapping runs are serialised.
func (s *ExportScheduler) runExport() {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	s.mu.RLock()
	ctx := s.ctx
	s.mu.RUnlock()

	log.Printf("Export scheduler: starting export to %s", s.config.Dir)
	status := RunStatus{StartedAt: time.Now()}

	result, err := s.exporter.Run(ctx, exporters.TriggerScheduled)
	status.Duration = time.Since(status.StartedAt)
	status.Result = result
	if err != nil {
		status.Error = err.Error()
		log.Printf("Export scheduler: export failed: %v", err)
	} else {
		log.Printf("Export scheduler: exported %d quotes in %v",
			result.QuotesProcessed, status.Duration.Round(time.Millisecond))
	}

	s.mu.Lock()
	s.lastRun = &status
	s.mu.Unlock()
}
