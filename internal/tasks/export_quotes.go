package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/quotebook/internal/exporters"
)

// ExportQuotesQueue is the queue name for markdown export tasks.
const ExportQuotesQueue = "export_quotes"

// Exporter runs one markdown export of the collection.
type Exporter interface {
	Run(ctx context.Context, trigger string) (exporters.ExportResult, error)
}

// ExportQuotesTask writes the whole collection to the export directory.
type ExportQuotesTask struct {
	// RequestID correlates the task with the HTTP request that queued it
	RequestID string `json:"request_id,omitempty"`
}

// Config returns the queue configuration for export tasks.
func (t ExportQuotesTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        ExportQuotesQueue,
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     5 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// ExportQuotesProcessor creates a processor function for ExportQuotesTask.
func ExportQuotesProcessor(exporter Exporter) backlite.QueueProcessor[ExportQuotesTask] {
	return func(ctx context.Context, task ExportQuotesTask) error {
		if exporter == nil {
			return fmt.Errorf("exporter not configured")
		}

		start := time.Now()
		result, err := exporter.Run(ctx, exporters.TriggerTask)
		if err != nil {
			return fmt.Errorf("export quotes: %w", err)
		}

		log.Printf("[TASK] Export %s complete (request %s): %d quotes, %d files in %v",
			result.RunID, task.RequestID, result.QuotesProcessed, result.FilesWritten,
			time.Since(start).Round(time.Millisecond))
		return nil
	}
}

// NewExportQuotesQueue creates a backlite queue for export tasks.
func NewExportQuotesQueue(exporter Exporter) backlite.Queue {
	return backlite.NewQueue(ExportQuotesProcessor(exporter))
}
