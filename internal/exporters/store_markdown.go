package exporters

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/mrlokans/quotebook/internal/database/quotes"
	"github.com/mrlokans/quotebook/internal/metrics"
)

// Export triggers, used as metric labels.
const (
	TriggerManual    = "manual"
	TriggerScheduled = "scheduled"
	TriggerTask      = "task"
)

// StoreMarkdownExporter reads the current collection from the store and
// writes it out as markdown.
type StoreMarkdownExporter struct {
	store            QuoteLister
	markdownExporter *MarkdownExporter
}

func NewStoreMarkdownExporter(store QuoteLister, exportDir string) *StoreMarkdownExporter {
	return &StoreMarkdownExporter{
		store:            store,
		markdownExporter: NewMarkdownExporter(exportDir),
	}
}

// ExportDir returns the directory exports are written to.
func (exporter *StoreMarkdownExporter) ExportDir() string {
	return exporter.markdownExporter.ExportDir
}

// Run exports every stored quote, oldest first within each category.
func (exporter *StoreMarkdownExporter) Run(ctx context.Context, trigger string) (result ExportResult, err error) {
	defer func() { metrics.ObserveExport(trigger, err) }()

	runID := uuid.NewString()
	startTime := time.Now()

	list, err := exporter.store.ListAll(ctx, string(quotes.SortOldest))
	if err != nil {
		return ExportResult{RunID: runID}, fmt.Errorf("failed to load quotes: %w", err)
	}

	result, err = exporter.markdownExporter.Export(list)
	result.RunID = runID
	if err != nil {
		return result, fmt.Errorf("failed to export to markdown: %w", err)
	}

	log.Printf("Export %s (%s) completed: %d quotes in %d categories written to %s in %v",
		runID, trigger, result.QuotesProcessed, result.Categories, result.Dir,
		time.Since(startTime).Round(time.Millisecond))

	return result, nil
}
