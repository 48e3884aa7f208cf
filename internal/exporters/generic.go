package exporters

import (
	"context"

	"github.com/mrlokans/quotebook/internal/entities"
)

type QuoteExporter interface {
	Export(quotes []entities.Quote) (ExportResult, error)
}

// QuoteLister is the read side of the quote store used by exports.
type QuoteLister interface {
	ListAll(ctx context.Context, sortOrder string) ([]entities.Quote, error)
}

type ExportResult struct {
	RunID           string `json:"run_id,omitempty"`
	Dir             string `json:"dir"`
	QuotesProcessed int    `json:"quotes_processed"`
	FilesWritten    int    `json:"files_written"`
	Categories      int    `json:"categories"`
}
