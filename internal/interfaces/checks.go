package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/quotebook/internal/database"
	"github.com/mrlokans/quotebook/internal/database/quotes"
	"github.com/mrlokans/quotebook/internal/exporters"
	"github.com/mrlokans/quotebook/internal/http"
	"github.com/mrlokans/quotebook/internal/scheduler"
	"github.com/mrlokans/quotebook/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// QuoteStore implementations
var _ http.QuoteStore = (*quotes.Repository)(nil)

// QuoteLister implementations
var _ exporters.QuoteLister = (*quotes.Repository)(nil)

// Pinger implementations
var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// Export Pipeline
// =============================================================================

// QuoteExporter implementations
var _ exporters.QuoteExporter = (*exporters.MarkdownExporter)(nil)

// Exporter implementations, shared by the scheduler and the task queue
var _ scheduler.Exporter = (*exporters.StoreMarkdownExporter)(nil)
var _ tasks.Exporter = (*exporters.StoreMarkdownExporter)(nil)

// =============================================================================
// Background Work
// =============================================================================

// TaskQueue implementations
var _ http.TaskQueue = (*tasks.Client)(nil)

// ExportStatus implementations
var _ http.ExportStatus = (*scheduler.ExportScheduler)(nil)
