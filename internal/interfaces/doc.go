// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - QuoteStore: Quote CRUD and favourites (internal/http/quotes.go)
//   - QuoteLister: Read-only listing for exports (internal/exporters/generic.go)
//   - Pinger: Database health check (internal/http/health.go)
//
// ## Export Interfaces
//
//   - QuoteExporter: Render a list of quotes to files (internal/exporters/generic.go)
//   - Exporter: Load and export the whole store (internal/scheduler/export.go, internal/tasks/export_quotes.go)
//
// ## Background Work Interfaces
//
//   - TaskQueue: Enqueue and inspect tasks (internal/http/tasks.go)
//   - ExportStatus: Scheduled export state (internal/http/tasks.go)
//
// # Adding a New Export Format
//
// To write the collection in another format (e.g., JSON):
//
//  1. Implement QuoteExporter in internal/exporters/
//
//     type JSONExporter struct {
//         ExportDir string
//     }
//
//     func (e *JSONExporter) Export(quotes []entities.Quote) (ExportResult, error)
//
//     var _ QuoteExporter = (*JSONExporter)(nil)
//
//  2. Wrap it with a store-backed runner and pass it to the scheduler in entrypoint.go
//
// # Adding a New Background Task
//
//  1. Define the task type and its queue config in internal/tasks/
//
//     type PruneQuotesTask struct{}
//
//     func (t PruneQuotesTask) Config() backlite.QueueConfig
//
//  2. Register the queue with the task client in entrypoint.go
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
