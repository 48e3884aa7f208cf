package http

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Store    QuoteStore
	Database Pinger

	// Background work. Nil disables the task endpoints.
	TaskQueue    TaskQueue
	ExportStatus ExportStatus

	// Expose prometheus metrics on /metrics
	MetricsEnabled bool

	// Application info
	Version string
}
