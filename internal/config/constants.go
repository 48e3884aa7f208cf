package config

const (
	// DefaultDatabasePath is the default path for the quote database
	DefaultDatabasePath = "./quotebook.db"

	// DefaultExportDir is where markdown exports are written unless EXPORT_DIR is set
	DefaultExportDir = "./export"
)
