package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"gorm.io/gorm/logger"

	"github.com/mrlokans/quotebook/internal/database"
	"github.com/mrlokans/quotebook/internal/database/quotes"
)

// openStore opens the database at dbPath and returns a ready repository.
// The caller must Close the database.
func openStore(ctx context.Context, dbPath string, verbose bool) (*database.Database, *quotes.Repository, error) {
	logLevel := logger.Silent
	if verbose {
		logLevel = logger.Info
	}

	db, err := database.Open(dbPath, logLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	repo := quotes.NewRepository(db.DB)
	if err := repo.Initialize(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return db, repo, nil
}

func outOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
