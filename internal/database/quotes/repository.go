// Package quotes provides database operations for the quote collection.
//
// This package implements the QuoteStore interface defined in internal/http/quotes.go.
//
// # Interface Implementation
//
//	var _ http.QuoteStore = (*Repository)(nil)
//
// # Usage
//
//	repo := quotes.NewRepository(db)
//	if err := repo.Initialize(ctx); err != nil {
//		return err
//	}
//	quote, err := repo.Create(ctx, entities.QuoteInput{Text: "Act now.", Author: "A. Author"})
//
// # Concurrency
//
// Writes are serialised by a per-repository lock and run inside a
// transaction, so a failed Update or SeedIfEmpty leaves no partial rows.
// Reads share the lock and may run concurrently with each other.
package quotes

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/quotebook/internal/entities"
	"github.com/mrlokans/quotebook/internal/metrics"
)

const entityName = "quote"

// Repository handles all quote database operations.
type Repository struct {
	db  *gorm.DB
	mu  sync.RWMutex
	now func() time.Time
}

// NewRepository creates a new quotes repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// Initialize ensures the quotes table exists. Idempotent.
func (r *Repository) Initialize(ctx context.Context) (err error) {
	defer func(start time.Time) { metrics.ObserveStoreOp("initialize", start, err) }(time.Now())

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.db.WithContext(ctx).AutoMigrate(&entities.Quote{}); err != nil {
		return entities.NewStorageError("initialize", err)
	}
	return nil
}

// SeedIfEmpty inserts the starter quotes when the table has no rows.
// The emptiness check and inserts share one transaction under the write
// lock, so repeated calls never produce a second seed set.
// Returns the number of quotes inserted.
func (r *Repository) SeedIfEmpty(ctx context.Context) (inserted int, err error) {
	defer func(start time.Time) { metrics.ObserveStoreOp("seed", start, err) }(time.Now())

	r.mu.Lock()
	defer r.mu.Unlock()

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.Quote{}).Count(&count).Error; err != nil {
			return entities.NewStorageError("count quotes", err)
		}
		if count > 0 {
			return nil
		}

		for _, input := range SeedQuotes {
			quote, err := newQuote(input, r.now())
			if err != nil {
				return err
			}
			if err := tx.Create(quote).Error; err != nil {
				return entities.NewStorageError("seed quote", err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, wrapStorage("seed quotes", err)
	}

	if inserted > 0 {
		log.Printf("Seeded %d starter quotes", inserted)
	}
	return inserted, nil
}

// ListAll returns every quote in the given order. An empty order means
// newest first. The returned slice is never nil and is owned by the caller.
func (r *Repository) ListAll(ctx context.Context, sortOrder string) (quotes []entities.Quote, err error) {
	defer func(start time.Time) { metrics.ObserveStoreOp("list", start, err) }(time.Now())

	order, err := ParseSortOrder(sortOrder)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	quotes = make([]entities.Quote, 0)
	if err := r.db.WithContext(ctx).Order(order.Clause()).Find(&quotes).Error; err != nil {
		return nil, entities.NewStorageError("list quotes", err)
	}
	return quotes, nil
}

// ListFavorites returns favourite quotes, newest first. Always read from
// the table so it reflects the latest committed state.
func (r *Repository) ListFavorites(ctx context.Context) (quotes []entities.Quote, err error) {
	defer func(start time.Time) { metrics.ObserveStoreOp("list_favorites", start, err) }(time.Now())

	r.mu.RLock()
	defer r.mu.RUnlock()

	quotes = make([]entities.Quote, 0)
	err = r.db.WithContext(ctx).
		Where("is_favorite = ?", true).
		Order(SortNewest.Clause()).
		Find(&quotes).Error
	if err != nil {
		return nil, entities.NewStorageError("list favourite quotes", err)
	}
	return quotes, nil
}

// Get retrieves a single quote by ID.
func (r *Repository) Get(ctx context.Context, id uint) (quote *entities.Quote, err error) {
	defer func(start time.Time) { metrics.ObserveStoreOp("get", start, err) }(time.Now())

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.find(r.db.WithContext(ctx), id)
}

// Count returns the total number of stored quotes.
func (r *Repository) Count(ctx context.Context) (count int64, err error) {
	defer func(start time.Time) { metrics.ObserveStoreOp("count", start, err) }(time.Now())

	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := r.db.WithContext(ctx).Model(&entities.Quote{}).Count(&count).Error; err != nil {
		return 0, entities.NewStorageError("count quotes", err)
	}
	return count, nil
}

// Create validates and stores a new quote, returning it with its assigned
// ID and timestamps. Blank text or author is rejected before any write.
func (r *Repository) Create(ctx context.Context, input entities.QuoteInput) (quote *entities.Quote, err error) {
	defer func(start time.Time) { metrics.ObserveStoreOp("create", start, err) }(time.Now())

	quote, err = newQuote(input, r.now())
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.db.WithContext(ctx).Create(quote).Error; err != nil {
		return nil, entities.NewStorageError("create quote", err)
	}
	return quote, nil
}

// Update applies a partial update and returns the merged quote. ID and
// CreatedAt never change. On any error the stored row is left untouched.
func (r *Repository) Update(ctx context.Context, id uint, update entities.QuoteUpdate) (quote *entities.Quote, err error) {
	defer func(start time.Time) { metrics.ObserveStoreOp("update", start, err) }(time.Now())

	r.mu.Lock()
	defer r.mu.Unlock()

	var merged entities.Quote
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := r.find(tx, id)
		if err != nil {
			return err
		}

		if update.IsEmpty() {
			merged = *current
			return nil
		}

		merged, err = applyUpdate(*current, update, r.now())
		if err != nil {
			return err
		}

		err = tx.Model(&entities.Quote{}).Where("id = ?", id).Updates(map[string]any{
			"text":             merged.Text,
			"author":           merged.Author,
			"category":         merged.Category,
			"background_color": merged.BackgroundColor,
			"is_favorite":      merged.IsFavorite,
			"updated_at":       merged.UpdatedAt,
		}).Error
		if err != nil {
			return entities.NewStorageError("update quote", err)
		}
		return nil
	})
	if err != nil {
		return nil, wrapStorage("update quote", err)
	}
	return &merged, nil
}

// SetFavorite marks or unmarks a quote as favourite.
func (r *Repository) SetFavorite(ctx context.Context, id uint, isFavorite bool) (*entities.Quote, error) {
	return r.Update(ctx, id, entities.QuoteUpdate{IsFavorite: &isFavorite})
}

// Delete permanently removes a quote. Deleting an unknown ID is an error.
func (r *Repository) Delete(ctx context.Context, id uint) (err error) {
	defer func(start time.Time) { metrics.ObserveStoreOp("delete", start, err) }(time.Now())

	r.mu.Lock()
	defer r.mu.Unlock()

	result := r.db.WithContext(ctx).Delete(&entities.Quote{}, id)
	if result.Error != nil {
		return entities.NewStorageError("delete quote", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.NewNotFoundError(entityName, id)
	}
	return nil
}

func (r *Repository) find(db *gorm.DB, id uint) (*entities.Quote, error) {
	var quote entities.Quote
	err := db.First(&quote, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.NewNotFoundError(entityName, id)
	}
	if err != nil {
		return nil, entities.NewStorageError("get quote", err)
	}
	return &quote, nil
}

// newQuote normalises input into a quote ready for insertion.
func newQuote(input entities.QuoteInput, now time.Time) (*entities.Quote, error) {
	text, err := requireText("text", input.Text)
	if err != nil {
		return nil, err
	}
	author, err := requireText("author", input.Author)
	if err != nil {
		return nil, err
	}

	now = now.UTC()
	return &entities.Quote{
		Text:            text,
		Author:          author,
		Category:        entities.ParseCategory(input.Category),
		BackgroundColor: entities.ParseBackgroundColor(input.BackgroundColor),
		IsFavorite:      input.IsFavorite,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// applyUpdate merges update into current without touching the database.
func applyUpdate(current entities.Quote, update entities.QuoteUpdate, now time.Time) (entities.Quote, error) {
	merged := current

	if update.Text != nil {
		text, err := requireText("text", *update.Text)
		if err != nil {
			return current, err
		}
		merged.Text = text
	}
	if update.Author != nil {
		author, err := requireText("author", *update.Author)
		if err != nil {
			return current, err
		}
		merged.Author = author
	}
	if update.Category != nil {
		merged.Category = entities.ParseCategory(*update.Category)
	}
	if update.BackgroundColor != nil {
		merged.BackgroundColor = entities.ParseBackgroundColor(*update.BackgroundColor)
	}
	if update.IsFavorite != nil {
		merged.IsFavorite = *update.IsFavorite
	}

	merged.UpdatedAt = now.UTC()
	return merged, nil
}

func requireText(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", entities.NewValidationError(field, "must not be blank")
	}
	return trimmed, nil
}

// wrapStorage passes typed errors through and wraps anything else
// (e.g. a failed commit) as a StorageError.
func wrapStorage(op string, err error) error {
	if entities.IsValidation(err) || entities.IsNotFound(err) || entities.IsStorage(err) {
		return err
	}
	return entities.NewStorageError(op, err)
}
