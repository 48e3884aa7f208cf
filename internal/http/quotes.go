package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	dbquotes "github.com/mrlokans/quotebook/internal/database/quotes"
	"github.com/mrlokans/quotebook/internal/entities"
	"github.com/mrlokans/quotebook/internal/quotes"
)

// QuoteStore defines the quote persistence operations used by the API.
type QuoteStore interface {
	ListAll(ctx context.Context, sortOrder string) ([]entities.Quote, error)
	ListFavorites(ctx context.Context) ([]entities.Quote, error)
	Get(ctx context.Context, id uint) (*entities.Quote, error)
	Create(ctx context.Context, input entities.QuoteInput) (*entities.Quote, error)
	Update(ctx context.Context, id uint, update entities.QuoteUpdate) (*entities.Quote, error)
	SetFavorite(ctx context.Context, id uint, isFavorite bool) (*entities.Quote, error)
	Delete(ctx context.Context, id uint) error
}

type QuotesController struct {
	store QuoteStore
}

func NewQuotesController(store QuoteStore) *QuotesController {
	return &QuotesController{store: store}
}

// ListQuotesQuery holds the query parameters for listing quotes.
type ListQuotesQuery struct {
	Query    string `form:"q"`
	Category string `form:"category" binding:"omitempty,categoryfilter"`
	Sort     string `form:"sort" binding:"omitempty,sortorder"`
}

// CreateQuoteRequest is the body of POST /api/quotes. Unknown category or
// background values fall back to the defaults.
type CreateQuoteRequest struct {
	Text            string `json:"text" binding:"required,notblank"`
	Author          string `json:"author" binding:"required,notblank"`
	Category        string `json:"category"`
	BackgroundColor string `json:"background_color"`
	IsFavorite      bool   `json:"is_favorite"`
}

// UpdateQuoteRequest is the body of PATCH /api/quotes/:id. Absent fields
// keep their stored values.
type UpdateQuoteRequest struct {
	Text            *string `json:"text" binding:"omitempty,notblank"`
	Author          *string `json:"author" binding:"omitempty,notblank"`
	Category        *string `json:"category"`
	BackgroundColor *string `json:"background_color"`
	IsFavorite      *bool   `json:"is_favorite"`
}

// QuoteListResponse wraps a list of quotes.
type QuoteListResponse struct {
	Quotes []entities.Quote `json:"quotes"`
	Total  int              `json:"total"`
}

// ShareResponse carries the share text for a quote.
type ShareResponse struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

// CategoryOption describes a category for pickers.
type CategoryOption struct {
	Value entities.Category `json:"value"`
	Label string            `json:"label"`
}

// OptionsResponse lists the values accepted by create and update.
type OptionsResponse struct {
	Categories             []CategoryOption         `json:"categories"`
	Colors                 []entities.ColorOption   `json:"colors"`
	SortOrders             []dbquotes.SortOrder     `json:"sort_orders"`
	DefaultCategory        entities.Category        `json:"default_category"`
	DefaultBackgroundColor entities.BackgroundColor `json:"default_background_color"`
}

// List returns quotes matching the search text and category.
// GET /api/quotes?q=&category=&sort=
func (qc *QuotesController) List(c *gin.Context) {
	var query ListQuotesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondValidation(c, bindingErrorFields(err))
		return
	}

	all, err := qc.store.ListAll(c.Request.Context(), query.Sort)
	if err != nil {
		respondStoreError(c, err, "list quotes")
		return
	}

	filtered := quotes.Filter(all, quotes.Criteria{Query: query.Query, Category: query.Category})
	c.JSON(http.StatusOK, QuoteListResponse{Quotes: filtered, Total: len(filtered)})
}

// Stats returns collection statistics.
// GET /api/quotes/stats
func (qc *QuotesController) Stats(c *gin.Context) {
	all, err := qc.store.ListAll(c.Request.Context(), "")
	if err != nil {
		respondStoreError(c, err, "quote stats")
		return
	}
	c.JSON(http.StatusOK, quotes.Summarize(all))
}

// Get returns a single quote.
// GET /api/quotes/:id
func (qc *QuotesController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	quote, err := qc.store.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "get quote")
		return
	}
	c.JSON(http.StatusOK, quote)
}

// Create stores a new quote.
// POST /api/quotes
func (qc *QuotesController) Create(c *gin.Context) {
	var req CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, bindingErrorFields(err))
		return
	}

	quote, err := qc.store.Create(c.Request.Context(), entities.QuoteInput{
		Text:            req.Text,
		Author:          req.Author,
		Category:        req.Category,
		BackgroundColor: req.BackgroundColor,
		IsFavorite:      req.IsFavorite,
	})
	if err != nil {
		respondStoreError(c, err, "create quote")
		return
	}
	respondCreated(c, quote)
}

// Update applies a partial update.
// PATCH /api/quotes/:id
func (qc *QuotesController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, bindingErrorFields(err))
		return
	}

	quote, err := qc.store.Update(c.Request.Context(), id, entities.QuoteUpdate{
		Text:            req.Text,
		Author:          req.Author,
		Category:        req.Category,
		BackgroundColor: req.BackgroundColor,
		IsFavorite:      req.IsFavorite,
	})
	if err != nil {
		respondStoreError(c, err, "update quote")
		return
	}
	c.JSON(http.StatusOK, quote)
}

// Delete permanently removes a quote.
// DELETE /api/quotes/:id
func (qc *QuotesController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := qc.store.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "delete quote")
		return
	}
	respondSuccess(c, "quote deleted")
}

// Share returns the text handed to share targets.
// GET /api/quotes/:id/share
func (qc *QuotesController) Share(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	quote, err := qc.store.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "share quote")
		return
	}
	c.JSON(http.StatusOK, ShareResponse{ID: quote.ID, Text: quote.ShareText()})
}

// Options lists categories, colours and sort orders.
// GET /api/options
func (qc *QuotesController) Options(c *gin.Context) {
	categories := make([]CategoryOption, 0, len(entities.Categories))
	for _, category := range entities.Categories {
		categories = append(categories, CategoryOption{Value: category, Label: category.Label()})
	}

	c.JSON(http.StatusOK, OptionsResponse{
		Categories:             categories,
		Colors:                 entities.Palette,
		SortOrders:             dbquotes.SortOrders,
		DefaultCategory:        entities.DefaultCategory,
		DefaultBackgroundColor: entities.DefaultBackgroundColor,
	})
}
