package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/quotebook/internal/entities"
	"github.com/mrlokans/quotebook/internal/quotes"
)

func authors(list []entities.Quote) []string {
	out := make([]string, 0, len(list))
	for _, q := range list {
		out = append(out, q.Author)
	}
	return out
}

func TestQuotesController_List(t *testing.T) {
	t.Run("returns seeded quotes newest first", func(t *testing.T) {
		router, _, cleanup := setupSeededRouter(t)
		defer cleanup()

		w := doRequest(router, "GET", "/api/quotes", nil)

		require.Equal(t, http.StatusOK, w.Code)
		response := decode[QuoteListResponse](t, w)
		assert.Equal(t, 4, response.Total)
		assert.Equal(t, []string{"John Lennon", "Walt Disney", "Will Rogers", "Walt Disney"}, authors(response.Quotes))
	})

	t.Run("filters by author search", func(t *testing.T) {
		router, _, cleanup := setupSeededRouter(t)
		defer cleanup()

		w := doRequest(router, "GET", "/api/quotes?q=disney", nil)

		require.Equal(t, http.StatusOK, w.Code)
		response := decode[QuoteListResponse](t, w)
		assert.Equal(t, 2, response.Total)
		for _, q := range response.Quotes {
			assert.Equal(t, "Walt Disney", q.Author)
		}
	})

	t.Run("category without quotes is empty", func(t *testing.T) {
		router, _, cleanup := setupSeededRouter(t)
		defer cleanup()

		w := doRequest(router, "GET", "/api/quotes?category=love", nil)

		require.Equal(t, http.StatusOK, w.Code)
		response := decode[QuoteListResponse](t, w)
		assert.Zero(t, response.Total)
		assert.NotNil(t, response.Quotes)
	})

	t.Run("all category keeps everything", func(t *testing.T) {
		router, _, cleanup := setupSeededRouter(t)
		defer cleanup()

		w := doRequest(router, "GET", "/api/quotes?category=all&sort=author", nil)

		require.Equal(t, http.StatusOK, w.Code)
		response := decode[QuoteListResponse](t, w)
		assert.Equal(t, []string{"John Lennon", "Walt Disney", "Walt Disney", "Will Rogers"}, authors(response.Quotes))
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		router, _, cleanup := setupSeededRouter(t)
		defer cleanup()

		w := doRequest(router, "GET", "/api/quotes?category=sports", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		response := decode[ErrorResponse](t, w)
		assert.Equal(t, CodeValidation, response.Code)
	})

	t.Run("rejects unknown sort", func(t *testing.T) {
		router, _, cleanup := setupSeededRouter(t)
		defer cleanup()

		w := doRequest(router, "GET", "/api/quotes?sort=text", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "sort")
	})
}

func TestQuotesController_Stats(t *testing.T) {
	router, _, cleanup := setupSeededRouter(t)
	defer cleanup()

	w := doRequest(router, "GET", "/api/quotes/stats", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, quotes.Stats{Total: 4, Favorites: 0, Authors: 3, Categories: 3}, decode[quotes.Stats](t, w))
}

func TestQuotesController_Get(t *testing.T) {
	router, _, cleanup := setupSeededRouter(t)
	defer cleanup()

	t.Run("returns quote", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/quotes/2", nil)

		require.Equal(t, http.StatusOK, w.Code)
		quote := decode[entities.Quote](t, w)
		assert.Equal(t, "Will Rogers", quote.Author)
		assert.Equal(t, entities.BackgroundColorGreen, quote.BackgroundColor)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/quotes/999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id is 400", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/quotes/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestQuotesController_Create(t *testing.T) {
	t.Run("creates with defaults", func(t *testing.T) {
		router, repo, cleanup := setupSeededRouter(t)
		defer cleanup()

		w := doRequest(router, "POST", "/api/quotes", map[string]any{
			"text":   "  Simplicity is the ultimate sophistication. ",
			"author": "Leonardo da Vinci",
		})

		require.Equal(t, http.StatusCreated, w.Code)
		quote := decode[entities.Quote](t, w)
		assert.Equal(t, uint(5), quote.ID)
		assert.Equal(t, "Simplicity is the ultimate sophistication.", quote.Text)
		assert.Equal(t, entities.CategoryInspiration, quote.Category)
		assert.Equal(t, entities.BackgroundColorBlue, quote.BackgroundColor)
		assert.False(t, quote.IsFavorite)

		count, err := repo.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(5), count)
	})

	t.Run("unknown category falls back to default", func(t *testing.T) {
		router, _, cleanup := setupSeededRouter(t)
		defer cleanup()

		w := doRequest(router, "POST", "/api/quotes", map[string]any{
			"text":             "Text",
			"author":           "Author",
			"category":         "sports",
			"background_color": "pink",
			"is_favorite":      true,
		})

		require.Equal(t, http.StatusCreated, w.Code)
		quote := decode[entities.Quote](t, w)
		assert.Equal(t, entities.CategoryInspiration, quote.Category)
		assert.Equal(t, entities.BackgroundColorPink, quote.BackgroundColor)
		assert.True(t, quote.IsFavorite)
	})

	tests := []struct {
		name  string
		body  any
		field string
	}{
		{"missing text", map[string]any{"author": "Someone"}, "text"},
		{"blank text", map[string]any{"text": "   ", "author": "Someone"}, "text"},
		{"blank author", map[string]any{"text": "Something", "author": "\t"}, "author"},
		{"malformed json", `{"text": `, "body"},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			router, repo, cleanup := setupSeededRouter(t)
			defer cleanup()

			w := doRequest(router, "POST", "/api/quotes", tt.body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"field":"`+tt.field+`"`)

			count, err := repo.Count(context.Background())
			require.NoError(t, err)
			assert.Equal(t, int64(4), count)
		})
	}
}

func TestQuotesController_Update(t *testing.T) {
	t.Run("partial update keeps other fields", func(t *testing.T) {
		router, _, cleanup := setupSeededRouter(t)
		defer cleanup()

		w := doRequest(router, "PATCH", "/api/quotes/4", map[string]any{"category": "wisdom"})

		require.Equal(t, http.StatusOK, w.Code)
		quote := decode[entities.Quote](t, w)
		assert.Equal(t, entities.CategoryWisdom, quote.Category)
		assert.Equal(t, "John Lennon", quote.Author)
		assert.Equal(t, entities.BackgroundColorOrange, quote.BackgroundColor)
	})

	t.Run("blank text is rejected", func(t *testing.T) {
		router, repo, cleanup := setupSeededRouter(t)
		defer cleanup()

		w := doRequest(router, "PATCH", "/api/quotes/1", map[string]any{"text": " "})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		quote, err := repo.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "The best way to get started is to quit talking and begin doing.", quote.Text)
	})

	t.Run("empty text is rejected by the store", func(t *testing.T) {
		router, _, cleanup := setupSeededRouter(t)
		defer cleanup()

		w := doRequest(router, "PATCH", "/api/quotes/1", map[string]any{"text": ""})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"field":"text"`)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		router, _, cleanup := setupSeededRouter(t)
		defer cleanup()

		w := doRequest(router, "PATCH", "/api/quotes/999", map[string]any{"is_favorite": true})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestQuotesController_Delete(t *testing.T) {
	router, repo, cleanup := setupSeededRouter(t)
	defer cleanup()

	w := doRequest(router, "DELETE", "/api/quotes/3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, err := repo.Get(context.Background(), 3)
	assert.True(t, entities.IsNotFound(err))

	w = doRequest(router, "DELETE", "/api/quotes/3", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestQuotesController_Share(t *testing.T) {
	router, _, cleanup := setupSeededRouter(t)
	defer cleanup()

	w := doRequest(router, "GET", "/api/quotes/2/share", nil)

	require.Equal(t, http.StatusOK, w.Code)
	response := decode[ShareResponse](t, w)
	assert.Equal(t, uint(2), response.ID)
	assert.Equal(t, `"Don't let yesterday take up too much of today." - Will Rogers`, response.Text)
}

func TestQuotesController_Options(t *testing.T) {
	router, _, cleanup := setupSeededRouter(t)
	defer cleanup()

	w := doRequest(router, "GET", "/api/options", nil)

	require.Equal(t, http.StatusOK, w.Code)
	response := decode[OptionsResponse](t, w)
	assert.Len(t, response.Categories, 8)
	assert.Equal(t, CategoryOption{Value: entities.CategoryInspiration, Label: "Inspiration"}, response.Categories[0])
	assert.Len(t, response.Colors, 6)
	assert.Equal(t, "#60A5FA", response.Colors[0].From)
	assert.Equal(t, entities.DefaultCategory, response.DefaultCategory)
	assert.Equal(t, entities.DefaultBackgroundColor, response.DefaultBackgroundColor)
	assert.NotEmpty(t, response.SortOrders)
}
