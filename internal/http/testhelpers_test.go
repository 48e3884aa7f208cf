package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/quotebook/internal/database"
	dbquotes "github.com/mrlokans/quotebook/internal/database/quotes"
)

func setupQuotesTestDB(t *testing.T) (*database.Database, *dbquotes.Repository, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(filepath.Join(t.TempDir(), "test_quotes.db"), logger.Silent)
	require.NoError(t, err)

	repo := dbquotes.NewRepository(db.DB)
	require.NoError(t, repo.Initialize(context.Background()))
	cleanup := func() {
		db.Close()
	}
	return db, repo, cleanup
}

func setupSeededRouter(t *testing.T) (*gin.Engine, *dbquotes.Repository, func()) {
	t.Helper()
	db, repo, cleanup := setupQuotesTestDB(t)

	_, err := repo.SeedIfEmpty(context.Background())
	require.NoError(t, err)

	router := NewRouter(RouterConfig{Store: repo, Database: db, Version: "test"})
	return router, repo, cleanup
}

func doRequest(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}

	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func doRequestWithHeader(router http.Handler, method, path, header, value string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, nil)
	req.Header.Set(header, value)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
