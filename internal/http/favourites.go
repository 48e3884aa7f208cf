package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/quotebook/internal/quotes"
)

type FavouritesController struct {
	store QuoteStore
}

func NewFavouritesController(store QuoteStore) *FavouritesController {
	return &FavouritesController{store: store}
}

// ListFavourites returns favourite quotes, newest first, optionally
// narrowed by a search query.
// GET /api/quotes/favourites?q=
func (fc *FavouritesController) ListFavourites(c *gin.Context) {
	favourites, err := fc.store.ListFavorites(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "list favourites")
		return
	}

	filtered := quotes.Filter(favourites, quotes.Criteria{Query: c.Query("q")})
	c.JSON(http.StatusOK, QuoteListResponse{Quotes: filtered, Total: len(filtered)})
}

// AddFavourite marks a quote as favourite.
// POST /api/quotes/:id/favourite
func (fc *FavouritesController) AddFavourite(c *gin.Context) {
	fc.setFavourite(c, true)
}

// RemoveFavourite removes a quote from favourites.
// DELETE /api/quotes/:id/favourite
func (fc *FavouritesController) RemoveFavourite(c *gin.Context) {
	fc.setFavourite(c, false)
}

func (fc *FavouritesController) setFavourite(c *gin.Context, isFavourite bool) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	quote, err := fc.store.SetFavorite(c.Request.Context(), id, isFavourite)
	if err != nil {
		respondStoreError(c, err, "set favourite")
		return
	}

	message := "favourite added"
	if !isFavourite {
		message = "favourite removed"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "quote": quote})
}
