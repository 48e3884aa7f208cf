package quotes

import (
	"strings"

	"github.com/mrlokans/quotebook/internal/entities"
)

// SortOrder names a listing order. A leading "-" means descending.
type SortOrder string

const (
	SortNewest     SortOrder = "-created_at"
	SortOldest     SortOrder = "created_at"
	SortAuthor     SortOrder = "author"
	SortAuthorDesc SortOrder = "-author"
	SortID         SortOrder = "id"
	SortIDDesc     SortOrder = "-id"

	DefaultSortOrder = SortNewest
)

// SortOrders lists every supported order, default first.
var SortOrders = []SortOrder{SortNewest, SortOldest, SortAuthor, SortAuthorDesc, SortID, SortIDDesc}

var sortOrders = map[SortOrder]string{
	SortNewest:     "created_at DESC, id DESC",
	SortOldest:     "created_at ASC, id ASC",
	SortAuthor:     "author ASC, id ASC",
	SortAuthorDesc: "author DESC, id DESC",
	SortID:         "id ASC",
	SortIDDesc:     "id DESC",
}

// ParseSortOrder validates s. Empty input selects DefaultSortOrder.
func ParseSortOrder(s string) (SortOrder, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultSortOrder, nil
	}
	order := SortOrder(s)
	if _, ok := sortOrders[order]; !ok {
		return "", entities.NewValidationError("sort", "unsupported sort order "+s)
	}
	return order, nil
}

// Clause returns the ORDER BY expression. IDs break timestamp ties so
// rows created in the same instant keep insertion order.
func (o SortOrder) Clause() string {
	if clause, ok := sortOrders[o]; ok {
		return clause
	}
	return sortOrders[DefaultSortOrder]
}
