// Package quotes holds pure operations over quote snapshots returned by
// the store: search, category filtering and summary statistics.
package quotes

import (
	"strings"

	"github.com/mrlokans/quotebook/internal/entities"
)

// CategoryAll matches every category.
const CategoryAll = "all"

// Criteria selects quotes from a snapshot.
type Criteria struct {
	Query    string // Case-insensitive substring of text or author
	Category string // Category name, "all" or empty for any
}

// Matches reports whether q satisfies the criteria.
func (c Criteria) Matches(q entities.Quote) bool {
	return c.matchesQuery(q) && c.matchesCategory(q)
}

func (c Criteria) matchesQuery(q entities.Quote) bool {
	if c.Query == "" {
		return true
	}
	// Whitespace is part of the query; a padded query must match as typed.
	query := strings.ToLower(c.Query)
	return strings.Contains(strings.ToLower(q.Text), query) ||
		strings.Contains(strings.ToLower(q.Author), query)
}

func (c Criteria) matchesCategory(q entities.Quote) bool {
	category := strings.ToLower(strings.TrimSpace(c.Category))
	if category == "" || category == CategoryAll {
		return true
	}
	return string(q.Category) == category
}

// Filter returns the quotes matching criteria in their original order.
// The input is not modified and the result is never nil.
func Filter(list []entities.Quote, criteria Criteria) []entities.Quote {
	out := make([]entities.Quote, 0, len(list))
	for _, q := range list {
		if criteria.Matches(q) {
			out = append(out, q)
		}
	}
	return out
}
