package quotes

import "github.com/mrlokans/quotebook/internal/entities"

// Stats summarises a quote snapshot.
type Stats struct {
	Total      int `json:"total"`
	Favorites  int `json:"favorites"`
	Authors    int `json:"authors"`
	Categories int `json:"categories"`
}

// Summarize counts quotes, favourites, distinct authors and distinct categories.
func Summarize(list []entities.Quote) Stats {
	authors := make(map[string]struct{})
	categories := make(map[entities.Category]struct{})

	stats := Stats{Total: len(list)}
	for _, q := range list {
		if q.IsFavorite {
			stats.Favorites++
		}
		authors[q.Author] = struct{}{}
		categories[q.Category] = struct{}{}
	}
	stats.Authors = len(authors)
	stats.Categories = len(categories)
	return stats
}

// GroupByCategory buckets quotes by category, keeping their order within
// each bucket. Categories with no quotes are absent from the map.
func GroupByCategory(list []entities.Quote) map[entities.Category][]entities.Quote {
	groups := make(map[entities.Category][]entities.Quote)
	for _, q := range list {
		groups[q.Category] = append(groups[q.Category], q)
	}
	return groups
}
