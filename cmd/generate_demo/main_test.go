package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrlokans/quotebook/internal/entities"
)

func TestDemoQuotes_CoverAllOptions(t *testing.T) {
	list := demoQuotes()

	categories := make(map[entities.Category]bool)
	colors := make(map[entities.BackgroundColor]bool)
	favourites := 0
	for _, input := range list {
		assert.NotEmpty(t, input.Text)
		assert.NotEmpty(t, input.Author)
		categories[entities.Category(input.Category)] = true
		colors[entities.BackgroundColor(input.BackgroundColor)] = true
		if input.IsFavorite {
			favourites++
		}
	}

	for _, c := range entities.Categories {
		assert.True(t, categories[c], "missing category %s", c)
	}
	for _, opt := range entities.Palette {
		assert.True(t, colors[opt.Value], "missing color %s", opt.Value)
	}
	assert.Positive(t, favourites)
}
