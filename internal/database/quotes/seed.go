package quotes

import "github.com/mrlokans/quotebook/internal/entities"

// SeedQuotes is the starter set inserted into an empty store, in insertion order.
var SeedQuotes = []entities.QuoteInput{
	{
		Text:            "The best way to get started is to quit talking and begin doing.",
		Author:          "Walt Disney",
		Category:        string(entities.CategoryMotivation),
		BackgroundColor: string(entities.BackgroundColorBlue),
	},
	{
		Text:            "Don't let yesterday take up too much of today.",
		Author:          "Will Rogers",
		Category:        string(entities.CategoryInspiration),
		BackgroundColor: string(entities.BackgroundColorGreen),
	},
	{
		Text:            "The way to get started is to quit talking and begin doing.",
		Author:          "Walt Disney",
		Category:        string(entities.CategoryMotivation),
		BackgroundColor: string(entities.BackgroundColorPurple),
	},
	{
		Text:            "Life is what happens to you while you're busy making other plans.",
		Author:          "John Lennon",
		Category:        string(entities.CategoryLife),
		BackgroundColor: string(entities.BackgroundColorOrange),
	},
}
