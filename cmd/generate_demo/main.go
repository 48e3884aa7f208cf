// Command generate_demo creates a demo database with quotes from public domain authors.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mrlokans/quotebook/internal/database"
	"github.com/mrlokans/quotebook/internal/database/quotes"
	"github.com/mrlokans/quotebook/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	store := quotes.NewRepository(db.DB)
	if err := store.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize quote store: %v", err)
	}

	saved := 0
	for _, input := range demoQuotes() {
		if _, err := store.Create(ctx, input); err != nil {
			log.Printf("Failed to save quote by %s: %v", input.Author, err)
			continue
		}
		saved++
	}

	log.Printf("Demo database generated successfully with %d quotes!", saved)
}

// demoQuotes covers every category and background color at least once.
func demoQuotes() []entities.QuoteInput {
	quote := func(text, author string, category entities.Category, color entities.BackgroundColor, favourite bool) entities.QuoteInput {
		return entities.QuoteInput{
			Text:            text,
			Author:          author,
			Category:        string(category),
			BackgroundColor: string(color),
			IsFavorite:      favourite,
		}
	}

	return []entities.QuoteInput{
		// Marcus Aurelius - Meditations
		quote("You have power over your mind - not outside events. Realize this, and you will find strength.",
			"Marcus Aurelius", entities.CategoryWisdom, entities.BackgroundColorBlue, true),
		quote("The happiness of your life depends upon the quality of your thoughts.",
			"Marcus Aurelius", entities.CategoryHappiness, entities.BackgroundColorGreen, false),
		quote("Waste no more time arguing about what a good man should be. Be one.",
			"Marcus Aurelius", entities.CategoryMotivation, entities.BackgroundColorOrange, false),
		quote("Accept the things to which fate binds you, and love the people with whom fate brings you together, and do so with all your heart.",
			"Marcus Aurelius", entities.CategoryLove, entities.BackgroundColorPink, false),

		// Seneca - Letters from a Stoic
		quote("We suffer more often in imagination than in reality.",
			"Seneca", entities.CategoryWisdom, entities.BackgroundColorPurple, true),
		quote("Luck is what happens when preparation meets opportunity.",
			"Seneca", entities.CategorySuccess, entities.BackgroundColorTeal, false),
		quote("Associate with people who are likely to improve you. Welcome those whom you are capable of improving.",
			"Seneca", entities.CategoryFriendship, entities.BackgroundColorGreen, false),
		quote("It is not that we have a short time to live, but that we waste a lot of it.",
			"Seneca", entities.CategoryLife, entities.BackgroundColorBlue, false),

		// Charles Darwin
		quote("A man who dares to waste one hour of time has not discovered the value of life.",
			"Charles Darwin", entities.CategoryLife, entities.BackgroundColorOrange, false),

		// Leo Tolstoy
		quote("The two most powerful warriors are patience and time.",
			"Leo Tolstoy", entities.CategorySuccess, entities.BackgroundColorPurple, false),
		quote("Everything I know, I know only because I love.",
			"Leo Tolstoy", entities.CategoryLove, entities.BackgroundColorPink, true),

		// Plato
		quote("The beginning is the most important part of the work.",
			"Plato", entities.CategoryMotivation, entities.BackgroundColorTeal, false),
		quote("Good actions give strength to ourselves and inspire good actions in others.",
			"Plato", entities.CategoryInspiration, entities.BackgroundColorBlue, false),

		// Sun Tzu
		quote("In the midst of chaos, there is also opportunity.",
			"Sun Tzu", entities.CategoryInspiration, entities.BackgroundColorGreen, false),

		// Jane Austen
		quote("I declare after all there is no enjoyment like reading! How much sooner one tires of any thing than of a book!",
			"Jane Austen", entities.CategoryHappiness, entities.BackgroundColorPink, false),

		// Oscar Wilde
		quote("Experience is merely the name men gave to their mistakes.",
			"Oscar Wilde", entities.CategoryWisdom, entities.BackgroundColorOrange, false),
	}
}
