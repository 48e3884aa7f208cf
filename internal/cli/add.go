package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mrlokans/quotebook/internal/config"
	"github.com/mrlokans/quotebook/internal/entities"
)

// AddCommand stores a new quote.
type AddCommand struct {
	DatabasePath    string
	Text            string
	Author          string
	Category        string
	BackgroundColor string
	Favourite       bool
	Verbose         bool

	Out io.Writer
}

func NewAddCommand() *AddCommand {
	return &AddCommand{}
}

func (cmd *AddCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the quote database")
	fs.StringVar(&cmd.Text, "text", "", "Quote text (required)")
	fs.StringVar(&cmd.Author, "author", "", "Quote author (required)")
	fs.StringVar(&cmd.Category, "category", string(entities.DefaultCategory), "Category")
	fs.StringVar(&cmd.BackgroundColor, "color", string(entities.DefaultBackgroundColor), "Background color")
	fs.BoolVar(&cmd.Favourite, "favourite", false, "Mark the quote as favourite")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Log SQL statements")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s add -text <text> -author <author> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Add a quote to the collection.\n\n")
		fmt.Fprintf(os.Stderr, "Categories: %s\n", joinCategories())
		fmt.Fprintf(os.Stderr, "Colors: %s\n\n", joinColors())
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s add -text \"Stay hungry, stay foolish.\" -author \"Steve Jobs\" -category motivation\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.Text) == "" {
		return fmt.Errorf("required flag -text not provided")
	}
	if strings.TrimSpace(cmd.Author) == "" {
		return fmt.Errorf("required flag -author not provided")
	}
	return nil
}

func (cmd *AddCommand) Run() error {
	ctx := context.Background()

	db, repo, err := openStore(ctx, cmd.DatabasePath, cmd.Verbose)
	if err != nil {
		return err
	}
	defer db.Close()

	quote, err := repo.Create(ctx, entities.QuoteInput{
		Text:            cmd.Text,
		Author:          cmd.Author,
		Category:        cmd.Category,
		BackgroundColor: cmd.BackgroundColor,
		IsFavorite:      cmd.Favourite,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(outOrStdout(cmd.Out), "Added quote %d: %s\n", quote.ID, quote.ShareText())
	return nil
}

func joinCategories() string {
	names := make([]string, 0, len(entities.Categories))
	for _, c := range entities.Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func joinColors() string {
	names := make([]string, 0, len(entities.Palette))
	for _, opt := range entities.Palette {
		names = append(names, string(opt.Value))
	}
	return strings.Join(names, ", ")
}
