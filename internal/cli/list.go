package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mrlokans/quotebook/internal/config"
	"github.com/mrlokans/quotebook/internal/entities"
	"github.com/mrlokans/quotebook/internal/quotes"
)

// ListCommand prints quotes, optionally filtered.
type ListCommand struct {
	DatabasePath string
	Query        string
	Category     string
	Sort         string
	Favourites   bool
	JSON         bool
	Verbose      bool

	Out io.Writer
}

func NewListCommand() *ListCommand {
	return &ListCommand{}
}

func (cmd *ListCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the quote database")
	fs.StringVar(&cmd.Query, "q", "", "Only show quotes whose text or author contains this (case-insensitive)")
	fs.StringVar(&cmd.Category, "category", "", "Only show this category (or 'all')")
	fs.StringVar(&cmd.Sort, "sort", "", "Sort order: -created_at (default), created_at, author, -author, id, -id")
	fs.BoolVar(&cmd.Favourites, "favourites", false, "Only show favourite quotes")
	fs.BoolVar(&cmd.JSON, "json", false, "Print quotes as JSON")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Log SQL statements")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s list [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List stored quotes, newest first.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s list -q disney\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s list -category motivation -sort author\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s list -favourites -json\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd.Category = strings.ToLower(strings.TrimSpace(cmd.Category))
	if cmd.Category != "" && cmd.Category != quotes.CategoryAll && !entities.Category(cmd.Category).IsValid() {
		return fmt.Errorf("unknown category %q", cmd.Category)
	}
	if cmd.Favourites && cmd.Sort != "" {
		return fmt.Errorf("-sort cannot be combined with -favourites")
	}
	return nil
}

func (cmd *ListCommand) Run() error {
	ctx := context.Background()
	out := outOrStdout(cmd.Out)

	db, repo, err := openStore(ctx, cmd.DatabasePath, cmd.Verbose)
	if err != nil {
		return err
	}
	defer db.Close()

	var list []entities.Quote
	if cmd.Favourites {
		list, err = repo.ListFavorites(ctx)
	} else {
		list, err = repo.ListAll(ctx, cmd.Sort)
	}
	if err != nil {
		return err
	}

	list = quotes.Filter(list, quotes.Criteria{Query: cmd.Query, Category: cmd.Category})

	if cmd.JSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(list)
	}

	if len(list) == 0 {
		fmt.Fprintln(out, "No quotes found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFAV\tCATEGORY\tAUTHOR\tTEXT")
	for _, q := range list {
		fav := ""
		if q.IsFavorite {
			fav = "*"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", q.ID, fav, q.Category, q.Author, truncate(q.Text, 60))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	stats := quotes.Summarize(list)
	fmt.Fprintf(out, "\n%d quotes, %d favourites, %d authors\n", stats.Total, stats.Favorites, stats.Authors)
	return nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
