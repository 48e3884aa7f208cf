package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/quotebook/internal/config"
)

// FavouriteCommand marks or unmarks a quote as favourite.
type FavouriteCommand struct {
	DatabasePath string
	ID           uint
	Remove       bool
	Verbose      bool

	Out io.Writer
}

func NewFavouriteCommand() *FavouriteCommand {
	return &FavouriteCommand{}
}

func (cmd *FavouriteCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("favourite", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the quote database")
	fs.UintVar(&cmd.ID, "id", 0, "Quote ID (required)")
	fs.BoolVar(&cmd.Remove, "remove", false, "Remove the quote from favourites instead")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Log SQL statements")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s favourite -id <id> [-remove]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Mark a quote as favourite, or unmark it with -remove.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.ID == 0 {
		return fmt.Errorf("required flag -id not provided")
	}
	return nil
}

func (cmd *FavouriteCommand) Run() error {
	ctx := context.Background()

	db, repo, err := openStore(ctx, cmd.DatabasePath, cmd.Verbose)
	if err != nil {
		return err
	}
	defer db.Close()

	quote, err := repo.SetFavorite(ctx, cmd.ID, !cmd.Remove)
	if err != nil {
		return err
	}

	state := "added to"
	if cmd.Remove {
		state = "removed from"
	}
	fmt.Fprintf(outOrStdout(cmd.Out), "Quote %d %s favourites\n", quote.ID, state)
	return nil
}
