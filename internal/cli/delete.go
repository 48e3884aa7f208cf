package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/quotebook/internal/config"
)

// DeleteCommand permanently removes a quote.
type DeleteCommand struct {
	DatabasePath string
	ID           uint
	Verbose      bool

	Out io.Writer
}

func NewDeleteCommand() *DeleteCommand {
	return &DeleteCommand{}
}

func (cmd *DeleteCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the quote database")
	fs.UintVar(&cmd.ID, "id", 0, "Quote ID (required)")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Log SQL statements")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s delete -id <id>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Permanently delete a quote. IDs are never reused.\n\n")
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

func (cmd *DeleteCommand) Run() error {
	ctx := context.Background()

	db, repo, err := openStore(ctx, cmd.DatabasePath, cmd.Verbose)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repo.Delete(ctx, cmd.ID); err != nil {
		return err
	}

	fmt.Fprintf(outOrStdout(cmd.Out), "Deleted quote %d\n", cmd.ID)
	return nil
}
