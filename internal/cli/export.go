package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/quotebook/internal/config"
	"github.com/mrlokans/quotebook/internal/exporters"
)

// ExportCommand writes the collection to markdown files.
type ExportCommand struct {
	DatabasePath string
	OutputDir    string
	Verbose      bool

	Out io.Writer
}

func NewExportCommand() *ExportCommand {
	return &ExportCommand{}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the quote database")
	fs.StringVar(&cmd.OutputDir, "output", config.DefaultExportDir, "Directory for the markdown files")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Log SQL statements")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export all quotes as markdown, one file per category plus index.md.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s export -output ~/Obsidian/Quotes\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.OutputDir == "" {
		return fmt.Errorf("-output must not be empty")
	}
	return nil
}

func (cmd *ExportCommand) Run() error {
	ctx := context.Background()

	db, repo, err := openStore(ctx, cmd.DatabasePath, cmd.Verbose)
	if err != nil {
		return err
	}
	defer db.Close()

	result, err := exporters.NewStoreMarkdownExporter(repo, cmd.OutputDir).Run(ctx, exporters.TriggerManual)
	if err != nil {
		return err
	}

	fmt.Fprintf(outOrStdout(cmd.Out), "Exported %d quotes in %d categories to %s\n",
		result.QuotesProcessed, result.Categories, result.Dir)
	return nil
}
