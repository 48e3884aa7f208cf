package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/quotebook/internal/cli"
	"github.com/mrlokans/quotebook/internal/config"
	"github.com/mrlokans/quotebook/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// command is implemented by every CLI subcommand.
type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	name := os.Args[1]
	args := os.Args[2:]

	var cmd command
	switch name {
	case "list":
		cmd = cli.NewListCommand()
	case "add":
		cmd = cli.NewAddCommand()
	case "favourite":
		cmd = cli.NewFavouriteCommand()
	case "delete":
		cmd = cli.NewDeleteCommand()
	case "export":
		cmd = cli.NewExportCommand()
	case "version":
		fmt.Printf("quotebook %s (%s)\n", Version, Commit)
		return
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve      Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  list       List quotes, with optional search and category filter\n")
	fmt.Fprintf(os.Stderr, "  add        Add a quote\n")
	fmt.Fprintf(os.Stderr, "  favourite  Mark or unmark a quote as favourite\n")
	fmt.Fprintf(os.Stderr, "  delete     Delete a quote\n")
	fmt.Fprintf(os.Stderr, "  export     Export all quotes to markdown files\n")
	fmt.Fprintf(os.Stderr, "  version    Print version information\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
