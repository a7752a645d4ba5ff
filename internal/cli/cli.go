package cli

import (
	"fmt"
	"io"

	"noteboard/internal/board"
)

// Run executes the CLI with the given arguments against the imported board.
// The first argument is the command ("list" or "help").
func Run(args []string, b *board.Board, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "list", "ls", "l":
		return runList(cmdArgs, b, stdout, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		printUsage(stderr)
		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `noteboard - A terminal board for short notes

Usage: noteboard [flags] [command] [arguments]

Commands:
  list, ls, l   Print notes imported at startup
                noteboard -import ~/notes list
                noteboard list -q milk          # Filter title or body
                noteboard list -sort created    # asc, desc, created, updated
                noteboard list -fuzzy -q grcrs  # Fuzzy match, ranked
                noteboard list -full            # Print whole bodies
  help          Show this help message

Flags:
  -import <dirs>   Directories of markdown notes to import (comma-separated)
  -sort <order>    Initial sort order: asc, desc, created, updated
  -lang <tag>      Language used to sort titles (BCP 47, e.g. en, de, sv)

Running noteboard without a command launches the interactive TUI.
Notes live in memory only; nothing is written back to disk.`)
}
