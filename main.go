package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"noteboard/internal/board"
	"noteboard/internal/cli"
	"noteboard/internal/config"
	"noteboard/internal/logs"
	"noteboard/internal/notes"
	"noteboard/internal/notes/importer"
	"noteboard/internal/tui"
)

func main() {
	// Parse CLI flags
	importFlag := flag.String("import", "", "Markdown note directories to import (comma-separated)")
	flag.StringVar(importFlag, "i", "", "Markdown note directories to import (shorthand, comma-separated)")
	sortFlag := flag.String("sort", "", "Initial sort order: asc, desc, created, updated")
	langFlag := flag.String("lang", "", "Language tag used to sort titles")
	flag.Parse()

	cliFlags := config.CLIFlags{
		ImportDirs: config.ParseCommaSeparated(*importFlag),
		SortOrder:  *sortFlag,
		Language:   *langFlag,
	}

	// Load configuration
	cfg, err := config.Load(cliFlags)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := config.EnsureConfigFile(); err != nil {
		log.Printf("Warning: could not create config file: %v", err)
	}

	configDir, err := config.GetConfigDir()
	if err == nil {
		if err := logs.Initialize(configDir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
		}
	}
	defer logs.Close()

	b := newBoard(cfg)

	// Check for CLI subcommands
	args := flag.Args()
	if len(args) > 0 {
		exitCode := cli.Run(args, b, os.Stdout, os.Stderr)
		logs.Close()
		os.Exit(exitCode)
	}

	// TUI mode
	logs.Logger.Println("Starting app in TUI mode")
	p := tea.NewProgram(tui.NewAppModel(b), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}

func newBoard(cfg *config.Config) *board.Board {
	order, err := board.ParseSortOrder(cfg.SortOrder)
	if err != nil {
		logs.Logger.Printf("Warning: %v, using %s", err, order)
	}
	mode, err := board.ParseSearchMode(cfg.SearchMode)
	if err != nil {
		logs.Logger.Printf("Warning: %v, using %s", err, mode)
	}

	store := notes.NewStore()
	if len(cfg.ImportDirs) > 0 {
		drafts := importer.ScanDirs(cfg.ImportDirs, cfg.Recursive)
		added := importer.AddAll(store, drafts)
		logs.Logger.Printf("Imported %d of %d notes from %v", added, len(drafts), cfg.ImportDirs)
	}

	return board.New(store, board.Options{
		SortOrder:    order,
		SearchMode:   mode,
		Language:     cfg.Language,
		PreviewWords: cfg.PreviewWords,
		TimeFormat:   cfg.TimeFormat,
	})
}
