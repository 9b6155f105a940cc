// abxdash TUI — the interactive antibiotics dashboard.
//
// Usage:
//
//	abxdash-tui [flags]
//
// Flags:
//
//	--config   Path to config file (default: ~/.config/abxdash/config.toml)
//	--view     Tab to open on (default: the catalog default)
//	--content  Directory holding datasets.toml, views.toml and chrome.toml
//	--db       Read datasets from a SQLite database written by 'abxdash export'
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mr-Dark-debug/abxdash/internal/config"
	"github.com/Mr-Dark-debug/abxdash/internal/logging"
	"github.com/Mr-Dark-debug/abxdash/internal/site"
	"github.com/Mr-Dark-debug/abxdash/internal/tab"
	"github.com/Mr-Dark-debug/abxdash/internal/tui"
)

func main() {
	cfgPath := flag.String("config", "", "Path to config file")
	viewID := flag.String("view", "", "Tab to open on")
	contentDir := flag.String("content", "", "Content directory override")
	dbPath := flag.String("db", "", "Read datasets from this SQLite database")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *contentDir != "" {
		cfg.Content.Dir = *contentDir
	}
	if *dbPath != "" {
		cfg.Content.DB = *dbPath
	}

	// The terminal belongs to the UI; logs go to the configured file or nowhere.
	logger, closer, err := logging.New(cfg.Log, io.Discard)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closer.Close()

	s, err := site.Open(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to load content: %v", err)
	}

	var opts []tab.Option
	if *viewID != "" {
		opts = append(opts, tab.WithInitialView(*viewID))
	}
	ctrl, err := s.NewController(opts...)
	if err != nil {
		if near := s.Catalog.Suggest(*viewID); near != "" && near != *viewID {
			log.Fatalf("Failed to open view %q: %v (did you mean %q?)", *viewID, err, near)
		}
		log.Fatalf("Failed to open view %q: %v", *viewID, err)
	}

	model := tui.NewModel(ctrl, s.Composer(), logger)
	progOpts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if cfg.UI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, progOpts...)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
