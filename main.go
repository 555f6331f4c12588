package main

import (
	"fmt"
	"log/slog"
	"os"

	"nosh/cmd"
	"nosh/internal/i18n"
	"nosh/internal/location"
	"nosh/internal/logging"
	"nosh/internal/search"
	"nosh/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Parse environment and CLI flags
	config, err := cmd.ParseFlags(version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Diagnostics go to a file; the TUI owns the terminal
	logFile, err := logging.Setup(config.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if config.APIKey == "" {
		if !config.SearchEnabled {
			fmt.Fprintln(os.Stderr, "ℹ  Restaurant search disabled in onboarding settings")
		} else {
			fmt.Fprintln(os.Stderr, "ℹ  No NOSH_API_KEY set — searches will fail until one is configured")
		}
	}
	searcher := search.NewClient(config.APIKey, config.SearchURL)

	// Location lookup is optional; without it the app goes straight to
	// manual entry
	var locator ui.Locator
	if !config.NoLocate {
		locator = location.NewClient(config.LocateURL)
	} else {
		slog.Info("automatic location lookup disabled")
	}

	table := i18n.New()

	// Create and run Bubble Tea app
	p := tea.NewProgram(ui.New(locator, searcher, table, config.Language), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
