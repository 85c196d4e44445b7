// Command ls-planets is a terminal UI for low-precision planetary positions.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-planets/internal/astro"
	"github.com/litescript/ls-planets/internal/logging"
	"github.com/litescript/ls-planets/internal/state"
	"github.com/litescript/ls-planets/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode bool
	watchMode   time.Duration
	jsonPath    string
	planetName  string
	dateFlag    string
	latFlag     float64
	lonFlag     float64
	siteName    string
)

const (
	defaultRefresh = 1 * time.Second
	minRefresh     = 100 * time.Millisecond
	maxRefresh     = 5 * time.Minute
)

func main() {
	// Parse flags
	refresh := flag.Duration("refresh", defaultRefresh, "Clock refresh interval (e.g., 1s, 500ms)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.DurationVar(&watchMode, "watch", 0, "Repeat headless output at interval (e.g., 30s)")
	flag.StringVar(&jsonPath, "json", "", "Export JSON snapshot to file (use - for stdout)")
	flag.StringVar(&planetName, "planet", "", "Show card for a single planet")
	flag.StringVar(&dateFlag, "date", "", "Pin the observation clock (RFC 3339, e.g., 2004-04-01T12:00:00Z)")
	flag.Float64Var(&latFlag, "lat", 51.4769, "Observer latitude, degrees north")
	flag.Float64Var(&lonFlag, "lon", 0, "Observer longitude, degrees east")
	flag.StringVar(&siteName, "site", "Greenwich", "Observer site name")
	flag.Parse()

	// Validate refresh interval
	if *refresh < minRefresh {
		*refresh = minRefresh
	} else if *refresh > maxRefresh {
		*refresh = maxRefresh
	}

	// Set up logging
	logger := logging.New(logging.ParseLevel(*logLevel))

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Initialize state
	stateCfg := state.DefaultConfig()
	stateCfg.RefreshInterval = *refresh
	stateCfg.Observer = astro.Observer{LatDeg: latFlag, LonDeg: lonFlag, Name: siteName}
	stateMgr := state.NewManager(stateCfg)

	if dateFlag != "" {
		at, err := time.Parse(time.RFC3339, dateFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -date %q: %v\n", dateFlag, err)
			os.Exit(1)
		}
		stateMgr.SetTime(at)
		logger.Debug("Observation clock pinned to %s", at.UTC())
	}

	// Headless mode: no TUI
	headless := summaryMode || jsonPath != "" || planetName != ""
	if headless {
		runHeadless(ctx, stateMgr, logger)
		return
	}

	// Create TUI model and run (blocks until quit)
	model := ui.New(stateMgr)
	p := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	// The first tick fills the views; send an immediate snapshot so the
	// UI isn't empty for a refresh interval.
	go p.Send(ui.DataUpdateMsg{Snapshot: stateMgr.Snapshot()})

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless handles all headless modes without starting the TUI.
func runHeadless(ctx context.Context, stateMgr *state.Manager, logger *logging.Logger) {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	logger.Debug("Headless run (tty=%v)", isTTY)

	outputOnce := func() error {
		snap := stateMgr.Snapshot()

		// Single planet card mode
		if planetName != "" {
			if err := state.WritePlanetCard(os.Stdout, snap, planetName); err != nil {
				return err
			}
		}

		// Export JSON if requested
		if jsonPath != "" {
			export := state.ExportSnapshot(snap)
			if jsonPath == "-" {
				if err := export.WriteJSON(os.Stdout); err != nil {
					return fmt.Errorf("write JSON to stdout: %w", err)
				}
			} else {
				f, err := os.Create(jsonPath)
				if err != nil {
					return fmt.Errorf("create snapshot file: %w", err)
				}
				defer f.Close()
				if err := export.WriteJSON(f); err != nil {
					return fmt.Errorf("write JSON to file: %w", err)
				}
			}
		}

		// Print summary table if requested
		if summaryMode {
			state.WriteSummaryTable(os.Stdout, snap)
		}

		return nil
	}

	// Single run
	if watchMode == 0 {
		if err := outputOnce(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Watch mode: repeat at interval
	if err := outputOnce(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	ticker := time.NewTicker(watchMode)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fmt.Println()
			if err := outputOnce(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}
