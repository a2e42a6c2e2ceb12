// Package main is the entry point for the daylist application.
// It loads configuration, initializes storage, catches up any missed
// day rollover, and starts the TUI.
package main

import (
	"flag"
	"fmt"
	"os"

	"daylist/internal/checklist"
	"daylist/internal/config"
	"daylist/internal/storage"
	"daylist/internal/ui"
)

// Version information - set by GoReleaser during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const helpText = `daylist - A daily checklist for your terminal

USAGE:
    daylist [OPTIONS]
    daylist <command> [ARGS]

COMMANDS:
    backup           Create a backup of all data
    backup --list    List available backups
    restore NAME     Restore from a specific backup
    restore --latest Restore from the most recent backup
    export           Export history as CSV
    history          Show recent history
    summary          Generate a history report (Markdown or JSON)

OPTIONS:
    -h, --help       Show this help message
    -v, --version    Show version information

DESCRIPTION:
    daylist is a terminal checklist of recurring daily activities.
    Check items off as you go; shortly after 3 AM each day the list
    resets and the previous day's results are recorded to history.

FEATURES:
    • Checklist  - Add, check off, rename, reorder, delete activities
    • History    - Per-day completion records, browsable in the app
    • Stats      - Completion rates and your most-completed activity
    • Local Data - Plain JSON files in ~/.daylist/

KEYBINDINGS:
    Global:
        Tab          Switch between panes
        1, 2, 3      Jump to specific pane
        ?            Show help overlay
        Ctrl+Z       Undo last action
        Ctrl+Y       Redo
        q            Quit

    Checklist Pane:
        j/k, ↓/↑     Navigate
        a            Add activities (separate several with ;)
        d/Space      Toggle done
        e            Rename activity
        x            Delete activity
        J/K          Move activity down/up
        g/G          Go to top/bottom

    History Pane:
        j/k, ↓/↑     Navigate days

    Stats Pane:
        s            Export history as CSV

DATA STORAGE:
    All data is stored in ~/.daylist/ as plain JSON files:
        tasks.json    - Your checklist
        history.json  - Per-day completion records
        rollover.json - When the list last reset

CONFIGURATION:
    Optional config file: ~/.config/daylist/config.yaml
    See documentation for configuration options.

EXAMPLES:
    # Start the app
    daylist

    # Create a backup
    daylist backup

    # Restore from a backup
    daylist restore --latest

    # Export the last 30 days as CSV
    daylist export

    # Show a history report
    daylist summary

    # Show version
    daylist --version
`

func main() {
	// Check for subcommands first (before flag parsing)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "backup":
			runBackup(os.Args[2:])
			return
		case "restore":
			runRestore(os.Args[2:])
			return
		case "export":
			runExport(os.Args[2:])
			return
		case "history":
			runHistory(os.Args[2:])
			return
		case "summary":
			runSummary(os.Args[2:])
			return
		}
	}

	showVersion := flag.Bool("version", false, "show version information")
	flag.BoolVar(showVersion, "v", false, "show version information (shorthand)")

	showHelp := flag.Bool("help", false, "show help message")
	flag.BoolVar(showHelp, "h", false, "show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpText)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("daylist version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
		os.Exit(0)
	}

	if *showHelp {
		fmt.Print(helpText)
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unknown arguments: %v\n\n", flag.Args())
		flag.Usage()
		os.Exit(1)
	}

	// Load configuration (from ~/.config/daylist/config.yaml or defaults)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.New(cfg.GetDataDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	tracker, warnings := checklist.Open(store, cfg.ResetHour())
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	// Catch up a rollover missed while the app was not running. A
	// failure here leaves the existing data intact, so warn and go on.
	if _, err := tracker.Rollover.Tick(store.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: day rollover incomplete: %v\n", err)
	}

	styles := ui.NewStylesFromTheme(&cfg.Theme)

	appCfg := &ui.AppConfig{
		Keys:                  &cfg.Keys,
		ConfirmDeletions:      cfg.UX.ConfirmDeletions,
		ShowOnboarding:        cfg.UX.ShowOnboarding,
		NarrowLayoutThreshold: cfg.UX.NarrowLayoutThreshold,
		HistoryDays:           cfg.UX.HistoryDays,
		RolloverInterval:      cfg.CheckInterval(),
	}

	if err := ui.Run(tracker, store, styles, appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
