// Package main is the entry point for the daylist application.
// This file contains the export subcommand handler.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"daylist/internal/checklist"
	"daylist/internal/config"
	"daylist/internal/export"
	"daylist/internal/fsutil"
	"daylist/internal/storage"
)

// exportHelpText is the help message for the export subcommand.
const exportHelpText = `daylist export - Export history as CSV

USAGE:
    daylist export [OPTIONS] [START] [END]

OPTIONS:
    -a, --all          Export the entire history
    -o, --output FILE  Write to file instead of stdout
    -f, --file         Write to activity-history-YYYY-MM-DD.csv in the
                       current directory
    -h, --help         Show this help message

ARGUMENTS:
    START, END         Date range (YYYY-MM-DD, inclusive). Defaults to
                       the configured history window ending today.

DESCRIPTION:
    Exports recorded history as CSV with one row per activity per day:
    Date, Activity Name, Status, Time, Completion Rate.

EXAMPLES:
    # Last 30 days to stdout
    daylist export

    # Entire history to a file
    daylist export --all --output history.csv

    # A specific range
    daylist export 2026-08-01 2026-08-28

    # Default filename in the current directory
    daylist export --file
`

// runExport handles the "daylist export" subcommand.
func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	allFlag := fs.Bool("all", false, "export the entire history")
	fs.BoolVar(allFlag, "a", false, "export the entire history (shorthand)")

	outputFlag := fs.String("output", "", "write to file instead of stdout")
	fs.StringVar(outputFlag, "o", "", "write to file (shorthand)")

	fileFlag := fs.Bool("file", false, "write to the default dated filename")
	fs.BoolVar(fileFlag, "f", false, "write to the default dated filename (shorthand)")

	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, exportHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag {
		fmt.Print(exportHelpText)
		os.Exit(0)
	}

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

	history, warnErr := checklist.NewHistory(store)
	if warnErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", warnErr)
	}

	// Pick the day range: explicit args, --all, or the configured window.
	var rows []checklist.DayRow
	switch {
	case fs.NArg() >= 2:
		start, err := checklist.ParseDayKey(fs.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid start date %q. Use YYYY-MM-DD format.\n", fs.Arg(0))
			os.Exit(1)
		}
		end, err := checklist.ParseDayKey(fs.Arg(1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid end date %q. Use YYYY-MM-DD format.\n", fs.Arg(1))
			os.Exit(1)
		}
		rows = history.Query(start, end, false)
	case fs.NArg() == 1:
		fmt.Fprintln(os.Stderr, "Error: date range needs both START and END")
		os.Exit(1)
	case *allFlag:
		rows = history.All(false)
	default:
		end := checklist.KeyFor(store.Now(), cfg.ResetHour())
		start := end
		for i := 1; i < cfg.UX.HistoryDays; i++ {
			start = start.Prev()
		}
		rows = history.Query(start, end, false)
	}

	data, err := export.CSV(rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating CSV: %v\n", err)
		os.Exit(1)
	}

	outPath := *outputFlag
	if outPath == "" && *fileFlag {
		outPath = export.DefaultFilename(checklist.KeyFor(store.Now(), cfg.ResetHour()))
	}

	if outPath == "" {
		os.Stdout.Write(data)
		return
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
			os.Exit(1)
		}
	}
	if err := fsutil.WriteFileAtomic(outPath, data, 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Exported %d days to %s\n", len(rows), outPath)
}
