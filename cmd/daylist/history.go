// Package main is the entry point for the daylist application.
// This file contains the history subcommand handler.
package main

import (
	"flag"
	"fmt"
	"os"

	"daylist/internal/checklist"
	"daylist/internal/config"
	"daylist/internal/storage"
)

// historyHelpText is the help message for the history subcommand.
const historyHelpText = `daylist history - Show recent history

USAGE:
    daylist history [OPTIONS]

OPTIONS:
    -n, --days N   Number of days to show (default: configured window)
    -a, --all      Show the entire history
    -h, --help     Show this help message

DESCRIPTION:
    Prints recorded days, newest first, with each day's completion
    count and the activities checked off that day.

EXAMPLES:
    # Last 30 days
    daylist history

    # Last week
    daylist history --days 7

    # Everything
    daylist history --all
`

// runHistory handles the "daylist history" subcommand.
func runHistory(args []string) {
	fs := flag.NewFlagSet("history", flag.ExitOnError)

	daysFlag := fs.Int("days", 0, "number of days to show")
	fs.IntVar(daysFlag, "n", 0, "number of days to show (shorthand)")

	allFlag := fs.Bool("all", false, "show the entire history")
	fs.BoolVar(allFlag, "a", false, "show the entire history (shorthand)")

	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, historyHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag {
		fmt.Print(historyHelpText)
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

	var rows []checklist.DayRow
	if *allFlag {
		rows = history.All(true)
	} else {
		days := *daysFlag
		if days <= 0 {
			days = cfg.UX.HistoryDays
		}
		end := checklist.KeyFor(store.Now(), cfg.ResetHour())
		start := end
		for i := 1; i < days; i++ {
			start = start.Prev()
		}
		rows = history.Query(start, end, true)
	}

	if len(rows) == 0 {
		fmt.Println("No history recorded yet.")
		return
	}

	for _, row := range rows {
		rec := row.Record
		fmt.Printf("%s  %d/%d done (%d%%)\n",
			row.Key, rec.CompletedCount, rec.TotalCount, checklist.CompletionRate(rec))
		for _, e := range rec.Entries {
			mark := " "
			if e.Completed {
				mark = "x"
			}
			fmt.Printf("  [%s] %s\n", mark, e.Name)
		}
	}
}
