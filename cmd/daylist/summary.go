// Package main is the entry point for the daylist application.
// This file contains the summary subcommand handler.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"daylist/internal/checklist"
	"daylist/internal/config"
	"daylist/internal/fsutil"
	"daylist/internal/reports"
	"daylist/internal/storage"
)

// summaryHelpText is the help message for the summary subcommand.
const summaryHelpText = `daylist summary - Generate a history report

USAGE:
    daylist summary [OPTIONS] [START] [END]

OPTIONS:
    -f, --format FMT   Output format: markdown (default) or json
    -o, --output FILE  Write to file instead of stdout
    -n, --days N       Number of days to cover, ending today
    -h, --help         Show this help message

ARGUMENTS:
    START, END         Date range (YYYY-MM-DD, inclusive). Defaults to
                       the configured history window ending today.

DESCRIPTION:
    Summarizes recorded history over a range of days: per-day results
    plus overall completion rate and your most-completed activity.

EXAMPLES:
    # Last 30 days in Markdown
    daylist summary

    # Last week
    daylist summary --days 7

    # A specific range as JSON
    daylist summary --format json 2026-08-01 2026-08-28

    # Save to file
    daylist summary --output report.md
`

// runSummary handles the "daylist summary" subcommand.
func runSummary(args []string) {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)

	formatFlag := fs.String("format", "markdown", "output format: markdown or json")
	fs.StringVar(formatFlag, "f", "markdown", "output format (shorthand)")

	outputFlag := fs.String("output", "", "write to file instead of stdout")
	fs.StringVar(outputFlag, "o", "", "write to file (shorthand)")

	daysFlag := fs.Int("days", 0, "number of days to cover, ending today")
	fs.IntVar(daysFlag, "n", 0, "number of days to cover (shorthand)")

	helpFlag := fs.Bool("help", false, "show help message")
	fs.BoolVar(helpFlag, "h", false, "show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, summaryHelpText)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *helpFlag {
		fmt.Print(summaryHelpText)
		os.Exit(0)
	}

	format := *formatFlag
	if format == "md" {
		format = "markdown"
	}
	if format != "markdown" && format != "json" {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q. Use 'markdown' or 'json'.\n", format)
		os.Exit(1)
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
	gen := reports.NewGenerator(history)

	var report *reports.RangeReport
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
		report = gen.GenerateRange(start, end)
	case fs.NArg() == 1:
		fmt.Fprintln(os.Stderr, "Error: date range needs both START and END")
		os.Exit(1)
	default:
		days := *daysFlag
		if days <= 0 {
			days = cfg.UX.HistoryDays
		}
		report = gen.LastDays(store.Now(), cfg.ResetHour(), days)
	}

	var output string
	if format == "json" {
		data, err := reports.FormatJSON(report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting JSON: %v\n", err)
			os.Exit(1)
		}
		output = string(data)
	} else {
		output = reports.FormatMarkdown(report)
	}

	if *outputFlag != "" {
		if dir := filepath.Dir(*outputFlag); dir != "." {
			if err := os.MkdirAll(dir, 0700); err != nil {
				fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
				os.Exit(1)
			}
		}
		if err := fsutil.WriteFileAtomic(*outputFlag, []byte(output), 0600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Report written to %s\n", *outputFlag)
	} else {
		fmt.Print(output)
	}
}
