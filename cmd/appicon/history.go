package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/Mavwarf/appicon/internal/history"
)

func historyCmd(args []string, f cliFlags) {
	cfg, err := loadConfig(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := history.OpenDefault(cfg.Storage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) > 0 && args[0] == "clear" {
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	}

	count := 10
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "Error: count must be a positive integer\n")
			os.Exit(1)
		}
		count = n
	}

	runs, err := store.Runs(count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(runs) == 0 {
		fmt.Println("No runs logged. Enable logging with --log or \"log\": true in config.")
		return
	}
	renderRuns(os.Stdout, runs)
}

func renderRuns(w io.Writer, runs []history.Run) {
	for i, r := range runs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s  %s  font=%s  %d files\n",
			dim(r.Time.Local().Format(time.DateTime)), bold(r.Root), r.FontSource, len(r.Artifacts)+1)
		fmt.Fprintf(w, "  %s %-7s %5s  %s\n", cyanPad("base"), "", "", shortSHA(r.BaseSHA256))
		for _, a := range r.Artifacts {
			fmt.Fprintf(w, "  %s %-7s %5d  %s\n", cyanPad(a.Label), a.Kind, a.Size, shortSHA(a.SHA256))
		}
	}
}

// cyanPad pads before coloring so escape codes don't skew the column.
func cyanPad(s string) string { return cyan(fmt.Sprintf("%-16s", s)) }

func shortSHA(s string) string {
	if len(s) > 12 {
		return s[:12]
	}
	return s
}

// --- ANSI color helpers (disabled when NO_COLOR env var is set) ---

var noColor = os.Getenv("NO_COLOR") != ""

func ansi(code, s string) string {
	if noColor {
		return s
	}
	return code + s + "\033[0m"
}

func bold(s string) string { return ansi("\033[1m", s) }
func dim(s string) string  { return ansi("\033[2m", s) }
func cyan(s string) string { return ansi("\033[36m", s) }
