// appicon draws the app icon and exports the Android launcher icons.
// Run with no arguments from the repository root to regenerate everything.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/Mavwarf/appicon/internal/config"
	"github.com/Mavwarf/appicon/internal/generator"
	"github.com/Mavwarf/appicon/internal/history"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// cliFlags holds the global options; empty values defer to the config.
type cliFlags struct {
	root       string
	configPath string
	font       string
	log        bool
}

func main() {
	var flags cliFlags
	args, err := parseFlags(os.Args[1:], &flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'appicon help' for usage.\n")
		os.Exit(1)
	}

	cmd := "generate"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		printUsage()
	case "version", "-V", "--version":
		printVersion()
	case "history":
		historyCmd(args, flags)
	case "generate":
		if err := generate(flags, os.Stdout, time.Now); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", cmd)
		fmt.Fprintf(os.Stderr, "Run 'appicon help' for usage.\n")
		os.Exit(1)
	}
}

// parseFlags strips the global flags from args and returns what is left.
func parseFlags(args []string, f *cliFlags) ([]string, error) {
	var rest []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--root", "-r", "--config", "-c", "--font", "-f":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s requires a value", args[i])
			}
			val := args[i+1]
			switch args[i] {
			case "--root", "-r":
				f.root = val
			case "--config", "-c":
				f.configPath = val
			default:
				f.font = val
			}
			i++
		case "--log", "-L":
			f.log = true
		default:
			rest = append(rest, args[i])
		}
	}
	return rest, nil
}

// loadConfig loads and validates the config, then applies CLI overrides.
// Priority: flag > config file > built-in default.
func loadConfig(f cliFlags) (config.Config, error) {
	cfg, path, err := config.Load(f.configPath, f.root)
	if err != nil {
		return config.Config{}, err
	}
	if f.root != "" {
		cfg.Root = f.root
	}
	if f.font != "" {
		cfg.Font = f.font
	}
	if f.log {
		cfg.Log = true
	}
	if err := config.Validate(cfg); err != nil {
		if path != "" {
			return config.Config{}, fmt.Errorf("%s: %w", path, err)
		}
		return config.Config{}, err
	}
	return cfg, nil
}

func generate(f cliFlags, out io.Writer, now func() time.Time) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	opts := generator.FromConfig(cfg)
	opts.Out = out
	res, err := generator.Run(opts)
	if err != nil {
		return err
	}

	if cfg.Log {
		logRun(cfg, history.NewRun(now(), cfg.Root, res))
	}
	return nil
}

// logRun records the run. Best-effort: failures are reported, not fatal.
func logRun(cfg config.Config, run history.Run) {
	store, err := history.OpenDefault(cfg.Storage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "history: %v\n", err)
		return
	}
	defer store.Close()
	if err := store.Log(run); err != nil {
		fmt.Fprintf(os.Stderr, "history: %v\n", err)
	}
}

func printVersion() {
	fmt.Printf("appicon %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("appicon %s - Draw the app icon and export launcher icons\n", version)
	fmt.Println(`
Usage:
  appicon [options] [generate]
  appicon [options] history [count]
  appicon [options] history clear

Options:
  --root, -r <dir>       Output root (default: current directory)
  --config, -c <path>    Path to appicon-config.json
  --font, -f <name>      Preferred font file (default: arial.ttf)
  --log, -L              Record the run in the history log

Commands:
  generate               Draw icon.png and write ic_launcher[_round].png per density
  history [count]        Show the last runs (default 10)
  history clear          Delete the history log
  version                Print version
  help                   Show this help`)
}
