package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Mavwarf/appicon/internal/config"
	"github.com/Mavwarf/appicon/internal/generator"
	"github.com/Mavwarf/appicon/internal/history"
	"github.com/Mavwarf/appicon/internal/paths"
)

func TestParseFlags(t *testing.T) {
	var f cliFlags
	rest, err := parseFlags([]string{"-r", "out", "history", "--log", "--font", "x.ttf", "5", "-c", "cfg.json"}, &f)
	if err != nil {
		t.Fatal(err)
	}
	if f.root != "out" || f.font != "x.ttf" || f.configPath != "cfg.json" || !f.log {
		t.Errorf("flags = %+v", f)
	}
	if strings.Join(rest, " ") != "history 5" {
		t.Errorf("rest = %q, want [history 5]", rest)
	}
}

func TestParseFlagsMissingValue(t *testing.T) {
	for _, flag := range []string{"--root", "-c", "--font"} {
		var f cliFlags
		if _, err := parseFlags([]string{flag}, &f); err == nil {
			t.Errorf("parseFlags(%s) = nil error, want error", flag)
		}
	}
}

func TestParseFlagsNone(t *testing.T) {
	var f cliFlags
	rest, err := parseFlags(nil, &f)
	if err != nil || len(rest) != 0 {
		t.Errorf("parseFlags(nil) = %q, %v", rest, err)
	}
}

// writeTempConfig writes a config file into a fresh root and isolates
// DataDir so no user config is picked up.
func writeTempConfig(t *testing.T, data string) string {
	t.Helper()
	t.Setenv("APPDATA", t.TempDir())
	root := t.TempDir()
	if data != "" {
		if err := os.WriteFile(filepath.Join(root, paths.ConfigFileName), []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	root := writeTempConfig(t, `{"font": "from-config.ttf", "storage": "sqlite"}`)
	cfg, err := loadConfig(cliFlags{root: root, font: "from-flag.ttf", log: true})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Root != root {
		t.Errorf("Root = %q, want %q", cfg.Root, root)
	}
	if cfg.Font != "from-flag.ttf" {
		t.Errorf("Font = %q, want flag value", cfg.Font)
	}
	if !cfg.Log || cfg.Storage != config.StorageSQLite {
		t.Errorf("Log/Storage = %t/%q", cfg.Log, cfg.Storage)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	root := writeTempConfig(t, `{"resolutions": [{"label": "x", "size": -1}]}`)
	_, err := loadConfig(cliFlags{root: root})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), paths.ConfigFileName) {
		t.Errorf("error %q should name the config file", err)
	}
}

func TestGenerateWithoutLog(t *testing.T) {
	root := writeTempConfig(t, `{"font": "no-such-font-4f1c2a.ttf", "resolutions": [{"label": "test", "size": 10}]}`)
	if err := generate(cliFlags{root: root}, io.Discard, time.Now); err != nil {
		t.Fatalf("generate: %v", err)
	}
	dir := paths.LauncherDir(root, "test")
	for _, p := range []string{paths.BaseIconPath(root), paths.SquarePath(dir), paths.RoundPath(dir)} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("missing %s: %v", p, err)
		}
	}
	if _, err := os.Stat(filepath.Join(paths.DataDir(), paths.LogFileName)); !os.IsNotExist(err) {
		t.Errorf("history written without --log: %v", err)
	}
}

func TestGenerateLogsRun(t *testing.T) {
	for _, storage := range []string{config.StorageFile, config.StorageSQLite} {
		t.Run(storage, func(t *testing.T) {
			root := writeTempConfig(t, `{"font": "no-such-font-4f1c2a.ttf", "storage": "`+storage+`", "resolutions": [{"label": "test", "size": 10}]}`)
			at := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
			if err := generate(cliFlags{root: root, log: true}, io.Discard, func() time.Time { return at }); err != nil {
				t.Fatalf("generate: %v", err)
			}

			store, err := history.OpenDefault(storage)
			if err != nil {
				t.Fatal(err)
			}
			defer store.Close()
			runs, err := store.Runs(0)
			if err != nil {
				t.Fatal(err)
			}
			if len(runs) != 1 {
				t.Fatalf("len(runs) = %d, want 1", len(runs))
			}
			if !runs[0].Time.Equal(at) || runs[0].FontSource != "fallback" {
				t.Errorf("run = %+v", runs[0])
			}
			if len(runs[0].Artifacts) != 2 {
				t.Errorf("len(Artifacts) = %d, want 2", len(runs[0].Artifacts))
			}
		})
	}
}

func TestRenderRuns(t *testing.T) {
	orig := noColor
	noColor = true
	t.Cleanup(func() { noColor = orig })

	runs := []history.Run{{
		Time:       time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC),
		Root:       ".",
		FontSource: "preferred",
		BaseSHA256: "0123456789abcdef",
		Artifacts: []generator.Artifact{
			{Label: "mipmap-mdpi", Kind: generator.Square, Size: 48, SHA256: "fedcba9876543210"},
		},
	}}
	var buf bytes.Buffer
	renderRuns(&buf, runs)
	out := buf.String()
	for _, want := range []string{"font=preferred", "2 files", "0123456789ab", "mipmap-mdpi", "square", "48", "fedcba987654"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("output contains ANSI codes with noColor set")
	}
}

func TestShortSHA(t *testing.T) {
	if got := shortSHA("abc"); got != "abc" {
		t.Errorf("shortSHA(abc) = %q", got)
	}
	if got := shortSHA("0123456789abcdef"); got != "0123456789ab" {
		t.Errorf("shortSHA = %q", got)
	}
}
