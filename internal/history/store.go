// Package history keeps an opt-in log of generator runs: when each run
// happened, which font it used and the digest of every file it wrote.
package history

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/Mavwarf/appicon/internal/config"
	"github.com/Mavwarf/appicon/internal/generator"
	"github.com/Mavwarf/appicon/internal/paths"
)

// Run is one logged generator run.
type Run struct {
	Time       time.Time
	Root       string
	BasePath   string
	BaseSHA256 string
	FontSource string
	Artifacts  []generator.Artifact
}

// NewRun builds a log record from a generator result.
func NewRun(at time.Time, root string, res generator.Result) Run {
	return Run{
		Time:       at,
		Root:       root,
		BasePath:   res.BasePath,
		BaseSHA256: res.BaseSHA256,
		FontSource: string(res.FontSource),
		Artifacts:  res.Artifacts,
	}
}

// Store abstracts run log storage.
type Store interface {
	Log(r Run) error
	// Runs returns up to limit most recent runs, oldest first. 0 = all.
	Runs(limit int) ([]Run, error)
	Clear() error
	Path() string
	Close() error
}

// Open returns the store for the given backend in dir.
func Open(storage, dir string) (Store, error) {
	switch storage {
	case config.StorageFile, "":
		return NewFileStore(filepath.Join(dir, paths.LogFileName)), nil
	case config.StorageSQLite:
		return NewSQLiteStore(filepath.Join(dir, paths.DBFileName))
	default:
		return nil, fmt.Errorf("unknown storage %q", storage)
	}
}

// OpenDefault opens the store in DataDir().
func OpenDefault(storage string) (Store, error) {
	return Open(storage, paths.DataDir())
}

// tail returns the last limit runs, or all of them when limit <= 0.
func tail(runs []Run, limit int) []Run {
	if limit > 0 && len(runs) > limit {
		return runs[len(runs)-limit:]
	}
	return runs
}
