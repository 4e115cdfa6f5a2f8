package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Mavwarf/appicon/internal/generator"
	"github.com/Mavwarf/appicon/internal/paths"
)

// FileStore implements Store using a flat log file. Each run is a header
// line followed by one indented line per artifact and a blank separator:
//
//	2026-01-02T15:04:05Z  root="."  font=fallback  base="..."  sha256=...  artifacts=10
//	2026-01-02T15:04:05Z    label="mipmap-mdpi"  kind=square  size=48  sha256=...  path="..."
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore that reads and writes the given log file.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Path() string { return f.path }

func (f *FileStore) Close() error { return nil }

// openLog opens (or creates) the log file for appending, creating the
// parent directory if needed.
func (f *FileStore) openLog() (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(f.path), paths.DirPerm); err != nil {
		return nil, err
	}
	return os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, paths.FilePerm)
}

func (f *FileStore) Log(r Run) error {
	var b strings.Builder
	ts := r.Time.UTC().Format(time.RFC3339)
	fmt.Fprintf(&b, "%s  root=%q  font=%s  base=%q  sha256=%s  artifacts=%d\n",
		ts, r.Root, r.FontSource, r.BasePath, r.BaseSHA256, len(r.Artifacts))
	for _, a := range r.Artifacts {
		fmt.Fprintf(&b, "%s    label=%q  kind=%s  size=%d  sha256=%s  path=%q\n",
			ts, a.Label, a.Kind, a.Size, a.SHA256, a.Path)
	}
	b.WriteString("\n")

	file, err := f.openLog()
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = file.WriteString(b.String())
	return err
}

func (f *FileStore) Runs(limit int) ([]Run, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	runs, err := ParseLog(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.path, err)
	}
	return tail(runs, limit), nil
}

func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ParseLog parses the content of a history log into runs.
func ParseLog(content string) ([]Run, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	var runs []Run
	for _, block := range strings.Split(strings.TrimSpace(content), "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		r, err := parseBlock(block)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, nil
}

func parseBlock(block string) (Run, error) {
	lines := strings.Split(block, "\n")
	ts, fields, err := splitLine(lines[0])
	if err != nil {
		return Run{}, err
	}
	r := Run{
		Time:       ts,
		Root:       fields["root"],
		BasePath:   fields["base"],
		BaseSHA256: fields["sha256"],
		FontSource: fields["font"],
	}
	for _, line := range lines[1:] {
		_, af, err := splitLine(line)
		if err != nil {
			return Run{}, err
		}
		size, err := strconv.Atoi(af["size"])
		if err != nil {
			return Run{}, fmt.Errorf("bad size in %q: %w", line, err)
		}
		r.Artifacts = append(r.Artifacts, generator.Artifact{
			Label:  af["label"],
			Kind:   generator.Kind(af["kind"]),
			Size:   size,
			Path:   af["path"],
			SHA256: af["sha256"],
		})
	}
	return r, nil
}

// splitLine separates the leading timestamp from the key=value fields.
func splitLine(line string) (time.Time, map[string]string, error) {
	head, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	ts, err := time.Parse(time.RFC3339, head)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("bad timestamp in %q: %w", line, err)
	}
	fields, err := parseFields(rest)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("%w in %q", err, line)
	}
	return ts, fields, nil
}

// parseFields reads space-separated key=value pairs. Values may be Go
// quoted strings.
func parseFields(s string) (map[string]string, error) {
	fields := make(map[string]string)
	for {
		s = strings.TrimLeft(s, " ")
		if s == "" {
			return fields, nil
		}
		key, rest, ok := strings.Cut(s, "=")
		if !ok || key == "" || strings.Contains(key, " ") {
			return nil, fmt.Errorf("malformed field %q", s)
		}
		var val string
		if strings.HasPrefix(rest, `"`) {
			q, err := strconv.QuotedPrefix(rest)
			if err != nil {
				return nil, fmt.Errorf("bad quoted value for %s", key)
			}
			val, _ = strconv.Unquote(q)
			rest = rest[len(q):]
		} else {
			val, rest, _ = strings.Cut(rest, " ")
		}
		fields[key] = val
		s = rest
	}
}
