// Package typeface resolves the font used for the icon lettering.
//
// The preferred font is looked up by file name in the usual system font
// directories. When it is not installed, the embedded Go Regular font is
// used instead. A font file that exists but cannot be read or parsed is an
// error: it is never silently replaced.
package typeface

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Source tells where a Face came from.
type Source string

const (
	Preferred Source = "preferred"
	Fallback  Source = "fallback"
)

// Face is a font face sized in pixels plus its provenance.
type Face struct {
	font.Face
	Source Source
	Path   string // empty for the built-in fallback
}

// Load returns a face for name at size pixels. A missing font yields the
// built-in fallback; any other failure is returned.
func Load(name string, size float64) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %g", size)
	}
	path, err := Find(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return builtin(size)
		}
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font %s: %w", path, err)
	}
	face, err := parse(data, size)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", path, err)
	}
	return &Face{Face: face, Source: Preferred, Path: path}, nil
}

// Find locates a font file. Absolute paths are checked as given; bare names
// are tried in the working directory and then searched (case-insensitively)
// under the system font directories. The returned error wraps
// fs.ErrNotExist when nothing matches.
func Find(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("no font name: %w", fs.ErrNotExist)
	}
	if filepath.IsAbs(name) || strings.ContainsRune(name, filepath.Separator) {
		if _, err := os.Stat(name); err != nil {
			return "", err
		}
		return name, nil
	}
	if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
		return name, nil
	}
	for _, dir := range SearchDirs() {
		if p := walkFor(dir, name); p != "" {
			return p, nil
		}
	}
	return "", fmt.Errorf("font %s: %w", name, fs.ErrNotExist)
}

// SearchDirs lists the system font directories for the current platform,
// in lookup order. Directories that do not exist are harmless.
func SearchDirs() []string {
	var dirs []string
	if windir := os.Getenv("WINDIR"); windir != "" {
		dirs = append(dirs, filepath.Join(windir, "Fonts"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs,
			filepath.Join(home, ".fonts"),
			filepath.Join(home, ".local", "share", "fonts"),
			filepath.Join(home, "Library", "Fonts"),
		)
	}
	return append(dirs,
		"/usr/share/fonts",
		"/usr/local/share/fonts",
		"/Library/Fonts",
		"/System/Library/Fonts",
	)
}

func walkFor(root, name string) string {
	var found string
	filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// unreadable subtree; keep searching
			return nil
		}
		if !d.IsDir() && strings.EqualFold(d.Name(), name) {
			found = p
			return fs.SkipAll
		}
		return nil
	})
	return found
}

func builtin(size float64) (*Face, error) {
	face, err := parse(goregular.TTF, size)
	if err != nil {
		return nil, fmt.Errorf("built-in font: %w", err)
	}
	return &Face{Face: face, Source: Fallback}, nil
}

// parse accepts both single fonts and collections (.ttc); for a collection
// the first font is used.
func parse(data []byte, size float64) (font.Face, error) {
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	f, err := coll.Font(0)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}
