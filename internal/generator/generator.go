// Package generator runs the icon export: draw the base icon, persist it,
// read it back and write a square and a round launcher icon for every
// configured resolution.
package generator

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/Mavwarf/appicon/internal/artwork"
	"github.com/Mavwarf/appicon/internal/config"
	"github.com/Mavwarf/appicon/internal/mask"
	"github.com/Mavwarf/appicon/internal/paths"
	"github.com/Mavwarf/appicon/internal/resample"
	"github.com/Mavwarf/appicon/internal/typeface"
)

// Kind distinguishes the two variants written per resolution.
type Kind string

const (
	Square Kind = "square"
	Round  Kind = "round"
)

// Artifact is one written launcher icon.
type Artifact struct {
	Label  string
	Kind   Kind
	Size   int
	Path   string
	SHA256 string
}

// Result describes a completed run.
type Result struct {
	BasePath   string
	BaseSHA256 string
	FontSource typeface.Source
	FontPath   string
	Artifacts  []Artifact
}

// Options controls a run. Zero fields take the values from config.Default.
type Options struct {
	Root        string
	Font        string
	FontSize    float64
	Resolutions []config.Resolution
	Out         io.Writer // progress lines; nil = os.Stdout
}

// DefaultOptions returns the options of a run with no configuration.
func DefaultOptions() Options {
	return FromConfig(config.Default())
}

// FromConfig maps a loaded configuration onto run options.
func FromConfig(cfg config.Config) Options {
	return Options{
		Root:        cfg.Root,
		Font:        cfg.Font,
		FontSize:    cfg.FontSize,
		Resolutions: cfg.Resolutions,
	}
}

func (o Options) withDefaults() Options {
	def := config.Default()
	if o.Root == "" {
		o.Root = def.Root
	}
	if o.Font == "" {
		o.Font = def.Font
	}
	if o.FontSize == 0 {
		o.FontSize = def.FontSize
	}
	if o.Resolutions == nil {
		o.Resolutions = def.Resolutions
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	return o
}

// Run performs one export. Any failure aborts the run and is returned;
// files written before the failure are left in place.
func Run(opts Options) (Result, error) {
	opts = opts.withDefaults()
	if err := config.ValidateResolutions(opts.Resolutions); err != nil {
		return Result{}, err
	}

	face, err := typeface.Load(opts.Font, opts.FontSize)
	if err != nil {
		return Result{}, err
	}
	defer face.Close()

	p := newProgress(opts.Out)
	res := Result{
		BasePath:   paths.BaseIconPath(opts.Root),
		FontSource: face.Source,
		FontPath:   face.Path,
	}

	res.BaseSHA256, err = writePNG(res.BasePath, artwork.Draw(face))
	if err != nil {
		return Result{}, fmt.Errorf("writing base icon: %w", err)
	}
	p.done("base icon written to %s", res.BasePath)

	// Resize from the file on disk, not the in-memory canvas, so the
	// launcher icons always match the persisted base.
	src, err := readPNG(res.BasePath)
	if err != nil {
		return Result{}, fmt.Errorf("reading base icon: %w", err)
	}

	for _, r := range opts.Resolutions {
		arts, err := export(opts.Root, r, src)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", r.Label, err)
		}
		res.Artifacts = append(res.Artifacts, arts...)
		p.done("%s (%dx%dpx)", r.Label, r.Size, r.Size)
	}

	p.summary()
	return res, nil
}

// export writes both variants for one resolution from a single resize.
func export(root string, r config.Resolution, src image.Image) ([]Artifact, error) {
	dir := paths.LauncherDir(root, r.Label)
	if err := os.MkdirAll(dir, paths.DirPerm); err != nil {
		return nil, err
	}

	resized := resample.Square(src, r.Size)
	variants := []struct {
		kind Kind
		path string
		img  image.Image
	}{
		{Square, paths.SquarePath(dir), resized},
		{Round, paths.RoundPath(dir), mask.Round(resized)},
	}

	arts := make([]Artifact, 0, len(variants))
	for _, v := range variants {
		sum, err := writePNG(v.path, v.img)
		if err != nil {
			return nil, err
		}
		arts = append(arts, Artifact{
			Label:  r.Label,
			Kind:   v.kind,
			Size:   r.Size,
			Path:   v.path,
			SHA256: sum,
		})
	}
	return arts, nil
}

// writePNG encodes img in memory, writes it atomically and returns the hex
// SHA-256 of the written bytes.
func writePNG(path string, img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := paths.AtomicWrite(path, buf.Bytes()); err != nil {
		return "", err
	}
	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:]), nil
}

func readPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}
