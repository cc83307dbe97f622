// Package generator renders catalogue textures and writes them to disk.
package generator

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-hclog"
	"github.com/remeh/sizedwaitgroup"

	"github.com/jmylchreest/texgen/internal/compression"
	"github.com/jmylchreest/texgen/internal/image"
	"github.com/jmylchreest/texgen/internal/security"
	"github.com/jmylchreest/texgen/internal/texture"
)

// Options configures a generation run.
type Options struct {
	// OutputDir receives each texture at <OutputDir>/<Entry.File><ext>.
	OutputDir string

	Format image.Format

	// Bundle, when set, is an archive path that also receives every texture.
	Bundle string

	// Workers bounds how many textures render at once.
	Workers int

	// DryRun renders and encodes without writing anything.
	DryRun bool

	Params texture.Params
	Logger hclog.Logger
}

// Result describes one generated texture.
type Result struct {
	Name     string
	Path     string // Relative to OutputDir, slash-separated
	Width    int
	Height   int
	Bytes    int64
	Duration time.Duration
}

// bundleEpoch is the modification time stamped on bundle entries.
var bundleEpoch = time.Unix(0, 0).UTC()

// Generator runs texture catalogues.
type Generator struct {
	catalog *texture.Catalog
	opts    Options
	logger  hclog.Logger
}

// New returns a Generator over catalog.
func New(catalog *texture.Catalog, opts Options) (*Generator, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog cannot be nil")
	}
	if opts.OutputDir == "" && !opts.DryRun {
		return nil, fmt.Errorf("output directory cannot be empty")
	}
	if opts.Format == "" {
		opts.Format = image.FormatPNG
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Bundle != "" {
		if _, err := compression.DetectKind(opts.Bundle); err != nil {
			return nil, err
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if opts.Params.Logger == nil {
		opts.Params.Logger = logger.Named("render")
	}

	return &Generator{catalog: catalog, opts: opts, logger: logger}, nil
}

// Run renders the named textures (all when names is empty). Every texture
// is attempted; failures are joined into the returned error and the
// results of the successful ones are still returned, sorted by name.
// The bundle is only written when every texture succeeded.
func (g *Generator) Run(ctx context.Context, names []string) ([]Result, error) {
	entries, err := g.catalog.Select(names)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		if err := security.ValidateFilePath(g.relPath(e), "."); err != nil {
			return nil, fmt.Errorf("texture %s has an invalid output path: %w", e.Name, err)
		}
	}

	g.logger.Info("generating textures", "count", len(entries), "workers", g.opts.Workers, "format", g.opts.Format)

	var (
		mu      sync.Mutex
		results []Result
		files   []compression.File
		errs    []error
	)

	swg := sizedwaitgroup.New(g.opts.Workers)
	for _, e := range entries {
		if err := swg.AddWithContext(ctx); err != nil {
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
			break
		}
		go func(e texture.Entry) {
			defer swg.Done()
			res, data, err := g.generate(ctx, e)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("texture %s: %w", e.Name, err))
				return
			}
			results = append(results, res)
			if g.opts.Bundle != "" {
				files = append(files, compression.File{Name: res.Path, Data: data})
			}
		}(e)
	}
	swg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })

	if len(errs) > 0 {
		return results, errors.Join(errs...)
	}

	if g.opts.Bundle != "" && !g.opts.DryRun {
		sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
		if err := compression.WriteFile(g.opts.Bundle, files, bundleEpoch); err != nil {
			return results, fmt.Errorf("failed to write bundle: %w", err)
		}
		g.logger.Info("wrote bundle", "path", g.opts.Bundle, "entries", len(files))
	}

	return results, nil
}

// relPath is the slash-separated output path of e.
func (g *Generator) relPath(e texture.Entry) string {
	return path.Clean(e.File) + g.opts.Format.Ext()
}

// generate renders, encodes and writes one texture. The encoded bytes are
// returned for bundling.
func (g *Generator) generate(ctx context.Context, e texture.Entry) (Result, []byte, error) {
	start := time.Now()
	logger := g.logger.With("texture", e.Name)

	buf, err := e.Generate(ctx, g.opts.Params)
	if err != nil {
		return Result{}, nil, err
	}

	data, err := image.EncodeBytes(buf, g.opts.Format)
	if err != nil {
		return Result{}, nil, err
	}

	rel := g.relPath(e)
	if !g.opts.DryRun {
		dest := filepath.Join(g.opts.OutputDir, filepath.FromSlash(rel))
		if err := image.WriteAtomic(dest, data); err != nil {
			return Result{}, nil, err
		}
	}

	res := Result{
		Name:     e.Name,
		Path:     rel,
		Width:    buf.Width,
		Height:   buf.Height,
		Bytes:    int64(len(data)),
		Duration: time.Since(start),
	}
	logger.Debug("wrote texture", "path", rel, "size", fmt.Sprintf("%dx%d", buf.Width, buf.Height),
		"bytes", humanize.Bytes(uint64(res.Bytes)), "took", res.Duration.Round(time.Millisecond))

	return res, data, nil
}
