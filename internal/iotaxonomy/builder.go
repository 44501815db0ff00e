package iotaxonomy

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/safebite/safebite/pkg/config"
	"github.com/safebite/safebite/pkg/lifecycle"
	"github.com/safebite/safebite/pkg/taxonomy"
	"golang.org/x/sync/errgroup"
)

// builder implements the Builder interface.
type builder struct{}

// NewBuilder creates the taxonomy Builder.
func NewBuilder() lifecycle.Builder {
	return &builder{}
}

// Build parses the ingredient and additive source files and writes the
// JSON caches the runtime loads. Parsing is sequential so the progress
// bars stay readable; the two cache writes run concurrently.
func (b *builder) Build(ctx context.Context, cfg *config.Config) error {
	start := time.Now()
	slog.Info("Starting taxonomy build")

	ingredients, err := parseSourceFile(ctx, cfg.Taxonomy.IngredientsFile, "ingredients")
	if err != nil {
		return err
	}
	additives, err := parseSourceFile(ctx, cfg.Taxonomy.AdditivesFile, "additives")
	if err != nil {
		return err
	}

	dir, err := CacheDir(cfg)
	if err != nil {
		return err
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return WriteCache(dir, IngredientsCache, ingredients)
	})
	g.Go(func() error {
		return WriteCache(dir, AdditivesCache, additives)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	merged := taxonomy.New(ingredients, additives)
	slog.Info("Taxonomy build complete",
		"ingredients", humanize.Comma(int64(len(ingredients))),
		"additives", humanize.Comma(int64(len(additives))),
		"merged", humanize.Comma(int64(merged.Len())),
		"cache_dir", dir,
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return nil
}

// parseSourceFile runs the line parser over one taxonomy source with a
// progress bar. The parser itself never fails; only file access can.
func parseSourceFile(
	ctx context.Context,
	path, prefix string,
) (map[string]taxonomy.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy source %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	bar := newProgressBar(len(lines), prefix)
	defer bar.Finish()

	p := NewParser()
	for i, line := range lines {
		// Source files run to ~100k lines; check for cancellation
		// periodically rather than per line.
		if i%4096 == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		p.AddLine(line)
		bar.Increment()
	}

	entries := p.Entries()
	slog.Info("Parsed taxonomy source",
		"path", path,
		"lines", humanize.Comma(int64(len(lines))),
		"entries", humanize.Comma(int64(len(entries))),
	)
	return entries, nil
}

// newProgressBar creates a progress bar with consistent settings.
func newProgressBar(total int, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix+" ")
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
