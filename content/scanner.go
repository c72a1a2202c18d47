// Package content finds the source files a configuration points at and
// extracts their candidates.
package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/agiangrant/tailcss/extract"
)

// skipDirs are never walked into.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	".hg":          true,
	".svn":         true,
}

// Source is one scanned file.
type Source struct {
	Path       string
	Kind       extract.Kind
	Candidates []string
}

// Scanner walks Root for files matching the patterns.
type Scanner struct {
	root    string
	set     Set
	workers int
	log     *zap.Logger
}

// NewScanner compiles patterns relative to root.
func NewScanner(root string, patterns []string, log *zap.Logger) (*Scanner, error) {
	if log == nil {
		log = zap.NewNop()
	}
	set, err := ParseSet(patterns)
	if err != nil {
		return nil, fmt.Errorf("content patterns: %w", err)
	}
	if root, err = filepath.Abs(root); err != nil {
		return nil, err
	}
	return &Scanner{
		root:    root,
		set:     set,
		workers: runtime.GOMAXPROCS(0),
		log:     log.Named("content"),
	}, nil
}

// SetWorkers bounds concurrent file reads. n < 1 keeps the default.
func (s *Scanner) SetWorkers(n int) {
	if n > 0 {
		s.workers = n
	}
}

// Root is the directory patterns are relative to.
func (s *Scanner) Root() string {
	return s.root
}

// Dirs lists the absolute directories a watcher should observe.
func (s *Scanner) Dirs() []string {
	bases := s.set.Bases()
	out := make([]string, 0, len(bases))
	for _, b := range bases {
		out = append(out, filepath.Join(s.root, filepath.FromSlash(b)))
	}
	return out
}

// Matches reports whether path (absolute, or relative to Root) is content.
func (s *Scanner) Matches(path string) bool {
	rel, ok := s.relative(path)
	return ok && s.set.Match(rel)
}

func (s *Scanner) relative(path string) (string, bool) {
	if !filepath.IsAbs(path) {
		return filepath.ToSlash(path), true
	}
	rel, err := filepath.Rel(s.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

// Files walks the pattern bases and returns matching paths in natural order.
func (s *Scanner) Files(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, base := range s.set.Bases() {
		dir := filepath.Join(s.root, filepath.FromSlash(base))
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return nil
				}
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				if path != dir && skipDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			if !seen[path] && s.Matches(path) {
				seen[path] = true
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", dir, err)
		}
	}
	slices.SortFunc(files, func(a, b string) int {
		switch {
		case a == b:
			return 0
		case natural.Less(a, b):
			return -1
		}
		return 1
	})
	s.log.Debug("content files", zap.Int("count", len(files)))
	return files, nil
}

// Scan reads every matching file.
func (s *Scanner) Scan(ctx context.Context) ([]Source, error) {
	files, err := s.Files(ctx)
	if err != nil {
		return nil, err
	}
	return s.Read(ctx, files)
}

// Read extracts candidates from paths concurrently. Files that disappeared
// are skipped; other read errors are collected and returned together with
// the sources that could be read. Results keep the order of paths.
func (s *Scanner) Read(ctx context.Context, paths []string) ([]Source, error) {
	results := make([]*Source, len(paths))

	var (
		mu   sync.Mutex
		errs error
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(p)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					s.log.Debug("content file vanished", zap.String("path", p))
					return nil
				}
				mu.Lock()
				errs = multierr.Append(errs, fmt.Errorf("read %s: %w", p, err))
				mu.Unlock()
				return nil
			}
			kind := extract.KindForPath(p)
			results[i] = &Source{Path: p, Kind: kind, Candidates: extract.Extract(kind, string(data))}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sources := make([]Source, 0, len(results))
	for _, r := range results {
		if r != nil {
			sources = append(sources, *r)
		}
	}
	return sources, errs
}
