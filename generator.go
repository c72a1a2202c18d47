// Package tailcss generates atomic CSS. A Generator owns one configuration
// snapshot; candidates found in sources or passed in explicitly are
// resolved against it, cached, and written as deterministic, ordered CSS.
//
//	g, err := tailcss.New(cfg)
//	out, err := g.GenerateCandidate(ctx, []string{"flex", "md:hover:bg-blue-500"})
package tailcss

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/maruel/natural"
	"go.uber.org/zap"

	"github.com/agiangrant/tailcss/config"
	"github.com/agiangrant/tailcss/content"
	"github.com/agiangrant/tailcss/diag"
	"github.com/agiangrant/tailcss/extract"
	"github.com/agiangrant/tailcss/tw"
	"github.com/agiangrant/tailcss/utility"
)

// Generator is safe for concurrent use. Reload swaps the snapshot; calls
// already running finish against the one they started with.
type Generator struct {
	cur     atomic.Pointer[session]
	log     *zap.Logger
	workers int
	root    string
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// WithWorkers bounds concurrent candidate resolution. n < 1 keeps the
// default of GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.workers = n
		}
	}
}

// WithRoot sets the directory content globs are relative to. The default
// is the working directory.
func WithRoot(dir string) Option {
	return func(g *Generator) {
		g.root = dir
	}
}

// New builds a Generator for cfg. Invalid configuration and registration
// conflicts are reported here.
func New(cfg *config.Config, opts ...Option) (*Generator, error) {
	g := &Generator{
		log:     zap.NewNop(),
		workers: runtime.GOMAXPROCS(0),
		root:    ".",
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.Reload(cfg); err != nil {
		return nil, err
	}
	return g, nil
}

// Reload replaces the snapshot, cache and ledger with ones built from cfg.
// On error the current snapshot stays in place.
func (g *Generator) Reload(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}
	s, err := newSession(cfg, g.root, g.log)
	if err != nil {
		return err
	}
	if s.scanner != nil {
		s.scanner.SetWorkers(g.workers)
	}
	if old := g.cur.Swap(s); old != nil {
		g.log.Debug("Session replaced", zap.Stringer("old", old.id), zap.Stringer("new", s.id))
	}
	return nil
}

// Generate scans the configured content and returns CSS for every
// candidate discovered in this session so far. Files that cannot be read
// are logged and skipped.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	s := g.cur.Load()
	if s.scanner != nil {
		sources, err := s.scanner.Scan(ctx)
		if err != nil {
			if sources == nil {
				return "", err
			}
			g.log.Warn("Some content could not be read", zap.Error(err))
		}
		if err := g.absorb(ctx, s, sources); err != nil {
			return "", err
		}
	}
	return g.emitAll(ctx, s)
}

// Update re-reads the given content files and returns CSS for every
// candidate discovered so far. Paths that are not content are ignored.
func (g *Generator) Update(ctx context.Context, paths []string) (string, error) {
	s := g.cur.Load()
	if s.scanner != nil {
		var matching []string
		for _, p := range paths {
			if s.scanner.Matches(p) {
				matching = append(matching, p)
			}
		}
		sources, err := s.scanner.Read(ctx, matching)
		if err != nil {
			if ctx.Err() != nil {
				return "", err
			}
			g.log.Warn("Some content could not be read", zap.Error(err))
		}
		if err := g.absorb(ctx, s, sources); err != nil {
			return "", err
		}
	}
	return g.emitAll(ctx, s)
}

func (g *Generator) absorb(ctx context.Context, s *session, sources []content.Source) error {
	var candidates []string
	for _, src := range sources {
		candidates = append(candidates, src.Candidates...)
	}
	candidates = dedupe(candidates)
	if err := compile(ctx, s, candidates, g.workers); err != nil {
		return err
	}
	s.commit(candidates)
	return nil
}

func (g *Generator) emitAll(ctx context.Context, s *session) (string, error) {
	all := s.discovered()
	if err := compile(ctx, s, all, g.workers); err != nil {
		return "", err
	}
	indexes := make([]int, len(all))
	for i := range all {
		indexes[i] = i
	}
	return render(s, all, indexes), nil
}

// Pair is a candidate with the variant context it was found in.
type Pair struct {
	// Context is a variant chain without the trailing colon: "md:hover".
	Context   string
	Candidate string
}

// Raw joins the context and the candidate: "md:hover" + "flex" →
// "md:hover:flex".
func (p Pair) Raw() string {
	if p.Context == "" {
		return p.Candidate
	}
	return p.Context + ":" + p.Candidate
}

// GenerateWith returns CSS for exactly the given pairs.
func (g *Generator) GenerateWith(ctx context.Context, pairs []Pair) (string, error) {
	candidates := make([]string, 0, len(pairs))
	for _, p := range pairs {
		candidates = append(candidates, p.Raw())
	}
	return g.GenerateCandidate(ctx, candidates)
}

// GenerateString extracts candidates from input and returns CSS for them.
func (g *Generator) GenerateString(ctx context.Context, input string, kind extract.Kind) (string, error) {
	return g.GenerateCandidate(ctx, extract.Extract(kind, input))
}

// GenerateCandidate returns CSS for exactly the given candidates. They are
// also added to the session's discovered set.
func (g *Generator) GenerateCandidate(ctx context.Context, candidates []string) (string, error) {
	s := g.cur.Load()
	candidates = dedupe(candidates)
	if err := compile(ctx, s, candidates, g.workers); err != nil {
		return "", err
	}
	indexes := s.commit(candidates)
	return render(s, candidates, indexes), nil
}

// Explanation is what one candidate parses and compiles to.
type Explanation struct {
	Candidate tw.Candidate
	CSS       string
	Err       error
}

// Explain compiles raw on its own. The result is cached like any other
// candidate, but raw is not added to the discovered set, so it never shows
// up in Generate output or Unmatched.
func (g *Generator) Explain(raw string) Explanation {
	s := g.cur.Load()
	c, err := s.parser.Parse(raw)
	if err != nil {
		return Explanation{Err: err}
	}
	e := s.lookup(raw)
	if e.err != nil {
		return Explanation{Candidate: c, Err: e.err}
	}
	return Explanation{Candidate: c, CSS: render(s, []string{raw}, []int{0})}
}

// Diagnostic describes a discovered candidate that produced no CSS.
type Diagnostic struct {
	Candidate string
	Kind      diag.Kind
	Message   string
}

// Unmatched lists the discovered candidates that failed, in natural order
// of the candidate string.
func (g *Generator) Unmatched() []Diagnostic {
	s := g.cur.Load()
	var out []Diagnostic
	for _, c := range s.discovered() {
		e, ok := s.cache.Load(c)
		if !ok || e.err == nil {
			continue
		}
		out = append(out, Diagnostic{Candidate: c, Kind: diag.KindOf(e.err), Message: e.err.Error()})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return natural.Less(out[i].Candidate, out[j].Candidate)
	})
	return out
}

// Collisions lists utilities a later layer overrode.
func (g *Generator) Collisions() []utility.Collision {
	return g.cur.Load().registry.Collisions()
}

// Stats describes the current session.
type Stats struct {
	Session    uuid.UUID
	Created    time.Time
	Utilities  int
	Discovered int
	Matched    int
	Unmatched  int
	// Pending counts discovered candidates not compiled yet, such as those
	// left behind by a cancelled call.
	Pending int
	Cached  int
}

func (g *Generator) Stats() Stats {
	s := g.cur.Load()
	st := Stats{
		Session:   s.id,
		Created:   s.created,
		Utilities: s.registry.Len(),
		Cached:    s.cache.Size(),
	}
	for _, c := range s.discovered() {
		st.Discovered++
		e, ok := s.cache.Load(c)
		switch {
		case !ok:
			st.Pending++
		case e.err == nil:
			st.Matched++
		default:
			st.Unmatched++
		}
	}
	return st
}

// ContentDirs lists the directories the configured content lives in, for
// watchers. It is empty when no content is configured.
func (g *Generator) ContentDirs() []string {
	if s := g.cur.Load(); s.scanner != nil {
		return s.scanner.Dirs()
	}
	return nil
}

// IsContent reports whether path is matched by the configured content.
func (g *Generator) IsContent(path string) bool {
	s := g.cur.Load()
	return s.scanner != nil && s.scanner.Matches(path)
}
