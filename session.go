package tailcss

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v4"
	"go.uber.org/zap"

	"github.com/agiangrant/tailcss/config"
	"github.com/agiangrant/tailcss/content"
	"github.com/agiangrant/tailcss/css"
	"github.com/agiangrant/tailcss/resolve"
	"github.com/agiangrant/tailcss/theme"
	"github.com/agiangrant/tailcss/tw"
	"github.com/agiangrant/tailcss/utility"
	"github.com/agiangrant/tailcss/variant"
)

// entry is the memoized result for one candidate string.
type entry struct {
	fragment *css.Fragment
	err      error
}

// session is one configuration snapshot plus everything learned while
// using it. The snapshot fields are read-only after newSession; the cache
// and the ledger only grow.
type session struct {
	id      uuid.UUID
	created time.Time
	log     *zap.Logger
	pretty  bool

	registry *utility.Registry
	parser   *tw.Parser
	resolver *resolve.Resolver
	scanner  *content.Scanner

	cache *xsync.Map[string, *entry]

	mu     sync.Mutex
	ledger []string
	index  map[string]int
}

func newSession(cfg *config.Config, root string, log *zap.Logger) (*session, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	presets, err := cfg.LoadPresets()
	if err != nil {
		return nil, err
	}
	defs, err := cfg.Definitions()
	if err != nil {
		return nil, err
	}

	b := utility.NewBuilder(log)
	for _, p := range presets {
		b.Layer(p.Name, p.Utilities...)
	}
	registry, err := b.Layer(config.UserLayer, defs...).Build()
	if err != nil {
		return nil, err
	}

	store := theme.NewStore(cfg.ThemeValue(presets))
	opts, err := cfg.VariantOptions()
	if err != nil {
		return nil, err
	}
	variants, err := variant.New(store, opts)
	if err != nil {
		return nil, fmt.Errorf("variants: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	s := &session{
		id:       id,
		created:  time.Now(),
		log:      log.With(zap.Stringer("session", id)),
		pretty:   cfg.Features.Pretty,
		registry: registry,
		parser:   tw.NewParser(registry, cfg.Features.Strict()),
		resolver: resolve.New(registry, store, variants, log),
		cache:    xsync.NewMap[string, *entry](),
		index:    make(map[string]int),
	}
	if len(cfg.Content) > 0 {
		if s.scanner, err = content.NewScanner(root, cfg.Content, log); err != nil {
			return nil, err
		}
	}

	s.log.Debug("Session created",
		zap.Int("utilities", registry.Len()),
		zap.Int("collisions", len(registry.Collisions())),
		zap.Bool("strict", cfg.Features.Strict()))
	return s, nil
}

// lookup returns the cached entry for raw, computing it on a miss. Two
// goroutines may compute the same entry; the first stored wins.
func (s *session) lookup(raw string) *entry {
	if e, ok := s.cache.Load(raw); ok {
		return e
	}
	e := s.compute(raw)
	actual, _ := s.cache.LoadOrStore(raw, e)
	return actual
}

func (s *session) compute(raw string) *entry {
	c, err := s.parser.Parse(raw)
	if err != nil {
		s.log.Debug("Candidate rejected", zap.String("candidate", raw), zap.Error(err))
		return &entry{err: err}
	}
	f, err := s.resolver.Resolve(c)
	if err != nil {
		s.log.Debug("Candidate unresolved", zap.String("candidate", raw), zap.Error(err))
		return &entry{err: err}
	}
	return &entry{fragment: f}
}

// commit appends the candidates not seen before to the ledger, in order,
// and returns the discovery index of every candidate.
func (s *session) commit(candidates []string) []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int, len(candidates))
	for i, c := range candidates {
		idx, ok := s.index[c]
		if !ok {
			idx = len(s.ledger)
			s.index[c] = idx
			s.ledger = append(s.ledger, c)
		}
		out[i] = idx
	}
	return out
}

// discovered returns a copy of the ledger.
func (s *session) discovered() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ledger...)
}
