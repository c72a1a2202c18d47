package tailcss

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// compile resolves every candidate not yet cached, on at most workers
// goroutines. Per-candidate failures are cached like successes; only
// cancellation stops the batch.
func compile(ctx context.Context, s *session, candidates []string, workers int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, raw := range candidates {
		if _, ok := s.cache.Load(raw); ok {
			continue
		}
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s.lookup(raw)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// dedupe drops repeats, keeping first-seen order.
func dedupe(candidates []string) []string {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
