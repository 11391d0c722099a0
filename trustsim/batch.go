// SPDX-License-Identifier: MIT

package trustsim

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RunAll runs every configuration on its own Engine and returns the results
// in input order. At most limit runs execute at once; limit <= 0 means no
// bound. The first failure cancels the remaining runs.
//
// opts are applied to every engine, so they must be safe to share:
// WithRand is rejected with ErrSharedRand. Evaluators, banders and slog
// loggers are immutable or concurrency-safe and may be shared.
func RunAll(ctx context.Context, cfgs []Config, limit int, opts ...Option) ([]*Result, error) {
	if newEngineOptions(opts...).rng != nil {
		return nil, fmt.Errorf("RunAll: %w", ErrSharedRand)
	}
	for k, cfg := range cfgs {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("RunAll: config %d: %w", k, err)
		}
	}

	results := make([]*Result, len(cfgs))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for k := range cfgs {
		g.Go(func() error {
			e, err := New(cfgs[k], opts...)
			if err != nil {
				return fmt.Errorf("config %d: %w", k, err)
			}
			res, err := e.Run(gctx)
			if err != nil {
				return fmt.Errorf("config %d: %w", k, err)
			}
			results[k] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("RunAll: %w", err)
	}

	return results, nil
}
