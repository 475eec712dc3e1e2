// Package service provides application business logic: account, chat,
// discussion and profile operations plus the author-enrichment fan-out that
// every read endpoint shares.
package service

import (
	"context"
	"fmt"
	"sync"

	"mindease/internal/models"
	"mindease/internal/observability"
	"mindease/internal/repository"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// enrichConcurrency bounds the per-request author lookup fan-out so a large
// list cannot exhaust the connection pool.
const enrichConcurrency = 8

// Enricher resolves user IDs to user records with a concurrent, bounded,
// fail-fast fan-out. A failure of any single lookup fails the whole call;
// partial enrichment is never returned.
type Enricher struct {
	users repository.UserRepository
}

// NewEnricher returns a new Enricher over the given user repository.
func NewEnricher(users repository.UserRepository) *Enricher {
	return &Enricher{users: users}
}

// AuthorsByID fetches each distinct user once, concurrently. A referenced
// user that does not exist is a data-access error, not a skipped record: the
// upstream record sets must already guarantee referential validity.
func (e *Enricher) AuthorsByID(ctx context.Context, ids []uint) (map[uint]*models.User, error) {
	span, ctx := observability.NewSpan(ctx, "enrich.AuthorsByID")
	defer span.End()

	distinct := make([]uint, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}

	authors := make(map[uint]*models.User, len(distinct))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)

	for _, id := range distinct {
		g.Go(func() error {
			user, err := e.users.GetByID(gctx, id)
			if err != nil {
				if models.IsCode(err, "NOT_FOUND") {
					return models.NewInternalError(
						fmt.Errorf("referenced user %d missing during enrichment: %w", id, err))
				}
				return err
			}
			mu.Lock()
			authors[id] = user
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		observability.EnrichmentFailures.Inc()
		span.SetError(err)
		return nil, err
	}

	span.AddAttributes(attribute.Int("enrich.distinct_users", len(distinct)))
	observability.EnrichmentLookups.Observe(float64(len(distinct)))
	return authors, nil
}
