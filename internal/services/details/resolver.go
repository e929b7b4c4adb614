package details

import (
	"context"
	"fmt"

	"dogmatch/internal/domain/models"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 10

//go:generate mockgen -source=resolver.go -destination=../../mocks/mock_dog_fetcher.go -package=mocks
type DogFetcher interface {
	Dogs(ctx context.Context, ids []string) ([]models.DogRecord, error)
}

// Card - одна карточка собаки. Dog == nil пока детали не получены
// (или запрос упал - тогда карточка так и остается в загрузке).
type Card struct {
	ID      string
	Dog     *models.DogRecord
	Loading bool
}

type Resolver struct {
	fetcher     DogFetcher
	log         zerolog.Logger
	concurrency int
}

func NewResolver(fetcher DogFetcher, log *zerolog.Logger, concurrency int) *Resolver {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Resolver{
		fetcher:     fetcher,
		log:         log.With().Str("component", "details").Logger(),
		concurrency: concurrency,
	}
}

// Resolve fetches details for ids in one batch and returns them in input order.
// Records are paired by their id field, never by position.
func (r *Resolver) Resolve(ctx context.Context, ids []string) ([]models.DogRecord, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no dog ids to resolve", models.ErrInvalidData)
	}

	records, err := r.fetcher.Dogs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dogs: %w", err)
	}

	byID := make(map[string]models.DogRecord, len(records))
	for _, rec := range records {
		byID[rec.ID] = rec
	}

	result := make([]models.DogRecord, 0, len(ids))
	for _, id := range ids {
		rec, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: dog %s missing in response", models.ErrUnfound, id)
		}
		result = append(result, rec)
	}

	if len(records) != len(ids) {
		r.log.Warn().Int("requested", len(ids)).Int("received", len(records)).Msg("dogs response size mismatch")
	}
	return result, nil
}

// ResolveEach resolves every card with its own single-id request, in parallel.
// Siblings are not batched together. A failed card stays loading and is not escalated.
func (r *Resolver) ResolveEach(ctx context.Context, ids []string) []Card {
	cards := make([]Card, len(ids))

	g := new(errgroup.Group)
	g.SetLimit(r.concurrency)

	for i, id := range ids {
		cards[i] = Card{ID: id, Loading: true}
		g.Go(func() error {
			records, err := r.Resolve(ctx, []string{id})
			if err != nil {
				r.log.Error().Err(err).Str("dog_id", id).Msg("failed to resolve dog details")
				return nil
			}
			cards[i] = Card{ID: id, Dog: &records[0]}
			return nil
		})
	}

	_ = g.Wait()
	return cards
}
