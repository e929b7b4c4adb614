package match

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"dogmatch/internal/domain/models"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=selector.go -destination=../../mocks/mock_matcher.go -package=mocks
type Matcher interface {
	Match(ctx context.Context, ids []string) (string, error)
}

// Selector хранит последний подобранный матч. Сбрасывается только вместе с сессией.
type Selector struct {
	matcher Matcher
	log     zerolog.Logger

	mu      sync.RWMutex
	current string
}

func NewSelector(matcher Matcher, log *zerolog.Logger) *Selector {
	return &Selector{
		matcher: matcher,
		log:     log.With().Str("component", "match").Logger(),
	}
}

// Generate requests a match for the given favorites. An empty list is a
// precondition violation. On failure the previous match is kept.
func (s *Selector) Generate(ctx context.Context, favorites []string) (string, error) {
	if len(favorites) == 0 {
		return "", fmt.Errorf("%w: match requires at least one favorite", models.ErrPrecondition)
	}

	id, err := s.matcher.Match(ctx, slices.Clone(favorites))
	if err != nil {
		s.log.Error().Err(err).Int("favorites", len(favorites)).Msg("match generation failed")
		return "", fmt.Errorf("failed to generate match: %w", err)
	}
	if id == "" {
		return "", fmt.Errorf("%w: empty match in response", models.ErrNetwork)
	}

	s.mu.Lock()
	s.current = id
	s.mu.Unlock()

	s.log.Info().Str("match", id).Int("favorites", len(favorites)).Msg("match generated")
	return id, nil
}

// Current returns the last generated match or "" if there is none yet.
func (s *Selector) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
