package session

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"dogmatch/internal/domain/favorites"
	"dogmatch/internal/domain/filter"
	"dogmatch/internal/domain/models"
	"dogmatch/internal/services/details"
	"dogmatch/internal/services/match"
	"dogmatch/internal/services/search"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=session.go -destination=../../mocks/mock_catalog.go -package=mocks
type Catalog interface {
	search.Searcher
	details.DogFetcher
	match.Matcher
	Breeds(ctx context.Context) ([]string, error)
	Logout(ctx context.Context) error
}

type Options struct {
	RequestTimeout    time.Duration
	DetailConcurrency int
}

// Session - состояние одного пользователя: фильтры, выдача, избранное, матч.
// Each piece is mutated only through its owner; the session serialises the
// mutation paths so filter changes reach the search controller in order.
type Session struct {
	ID        uuid.UUID
	UserName  string
	ExpiresAt time.Time

	catalog Catalog
	log     zerolog.Logger

	search  *search.Controller
	match   *match.Selector
	details *details.Resolver

	mu        sync.Mutex
	filter    *filter.Filter
	favorites *favorites.Set
	breeds    []string

	closeOnce sync.Once
}

// New creates the session and issues the initial search with default filters.
func New(id uuid.UUID, userName string, expiresAt time.Time, catalog Catalog, log *zerolog.Logger, opts Options) *Session {
	s := &Session{
		ID:        id,
		UserName:  userName,
		ExpiresAt: expiresAt,
		catalog:   catalog,
		log:       log.With().Str("session_id", id.String()).Logger(),
		filter:    filter.New(),
		favorites: favorites.New(),
	}

	s.search = search.NewController(catalog, &s.log,
		search.WithTimeout(opts.RequestTimeout),
		search.WithPageClamped(s.syncClampedPage),
	)
	s.match = match.NewSelector(catalog, &s.log)
	s.details = details.NewResolver(catalog, &s.log, opts.DetailConcurrency)

	s.search.Submit(s.filter.Snapshot())
	return s
}

// syncClampedPage переносит страницу, выбранную контроллером, в фильтры,
// если с момента запроса фильтры не менялись
func (s *Session) syncClampedPage(from filter.State, page int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.filter.Snapshot().Equal(from) {
		s.filter.SetPage(page)
	}
}

// mutateFilter применяет изменение и сразу отправляет новый снимок в поиск
func (s *Session) mutateFilter(fn func(f *filter.Filter) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.filter); err != nil {
		return err
	}
	s.search.Submit(s.filter.Snapshot())
	return nil
}

func (s *Session) SetBreeds(breeds []string) {
	_ = s.mutateFilter(func(f *filter.Filter) error {
		f.SetBreeds(breeds)
		return nil
	})
}

func (s *Session) SetZipCodes(zipCodes []string) {
	_ = s.mutateFilter(func(f *filter.Filter) error {
		f.SetZipCodes(zipCodes)
		return nil
	})
}

func (s *Session) SetAgeRange(ageMin, ageMax int) {
	_ = s.mutateFilter(func(f *filter.Filter) error {
		f.SetAgeRange(ageMin, ageMax)
		return nil
	})
}

func (s *Session) SetSort(sort models.Sort) error {
	return s.mutateFilter(func(f *filter.Filter) error {
		return f.SetSort(sort)
	})
}

func (s *Session) SetPage(page int) {
	_ = s.mutateFilter(func(f *filter.Filter) error {
		f.SetPage(page)
		return nil
	})
}

func (s *Session) Filters() filter.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter.Snapshot()
}

func (s *Session) Search() search.Snapshot {
	return s.search.Snapshot()
}

func (s *Session) AwaitSearch(ctx context.Context) (search.Snapshot, error) {
	return s.search.Await(ctx)
}

func (s *Session) ToggleFavorite(id string) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, fmt.Errorf("%w: empty dog id", models.ErrInvalidData)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.Toggle(id), nil
}

func (s *Session) Favorites() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.IDs()
}

func (s *Session) GenerateMatch(ctx context.Context) (string, error) {
	ids := s.Favorites()
	return s.match.Generate(ctx, ids)
}

func (s *Session) Match() string {
	return s.match.Current()
}

// Cards resolves each id as an independent card.
func (s *Session) Cards(ctx context.Context, ids []string) []details.Card {
	return s.details.ResolveEach(ctx, ids)
}

func (s *Session) Dog(ctx context.Context, id string) (models.DogRecord, error) {
	records, err := s.details.Resolve(ctx, []string{id})
	if err != nil {
		return models.DogRecord{}, err
	}
	return records[0], nil
}

// Breeds возвращает список пород. Ошибка не пробрасывается: список остается пустым,
// а следующая попытка будет при следующем обращении.
func (s *Session) Breeds(ctx context.Context) []string {
	s.mu.Lock()
	cached := s.breeds
	s.mu.Unlock()
	if cached != nil {
		return slices.Clone(cached)
	}

	breeds, err := s.catalog.Breeds(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to fetch breeds")
		return []string{}
	}
	if breeds == nil {
		breeds = []string{}
	}

	s.mu.Lock()
	s.breeds = breeds
	s.mu.Unlock()
	return slices.Clone(breeds)
}

func (s *Session) Logout(ctx context.Context) error {
	if err := s.catalog.Logout(ctx); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}
	return nil
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Close stops the search controller. Safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(s.search.Close)
}
