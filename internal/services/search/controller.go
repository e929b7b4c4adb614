package search

import (
	"context"
	"slices"
	"sync"
	"time"

	"dogmatch/internal/domain/filter"
	"dogmatch/internal/domain/models"
	"dogmatch/internal/domain/pagination"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=controller.go -destination=../../mocks/mock_searcher.go -package=mocks
type Searcher interface {
	Search(ctx context.Context, q models.SearchQuery) (models.SearchResult, error)
}

// PageClampedFunc вызывается, когда контроллер сам сдвинул страницу.
// from - снимок фильтров, для которого пришел ответ.
type PageClampedFunc func(from filter.State, page int)

// Snapshot - опубликованное состояние поиска
type Snapshot struct {
	Filter     filter.State
	Result     models.SearchResult
	Page       int
	TotalPages int
	Loading    bool
	Err        error
}

// Controller держит ровно один актуальный запрос поиска. Ответ применяется,
// только если его номер совпадает с последним выданным, остальные отбрасываются.
type Controller struct {
	searcher Searcher
	log      zerolog.Logger
	pageSize int
	timeout  time.Duration
	onClamp  PageClampedFunc

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	seq     uint64
	state   filter.State
	result  models.SearchResult
	loading bool
	err     error
	settled chan struct{} // закрыт, пока loading == false
	closed  bool
}

type Option func(*Controller)

func WithPageSize(size int) Option {
	return func(c *Controller) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Controller) {
		c.timeout = timeout
	}
}

func WithPageClamped(fn PageClampedFunc) Option {
	return func(c *Controller) {
		c.onClamp = fn
	}
}

func NewController(searcher Searcher, log *zerolog.Logger, opts ...Option) *Controller {
	ctx, cancel := context.WithCancel(context.Background())

	settled := make(chan struct{})
	close(settled)

	c := &Controller{
		searcher: searcher,
		log:      log.With().Str("component", "search").Logger(),
		pageSize: models.PageSize,
		ctx:      ctx,
		cancel:   cancel,
		settled:  settled,
		state:    filter.New().Snapshot(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit issues a search for the given filters and makes it the only request
// whose response may be applied. Returns the request sequence number.
func (c *Controller) Submit(state filter.State) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return c.seq
	}
	return c.issueLocked(state.Clone())
}

func (c *Controller) issueLocked(state filter.State) uint64 {
	c.seq++
	c.state = state
	if !c.loading {
		c.loading = true
		c.settled = make(chan struct{})
	}

	seq := c.seq
	c.wg.Add(1)
	go c.run(seq, state)

	c.log.Debug().
		Uint64("seq", seq).
		Int("page", state.Page).
		Str("sort", state.Sort.String()).
		Msg("search request issued")
	return seq
}

func (c *Controller) run(seq uint64, state filter.State) {
	defer c.wg.Done()

	ctx := c.ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	res, err := c.searcher.Search(ctx, state.Query(c.pageSize))
	c.apply(seq, state, res, err)
}

func (c *Controller) apply(seq uint64, state filter.State, res models.SearchResult, err error) {
	c.mu.Lock()

	if seq != c.seq {
		latest := c.seq
		c.mu.Unlock()
		c.log.Debug().Uint64("seq", seq).Uint64("latest", latest).Msg("stale search response dropped")
		return
	}

	if err != nil {
		c.result = models.SearchResult{}
		c.err = err
		c.settleLocked()
		c.mu.Unlock()
		c.log.Error().Err(err).Uint64("seq", seq).Msg("search request failed")
		return
	}

	c.err = nil
	c.result = models.SearchResult{IDs: slices.Clone(res.IDs), Total: res.Total}

	clamped := pagination.ClampPage(state.Page, res.Total, c.pageSize)
	if clamped == state.Page || c.closed {
		c.settleLocked()
		c.mu.Unlock()
		return
	}

	// страница вышла за пределы выдачи - сразу запрашиваем последнюю допустимую
	next := state.Clone()
	next.Page = clamped
	c.issueLocked(next)
	c.mu.Unlock()

	c.log.Info().
		Int("requested_page", state.Page).
		Int("page", clamped).
		Int("total", res.Total).
		Msg("page clamped to result range")

	if c.onClamp != nil {
		c.onClamp(state, clamped)
	}
}

func (c *Controller) settleLocked() {
	if c.loading {
		c.loading = false
		close(c.settled)
	}
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Filter:     c.state.Clone(),
		Result:     models.SearchResult{IDs: slices.Clone(c.result.IDs), Total: c.result.Total},
		Page:       c.state.Page,
		TotalPages: pagination.TotalPages(c.result.Total, c.pageSize),
		Loading:    c.loading,
		Err:        c.err,
	}
}

func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Await блокируется, пока не применится ответ на последний выданный запрос.
func (c *Controller) Await(ctx context.Context) (Snapshot, error) {
	for {
		c.mu.Lock()
		if !c.loading {
			snap := c.snapshotLocked()
			c.mu.Unlock()
			return snap, nil
		}
		settled := c.settled
		c.mu.Unlock()

		select {
		case <-settled:
		case <-ctx.Done():
			return c.Snapshot(), ctx.Err()
		}
	}
}

// Close cancels in-flight requests and waits for their goroutines to finish.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
}
