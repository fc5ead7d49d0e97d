package resource

import (
	"context"
	"sync"

	"club-console/internal/platform/cache"
	"club-console/internal/platform/logging"
)

// FetchFunc loads one page of an entity from the backend.
type FetchFunc[T any] func(ctx context.Context, params Params) (Page[T], error)

// State is an immutable snapshot of a resource. Items and TotalCount always
// hold the last successful page; a failed fetch only populates Err.
type State[T any] struct {
	Items      []T
	TotalCount int
	Params     Params
	Loading    bool
	Err        error
	Generation uint64
}

// Resource coordinates paginated fetching for one entity list. Every param
// change triggers a fetch; when fetches overlap, only the latest one may
// publish its result. Safe for concurrent use.
type Resource[T any] struct {
	fetch    FetchFunc[T]
	defaults Params
	logger   *logging.Logger
	cache    *cache.Store
	cacheKey string

	mu         sync.Mutex
	params     Params
	state      State[T]
	generation uint64
	cancel     context.CancelFunc
	subs       []func(State[T])
}

// Option configures a Resource.
type Option[T any] func(*Resource[T])

// WithLogger attaches a logger for fetch failures.
func WithLogger[T any](l *logging.Logger) Option[T] {
	return func(r *Resource[T]) { r.logger = l }
}

// WithCache enables read-through caching of pages under the given prefix.
// Only successful pages are cached.
func WithCache[T any](store *cache.Store, keyPrefix string) Option[T] {
	return func(r *Resource[T]) {
		r.cache = store
		r.cacheKey = keyPrefix
	}
}

// New builds a resource with the given defaults. No fetch is issued until
// Refresh or a param mutation.
func New[T any](fetch FetchFunc[T], defaults Params, opts ...Option[T]) *Resource[T] {
	r := &Resource[T]{
		fetch:    fetch,
		defaults: defaults,
		params:   defaults,
		logger:   logging.Default(),
	}
	r.state.Params = defaults
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns a snapshot of the current state. The items slice is copied;
// callers may not observe later mutations through it.
func (r *Resource[T]) State() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// Params returns the current pagination tuple.
func (r *Resource[T]) Params() Params {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.params
}

// Subscribe registers fn to run after every state transition. fn receives a
// snapshot and may call State or the mutators without deadlocking.
func (r *Resource[T]) Subscribe(fn func(State[T])) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = append(r.subs, fn)
}

// SetPage moves to pageIndex with the given page size and refetches when the
// tuple changed. Negative pages clamp to 0; page sizes below 1 keep the
// default size.
func (r *Resource[T]) SetPage(ctx context.Context, pageIndex, pageSize int) {
	if pageIndex < 0 {
		pageIndex = 0
	}
	if pageSize < 1 {
		pageSize = r.defaults.PageSize
	}

	r.mu.Lock()
	next := r.params
	next.Page = pageIndex
	next.PageSize = pageSize
	if next.Equal(r.params) {
		r.mu.Unlock()
		return
	}
	r.params = next
	r.refetchLocked(ctx)
}

// SetSort applies a sort pair and refetches when the tuple changed. An empty
// order resets both field and order to the resource defaults, so a tri-state
// column header cycles asc, desc, default.
func (r *Resource[T]) SetSort(ctx context.Context, field string, order Order) {
	r.mu.Lock()
	next := r.params
	if order == "" {
		next.Sort = r.defaults.Sort
		next.Order = r.defaults.Order
	} else {
		next.Sort = field
		next.Order = order
	}
	if next.Equal(r.params) {
		r.mu.Unlock()
		return
	}
	r.params = next
	r.refetchLocked(ctx)
}

// Refresh refetches the current page unconditionally.
func (r *Resource[T]) Refresh(ctx context.Context) {
	r.mu.Lock()
	r.refetchLocked(ctx)
}

// ClearError drops the error from the last failed fetch, keeping items.
func (r *Resource[T]) ClearError() {
	r.mu.Lock()
	if r.state.Err == nil {
		r.mu.Unlock()
		return
	}
	r.state.Err = nil
	r.publishLocked()
}

// refetchLocked starts a fetch for the current params. The caller must hold
// the lock; it is released before the call returns. Each fetch gets a
// generation number; a fetch that finishes after a newer one started may not
// publish anything, so pages can never arrive out of order.
func (r *Resource[T]) refetchLocked(ctx context.Context) {
	if r.cancel != nil {
		r.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.generation++
	gen := r.generation
	params := r.params
	r.state.Loading = true
	r.state.Params = params
	r.state.Generation = gen
	r.publishLocked()

	go r.run(fetchCtx, gen, params)
}

func (r *Resource[T]) run(ctx context.Context, gen uint64, params Params) {
	page, err := r.load(ctx, params)

	r.mu.Lock()
	if gen != r.generation {
		// A newer request owns the state now; drop this result.
		r.mu.Unlock()
		return
	}
	r.state.Loading = false
	if err != nil {
		r.logger.WarnContext(ctx, "resource fetch failed", "error", err)
		r.state.Err = err
		r.publishLocked()
		return
	}
	r.state.Err = nil
	r.state.Items = page.Items
	r.state.TotalCount = page.TotalCount
	r.publishLocked()
}

func (r *Resource[T]) load(ctx context.Context, params Params) (Page[T], error) {
	if r.cache == nil {
		return r.fetch(ctx, params)
	}

	key := r.cacheKey + "?" + params.CacheKey()
	value, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return r.fetch(ctx, params)
	})
	if err != nil {
		return Page[T]{}, err
	}
	page, ok := value.(Page[T])
	if !ok {
		// A foreign value under our key; bypass the cache for this read.
		return r.fetch(ctx, params)
	}
	return page, nil
}

// publishLocked snapshots state and notifies subscribers outside the lock.
// The caller must hold the lock; it is released before the call returns.
func (r *Resource[T]) publishLocked() {
	snapshot := r.snapshotLocked()
	subs := make([]func(State[T]), len(r.subs))
	copy(subs, r.subs)
	r.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

func (r *Resource[T]) snapshotLocked() State[T] {
	s := r.state
	s.Items = make([]T, len(r.state.Items))
	copy(s.Items, r.state.Items)
	return s
}
