package client

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/erpre/backoffice/internal/server/http/dto"
)

// DefaultSearchDebounce is the delay between the last keystroke and the
// search refetch.
const DefaultSearchDebounce = 300 * time.Millisecond

// FetchFunc loads one page of items for the query.
type FetchFunc[Q, T any] func(ctx context.Context, query Q) (*dto.Page[T], error)

// ResultFunc receives the outcome of a fetch that was not superseded.
type ResultFunc[T any] func(page *dto.Page[T], err error)

// ListController drives a debounced-search, server-paginated list.
// Search input is debounced before refetching; page, sort and filter
// changes refetch immediately. Every fetch carries a request identity,
// and a response whose identity is no longer current is discarded, so a
// slow response can never overwrite fresher state.
type ListController[Q, T any] struct {
	fetch    FetchFunc[Q, T]
	onResult ResultFunc[T]
	debounce time.Duration

	mu      sync.Mutex
	query   Q
	timer   *time.Timer
	current uuid.UUID
	stopped bool
}

// NewListController constructs a controller around a fetch function and
// a result sink. A non-positive debounce falls back to the default.
func NewListController[Q, T any](fetch FetchFunc[Q, T], onResult ResultFunc[T], debounce time.Duration) *ListController[Q, T] {
	if debounce <= 0 {
		debounce = DefaultSearchDebounce
	}
	return &ListController[Q, T]{fetch: fetch, onResult: onResult, debounce: debounce}
}

// Query returns the current query state.
func (c *ListController[Q, T]) Query() Q {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// SetQuery replaces the query and refetches immediately. Used for page,
// sort and filter changes.
func (c *ListController[Q, T]) SetQuery(ctx context.Context, query Q) {
	c.mu.Lock()
	c.query = query
	c.cancelTimerLocked()
	id := c.nextRequestLocked()
	c.mu.Unlock()

	go c.run(ctx, id, query)
}

// SetSearch replaces the query but delays the refetch by the debounce
// window; a newer SetSearch or SetQuery within the window supersedes it.
func (c *ListController[Q, T]) SetSearch(ctx context.Context, query Q) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	c.query = query
	c.cancelTimerLocked()
	c.timer = time.AfterFunc(c.debounce, func() {
		c.mu.Lock()
		if c.stopped {
			c.mu.Unlock()
			return
		}
		snapshot := c.query
		id := c.nextRequestLocked()
		c.mu.Unlock()

		c.run(ctx, id, snapshot)
	})
}

// Refresh refetches the current query immediately.
func (c *ListController[Q, T]) Refresh(ctx context.Context) {
	c.SetQuery(ctx, c.Query())
}

// Stop cancels any pending debounce and marks in-flight responses stale.
func (c *ListController[Q, T]) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
	c.cancelTimerLocked()
	c.current = uuid.Nil
}

func (c *ListController[Q, T]) cancelTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *ListController[Q, T]) nextRequestLocked() uuid.UUID {
	c.current = uuid.New()
	return c.current
}

func (c *ListController[Q, T]) run(ctx context.Context, id uuid.UUID, query Q) {
	page, err := c.fetch(ctx, query)

	c.mu.Lock()
	stale := c.stopped || c.current != id
	c.mu.Unlock()
	if stale {
		return
	}
	c.onResult(page, err)
}
