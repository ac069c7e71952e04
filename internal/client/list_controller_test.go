package client_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/erpre/backoffice/internal/client"
	"github.com/erpre/backoffice/internal/server/http/dto"
)

type resultSink struct {
	mu      sync.Mutex
	queries []string
}

func (s *resultSink) add(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, q)
}

func (s *resultSink) all() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

func TestDebounceCollapsesKeystrokes(t *testing.T) {
	var fetched []string
	var mu sync.Mutex

	fetch := func(_ context.Context, q string) (*dto.Page[string], error) {
		mu.Lock()
		fetched = append(fetched, q)
		mu.Unlock()
		return &dto.Page[string]{}, nil
	}

	done := make(chan struct{}, 4)
	ctrl := client.NewListController(fetch, func(*dto.Page[string], error) {
		done <- struct{}{}
	}, 30*time.Millisecond)
	defer ctrl.Stop()

	ctx := context.Background()
	ctrl.SetSearch(ctx, "s")
	ctrl.SetSearch(ctx, "se")
	ctrl.SetSearch(ctx, "seo")

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("debounced fetch never fired")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(fetched) != 1 || fetched[0] != "seo" {
		t.Fatalf("expected single fetch of final text, got %v", fetched)
	}
}

func TestSetQueryFetchesImmediately(t *testing.T) {
	done := make(chan string, 1)
	fetch := func(_ context.Context, q string) (*dto.Page[string], error) {
		return &dto.Page[string]{Items: []string{q}}, nil
	}
	ctrl := client.NewListController(fetch, func(page *dto.Page[string], err error) {
		if err == nil && len(page.Items) == 1 {
			done <- page.Items[0]
		}
	}, time.Hour) // debounce must not apply to SetQuery
	defer ctrl.Stop()

	ctrl.SetQuery(context.Background(), "page-2")

	select {
	case got := <-done:
		if got != "page-2" {
			t.Fatalf("unexpected query %q", got)
		}
	case <-time.After(time.Second):
		t.Fatal("immediate fetch never fired")
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	fetch := func(_ context.Context, q string) (*dto.Page[string], error) {
		if q == "slow" {
			<-release
		}
		return &dto.Page[string]{Items: []string{q}}, nil
	}

	sink := &resultSink{}
	delivered := make(chan struct{}, 2)
	ctrl := client.NewListController(fetch, func(page *dto.Page[string], err error) {
		if err == nil {
			sink.add(page.Items[0])
		}
		delivered <- struct{}{}
	}, 10*time.Millisecond)
	defer ctrl.Stop()

	ctx := context.Background()
	ctrl.SetQuery(ctx, "slow")
	ctrl.SetQuery(ctx, "fresh")

	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("fresh fetch never delivered")
	}

	close(release) // the slow response lands after being superseded
	select {
	case <-delivered:
		t.Fatal("stale response must be discarded, not delivered")
	case <-time.After(100 * time.Millisecond):
	}

	if got := sink.all(); len(got) != 1 || got[0] != "fresh" {
		t.Fatalf("expected only the fresh result, got %v", got)
	}
}

func TestStopSuppressesPendingWork(t *testing.T) {
	fetched := make(chan struct{}, 1)
	fetch := func(context.Context, string) (*dto.Page[string], error) {
		fetched <- struct{}{}
		return &dto.Page[string]{}, nil
	}
	ctrl := client.NewListController(fetch, func(*dto.Page[string], error) {}, 20*time.Millisecond)

	ctrl.SetSearch(context.Background(), "abandoned")
	ctrl.Stop()

	select {
	case <-fetched:
		t.Fatal("fetch fired after Stop")
	case <-time.After(100 * time.Millisecond):
	}
}
