package client

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// BulkResult counts how many per-id requests of a bulk operation
// succeeded and failed. Partial failure is surfaced as counts, not
// itemized errors.
type BulkResult struct {
	Succeeded int64
	Failed    int64
}

// runBulk fires one call per id concurrently and waits for all of them.
// Dispatch is unordered and unbounded; the selection size is the bound.
func runBulk(ctx context.Context, ids []int64, call func(ctx context.Context, id int64) error) BulkResult {
	var succeeded, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		g.Go(func() error {
			if err := call(gctx, id); err != nil {
				failed.Add(1)
				return nil
			}
			succeeded.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	return BulkResult{Succeeded: succeeded.Load(), Failed: failed.Load()}
}

// BulkOrderDecision approves or rejects every selected order
// concurrently and reports aggregate counts.
func BulkOrderDecision(ctx context.Context, api API, orderNos []int64, status string) BulkResult {
	return runBulk(ctx, orderNos, func(ctx context.Context, no int64) error {
		return api.UpdateOrderStatus(ctx, no, status)
	})
}

// BulkDeletePrices hard deletes every selected price record concurrently
// and reports aggregate counts.
func BulkDeletePrices(ctx context.Context, api API, priceNos []int64) BulkResult {
	return runBulk(ctx, priceNos, func(ctx context.Context, no int64) error {
		return api.DeletePrice(ctx, no)
	})
}
