package repository

import (
	"context"

	"github.com/erpre/backoffice/internal/domain/model"
)

// OrderRepository describes persistence operations for sales orders.
type OrderRepository interface {
	// Create stores the header and its lines in one transaction and
	// returns the assigned order number.
	Create(ctx context.Context, o *model.Order) (*model.Order, error)
	GetByNo(ctx context.Context, no int64) (*model.Order, error)
	List(ctx context.Context, f model.OrderFilter, page, size int) ([]model.Order, int64, error)
	// ReplaceLines swaps the full line set and the recomputed total.
	ReplaceLines(ctx context.Context, o *model.Order) error
	UpdateStatus(ctx context.Context, no int64, status model.OrderStatus) error
	CountByStatus(ctx context.Context, status model.OrderStatus) (int64, error)
	// MonthlyTotals aggregates approved order amounts per calendar month
	// of the given year.
	MonthlyTotals(ctx context.Context, year int) ([]model.MonthlyOrderTotal, error)
}
