package repository

import (
	"context"

	"github.com/erpre/backoffice/internal/domain/model"
)

// PriceRepository describes persistence operations for customer prices.
type PriceRepository interface {
	// Save inserts the record when No is zero, updates it otherwise.
	Save(ctx context.Context, p *model.PriceRecord) (*model.PriceRecord, error)
	GetByNo(ctx context.Context, no int64) (*model.PriceRecord, error)
	List(ctx context.Context, f model.PriceFilter, sort model.PriceSort, page, size int) ([]model.PriceRecord, int64, error)
	// FindOverlapping returns non-deleted records of the same customer and
	// product whose ranges intersect [start, end].
	FindOverlapping(ctx context.Context, customerNo int64, productCode string, start, end model.Date) ([]model.PriceRecord, error)
	ByCustomerAndProduct(ctx context.Context, customerNo int64, productCode string) ([]model.PriceRecord, error)
	SetDeleted(ctx context.Context, no int64, deleted bool) error
	Delete(ctx context.Context, no int64) error
}
