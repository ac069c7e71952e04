package usecase

import (
	"context"

	domainErrors "github.com/erpre/backoffice/internal/domain/errors"
	"github.com/erpre/backoffice/internal/domain/model"
	"github.com/erpre/backoffice/internal/domain/repository"
)

// PriceUseCase manages customer-specific product prices.
type PriceUseCase struct {
	prices repository.PriceRepository
}

// NewPriceUseCase constructs PriceUseCase.
func NewPriceUseCase(prices repository.PriceRepository) *PriceUseCase {
	return &PriceUseCase{prices: prices}
}

// ValidateRecord checks the submit-time invariants of a price record.
func ValidateRecord(p model.PriceRecord) error {
	if p.Amount <= 0 {
		return domainErrors.ErrInvalidAmount
	}
	if p.StartDate.IsZero() || p.EndDate.IsZero() || p.StartDate.After(p.EndDate) {
		return domainErrors.ErrInvalidDateRange
	}
	return nil
}

// SaveAll validates and persists each record; inserts when No is zero,
// updates otherwise. Records are applied in order so a shrink submitted
// together with its candidate commits first.
func (u *PriceUseCase) SaveAll(ctx context.Context, records []model.PriceRecord) ([]model.PriceRecord, error) {
	saved := make([]model.PriceRecord, 0, len(records))
	for _, rec := range records {
		if err := ValidateRecord(rec); err != nil {
			return nil, err
		}
		result, err := u.prices.Save(ctx, &rec)
		if err != nil {
			return nil, err
		}
		saved = append(saved, *result)
	}
	return saved, nil
}

// CheckOverlap returns active records of the pair whose ranges intersect
// the candidate range.
func (u *PriceUseCase) CheckOverlap(ctx context.Context, customerNo int64, productCode string, start, end model.Date) ([]model.PriceRecord, error) {
	if start.IsZero() || end.IsZero() || start.After(end) {
		return nil, domainErrors.ErrInvalidDateRange
	}
	return u.prices.FindOverlapping(ctx, customerNo, productCode, start, end)
}

// List returns one page of price records for the filter.
func (u *PriceUseCase) List(ctx context.Context, f model.PriceFilter, sort model.PriceSort, page, size int) ([]model.PriceRecord, int64, error) {
	return u.prices.List(ctx, f, sort, page, size)
}

// ByCustomerAndProduct returns every record of the pair, deleted included.
func (u *PriceUseCase) ByCustomerAndProduct(ctx context.Context, customerNo int64, productCode string) ([]model.PriceRecord, error) {
	return u.prices.ByCustomerAndProduct(ctx, customerNo, productCode)
}

// SetDeleted soft deletes or restores each listed record.
func (u *PriceUseCase) SetDeleted(ctx context.Context, nos []int64, deleted bool) error {
	for _, no := range nos {
		if err := u.prices.SetDeleted(ctx, no, deleted); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the record permanently.
func (u *PriceUseCase) Delete(ctx context.Context, no int64) error {
	return u.prices.Delete(ctx, no)
}
