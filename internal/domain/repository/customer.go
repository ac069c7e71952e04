package repository

import (
	"context"

	"github.com/erpre/backoffice/internal/domain/model"
)

// CustomerRepository describes persistence operations for customers.
type CustomerRepository interface {
	GetByNo(ctx context.Context, no int64) (*model.Customer, error)
	List(ctx context.Context, search string, page, size int) ([]model.Customer, int64, error)
}
