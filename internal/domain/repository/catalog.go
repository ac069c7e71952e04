package repository

import (
	"context"

	"github.com/erpre/backoffice/internal/domain/model"
)

// ProductRepository describes persistence operations for products.
type ProductRepository interface {
	GetByCode(ctx context.Context, code string) (*model.Product, error)
	Search(ctx context.Context, code, name string, categoryID int64) ([]model.Product, error)
	List(ctx context.Context, search string, page, size int) ([]model.Product, int64, error)
}

// CategoryRepository reads the product category tree.
type CategoryRepository interface {
	All(ctx context.Context) ([]model.Category, error)
}
