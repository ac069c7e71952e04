package usecase

import (
	"context"

	"github.com/erpre/backoffice/internal/domain/model"
	"github.com/erpre/backoffice/internal/domain/repository"
)

// CatalogUseCase serves customer, product and category lookups.
type CatalogUseCase struct {
	customers  repository.CustomerRepository
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(customers repository.CustomerRepository, products repository.ProductRepository,
	categories repository.CategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{customers: customers, products: products, categories: categories}
}

// Customer fetches one customer by number.
func (u *CatalogUseCase) Customer(ctx context.Context, no int64) (*model.Customer, error) {
	return u.customers.GetByNo(ctx, no)
}

// Customers returns a page of customers matching the search text.
func (u *CatalogUseCase) Customers(ctx context.Context, search string, page, size int) ([]model.Customer, int64, error) {
	return u.customers.List(ctx, search, page, size)
}

// Product fetches one product by code.
func (u *CatalogUseCase) Product(ctx context.Context, code string) (*model.Product, error) {
	return u.products.GetByCode(ctx, code)
}

// SearchProducts filters products by code, name and category.
func (u *CatalogUseCase) SearchProducts(ctx context.Context, code, name string, categoryID int64) ([]model.Product, error) {
	return u.products.Search(ctx, code, name, categoryID)
}

// Products returns a page of products matching the search text.
func (u *CatalogUseCase) Products(ctx context.Context, search string, page, size int) ([]model.Product, int64, error) {
	return u.products.List(ctx, search, page, size)
}

// Categories returns the full category tree ordered by path.
func (u *CatalogUseCase) Categories(ctx context.Context) ([]model.Category, error) {
	return u.categories.All(ctx)
}
