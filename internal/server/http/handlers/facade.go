package handlers

import (
	"context"

	"github.com/erpre/backoffice/internal/domain/model"
	pkgAuth "github.com/erpre/backoffice/internal/pkg/auth"
	"github.com/erpre/backoffice/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, employeeID, password string) (*model.Employee, string, error)
	Logout(ctx context.Context, token string) error
	Authorize(ctx context.Context, token string) (*pkgAuth.TokenClaims, error)
}

// EmployeeFacade encapsulates employee account management.
type EmployeeFacade interface {
	RegisterEmployee(ctx context.Context, e *model.Employee, password string) (*model.Employee, error)
	Employee(ctx context.Context, id string) (*model.Employee, error)
	Employees(ctx context.Context, search string, page, size int) ([]model.Employee, int64, error)
	UpdateEmployee(ctx context.Context, e *model.Employee, password string) error
	DeleteEmployee(ctx context.Context, id string) error
}

// CatalogFacade serves customer, product and category lookups.
type CatalogFacade interface {
	Customer(ctx context.Context, no int64) (*model.Customer, error)
	Customers(ctx context.Context, search string, page, size int) ([]model.Customer, int64, error)
	Product(ctx context.Context, code string) (*model.Product, error)
	Products(ctx context.Context, search string, page, size int) ([]model.Product, int64, error)
	SearchProducts(ctx context.Context, code, name string, categoryID int64) ([]model.Product, error)
	Categories(ctx context.Context) ([]model.Category, error)
}

// PriceFacade encapsulates customer price operations exposed via HTTP.
type PriceFacade interface {
	Prices(ctx context.Context, f model.PriceFilter, sort model.PriceSort, page, size int) ([]model.PriceRecord, int64, error)
	SavePrices(ctx context.Context, records []model.PriceRecord) ([]model.PriceRecord, error)
	CheckPriceOverlap(ctx context.Context, customerNo int64, productCode string, start, end model.Date) ([]model.PriceRecord, error)
	PricesForPair(ctx context.Context, customerNo int64, productCode string) ([]model.PriceRecord, error)
	SetPricesDeleted(ctx context.Context, nos []int64, deleted bool) error
	DeletePrice(ctx context.Context, no int64) error
}

// OrderFacade encapsulates sales order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, o *model.Order) (*model.Order, error)
	Order(ctx context.Context, no int64) (*model.Order, error)
	Orders(ctx context.Context, f model.OrderFilter, page, size int) ([]model.Order, int64, error)
	UpdateOrder(ctx context.Context, no int64, o *model.Order) (*model.Order, error)
	DecideOrder(ctx context.Context, no int64, next model.OrderStatus, actor model.Role) error
	MonthlyOrderReport(ctx context.Context, year int) ([]usecase.MonthlyReportRow, error)
}

// BackofficeFacade aggregates the full set of operations used across handlers.
type BackofficeFacade interface {
	AuthFacade
	EmployeeFacade
	CatalogFacade
	PriceFacade
	OrderFacade
}
