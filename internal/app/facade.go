package app

import (
	"context"

	"github.com/erpre/backoffice/internal/domain/model"
	pkgAuth "github.com/erpre/backoffice/internal/pkg/auth"
	"github.com/erpre/backoffice/internal/usecase"
)

// BackofficeFacade aggregates the use cases behind the HTTP surface.
type BackofficeFacade struct {
	auth      *usecase.AuthUseCase
	employees *usecase.EmployeeUseCase
	catalog   *usecase.CatalogUseCase
	prices    *usecase.PriceUseCase
	orders    *usecase.OrderUseCase
	reports   *usecase.ReportUseCase
}

// NewBackofficeFacade constructs BackofficeFacade.
func NewBackofficeFacade(auth *usecase.AuthUseCase, employees *usecase.EmployeeUseCase,
	catalog *usecase.CatalogUseCase, prices *usecase.PriceUseCase,
	orders *usecase.OrderUseCase, reports *usecase.ReportUseCase) *BackofficeFacade {
	return &BackofficeFacade{
		auth:      auth,
		employees: employees,
		catalog:   catalog,
		prices:    prices,
		orders:    orders,
		reports:   reports,
	}
}

func (f *BackofficeFacade) Login(ctx context.Context, employeeID, password string) (*model.Employee, string, error) {
	return f.auth.Login(ctx, employeeID, password)
}

func (f *BackofficeFacade) Logout(ctx context.Context, token string) error {
	return f.auth.Logout(ctx, token)
}

func (f *BackofficeFacade) Authorize(ctx context.Context, token string) (*pkgAuth.TokenClaims, error) {
	return f.auth.Authorize(ctx, token)
}

func (f *BackofficeFacade) RegisterEmployee(ctx context.Context, e *model.Employee, password string) (*model.Employee, error) {
	return f.employees.Register(ctx, e, password)
}

func (f *BackofficeFacade) Employee(ctx context.Context, id string) (*model.Employee, error) {
	return f.employees.Get(ctx, id)
}

func (f *BackofficeFacade) Employees(ctx context.Context, search string, page, size int) ([]model.Employee, int64, error) {
	return f.employees.List(ctx, search, page, size)
}

func (f *BackofficeFacade) UpdateEmployee(ctx context.Context, e *model.Employee, password string) error {
	return f.employees.Update(ctx, e, password)
}

func (f *BackofficeFacade) DeleteEmployee(ctx context.Context, id string) error {
	return f.employees.Delete(ctx, id)
}

func (f *BackofficeFacade) Customer(ctx context.Context, no int64) (*model.Customer, error) {
	return f.catalog.Customer(ctx, no)
}

func (f *BackofficeFacade) Customers(ctx context.Context, search string, page, size int) ([]model.Customer, int64, error) {
	return f.catalog.Customers(ctx, search, page, size)
}

func (f *BackofficeFacade) Product(ctx context.Context, code string) (*model.Product, error) {
	return f.catalog.Product(ctx, code)
}

func (f *BackofficeFacade) Products(ctx context.Context, search string, page, size int) ([]model.Product, int64, error) {
	return f.catalog.Products(ctx, search, page, size)
}

func (f *BackofficeFacade) SearchProducts(ctx context.Context, code, name string, categoryID int64) ([]model.Product, error) {
	return f.catalog.SearchProducts(ctx, code, name, categoryID)
}

func (f *BackofficeFacade) Categories(ctx context.Context) ([]model.Category, error) {
	return f.catalog.Categories(ctx)
}

func (f *BackofficeFacade) Prices(ctx context.Context, filter model.PriceFilter, sort model.PriceSort, page, size int) ([]model.PriceRecord, int64, error) {
	return f.prices.List(ctx, filter, sort, page, size)
}

func (f *BackofficeFacade) SavePrices(ctx context.Context, records []model.PriceRecord) ([]model.PriceRecord, error) {
	return f.prices.SaveAll(ctx, records)
}

func (f *BackofficeFacade) CheckPriceOverlap(ctx context.Context, customerNo int64, productCode string, start, end model.Date) ([]model.PriceRecord, error) {
	return f.prices.CheckOverlap(ctx, customerNo, productCode, start, end)
}

func (f *BackofficeFacade) PricesForPair(ctx context.Context, customerNo int64, productCode string) ([]model.PriceRecord, error) {
	return f.prices.ByCustomerAndProduct(ctx, customerNo, productCode)
}

func (f *BackofficeFacade) SetPricesDeleted(ctx context.Context, nos []int64, deleted bool) error {
	return f.prices.SetDeleted(ctx, nos, deleted)
}

func (f *BackofficeFacade) DeletePrice(ctx context.Context, no int64) error {
	return f.prices.Delete(ctx, no)
}

func (f *BackofficeFacade) CreateOrder(ctx context.Context, o *model.Order) (*model.Order, error) {
	return f.orders.Create(ctx, o)
}

func (f *BackofficeFacade) Order(ctx context.Context, no int64) (*model.Order, error) {
	return f.orders.Get(ctx, no)
}

func (f *BackofficeFacade) Orders(ctx context.Context, filter model.OrderFilter, page, size int) ([]model.Order, int64, error) {
	return f.orders.List(ctx, filter, page, size)
}

func (f *BackofficeFacade) UpdateOrder(ctx context.Context, no int64, o *model.Order) (*model.Order, error) {
	return f.orders.Update(ctx, no, o)
}

func (f *BackofficeFacade) DecideOrder(ctx context.Context, no int64, next model.OrderStatus, actor model.Role) error {
	return f.orders.Decide(ctx, no, next, actor)
}

func (f *BackofficeFacade) MonthlyOrderReport(ctx context.Context, year int) ([]usecase.MonthlyReportRow, error) {
	return f.reports.MonthlyTotals(ctx, year)
}
