package test

import (
	"context"

	"github.com/erpre/backoffice/internal/domain/model"
	pkgAuth "github.com/erpre/backoffice/internal/pkg/auth"
	"github.com/erpre/backoffice/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	LoginFn     func(context.Context, string, string) (*model.Employee, string, error)
	LogoutFn    func(context.Context, string) error
	AuthorizeFn func(context.Context, string) (*pkgAuth.TokenClaims, error)
}

// Login delegates to the provided function or accepts any credentials.
func (s AuthFacadeStub) Login(ctx context.Context, employeeID, password string) (*model.Employee, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, employeeID, password)
	}
	return &model.Employee{ID: employeeID, Role: model.RoleStaff}, "token", nil
}

// Logout delegates to the provided function or succeeds.
func (s AuthFacadeStub) Logout(ctx context.Context, token string) error {
	if s.LogoutFn != nil {
		return s.LogoutFn(ctx, token)
	}
	return nil
}

// Authorize delegates to the provided function or returns a staff identity.
func (s AuthFacadeStub) Authorize(ctx context.Context, token string) (*pkgAuth.TokenClaims, error) {
	if s.AuthorizeFn != nil {
		return s.AuthorizeFn(ctx, token)
	}
	return &pkgAuth.TokenClaims{EmployeeID: "emp", Role: model.RoleStaff}, nil
}

// EmployeeFacadeStub provides controllable behaviour for employee endpoints.
type EmployeeFacadeStub struct {
	RegisterFn  func(context.Context, *model.Employee, string) (*model.Employee, error)
	EmployeeFn  func(context.Context, string) (*model.Employee, error)
	EmployeesFn func(context.Context, string, int, int) ([]model.Employee, int64, error)
	UpdateFn    func(context.Context, *model.Employee, string) error
	DeleteFn    func(context.Context, string) error
}

func (s EmployeeFacadeStub) RegisterEmployee(ctx context.Context, e *model.Employee, password string) (*model.Employee, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, e, password)
	}
	return e, nil
}

func (s EmployeeFacadeStub) Employee(ctx context.Context, id string) (*model.Employee, error) {
	if s.EmployeeFn != nil {
		return s.EmployeeFn(ctx, id)
	}
	return &model.Employee{ID: id, Role: model.RoleStaff}, nil
}

func (s EmployeeFacadeStub) Employees(ctx context.Context, search string, page, size int) ([]model.Employee, int64, error) {
	if s.EmployeesFn != nil {
		return s.EmployeesFn(ctx, search, page, size)
	}
	return []model.Employee{{ID: "emp"}}, 1, nil
}

func (s EmployeeFacadeStub) UpdateEmployee(ctx context.Context, e *model.Employee, password string) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, e, password)
	}
	return nil
}

func (s EmployeeFacadeStub) DeleteEmployee(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// CatalogFacadeStub serves fixed customers, products and categories.
type CatalogFacadeStub struct {
	CustomerFn       func(context.Context, int64) (*model.Customer, error)
	CustomersFn      func(context.Context, string, int, int) ([]model.Customer, int64, error)
	ProductFn        func(context.Context, string) (*model.Product, error)
	ProductsFn       func(context.Context, string, int, int) ([]model.Product, int64, error)
	SearchProductsFn func(context.Context, string, string, int64) ([]model.Product, error)
	CategoriesFn     func(context.Context) ([]model.Category, error)
}

func (s CatalogFacadeStub) Customer(ctx context.Context, no int64) (*model.Customer, error) {
	if s.CustomerFn != nil {
		return s.CustomerFn(ctx, no)
	}
	return &model.Customer{No: no, Name: "Acme"}, nil
}

func (s CatalogFacadeStub) Customers(ctx context.Context, search string, page, size int) ([]model.Customer, int64, error) {
	if s.CustomersFn != nil {
		return s.CustomersFn(ctx, search, page, size)
	}
	return []model.Customer{{No: 1, Name: "Acme"}}, 1, nil
}

func (s CatalogFacadeStub) Product(ctx context.Context, code string) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, code)
	}
	return &model.Product{Code: code, Name: "Widget"}, nil
}

func (s CatalogFacadeStub) Products(ctx context.Context, search string, page, size int) ([]model.Product, int64, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, search, page, size)
	}
	return []model.Product{{Code: "P1", Name: "Widget"}}, 1, nil
}

func (s CatalogFacadeStub) SearchProducts(ctx context.Context, code, name string, categoryID int64) ([]model.Product, error) {
	if s.SearchProductsFn != nil {
		return s.SearchProductsFn(ctx, code, name, categoryID)
	}
	return []model.Product{{Code: "P1", Name: "Widget"}}, nil
}

func (s CatalogFacadeStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []model.Category{{ID: 1, Name: "Tools"}}, nil
}

// PriceFacadeStub provides controllable behaviour for price endpoints.
type PriceFacadeStub struct {
	PricesFn        func(context.Context, model.PriceFilter, model.PriceSort, int, int) ([]model.PriceRecord, int64, error)
	SavePricesFn    func(context.Context, []model.PriceRecord) ([]model.PriceRecord, error)
	CheckOverlapFn  func(context.Context, int64, string, model.Date, model.Date) ([]model.PriceRecord, error)
	PricesForPairFn func(context.Context, int64, string) ([]model.PriceRecord, error)
	SetDeletedFn    func(context.Context, []int64, bool) error
	DeleteFn        func(context.Context, int64) error
}

func (s PriceFacadeStub) Prices(ctx context.Context, f model.PriceFilter, sort model.PriceSort, page, size int) ([]model.PriceRecord, int64, error) {
	if s.PricesFn != nil {
		return s.PricesFn(ctx, f, sort, page, size)
	}
	return []model.PriceRecord{{No: 1, CustomerNo: 1, ProductCode: "P1", Amount: 100}}, 1, nil
}

func (s PriceFacadeStub) SavePrices(ctx context.Context, records []model.PriceRecord) ([]model.PriceRecord, error) {
	if s.SavePricesFn != nil {
		return s.SavePricesFn(ctx, records)
	}
	return records, nil
}

func (s PriceFacadeStub) CheckPriceOverlap(ctx context.Context, customerNo int64, productCode string, start, end model.Date) ([]model.PriceRecord, error) {
	if s.CheckOverlapFn != nil {
		return s.CheckOverlapFn(ctx, customerNo, productCode, start, end)
	}
	return nil, nil
}

func (s PriceFacadeStub) PricesForPair(ctx context.Context, customerNo int64, productCode string) ([]model.PriceRecord, error) {
	if s.PricesForPairFn != nil {
		return s.PricesForPairFn(ctx, customerNo, productCode)
	}
	return nil, nil
}

func (s PriceFacadeStub) SetPricesDeleted(ctx context.Context, nos []int64, deleted bool) error {
	if s.SetDeletedFn != nil {
		return s.SetDeletedFn(ctx, nos, deleted)
	}
	return nil
}

func (s PriceFacadeStub) DeletePrice(ctx context.Context, no int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, no)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn func(context.Context, *model.Order) (*model.Order, error)
	OrderFn  func(context.Context, int64) (*model.Order, error)
	OrdersFn func(context.Context, model.OrderFilter, int, int) ([]model.Order, int64, error)
	UpdateFn func(context.Context, int64, *model.Order) (*model.Order, error)
	DecideFn func(context.Context, int64, model.OrderStatus, model.Role) error
	ReportFn func(context.Context, int) ([]usecase.MonthlyReportRow, error)
}

func (s OrderFacadeStub) CreateOrder(ctx context.Context, o *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, o)
	}
	created := *o
	created.No = 1
	created.Status = model.OrderStatusPending
	return &created, nil
}

func (s OrderFacadeStub) Order(ctx context.Context, no int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, no)
	}
	return &model.Order{No: no, Status: model.OrderStatusPending}, nil
}

func (s OrderFacadeStub) Orders(ctx context.Context, f model.OrderFilter, page, size int) ([]model.Order, int64, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, f, page, size)
	}
	return []model.Order{{No: 1, Status: model.OrderStatusPending}}, 1, nil
}

func (s OrderFacadeStub) UpdateOrder(ctx context.Context, no int64, o *model.Order) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, no, o)
	}
	updated := *o
	updated.No = no
	updated.Status = model.OrderStatusPending
	return &updated, nil
}

func (s OrderFacadeStub) DecideOrder(ctx context.Context, no int64, next model.OrderStatus, actor model.Role) error {
	if s.DecideFn != nil {
		return s.DecideFn(ctx, no, next, actor)
	}
	return nil
}

func (s OrderFacadeStub) MonthlyOrderReport(ctx context.Context, year int) ([]usecase.MonthlyReportRow, error) {
	if s.ReportFn != nil {
		return s.ReportFn(ctx, year)
	}
	return nil, nil
}

// BackofficeFacadeStub aggregates facade dependencies for HTTP layer tests.
type BackofficeFacadeStub struct {
	AuthFacadeStub
	EmployeeFacadeStub
	CatalogFacadeStub
	PriceFacadeStub
	OrderFacadeStub
}
