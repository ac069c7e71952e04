package test

import (
	"context"
	"sync"

	"github.com/erpre/backoffice/internal/client"
	"github.com/erpre/backoffice/internal/server/http/dto"
)

// APIStub implements client.API with per-method overrides. Calls to
// mutating endpoints are recorded so tests can assert write ordering.
type APIStub struct {
	LoginFn             func(context.Context, string, string) (*dto.LoginResponse, error)
	LogoutFn            func(context.Context) error
	PricesFn            func(context.Context, client.PriceQuery) (*dto.Page[dto.PriceResponse], error)
	InsertPricesFn      func(context.Context, []dto.PriceRequest) ([]dto.PriceResponse, error)
	UpdatePricesFn      func(context.Context, []dto.PriceRequest) ([]dto.PriceResponse, error)
	CheckOverlapFn      func(context.Context, dto.OverlapCheckRequest) ([]dto.PriceResponse, error)
	SetPricesDeletedFn  func(context.Context, []int64, bool) error
	DeletePriceFn       func(context.Context, int64) error
	CreateOrderFn       func(context.Context, dto.OrderRequest) (*dto.OrderResponse, error)
	OrderFn             func(context.Context, int64) (*dto.OrderResponse, error)
	OrdersFn            func(context.Context, client.OrderQuery) (*dto.Page[dto.OrderResponse], error)
	UpdateOrderFn       func(context.Context, int64, dto.OrderRequest) (*dto.OrderResponse, error)
	UpdateOrderStatusFn func(context.Context, int64, string) error
	CustomersFn         func(context.Context, string, int, int) (*dto.Page[dto.CustomerResponse], error)
	ProductsFn          func(context.Context, string, int, int) (*dto.Page[dto.ProductResponse], error)
	CategoriesFn        func(context.Context) ([]dto.CategoryResponse, error)
	MonthlyReportFn     func(context.Context, int) ([]dto.MonthlyReportResponse, error)

	mu sync.Mutex
	// Writes records the order of mutating calls: "insert", "update",
	// "status", "delete".
	Writes        []string
	Inserted      [][]dto.PriceRequest
	Updated       [][]dto.PriceRequest
	StatusCalls   []int64
	DeletedPrices []int64
}

func (s *APIStub) record(kind string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Writes = append(s.Writes, kind)
}

func (s *APIStub) Login(ctx context.Context, employeeID, password string) (*dto.LoginResponse, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, employeeID, password)
	}
	return &dto.LoginResponse{EmployeeID: employeeID, Role: "staff"}, nil
}

func (s *APIStub) Logout(ctx context.Context) error {
	if s.LogoutFn != nil {
		return s.LogoutFn(ctx)
	}
	return nil
}

func (s *APIStub) Prices(ctx context.Context, query client.PriceQuery) (*dto.Page[dto.PriceResponse], error) {
	if s.PricesFn != nil {
		return s.PricesFn(ctx, query)
	}
	return &dto.Page[dto.PriceResponse]{}, nil
}

func (s *APIStub) InsertPrices(ctx context.Context, records []dto.PriceRequest) ([]dto.PriceResponse, error) {
	s.record("insert")
	s.mu.Lock()
	s.Inserted = append(s.Inserted, records)
	s.mu.Unlock()
	if s.InsertPricesFn != nil {
		return s.InsertPricesFn(ctx, records)
	}
	return nil, nil
}

func (s *APIStub) UpdatePrices(ctx context.Context, records []dto.PriceRequest) ([]dto.PriceResponse, error) {
	s.record("update")
	s.mu.Lock()
	s.Updated = append(s.Updated, records)
	s.mu.Unlock()
	if s.UpdatePricesFn != nil {
		return s.UpdatePricesFn(ctx, records)
	}
	return nil, nil
}

func (s *APIStub) CheckOverlap(ctx context.Context, req dto.OverlapCheckRequest) ([]dto.PriceResponse, error) {
	if s.CheckOverlapFn != nil {
		return s.CheckOverlapFn(ctx, req)
	}
	return nil, nil
}

func (s *APIStub) SetPricesDeleted(ctx context.Context, nos []int64, deleted bool) error {
	s.record("updateDel")
	if s.SetPricesDeletedFn != nil {
		return s.SetPricesDeletedFn(ctx, nos, deleted)
	}
	return nil
}

func (s *APIStub) DeletePrice(ctx context.Context, no int64) error {
	s.record("delete")
	s.mu.Lock()
	s.DeletedPrices = append(s.DeletedPrices, no)
	s.mu.Unlock()
	if s.DeletePriceFn != nil {
		return s.DeletePriceFn(ctx, no)
	}
	return nil
}

func (s *APIStub) CreateOrder(ctx context.Context, req dto.OrderRequest) (*dto.OrderResponse, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, req)
	}
	return &dto.OrderResponse{No: 1, Status: "pending"}, nil
}

func (s *APIStub) Order(ctx context.Context, no int64) (*dto.OrderResponse, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, no)
	}
	return &dto.OrderResponse{No: no, Status: "pending"}, nil
}

func (s *APIStub) Orders(ctx context.Context, query client.OrderQuery) (*dto.Page[dto.OrderResponse], error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, query)
	}
	return &dto.Page[dto.OrderResponse]{}, nil
}

func (s *APIStub) UpdateOrder(ctx context.Context, no int64, req dto.OrderRequest) (*dto.OrderResponse, error) {
	if s.UpdateOrderFn != nil {
		return s.UpdateOrderFn(ctx, no, req)
	}
	return &dto.OrderResponse{No: no, Status: "pending"}, nil
}

func (s *APIStub) UpdateOrderStatus(ctx context.Context, no int64, status string) error {
	s.record("status")
	s.mu.Lock()
	s.StatusCalls = append(s.StatusCalls, no)
	s.mu.Unlock()
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, no, status)
	}
	return nil
}

func (s *APIStub) Customers(ctx context.Context, search string, page, size int) (*dto.Page[dto.CustomerResponse], error) {
	if s.CustomersFn != nil {
		return s.CustomersFn(ctx, search, page, size)
	}
	return &dto.Page[dto.CustomerResponse]{}, nil
}

func (s *APIStub) Products(ctx context.Context, search string, page, size int) (*dto.Page[dto.ProductResponse], error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, search, page, size)
	}
	return &dto.Page[dto.ProductResponse]{}, nil
}

func (s *APIStub) Categories(ctx context.Context) ([]dto.CategoryResponse, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return nil, nil
}

func (s *APIStub) MonthlyReport(ctx context.Context, year int) ([]dto.MonthlyReportResponse, error) {
	if s.MonthlyReportFn != nil {
		return s.MonthlyReportFn(ctx, year)
	}
	return nil, nil
}
