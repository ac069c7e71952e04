package test

import (
	"context"

	domainErrors "github.com/erpre/backoffice/internal/domain/errors"
	"github.com/erpre/backoffice/internal/domain/model"
)

// EmployeeRepositoryStub stores employees in-memory for tests.
type EmployeeRepositoryStub struct {
	Employees map[string]*model.Employee
	Err       error
}

// NewEmployeeRepositoryStub constructs stub repository with an initialized map.
func NewEmployeeRepositoryStub() *EmployeeRepositoryStub {
	return &EmployeeRepositoryStub{Employees: make(map[string]*model.Employee)}
}

// Create registers the employee unless the id is taken.
func (s *EmployeeRepositoryStub) Create(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Employees == nil {
		s.Employees = make(map[string]*model.Employee)
	}
	if _, exists := s.Employees[e.ID]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	stored := *e
	s.Employees[e.ID] = &stored
	return &stored, nil
}

// GetByID fetches an employee or returns not found.
func (s *EmployeeRepositoryStub) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if e, ok := s.Employees[id]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored employee; search and paging are ignored.
func (s *EmployeeRepositoryStub) List(ctx context.Context, search string, page, size int) ([]model.Employee, int64, error) {
	if s.Err != nil {
		return nil, 0, s.Err
	}
	out := make([]model.Employee, 0, len(s.Employees))
	for _, e := range s.Employees {
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

// Update replaces the stored employee or returns not found.
func (s *EmployeeRepositoryStub) Update(ctx context.Context, e *model.Employee) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Employees[e.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	stored := *e
	s.Employees[e.ID] = &stored
	return nil
}

// SoftDelete marks the stored employee deleted or returns not found.
func (s *EmployeeRepositoryStub) SoftDelete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	e, ok := s.Employees[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	e.Deleted = true
	return nil
}

// CustomerRepositoryStub serves a fixed customer set.
type CustomerRepositoryStub struct {
	Customers []model.Customer
	Err       error
}

// GetByNo fetches a customer by number or returns not found.
func (s *CustomerRepositoryStub) GetByNo(ctx context.Context, no int64) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Customers {
		if c.No == no {
			copied := c
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns the fixed set; search and paging are ignored.
func (s *CustomerRepositoryStub) List(ctx context.Context, search string, page, size int) ([]model.Customer, int64, error) {
	if s.Err != nil {
		return nil, 0, s.Err
	}
	return s.Customers, int64(len(s.Customers)), nil
}

// ProductRepositoryStub serves a fixed product set.
type ProductRepositoryStub struct {
	Products []model.Product
	Err      error
}

// GetByCode fetches a product by code or returns not found.
func (s *ProductRepositoryStub) GetByCode(ctx context.Context, code string) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, p := range s.Products {
		if p.Code == code {
			copied := p
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Search returns the fixed set; filters are ignored.
func (s *ProductRepositoryStub) Search(ctx context.Context, code, name string, categoryID int64) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Products, nil
}

// List returns the fixed set; search and paging are ignored.
func (s *ProductRepositoryStub) List(ctx context.Context, search string, page, size int) ([]model.Product, int64, error) {
	if s.Err != nil {
		return nil, 0, s.Err
	}
	return s.Products, int64(len(s.Products)), nil
}

// CategoryRepositoryStub serves a fixed category tree.
type CategoryRepositoryStub struct {
	Categories []model.Category
	Err        error
}

// All returns the fixed tree.
func (s *CategoryRepositoryStub) All(ctx context.Context) ([]model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Categories, nil
}

// PriceRepositoryStub allows tests to customize behaviour per call.
type PriceRepositoryStub struct {
	SaveFn            func(context.Context, *model.PriceRecord) (*model.PriceRecord, error)
	GetByNoFn         func(context.Context, int64) (*model.PriceRecord, error)
	ListFn            func(context.Context, model.PriceFilter, model.PriceSort, int, int) ([]model.PriceRecord, int64, error)
	FindOverlappingFn func(context.Context, int64, string, model.Date, model.Date) ([]model.PriceRecord, error)
	ByPairFn          func(context.Context, int64, string) ([]model.PriceRecord, error)
	SetDeletedFn      func(context.Context, int64, bool) error
	DeleteFn          func(context.Context, int64) error

	SavedRecords []model.PriceRecord
	DeletedNos   []int64
}

func (s *PriceRepositoryStub) Save(ctx context.Context, p *model.PriceRecord) (*model.PriceRecord, error) {
	s.SavedRecords = append(s.SavedRecords, *p)
	if s.SaveFn != nil {
		return s.SaveFn(ctx, p)
	}
	saved := *p
	if saved.No == 0 {
		saved.No = int64(len(s.SavedRecords))
	}
	return &saved, nil
}

func (s *PriceRepositoryStub) GetByNo(ctx context.Context, no int64) (*model.PriceRecord, error) {
	if s.GetByNoFn != nil {
		return s.GetByNoFn(ctx, no)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *PriceRepositoryStub) List(ctx context.Context, f model.PriceFilter, sort model.PriceSort, page, size int) ([]model.PriceRecord, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, f, sort, page, size)
	}
	return nil, 0, nil
}

func (s *PriceRepositoryStub) FindOverlapping(ctx context.Context, customerNo int64, productCode string, start, end model.Date) ([]model.PriceRecord, error) {
	if s.FindOverlappingFn != nil {
		return s.FindOverlappingFn(ctx, customerNo, productCode, start, end)
	}
	return nil, nil
}

func (s *PriceRepositoryStub) ByCustomerAndProduct(ctx context.Context, customerNo int64, productCode string) ([]model.PriceRecord, error) {
	if s.ByPairFn != nil {
		return s.ByPairFn(ctx, customerNo, productCode)
	}
	return nil, nil
}

func (s *PriceRepositoryStub) SetDeleted(ctx context.Context, no int64, deleted bool) error {
	s.DeletedNos = append(s.DeletedNos, no)
	if s.SetDeletedFn != nil {
		return s.SetDeletedFn(ctx, no, deleted)
	}
	return nil
}

func (s *PriceRepositoryStub) Delete(ctx context.Context, no int64) error {
	s.DeletedNos = append(s.DeletedNos, no)
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, no)
	}
	return nil
}

// OrderRepositoryStub allows tests to customize behaviour per call.
type OrderRepositoryStub struct {
	CreateFn        func(context.Context, *model.Order) (*model.Order, error)
	GetByNoFn       func(context.Context, int64) (*model.Order, error)
	ListFn          func(context.Context, model.OrderFilter, int, int) ([]model.Order, int64, error)
	ReplaceLinesFn  func(context.Context, *model.Order) error
	UpdateStatusFn  func(context.Context, int64, model.OrderStatus) error
	CountByStatusFn func(context.Context, model.OrderStatus) (int64, error)
	MonthlyTotalsFn func(context.Context, int) ([]model.MonthlyOrderTotal, error)

	StatusUpdates []model.OrderStatus
	Replaced      []model.Order
}

func (s *OrderRepositoryStub) Create(ctx context.Context, o *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, o)
	}
	created := *o
	created.No = 1
	return &created, nil
}

func (s *OrderRepositoryStub) GetByNo(ctx context.Context, no int64) (*model.Order, error) {
	if s.GetByNoFn != nil {
		return s.GetByNoFn(ctx, no)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) List(ctx context.Context, f model.OrderFilter, page, size int) ([]model.Order, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, f, page, size)
	}
	return nil, 0, nil
}

func (s *OrderRepositoryStub) ReplaceLines(ctx context.Context, o *model.Order) error {
	s.Replaced = append(s.Replaced, *o)
	if s.ReplaceLinesFn != nil {
		return s.ReplaceLinesFn(ctx, o)
	}
	return nil
}

func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, no int64, status model.OrderStatus) error {
	s.StatusUpdates = append(s.StatusUpdates, status)
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, no, status)
	}
	return nil
}

func (s *OrderRepositoryStub) CountByStatus(ctx context.Context, status model.OrderStatus) (int64, error) {
	if s.CountByStatusFn != nil {
		return s.CountByStatusFn(ctx, status)
	}
	return 0, nil
}

func (s *OrderRepositoryStub) MonthlyTotals(ctx context.Context, year int) ([]model.MonthlyOrderTotal, error) {
	if s.MonthlyTotalsFn != nil {
		return s.MonthlyTotalsFn(ctx, year)
	}
	return nil, nil
}
