package repository

import (
	"context"

	"github.com/erpre/backoffice/internal/domain/model"
)

// EmployeeRepository describes persistence operations for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, e *model.Employee) (*model.Employee, error)
	GetByID(ctx context.Context, id string) (*model.Employee, error)
	List(ctx context.Context, search string, page, size int) ([]model.Employee, int64, error)
	Update(ctx context.Context, e *model.Employee) error
	SoftDelete(ctx context.Context, id string) error
}
