package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/erpre/backoffice/internal/domain/errors"
	"github.com/erpre/backoffice/internal/domain/model"
	"github.com/erpre/backoffice/internal/domain/repository"
	pkgAuth "github.com/erpre/backoffice/internal/pkg/auth"
)

// EmployeeUseCase manages back-office accounts.
type EmployeeUseCase struct {
	employees repository.EmployeeRepository
	hasher    pkgAuth.PasswordHasher
}

// NewEmployeeUseCase constructs EmployeeUseCase.
func NewEmployeeUseCase(employees repository.EmployeeRepository, hasher pkgAuth.PasswordHasher) *EmployeeUseCase {
	return &EmployeeUseCase{employees: employees, hasher: hasher}
}

// Register creates an employee account with a hashed password.
func (u *EmployeeUseCase) Register(ctx context.Context, e *model.Employee, password string) (*model.Employee, error) {
	e.ID = strings.TrimSpace(e.ID)
	if e.ID == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}
	if !e.Role.Valid() {
		e.Role = model.RoleStaff
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	e.PasswordHash = hash

	return u.employees.Create(ctx, e)
}

// Get fetches one employee by id.
func (u *EmployeeUseCase) Get(ctx context.Context, id string) (*model.Employee, error) {
	return u.employees.GetByID(ctx, id)
}

// List returns a page of employees matching the search text.
func (u *EmployeeUseCase) List(ctx context.Context, search string, page, size int) ([]model.Employee, int64, error) {
	return u.employees.List(ctx, search, page, size)
}

// Update replaces mutable employee fields; an empty password keeps the
// stored hash.
func (u *EmployeeUseCase) Update(ctx context.Context, e *model.Employee, password string) error {
	existing, err := u.employees.GetByID(ctx, e.ID)
	if err != nil {
		return err
	}

	if password == "" {
		e.PasswordHash = existing.PasswordHash
	} else {
		hash, err := u.hasher.Hash(password)
		if err != nil {
			return err
		}
		e.PasswordHash = hash
	}
	if !e.Role.Valid() {
		e.Role = existing.Role
	}

	return u.employees.Update(ctx, e)
}

// Delete soft deletes the account.
func (u *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	return u.employees.SoftDelete(ctx, id)
}
