package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	domainErrors "github.com/erpre/backoffice/internal/domain/errors"
	"github.com/erpre/backoffice/internal/domain/model"
	"github.com/erpre/backoffice/internal/domain/repository"
	pkgAuth "github.com/erpre/backoffice/internal/pkg/auth"
)

// AuthUseCase handles employee sign-in and session token management.
type AuthUseCase struct {
	employees repository.EmployeeRepository
	hasher    pkgAuth.PasswordHasher
	tokens    pkgAuth.Strategy
	blacklist pkgAuth.TokenBlacklist
	tokenTTL  time.Duration
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(employees repository.EmployeeRepository, hasher pkgAuth.PasswordHasher,
	strategy pkgAuth.Strategy, blacklist pkgAuth.TokenBlacklist, tokenTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{employees: employees, hasher: hasher, tokens: strategy, blacklist: blacklist, tokenTTL: tokenTTL}
}

// Login validates credentials and returns the employee with a session token.
func (u *AuthUseCase) Login(ctx context.Context, employeeID, password string) (*model.Employee, string, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	employee, err := u.employees.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if employee.Deleted {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	if err := u.hasher.Compare(employee.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(employee.ID, employee.Role)
	if err != nil {
		return nil, "", err
	}

	return employee, token, nil
}

// Logout revokes the session token for its remaining lifetime.
func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return u.blacklist.Revoke(ctx, token, u.tokenTTL)
}

// Authorize verifies the token against the blacklist and signature and
// returns the embedded identity.
func (u *AuthUseCase) Authorize(ctx context.Context, token string) (*pkgAuth.TokenClaims, error) {
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}

	revoked, err := u.blacklist.IsRevoked(ctx, token)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, pkgAuth.ErrInvalidToken
	}

	return u.tokens.ParseToken(token)
}
