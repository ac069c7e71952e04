package auth

import (
	"errors"
	"time"

	"github.com/erpre/backoffice/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid auth token")

// TokenClaims carries the authenticated identity inside a session token.
type TokenClaims struct {
	EmployeeID string
	Role       model.Role
}

// Strategy issues and verifies session tokens.
type Strategy interface {
	IssueToken(employeeID string, role model.Role) (string, error)
	ParseToken(token string) (*TokenClaims, error)
	Name() string
}

// Options tune token issuance.
type Options struct {
	TTL time.Duration
}
