package test

import (
	"context"
	"errors"
	"time"

	"github.com/erpre/backoffice/internal/domain/model"
	pkgAuth "github.com/erpre/backoffice/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(string, model.Role) (string, error)
	ParseFn func(string) (*pkgAuth.TokenClaims, error)
	NameVal string
}

// IssueToken returns a static token unless overridden.
func (s StrategyStub) IssueToken(employeeID string, role model.Role) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(employeeID, role)
	}
	return "token", nil
}

// ParseToken returns staff claims for any token unless overridden.
func (s StrategyStub) ParseToken(token string) (*pkgAuth.TokenClaims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return &pkgAuth.TokenClaims{EmployeeID: "emp", Role: model.RoleStaff}, nil
}

// Name identifies the stub strategy.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// BlacklistStub records revoked tokens in-memory.
type BlacklistStub struct {
	Revoked   map[string]bool
	RevokeErr error
	CheckErr  error
}

// NewBlacklistStub constructs the stub with an initialized map.
func NewBlacklistStub() *BlacklistStub {
	return &BlacklistStub{Revoked: make(map[string]bool)}
}

// Revoke marks the token revoked.
func (s *BlacklistStub) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if s.RevokeErr != nil {
		return s.RevokeErr
	}
	if s.Revoked == nil {
		s.Revoked = make(map[string]bool)
	}
	s.Revoked[token] = true
	return nil
}

// IsRevoked reports whether the token was revoked.
func (s *BlacklistStub) IsRevoked(ctx context.Context, token string) (bool, error) {
	if s.CheckErr != nil {
		return false, s.CheckErr
	}
	return s.Revoked[token], nil
}
