package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/erpre/backoffice/internal/domain/model"
)

func TestIssueAndParseToken(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Hour})

	token, err := strategy.IssueToken("kim", model.RoleAdmin)
	if err != nil {
		t.Fatalf("issue returned error: %v", err)
	}

	claims, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if claims.EmployeeID != "kim" || claims.Role != model.RoleAdmin {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTStrategy("secret-a", Options{TTL: time.Hour}).IssueToken("kim", model.RoleStaff)
	if err != nil {
		t.Fatalf("issue returned error: %v", err)
	}

	if _, err := NewJWTStrategy("secret-b", Options{TTL: time.Hour}).ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	claims := sessionClaims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Add(-2 * time.Hour).Unix(),
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
		EmployeeID: "kim",
		Role:       string(model.RoleStaff),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign returned error: %v", err)
	}

	if _, err := NewJWTStrategy("secret", Options{TTL: time.Hour}).ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseRejectsUnexpectedSigningMethod(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, sessionClaims{
		EmployeeID: "kim",
		Role:       string(model.RoleStaff),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign returned error: %v", err)
	}

	if _, err := NewJWTStrategy("secret", Options{TTL: time.Hour}).ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseRejectsUnknownRole(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Hour})

	token, err := strategy.IssueToken("kim", model.Role("intern"))
	if err != nil {
		t.Fatalf("issue returned error: %v", err)
	}
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
