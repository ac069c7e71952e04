package auth

import (
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/erpre/backoffice/internal/domain/model"
)

// JWTStrategy signs session tokens as HS256 JWTs carrying the employee
// id and role.
type JWTStrategy struct {
	secret []byte
	ttl    time.Duration
}

type sessionClaims struct {
	jwt.StandardClaims
	EmployeeID string `json:"eid"`
	Role       string `json:"role"`
}

// NewJWTStrategy builds JWTStrategy with provided secret and options.
func NewJWTStrategy(secret string, opts Options) *JWTStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &JWTStrategy{secret: []byte(secret), ttl: ttl}
}

// IssueToken generates a signed session token for the employee.
func (s *JWTStrategy) IssueToken(employeeID string, role model.Role) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.ttl).Unix(),
		},
		EmployeeID: employeeID,
		Role:       string(role),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseToken validates the token and returns the embedded identity.
func (s *JWTStrategy) ParseToken(token string) (*TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || claims.EmployeeID == "" {
		return nil, ErrInvalidToken
	}

	role := model.Role(claims.Role)
	if !role.Valid() {
		return nil, ErrInvalidToken
	}

	return &TokenClaims{EmployeeID: claims.EmployeeID, Role: role}, nil
}

func (s *JWTStrategy) Name() string {
	return "jwt"
}
