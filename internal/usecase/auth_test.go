package usecase_test

import (
	. "github.com/erpre/backoffice/internal/usecase"

	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/erpre/backoffice/internal/domain/errors"
	"github.com/erpre/backoffice/internal/domain/model"
	pkgAuth "github.com/erpre/backoffice/internal/pkg/auth"
	testhelpers "github.com/erpre/backoffice/internal/test"
)

func newAuthFixture() (*AuthUseCase, *testhelpers.EmployeeRepositoryStub, *testhelpers.BlacklistStub) {
	repo := testhelpers.NewEmployeeRepositoryStub()
	blacklist := testhelpers.NewBlacklistStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, testhelpers.StrategyStub{}, blacklist, time.Hour)
	return uc, repo, blacklist
}

func TestLoginSuccess(t *testing.T) {
	uc, repo, _ := newAuthFixture()
	repo.Employees["kim"] = &model.Employee{ID: "kim", Role: model.RoleAdmin, PasswordHash: "hash:secret"}

	employee, token, err := uc.Login(context.Background(), " kim ", "secret")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if employee.ID != "kim" || token != "token" {
		t.Fatalf("unexpected result %q %q", employee.ID, token)
	}
}

func TestLoginFailures(t *testing.T) {
	uc, repo, _ := newAuthFixture()
	repo.Employees["kim"] = &model.Employee{ID: "kim", PasswordHash: "hash:secret"}
	repo.Employees["gone"] = &model.Employee{ID: "gone", PasswordHash: "hash:x", Deleted: true}

	cases := []struct {
		name, id, password string
	}{
		{"empty id", "", "secret"},
		{"empty password", "kim", ""},
		{"unknown id", "lee", "secret"},
		{"wrong password", "kim", "nope"},
		{"deleted account", "gone", "x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := uc.Login(context.Background(), tc.id, tc.password)
			if !errors.Is(err, domainErrors.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	uc, _, blacklist := newAuthFixture()
	if err := uc.Logout(context.Background(), "tok"); err != nil {
		t.Fatalf("logout returned error: %v", err)
	}
	if !blacklist.Revoked["tok"] {
		t.Fatal("token not revoked")
	}
}

func TestAuthorizeRejectsRevokedToken(t *testing.T) {
	uc, _, blacklist := newAuthFixture()
	blacklist.Revoked["tok"] = true

	if _, err := uc.Authorize(context.Background(), "tok"); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}

	claims, err := uc.Authorize(context.Background(), "fresh")
	if err != nil {
		t.Fatalf("authorize returned error: %v", err)
	}
	if claims.EmployeeID != "emp" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}
