package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/erpre/backoffice/internal/config"
	"github.com/erpre/backoffice/internal/domain/model"
	pkgAuth "github.com/erpre/backoffice/internal/pkg/auth"
	"github.com/erpre/backoffice/internal/server/http/handlers"
	testhelpers "github.com/erpre/backoffice/internal/test"
)

func newTestEngine(facade handlers.BackofficeFacade) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cfg := &config.Config{
		TokenTTL:        time.Hour,
		ShutdownTimeout: time.Second,
		DefaultPageSize: 10,
	}
	return Setup(facade, cfg, logger)
}

func TestSetupRoutes(t *testing.T) {
	facade := testhelpers.BackofficeFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{
			AuthorizeFn: func(context.Context, string) (*pkgAuth.TokenClaims, error) {
				return &pkgAuth.TokenClaims{EmployeeID: "kim", Role: model.RoleStaff}, nil
			},
		},
	}
	engine := newTestEngine(facade)

	body, _ := json.Marshal(map[string]string{"employeeId": "kim", "employeePw": "pass"})
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for login, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/price/all", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without a token, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/price/all", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for prices, got %d", resp.Code)
	}
}

func TestAdminRoutesRejectStaff(t *testing.T) {
	facade := testhelpers.BackofficeFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{
			AuthorizeFn: func(context.Context, string) (*pkgAuth.TokenClaims, error) {
				return &pkgAuth.TokenClaims{EmployeeID: "kim", Role: model.RoleStaff}, nil
			},
		},
	}
	engine := newTestEngine(facade)

	body, _ := json.Marshal(map[string]string{"orderHStatus": "approved"})
	req := httptest.NewRequest(http.MethodPatch, "/api/order/5/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for staff, got %d", resp.Code)
	}
}

var _ handlers.BackofficeFacade = (*testhelpers.BackofficeFacadeStub)(nil)
