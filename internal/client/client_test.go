package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/erpre/backoffice/internal/client"
	"github.com/erpre/backoffice/internal/server/http/dto"
)

func newTestClient(t *testing.T, handler http.Handler) (client.API, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	api, err := client.NewHTTPClient(server.URL, logger)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return api, server
}

func TestLoginKeepsSessionCookie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		var req dto.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.EmployeeID != "kim" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "erpre_token", Value: "session-1", Path: "/"})
		_ = json.NewEncoder(w).Encode(dto.LoginResponse{EmployeeID: "kim", Role: "admin"})
	})
	mux.HandleFunc("POST /api/logout", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("erpre_token")
		if err != nil || cookie.Value != "session-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	api, _ := newTestClient(t, mux)
	ctx := context.Background()

	session, err := api.Login(ctx, "kim", "pw")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if session.Role != "admin" {
		t.Fatalf("unexpected role %q", session.Role)
	}

	// The jar must replay the cookie on the next call.
	if err := api.Logout(ctx); err != nil {
		t.Fatalf("logout returned error: %v", err)
	}
}

func TestAPIErrorCarriesStatusAndMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid employee id or password"}`))
	})

	api, _ := newTestClient(t, mux)
	_, err := api.Login(context.Background(), "kim", "bad")

	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unexpected status %d", apiErr.StatusCode)
	}
	if apiErr.Message != "invalid employee id or password" {
		t.Fatalf("unexpected message %q", apiErr.Message)
	}
}

func TestPricesSendsFilterQuery(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/price/all", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("customer") != "7" || q.Get("status") != "active" || q.Get("page") != "2" {
			t.Errorf("unexpected query %v", q)
		}
		_ = json.NewEncoder(w).Encode(dto.Page[dto.PriceResponse]{
			Items: []dto.PriceResponse{{No: 1}}, Page: 2, Size: 20, TotalCount: 21, TotalPages: 2,
		})
	})

	api, _ := newTestClient(t, mux)
	page, err := api.Prices(context.Background(), client.PriceQuery{
		CustomerNo: 7, Status: "active", Page: 2, Size: 20,
	})
	if err != nil {
		t.Fatalf("prices returned error: %v", err)
	}
	if len(page.Items) != 1 || page.TotalPages != 2 {
		t.Fatalf("unexpected page %+v", page)
	}
}

func TestUpdateOrderStatusSendsPatch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /api/order/5/status", func(w http.ResponseWriter, r *http.Request) {
		var req dto.OrderStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status != "approved" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	api, _ := newTestClient(t, mux)
	if err := api.UpdateOrderStatus(context.Background(), 5, "approved"); err != nil {
		t.Fatalf("update status returned error: %v", err)
	}
}
