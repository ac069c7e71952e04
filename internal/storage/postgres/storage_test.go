package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/erpre/backoffice/internal/domain/errors"
	"github.com/erpre/backoffice/internal/domain/model"
)

func newMockStorage(t *testing.T) (*Storage, pgxmockv3.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}
	return storage, mock
}

func expectationsMet(t *testing.T, mock pgxmockv3.PgxPoolIface) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeCreateDuplicateID(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Employees()

	mock.ExpectQuery("INSERT INTO employees").
		WithArgs("kim", "Kim", "kim@erpre.dev", "010", model.RoleStaff, "hash").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &model.Employee{
		ID: "kim", Name: "Kim", Email: "kim@erpre.dev", Tel: "010",
		Role: model.RoleStaff, PasswordHash: "hash",
	})
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestEmployeeGetByIDNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Employees()

	mock.ExpectQuery("SELECT .+ FROM employees WHERE id=").
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestEmployeeSoftDeleteMissingRow(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Employees()

	mock.ExpectExec("UPDATE employees SET deleted=TRUE").
		WithArgs("ghost").
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))

	err := repo.SoftDelete(context.Background(), "ghost")
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

func priceRow(mock pgxmockv3.PgxPoolIface, no int64, start, end time.Time) *pgxmockv3.Rows {
	now := time.Now()
	return mock.NewRows([]string{
		"no", "customer_no", "product_code", "amount", "start_date", "end_date",
		"created_at", "updated_at", "deleted", "deleted_at",
		"customer_name", "product_name", "category_name", "category_path",
	}).AddRow(no, int64(7), "P1", int64(800), start, end, now, now, false, nil,
		"Acme", "Widget", "Tools", "Tools")
}

func TestPriceFindOverlappingQuery(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Prices()

	start := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	existingStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	existingEnd := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM prices pr .+ pr\.start_date <= \$4 AND pr\.end_date >= \$3`).
		WithArgs(int64(7), "P1", start, end).
		WillReturnRows(priceRow(mock, 1, existingStart, existingEnd))

	records, err := repo.FindOverlapping(context.Background(), 7, "P1",
		model.Date{Time: start}, model.Date{Time: end})
	if err != nil {
		t.Fatalf("find returned error: %v", err)
	}
	if len(records) != 1 || records[0].No != 1 {
		t.Fatalf("unexpected records %+v", records)
	}
	if !records[0].StartDate.Equal(model.Date{Time: existingStart}) {
		t.Fatalf("unexpected start %s", records[0].StartDate)
	}
	expectationsMet(t, mock)
}

func TestPriceSaveInsertsWhenNoIsZero(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Prices()

	start := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO prices").
		WithArgs(int64(7), "P1", int64(1000), start, end).
		WillReturnRows(mock.NewRows([]string{"no", "created_at", "updated_at"}).
			AddRow(int64(33), now, now))

	saved, err := repo.Save(context.Background(), &model.PriceRecord{
		CustomerNo: 7, ProductCode: "P1", Amount: 1000,
		StartDate: model.Date{Time: start}, EndDate: model.Date{Time: end},
	})
	if err != nil {
		t.Fatalf("save returned error: %v", err)
	}
	if saved.No != 33 {
		t.Fatalf("expected assigned number 33, got %d", saved.No)
	}
	expectationsMet(t, mock)
}

func TestPriceSaveUpdateMissingRow(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Prices()

	start := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("UPDATE prices").
		WithArgs(int64(7), "P1", int64(1000), start, end, int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Save(context.Background(), &model.PriceRecord{
		No: 99, CustomerNo: 7, ProductCode: "P1", Amount: 1000,
		StartDate: model.Date{Time: start}, EndDate: model.Date{Time: end},
	})
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestOrderUpdateStatus(t *testing.T) {
	storage, mock := newMockStorage(t)
	repo := storage.Orders()

	mock.ExpectExec("UPDATE order_headers SET status=").
		WithArgs(model.OrderStatusApproved, int64(5)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))

	if err := repo.UpdateStatus(context.Background(), 5, model.OrderStatusApproved); err != nil {
		t.Fatalf("update status returned error: %v", err)
	}
	expectationsMet(t, mock)
}

func TestHealthCheckPings(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectPing()

	if err := storage.HealthCheck(context.Background()); err != nil {
		t.Fatalf("health check returned error: %v", err)
	}
	expectationsMet(t, mock)
}
