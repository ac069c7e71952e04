package usecase_test

import (
	. "github.com/erpre/backoffice/internal/usecase"

	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/erpre/backoffice/internal/domain/errors"
	"github.com/erpre/backoffice/internal/domain/model"
	testhelpers "github.com/erpre/backoffice/internal/test"
)

func marchRange(from, to int) (model.Date, model.Date) {
	return model.NewDate(2025, time.March, from), model.NewDate(2025, time.March, to)
}

func TestValidateRecord(t *testing.T) {
	start, end := marchRange(1, 10)

	cases := []struct {
		name string
		rec  model.PriceRecord
		want error
	}{
		{"valid", model.PriceRecord{Amount: 100, StartDate: start, EndDate: end}, nil},
		{"single day valid", model.PriceRecord{Amount: 100, StartDate: start, EndDate: start}, nil},
		{"zero amount", model.PriceRecord{Amount: 0, StartDate: start, EndDate: end}, domainErrors.ErrInvalidAmount},
		{"negative amount", model.PriceRecord{Amount: -5, StartDate: start, EndDate: end}, domainErrors.ErrInvalidAmount},
		{"reversed range", model.PriceRecord{Amount: 100, StartDate: end, EndDate: start}, domainErrors.ErrInvalidDateRange},
		{"missing dates", model.PriceRecord{Amount: 100}, domainErrors.ErrInvalidDateRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRecord(tc.rec)
			if tc.want == nil && err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestSaveAllValidatesBeforeWriting(t *testing.T) {
	repo := &testhelpers.PriceRepositoryStub{}
	uc := NewPriceUseCase(repo)

	start, end := marchRange(1, 10)
	_, err := uc.SaveAll(context.Background(), []model.PriceRecord{
		{Amount: 0, CustomerNo: 1, ProductCode: "P1", StartDate: start, EndDate: end},
	})
	if !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if len(repo.SavedRecords) != 0 {
		t.Fatal("invalid record must not reach the repository")
	}
}

func TestSaveAllPreservesSubmissionOrder(t *testing.T) {
	repo := &testhelpers.PriceRepositoryStub{}
	uc := NewPriceUseCase(repo)

	start, end := marchRange(1, 9)
	candStart, candEnd := marchRange(10, 20)
	saved, err := uc.SaveAll(context.Background(), []model.PriceRecord{
		{No: 5, Amount: 100, CustomerNo: 1, ProductCode: "P1", StartDate: start, EndDate: end},
		{Amount: 200, CustomerNo: 1, ProductCode: "P1", StartDate: candStart, EndDate: candEnd},
	})
	if err != nil {
		t.Fatalf("save returned error: %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("expected two saved records, got %d", len(saved))
	}
	if repo.SavedRecords[0].No != 5 || repo.SavedRecords[1].No != 0 {
		t.Fatalf("records persisted out of order: %+v", repo.SavedRecords)
	}
}

func TestCheckOverlapValidatesRange(t *testing.T) {
	uc := NewPriceUseCase(&testhelpers.PriceRepositoryStub{})
	start, end := marchRange(10, 1)
	if _, err := uc.CheckOverlap(context.Background(), 1, "P1", start, end); !errors.Is(err, domainErrors.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestCheckOverlapPassesThrough(t *testing.T) {
	start, end := marchRange(10, 20)
	want := []model.PriceRecord{{No: 1}}
	repo := &testhelpers.PriceRepositoryStub{
		FindOverlappingFn: func(_ context.Context, customerNo int64, productCode string, s, e model.Date) ([]model.PriceRecord, error) {
			if customerNo != 7 || productCode != "P1" || !s.Equal(start) || !e.Equal(end) {
				t.Fatalf("unexpected query %d %s %s %s", customerNo, productCode, s, e)
			}
			return want, nil
		},
	}
	uc := NewPriceUseCase(repo)

	got, err := uc.CheckOverlap(context.Background(), 7, "P1", start, end)
	if err != nil {
		t.Fatalf("check returned error: %v", err)
	}
	if len(got) != 1 || got[0].No != 1 {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestSetDeletedBatch(t *testing.T) {
	repo := &testhelpers.PriceRepositoryStub{}
	uc := NewPriceUseCase(repo)

	if err := uc.SetDeleted(context.Background(), []int64{3, 5, 8}, true); err != nil {
		t.Fatalf("set deleted returned error: %v", err)
	}
	if len(repo.DeletedNos) != 3 {
		t.Fatalf("expected three calls, got %v", repo.DeletedNos)
	}
}

func TestSetDeletedStopsOnError(t *testing.T) {
	repo := &testhelpers.PriceRepositoryStub{
		SetDeletedFn: func(_ context.Context, no int64, _ bool) error {
			if no == 5 {
				return domainErrors.ErrNotFound
			}
			return nil
		},
	}
	uc := NewPriceUseCase(repo)

	err := uc.SetDeleted(context.Background(), []int64{3, 5, 8}, true)
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(repo.DeletedNos) != 2 {
		t.Fatalf("expected stop after failing record, got %v", repo.DeletedNos)
	}
}
