package client_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/erpre/backoffice/internal/client"
	"github.com/erpre/backoffice/internal/domain/model"
	"github.com/erpre/backoffice/internal/server/http/dto"
	testhelpers "github.com/erpre/backoffice/internal/test"
)

func day(d int) model.Date { return model.NewDate(2025, time.March, d) }

func candidate(from, to int) dto.PriceRequest {
	return dto.PriceRequest{
		CustomerNo:  7,
		ProductCode: "P1",
		Amount:      1000,
		StartDate:   day(from),
		EndDate:     day(to),
	}
}

func existing(no int64, from, to int) dto.PriceResponse {
	return dto.PriceResponse{
		No:          no,
		CustomerNo:  7,
		ProductCode: "P1",
		Amount:      800,
		StartDate:   day(from),
		EndDate:     day(to),
	}
}

func alwaysConfirm() client.Confirmer {
	return client.ConfirmerFunc(func(string) bool { return true })
}

func overlapsOf(records ...dto.PriceResponse) func(context.Context, dto.OverlapCheckRequest) ([]dto.PriceResponse, error) {
	return func(context.Context, dto.OverlapCheckRequest) ([]dto.PriceResponse, error) {
		return records, nil
	}
}

func TestSubmitNoConflictInsertsOnly(t *testing.T) {
	api := &testhelpers.APIStub{CheckOverlapFn: overlapsOf()}
	editor := client.NewPriceEditor(api, alwaysConfirm())

	if err := editor.Submit(context.Background(), candidate(10, 20)); err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if len(api.Inserted) != 1 {
		t.Fatalf("expected one insert, got %d", len(api.Inserted))
	}
	if len(api.Updated) != 0 {
		t.Fatal("no existing record may be touched when nothing overlaps")
	}
}

func TestSubmitSingleDayConflictRejected(t *testing.T) {
	api := &testhelpers.APIStub{CheckOverlapFn: overlapsOf(existing(1, 12, 12))}
	editor := client.NewPriceEditor(api, alwaysConfirm())

	err := editor.Submit(context.Background(), candidate(10, 20))
	if !errors.Is(err, client.ErrSingleDayConflict) {
		t.Fatalf("expected ErrSingleDayConflict, got %v", err)
	}
	if len(api.Writes) != 0 {
		t.Fatalf("no writes allowed, got %v", api.Writes)
	}
}

func TestSubmitFullContainmentRejected(t *testing.T) {
	api := &testhelpers.APIStub{CheckOverlapFn: overlapsOf(existing(1, 12, 15))}
	editor := client.NewPriceEditor(api, alwaysConfirm())

	err := editor.Submit(context.Background(), candidate(10, 20))
	if !errors.Is(err, client.ErrRangeFullyCovered) {
		t.Fatalf("expected ErrRangeFullyCovered, got %v", err)
	}
	if len(api.Writes) != 0 {
		t.Fatalf("no writes allowed, got %v", api.Writes)
	}
}

func TestSubmitMultipleConflictsRejected(t *testing.T) {
	api := &testhelpers.APIStub{CheckOverlapFn: overlapsOf(existing(1, 1, 11), existing(2, 19, 25))}
	editor := client.NewPriceEditor(api, alwaysConfirm())

	err := editor.Submit(context.Background(), candidate(10, 20))
	if !errors.Is(err, client.ErrMultipleOverlaps) {
		t.Fatalf("expected ErrMultipleOverlaps, got %v", err)
	}
	if len(api.Writes) != 0 {
		t.Fatalf("no writes allowed, got %v", api.Writes)
	}
}

func TestSubmitShrinksExistingEndThenInserts(t *testing.T) {
	// Candidate [03-10, 03-20] against existing [03-01, 03-15]: the
	// existing record's end moves to 03-09 and the shrink commits before
	// the insert.
	api := &testhelpers.APIStub{CheckOverlapFn: overlapsOf(existing(1, 1, 15))}
	editor := client.NewPriceEditor(api, alwaysConfirm())

	if err := editor.Submit(context.Background(), candidate(10, 20)); err != nil {
		t.Fatalf("submit returned error: %v", err)
	}

	if len(api.Updated) != 1 || len(api.Inserted) != 1 {
		t.Fatalf("expected one update and one insert, got %v", api.Writes)
	}
	if api.Writes[0] != "update" || api.Writes[1] != "insert" {
		t.Fatalf("shrink must commit before insert, got order %v", api.Writes)
	}

	shrunk := api.Updated[0][0]
	if shrunk.No != 1 {
		t.Fatalf("wrong record shrunk: %d", shrunk.No)
	}
	if !shrunk.StartDate.Equal(day(1)) || !shrunk.EndDate.Equal(day(9)) {
		t.Fatalf("expected [2025-03-01, 2025-03-09], got [%s, %s]", shrunk.StartDate, shrunk.EndDate)
	}
	if shrunk.Amount != 800 {
		t.Fatalf("shrink must preserve the existing price, got %d", shrunk.Amount)
	}
}

func TestSubmitShrinksExistingStart(t *testing.T) {
	// Candidate [03-01, 03-05] against existing [03-01, 03-20]: the
	// existing record's start moves to 03-06.
	api := &testhelpers.APIStub{CheckOverlapFn: overlapsOf(existing(2, 1, 20))}
	editor := client.NewPriceEditor(api, alwaysConfirm())

	if err := editor.Submit(context.Background(), candidate(1, 5)); err != nil {
		t.Fatalf("submit returned error: %v", err)
	}

	shrunk := api.Updated[0][0]
	if !shrunk.StartDate.Equal(day(6)) || !shrunk.EndDate.Equal(day(20)) {
		t.Fatalf("expected [2025-03-06, 2025-03-20], got [%s, %s]", shrunk.StartDate, shrunk.EndDate)
	}
}

func TestSubmitDeclinedConfirmationWritesNothing(t *testing.T) {
	api := &testhelpers.APIStub{CheckOverlapFn: overlapsOf(existing(1, 1, 15))}
	editor := client.NewPriceEditor(api, client.ConfirmerFunc(func(string) bool { return false }))

	err := editor.Submit(context.Background(), candidate(10, 20))
	if !errors.Is(err, client.ErrSubmissionCanceled) {
		t.Fatalf("expected ErrSubmissionCanceled, got %v", err)
	}
	if len(api.Writes) != 0 {
		t.Fatalf("no writes allowed after decline, got %v", api.Writes)
	}
}

func TestSubmitExcludesOwnRecordWhenEditing(t *testing.T) {
	// The candidate edits record 3; the only "conflict" is its own prior
	// version, so the update goes through with no shrink.
	api := &testhelpers.APIStub{CheckOverlapFn: overlapsOf(existing(3, 10, 20))}
	editor := client.NewPriceEditor(api, alwaysConfirm())

	edited := candidate(10, 20)
	edited.No = 3
	if err := editor.Submit(context.Background(), edited); err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if len(api.Updated) != 1 || api.Updated[0][0].No != 3 {
		t.Fatalf("expected single self-update, got %v", api.Writes)
	}
}

func TestSubmitCheckFailureAbortsEverything(t *testing.T) {
	boom := errors.New("backend down")
	api := &testhelpers.APIStub{
		CheckOverlapFn: func(context.Context, dto.OverlapCheckRequest) ([]dto.PriceResponse, error) {
			return nil, boom
		},
	}
	editor := client.NewPriceEditor(api, alwaysConfirm())

	if err := editor.Submit(context.Background(), candidate(10, 20)); !errors.Is(err, boom) {
		t.Fatalf("expected check error passthrough, got %v", err)
	}
	if len(api.Writes) != 0 {
		t.Fatalf("no writes allowed, got %v", api.Writes)
	}
}

func TestSubmitSecondStepFailureIsRecoverableInconsistency(t *testing.T) {
	boom := errors.New("insert failed")
	api := &testhelpers.APIStub{
		CheckOverlapFn: overlapsOf(existing(1, 1, 15)),
		InsertPricesFn: func(context.Context, []dto.PriceRequest) ([]dto.PriceResponse, error) {
			return nil, boom
		},
	}
	editor := client.NewPriceEditor(api, alwaysConfirm())

	err := editor.Submit(context.Background(), candidate(10, 20))

	var inconsistency *client.InconsistencyError
	if !errors.As(err, &inconsistency) {
		t.Fatalf("expected InconsistencyError, got %v", err)
	}
	if inconsistency.ShrunkRecordNo != 1 {
		t.Fatalf("unexpected shrunk record %d", inconsistency.ShrunkRecordNo)
	}
	if !errors.Is(err, boom) {
		t.Fatal("cause must be wrapped")
	}
}

func TestSubmitValidatesCandidate(t *testing.T) {
	api := &testhelpers.APIStub{}
	editor := client.NewPriceEditor(api, alwaysConfirm())

	bad := candidate(10, 20)
	bad.Amount = 0
	if err := editor.Submit(context.Background(), bad); !errors.Is(err, client.ErrInvalidCandidate) {
		t.Fatalf("expected ErrInvalidCandidate for zero amount, got %v", err)
	}

	reversed := candidate(20, 10)
	if err := editor.Submit(context.Background(), reversed); !errors.Is(err, client.ErrInvalidCandidate) {
		t.Fatalf("expected ErrInvalidCandidate for reversed range, got %v", err)
	}
}

func TestResolveOverlapDecisionTable(t *testing.T) {
	cases := []struct {
		name               string
		candFrom, candTo   int
		exFrom, exTo       int
		wantErr            error
		wantFrom, wantTo   int
	}{
		{"single day", 10, 20, 12, 12, client.ErrSingleDayConflict, 0, 0},
		{"contained", 1, 31, 10, 20, client.ErrRangeFullyCovered, 0, 0},
		{"extends past end", 10, 20, 1, 15, nil, 1, 9},
		{"inside, starts after", 10, 12, 1, 15, nil, 1, 9},
		{"starts at or before", 1, 5, 1, 20, nil, 6, 20},
		{"ends inside from before", 1, 5, 3, 20, nil, 6, 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			proposal, err := client.ResolveOverlap(candidate(tc.candFrom, tc.candTo), existing(1, tc.exFrom, tc.exTo))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if !proposal.NewStart.Equal(day(tc.wantFrom)) || !proposal.NewEnd.Equal(day(tc.wantTo)) {
				t.Fatalf("expected [%s, %s], got [%s, %s]",
					day(tc.wantFrom), day(tc.wantTo), proposal.NewStart, proposal.NewEnd)
			}
		})
	}
}
