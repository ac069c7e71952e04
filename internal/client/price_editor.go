package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/erpre/backoffice/internal/domain/model"
	"github.com/erpre/backoffice/internal/server/http/dto"
)

// Overlap resolution outcomes surfaced to the user.
var (
	// ErrMultipleOverlaps means more than one active record conflicts with
	// the candidate range; automatic resolution only handles one neighbor.
	ErrMultipleOverlaps = errors.New("multiple overlapping records; resolve manually")
	// ErrSingleDayConflict means the conflicting record covers exactly one
	// day and cannot be shrunk.
	ErrSingleDayConflict = errors.New("data exists only for that day")
	// ErrRangeFullyCovered means the candidate fully contains the
	// conflicting record, which would shrink it to an empty range.
	ErrRangeFullyCovered = errors.New("data exists for that full range")
	// ErrSubmissionCanceled means the user declined the proposed shrink.
	ErrSubmissionCanceled = errors.New("submission canceled")
	// ErrInvalidCandidate means the candidate failed field validation.
	ErrInvalidCandidate = errors.New("invalid price candidate")
)

// InconsistencyError reports that the existing record was shrunk but the
// candidate write failed afterwards. The data is left in a recoverable
// but inconsistent state; the caller must retry the candidate manually.
type InconsistencyError struct {
	ShrunkRecordNo int64
	Err            error
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("record %d was shrunk but the candidate write failed: %v; retry the submission manually", e.ShrunkRecordNo, e.Err)
}

func (e *InconsistencyError) Unwrap() error { return e.Err }

// Confirmer asks the user to approve a proposed mutation. A false return
// aborts the submission with no writes beyond those already confirmed.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

// ShrinkProposal is the mutation offered to the user when the candidate
// conflicts with exactly one existing record.
type ShrinkProposal struct {
	Record   dto.PriceResponse
	NewStart model.Date
	NewEnd   model.Date
}

// Prompt renders the proposal for a confirmation dialog.
func (p ShrinkProposal) Prompt() string {
	return fmt.Sprintf("existing price #%d [%s, %s] will be changed to [%s, %s]; continue?",
		p.Record.No, p.Record.StartDate, p.Record.EndDate, p.NewStart, p.NewEnd)
}

// ResolveOverlap applies the single-neighbor decision table: the existing
// record is only ever shortened from one end, never split. Returns the
// proposed boundary change or the error that blocks submission.
func ResolveOverlap(candidate dto.PriceRequest, existing dto.PriceResponse) (ShrinkProposal, error) {
	existingStart, existingEnd := existing.StartDate, existing.EndDate
	inputStart, inputEnd := candidate.StartDate, candidate.EndDate

	switch {
	case existingStart.Equal(existingEnd):
		return ShrinkProposal{}, ErrSingleDayConflict
	case !inputStart.After(existingStart) && !inputEnd.Before(existingEnd):
		return ShrinkProposal{}, ErrRangeFullyCovered
	case inputEnd.After(existingEnd), inputStart.After(existingStart):
		return ShrinkProposal{
			Record:   existing,
			NewStart: existingStart,
			NewEnd:   inputStart.AddDays(-1),
		}, nil
	default:
		return ShrinkProposal{
			Record:   existing,
			NewStart: inputEnd.AddDays(1),
			NewEnd:   existingEnd,
		}, nil
	}
}

// PriceEditor drives the single-row price form: validate, detect
// conflicts against the server, resolve them with user confirmation,
// then submit.
type PriceEditor struct {
	api       API
	confirmer Confirmer
}

// NewPriceEditor constructs PriceEditor.
func NewPriceEditor(api API, confirmer Confirmer) *PriceEditor {
	return &PriceEditor{api: api, confirmer: confirmer}
}

// Submit runs the full overlap-resolution workflow for one candidate.
// A candidate with a record number updates that record; otherwise a new
// record is inserted. Any error from the duplicate check aborts with no
// writes. When a confirmed shrink commits but the candidate write fails,
// the returned error is an *InconsistencyError.
func (e *PriceEditor) Submit(ctx context.Context, candidate dto.PriceRequest) error {
	if candidate.CustomerNo <= 0 || candidate.ProductCode == "" || candidate.Amount <= 0 {
		return ErrInvalidCandidate
	}
	if candidate.StartDate.IsZero() || candidate.EndDate.IsZero() || candidate.StartDate.After(candidate.EndDate) {
		return ErrInvalidCandidate
	}

	conflicts, err := e.api.CheckOverlap(ctx, dto.OverlapCheckRequest{
		CustomerNo:  candidate.CustomerNo,
		ProductCode: candidate.ProductCode,
		StartDate:   candidate.StartDate,
		EndDate:     candidate.EndDate,
	})
	if err != nil {
		return err
	}

	// When editing, the record's own prior version is not a conflict.
	if candidate.No > 0 {
		filtered := conflicts[:0]
		for _, c := range conflicts {
			if c.No != candidate.No {
				filtered = append(filtered, c)
			}
		}
		conflicts = filtered
	}

	switch len(conflicts) {
	case 0:
		return e.write(ctx, candidate)
	case 1:
		// resolved below
	default:
		return ErrMultipleOverlaps
	}

	proposal, err := ResolveOverlap(candidate, conflicts[0])
	if err != nil {
		return err
	}
	if !e.confirmer.Confirm(proposal.Prompt()) {
		return ErrSubmissionCanceled
	}

	// The shrink must commit before the candidate so no transient state
	// double-books a day.
	shrunk := dto.PriceRequest{
		No:          proposal.Record.No,
		CustomerNo:  proposal.Record.CustomerNo,
		ProductCode: proposal.Record.ProductCode,
		Amount:      proposal.Record.Amount,
		StartDate:   proposal.NewStart,
		EndDate:     proposal.NewEnd,
	}
	if _, err := e.api.UpdatePrices(ctx, []dto.PriceRequest{shrunk}); err != nil {
		return err
	}

	if err := e.write(ctx, candidate); err != nil {
		return &InconsistencyError{ShrunkRecordNo: proposal.Record.No, Err: err}
	}
	return nil
}

func (e *PriceEditor) write(ctx context.Context, candidate dto.PriceRequest) error {
	if candidate.No > 0 {
		_, err := e.api.UpdatePrices(ctx, []dto.PriceRequest{candidate})
		return err
	}
	_, err := e.api.InsertPrices(ctx, []dto.PriceRequest{candidate})
	return err
}
