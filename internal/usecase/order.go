package usecase

import (
	"context"

	domainErrors "github.com/erpre/backoffice/internal/domain/errors"
	"github.com/erpre/backoffice/internal/domain/model"
	"github.com/erpre/backoffice/internal/domain/repository"
)

// OrderUseCase encapsulates the sales order lifecycle.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

func validateLines(lines []model.OrderLine) error {
	if len(lines) == 0 {
		return domainErrors.ErrEmptyOrder
	}
	for _, l := range lines {
		if l.Quantity <= 0 {
			return domainErrors.ErrInvalidQuantity
		}
		if l.UnitPrice <= 0 {
			return domainErrors.ErrInvalidAmount
		}
	}
	return nil
}

// Create stores a new order. Status always starts at pending and the
// header total is derived from the lines, never taken from the request.
func (u *OrderUseCase) Create(ctx context.Context, o *model.Order) (*model.Order, error) {
	if err := validateLines(o.Lines); err != nil {
		return nil, err
	}
	o.Status = model.OrderStatusPending
	o.RecalculateTotal()
	return u.orders.Create(ctx, o)
}

// Get fetches the order header with its lines.
func (u *OrderUseCase) Get(ctx context.Context, no int64) (*model.Order, error) {
	return u.orders.GetByNo(ctx, no)
}

// List returns one page of orders for the filter.
func (u *OrderUseCase) List(ctx context.Context, f model.OrderFilter, page, size int) ([]model.Order, int64, error) {
	return u.orders.List(ctx, f, page, size)
}

// Update replaces lines of an editable order. Editing a pending order
// keeps it pending; resubmitting a rejected order moves it back to
// pending. Approved orders are immutable.
func (u *OrderUseCase) Update(ctx context.Context, no int64, o *model.Order) (*model.Order, error) {
	existing, err := u.orders.GetByNo(ctx, no)
	if err != nil {
		return nil, err
	}

	switch existing.Status {
	case model.OrderStatusPending:
		// plain edit
	case model.OrderStatusRejected:
		// resubmission
	default:
		return nil, domainErrors.ErrOrderNotEditable
	}

	if err := validateLines(o.Lines); err != nil {
		return nil, err
	}

	o.No = no
	if o.CustomerNo == 0 {
		o.CustomerNo = existing.CustomerNo
	}
	o.Status = model.OrderStatusPending
	o.RecalculateTotal()

	if err := u.orders.ReplaceLines(ctx, o); err != nil {
		return nil, err
	}
	return u.orders.GetByNo(ctx, no)
}

// Decide moves a pending order to approved or rejected. Only admins may
// decide, and a decision is terminal.
func (u *OrderUseCase) Decide(ctx context.Context, no int64, next model.OrderStatus, actor model.Role) error {
	if actor != model.RoleAdmin {
		return domainErrors.ErrForbidden
	}
	if next != model.OrderStatusApproved && next != model.OrderStatusRejected {
		return domainErrors.ErrInvalidTransition
	}

	existing, err := u.orders.GetByNo(ctx, no)
	if err != nil {
		return err
	}
	if !existing.Status.CanTransitionTo(next) {
		return domainErrors.ErrInvalidTransition
	}

	return u.orders.UpdateStatus(ctx, no, next)
}

// CountByStatus reports how many orders sit in the given status.
func (u *OrderUseCase) CountByStatus(ctx context.Context, status model.OrderStatus) (int64, error) {
	return u.orders.CountByStatus(ctx, status)
}
