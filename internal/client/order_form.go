package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/erpre/backoffice/internal/domain/model"
	"github.com/erpre/backoffice/internal/server/http/dto"
)

// FormMode is the explicit tagged union of order form states. The zero
// value is Create; every other mode names an existing order.
type FormMode struct {
	kind    modeKind
	orderNo int64
}

type modeKind int

const (
	modeCreate modeKind = iota
	modeEdit
	modeResubmit
	modeView
)

// ModeCreate opens an empty form for a new order.
func ModeCreate() FormMode { return FormMode{kind: modeCreate} }

// ModeEdit opens an existing pending order for line editing.
func ModeEdit(orderNo int64) FormMode { return FormMode{kind: modeEdit, orderNo: orderNo} }

// ModeResubmit reopens a rejected order to send it back to pending.
func ModeResubmit(orderNo int64) FormMode { return FormMode{kind: modeResubmit, orderNo: orderNo} }

// ModeView opens a read-only detail of an existing order.
func ModeView(orderNo int64) FormMode { return FormMode{kind: modeView, orderNo: orderNo} }

// OrderNo returns the order the mode refers to, zero for Create.
func (m FormMode) OrderNo() int64 { return m.orderNo }

func (m FormMode) String() string {
	switch m.kind {
	case modeCreate:
		return "create"
	case modeEdit:
		return fmt.Sprintf("edit(%d)", m.orderNo)
	case modeResubmit:
		return fmt.Sprintf("resubmit(%d)", m.orderNo)
	default:
		return fmt.Sprintf("view(%d)", m.orderNo)
	}
}

// Action is a user-visible operation offered by the form.
type Action string

const (
	ActionSubmit   Action = "submit"
	ActionResubmit Action = "resubmit"
	ActionApprove  Action = "approve"
	ActionReject   Action = "reject"
)

// Form state errors.
var (
	ErrOrderNotLoaded   = errors.New("order not loaded")
	ErrModeUnavailable  = errors.New("mode not available for the order's status")
	ErrReadOnlyMode     = errors.New("form is read-only")
	ErrActionNotOffered = errors.New("action not offered in this state")
)

// OrderForm holds the editing state of one order screen. It is not safe
// for concurrent use; one form belongs to one screen.
type OrderForm struct {
	api  API
	mode FormMode
	role model.Role

	customerNo int64
	status     model.OrderStatus
	lines      []dto.OrderLineRequest
	loaded     bool
}

// NewOrderForm mounts a form in the given mode for a viewer with the
// given role. Create mode needs no server round trip; every other mode
// requires Load before use.
func NewOrderForm(api API, mode FormMode, role model.Role) *OrderForm {
	f := &OrderForm{api: api, mode: mode, role: role}
	if mode.kind == modeCreate {
		f.status = model.OrderStatusPending
		f.loaded = true
	}
	return f
}

// Mode returns the mounted mode.
func (f *OrderForm) Mode() FormMode { return f.mode }

// Status returns the loaded order status.
func (f *OrderForm) Status() model.OrderStatus { return f.status }

// Lines returns the current line items.
func (f *OrderForm) Lines() []dto.OrderLineRequest { return f.lines }

// Load fetches the order named by the mode and verifies the mode is
// reachable for its status: Edit needs pending, Resubmit needs rejected.
func (f *OrderForm) Load(ctx context.Context) error {
	if f.mode.kind == modeCreate {
		return nil
	}

	order, err := f.api.Order(ctx, f.mode.orderNo)
	if err != nil {
		return err
	}

	status := model.OrderStatus(order.Status)
	switch f.mode.kind {
	case modeEdit:
		if status != model.OrderStatusPending {
			return ErrModeUnavailable
		}
	case modeResubmit:
		if status != model.OrderStatusRejected {
			return ErrModeUnavailable
		}
	}

	f.customerNo = order.CustomerNo
	f.status = status
	f.lines = make([]dto.OrderLineRequest, 0, len(order.Lines))
	for _, l := range order.Lines {
		f.lines = append(f.lines, dto.OrderLineRequest{
			ProductCode:         l.ProductCode,
			UnitPrice:           l.UnitPrice,
			Quantity:            l.Quantity,
			DeliveryRequestDate: l.DeliveryRequestDate,
		})
	}
	f.loaded = true
	return nil
}

// SetCustomer sets the buying customer; only meaningful while editable.
func (f *OrderForm) SetCustomer(no int64) error {
	if !f.editable() {
		return ErrReadOnlyMode
	}
	f.customerNo = no
	return nil
}

// AddLine appends a line item.
func (f *OrderForm) AddLine(line dto.OrderLineRequest) error {
	if !f.editable() {
		return ErrReadOnlyMode
	}
	f.lines = append(f.lines, line)
	return nil
}

// UpdateLine replaces the line at index.
func (f *OrderForm) UpdateLine(index int, line dto.OrderLineRequest) error {
	if !f.editable() {
		return ErrReadOnlyMode
	}
	if index < 0 || index >= len(f.lines) {
		return fmt.Errorf("line index %d out of range", index)
	}
	f.lines[index] = line
	return nil
}

// RemoveLine deletes the line at index.
func (f *OrderForm) RemoveLine(index int) error {
	if !f.editable() {
		return ErrReadOnlyMode
	}
	if index < 0 || index >= len(f.lines) {
		return fmt.Errorf("line index %d out of range", index)
	}
	f.lines = append(f.lines[:index], f.lines[index+1:]...)
	return nil
}

// Total derives the header total from the current lines. The stored
// server total is never trusted while the form is editable.
func (f *OrderForm) Total() int64 {
	var sum int64
	for _, l := range f.lines {
		sum += l.UnitPrice * l.Quantity
	}
	return sum
}

// AllowedActions lists what the current state offers: submit in Create
// and Edit, resubmit in Resubmit, approve/reject only to admins viewing
// a pending order. Approved orders offer nothing.
func (f *OrderForm) AllowedActions() []Action {
	switch f.mode.kind {
	case modeCreate, modeEdit:
		return []Action{ActionSubmit}
	case modeResubmit:
		return []Action{ActionResubmit}
	default:
		if f.role == model.RoleAdmin && f.status == model.OrderStatusPending {
			return []Action{ActionApprove, ActionReject}
		}
		return nil
	}
}

func (f *OrderForm) offers(action Action) bool {
	for _, a := range f.AllowedActions() {
		if a == action {
			return true
		}
	}
	return false
}

func (f *OrderForm) editable() bool {
	switch f.mode.kind {
	case modeCreate:
		return true
	case modeEdit, modeResubmit:
		return f.loaded
	}
	return false
}

// Submit sends the form per its mode: Create posts a new order, Edit
// replaces the lines, Resubmit does the same and moves the order back to
// pending server side. Returns the server's view of the order.
func (f *OrderForm) Submit(ctx context.Context) (*dto.OrderResponse, error) {
	if !f.loaded {
		return nil, ErrOrderNotLoaded
	}
	if !f.offers(ActionSubmit) && !f.offers(ActionResubmit) {
		return nil, ErrActionNotOffered
	}

	req := dto.OrderRequest{CustomerNo: f.customerNo, Lines: f.lines}
	if f.mode.kind == modeCreate {
		return f.api.CreateOrder(ctx, req)
	}
	return f.api.UpdateOrder(ctx, f.mode.orderNo, req)
}

// Approve decides the viewed pending order; admin only, terminal.
func (f *OrderForm) Approve(ctx context.Context) error {
	return f.decide(ctx, ActionApprove, model.OrderStatusApproved)
}

// Reject decides the viewed pending order; admin only, terminal.
func (f *OrderForm) Reject(ctx context.Context) error {
	return f.decide(ctx, ActionReject, model.OrderStatusRejected)
}

func (f *OrderForm) decide(ctx context.Context, action Action, next model.OrderStatus) error {
	if !f.loaded {
		return ErrOrderNotLoaded
	}
	if !f.offers(action) {
		return ErrActionNotOffered
	}
	if err := f.api.UpdateOrderStatus(ctx, f.mode.orderNo, string(next)); err != nil {
		return err
	}
	f.status = next
	return nil
}
