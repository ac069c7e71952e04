package model

import "time"

// OrderStatus describes the approval lifecycle of a sales order.
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusApproved OrderStatus = "approved"
	OrderStatusRejected OrderStatus = "rejected"
)

// Valid reports whether the status is one of the known values.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusApproved, OrderStatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status change is allowed.
// Approval decisions are terminal; a rejected order may only go back to
// pending through resubmission.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusApproved || next == OrderStatusRejected
	case OrderStatusRejected:
		return next == OrderStatusPending
	}
	return false
}

// Editable reports whether order lines may still change.
func (s OrderStatus) Editable() bool {
	return s == OrderStatusPending
}

// OrderLine is one product position of an order.
type OrderLine struct {
	OrderNo             int64
	ProductCode         string
	ProductName         string
	UnitPrice           int64
	Quantity            int64
	DeliveryRequestDate Date
}

// Total returns the line extension.
func (l OrderLine) Total() int64 {
	return l.UnitPrice * l.Quantity
}

// Order is a sales order header with its lines.
type Order struct {
	No           int64
	CustomerNo   int64
	CustomerName string
	EmployeeID   string
	EmployeeName string
	Status       OrderStatus
	TotalAmount  int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Deleted      bool
	DeletedAt    *time.Time
	Lines        []OrderLine
}

// RecalculateTotal derives the header total from the current lines.
// The stored total is never trusted while the order is editable.
func (o *Order) RecalculateTotal() {
	var sum int64
	for _, l := range o.Lines {
		sum += l.Total()
	}
	o.TotalAmount = sum
}

// OrderFilter narrows order list queries.
type OrderFilter struct {
	Status       OrderStatus
	CustomerName string
	EmployeeID   string
	OrderDate    Date
}
