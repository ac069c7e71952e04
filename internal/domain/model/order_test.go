package model

import (
	"testing"
	"time"
)

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderStatusPending, OrderStatusApproved, true},
		{OrderStatusPending, OrderStatusRejected, true},
		{OrderStatusPending, OrderStatusPending, false},
		{OrderStatusApproved, OrderStatusPending, false},
		{OrderStatusApproved, OrderStatusRejected, false},
		{OrderStatusRejected, OrderStatusPending, true},
		{OrderStatusRejected, OrderStatusApproved, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: expected %v", tc.from, tc.to, tc.want)
		}
	}
}

func TestOrderStatusEditable(t *testing.T) {
	if !OrderStatusPending.Editable() {
		t.Fatal("pending order must be editable")
	}
	if OrderStatusApproved.Editable() || OrderStatusRejected.Editable() {
		t.Fatal("decided orders must not be editable")
	}
}

func TestRecalculateTotal(t *testing.T) {
	delivery := NewDate(2025, time.April, 1)
	order := Order{
		TotalAmount: 999999, // stale, must be overwritten
		Lines: []OrderLine{
			{ProductCode: "P1", UnitPrice: 1500, Quantity: 4, DeliveryRequestDate: delivery},
			{ProductCode: "P2", UnitPrice: 700, Quantity: 3, DeliveryRequestDate: delivery},
		},
	}
	order.RecalculateTotal()
	if order.TotalAmount != 1500*4+700*3 {
		t.Fatalf("unexpected total %d", order.TotalAmount)
	}

	order.Lines = order.Lines[:1]
	order.RecalculateTotal()
	if order.TotalAmount != 6000 {
		t.Fatalf("total not recomputed after line removal: %d", order.TotalAmount)
	}

	order.Lines = nil
	order.RecalculateTotal()
	if order.TotalAmount != 0 {
		t.Fatalf("empty order must total zero, got %d", order.TotalAmount)
	}
}
