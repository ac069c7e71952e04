package dto

import (
	"time"

	"github.com/erpre/backoffice/internal/domain/model"
)

// OrderLineRequest is one product position of an order payload.
type OrderLineRequest struct {
	ProductCode         string     `json:"productCd"`
	UnitPrice           int64      `json:"orderDPrice"`
	Quantity            int64      `json:"orderDQty"`
	DeliveryRequestDate model.Date `json:"orderDDeliveryRequestDate"`
}

// OrderRequest carries create and update payloads. Status and total are
// ignored on input; the server derives both.
type OrderRequest struct {
	CustomerNo int64              `json:"customerNo"`
	Lines      []OrderLineRequest `json:"orderDetails"`
}

// OrderStatusRequest asks for an approval decision.
type OrderStatusRequest struct {
	Status string `json:"orderHStatus"`
}

// OrderLineResponse is one line of an order detail.
type OrderLineResponse struct {
	ProductCode         string     `json:"productCd"`
	ProductName         string     `json:"productNm"`
	UnitPrice           int64      `json:"orderDPrice"`
	Quantity            int64      `json:"orderDQty"`
	Total               int64      `json:"orderDTotalPrice"`
	DeliveryRequestDate model.Date `json:"orderDDeliveryRequestDate"`
}

// OrderResponse is the order list/detail entry.
type OrderResponse struct {
	No           int64               `json:"orderNo"`
	CustomerNo   int64               `json:"customerNo"`
	CustomerName string              `json:"customerName"`
	EmployeeID   string              `json:"employeeId"`
	EmployeeName string              `json:"employeeName"`
	Status       string              `json:"orderHStatus"`
	TotalAmount  int64               `json:"orderHTotalPrice"`
	CreatedAt    time.Time           `json:"orderHInsertDate"`
	UpdatedAt    time.Time           `json:"orderHUpdateDate"`
	Lines        []OrderLineResponse `json:"orderDetails,omitempty"`
}

// MonthlyReportResponse is one month of the approved order report.
type MonthlyReportResponse struct {
	Year            int    `json:"year"`
	Month           int    `json:"month"`
	Orders          int64  `json:"orderCount"`
	Amount          int64  `json:"totalAmount"`
	FormattedAmount string `json:"formattedAmount"`
}
