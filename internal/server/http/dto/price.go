package dto

import (
	"time"

	"github.com/erpre/backoffice/internal/domain/model"
)

// PriceRequest is one record of a batch insert/update payload.
type PriceRequest struct {
	No          int64      `json:"priceNo,omitempty"`
	CustomerNo  int64      `json:"customerNo"`
	ProductCode string     `json:"productCd"`
	Amount      int64      `json:"priceCustomer"`
	StartDate   model.Date `json:"priceStartDate"`
	EndDate     model.Date `json:"priceEndDate"`
}

// PriceResponse is the price list/detail entry.
type PriceResponse struct {
	No           int64      `json:"priceNo"`
	CustomerNo   int64      `json:"customerNo"`
	CustomerName string     `json:"customerName"`
	ProductCode  string     `json:"productCd"`
	ProductName  string     `json:"productNm"`
	CategoryName string     `json:"categoryNm,omitempty"`
	CategoryPath string     `json:"categoryPath,omitempty"`
	Amount       int64      `json:"priceCustomer"`
	StartDate    model.Date `json:"priceStartDate"`
	EndDate      model.Date `json:"priceEndDate"`
	CreatedAt    time.Time  `json:"priceInsertDate"`
	UpdatedAt    time.Time  `json:"priceUpdateDate"`
	Deleted      bool       `json:"priceDeleteYn"`
	DeletedAt    *time.Time `json:"priceDeleteDate,omitempty"`
}

// OverlapCheckRequest asks for active records of the pair intersecting
// the candidate range.
type OverlapCheckRequest struct {
	CustomerNo  int64      `json:"customerNo"`
	ProductCode string     `json:"productCd"`
	StartDate   model.Date `json:"priceStartDate"`
	EndDate     model.Date `json:"priceEndDate"`
}

// PriceDeleteRequest soft deletes or restores a batch of records.
type PriceDeleteRequest struct {
	Nos     []int64 `json:"priceNos"`
	Deleted bool    `json:"deleteYn"`
}
