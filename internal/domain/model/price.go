package model

import "time"

// PriceRecord is a customer-specific price for one product over an
// inclusive date range. At most one non-deleted record may cover a given
// (customer, product, day); the editor workflow keeps that invariant,
// not a database constraint.
type PriceRecord struct {
	No          int64
	CustomerNo  int64
	ProductCode string
	Amount      int64 // KRW, no minor unit
	StartDate   Date
	EndDate     Date
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Deleted     bool
	DeletedAt   *time.Time

	// Joined read-only fields populated by list queries.
	CustomerName string
	ProductName  string
	CategoryName string
	CategoryPath string
}

// SingleDay reports whether the record covers exactly one calendar day.
func (p PriceRecord) SingleDay() bool {
	return p.StartDate.Equal(p.EndDate)
}

// Overlaps reports whether the record's range shares a day with
// [start, end].
func (p PriceRecord) Overlaps(start, end Date) bool {
	return RangesOverlap(p.StartDate, p.EndDate, start, end)
}

// PriceFilter narrows price list queries. Zero values mean "no filter".
type PriceFilter struct {
	CustomerNo     int64
	ProductCode    string
	StartDate      Date
	EndDate        Date
	TargetDate     Date // day that must fall inside the record's range
	CustomerSearch string
	ProductSearch  string
	Status         string // "", "active" or "deleted"
}

// PriceSort names a sortable column of the price list.
type PriceSort struct {
	Field string // priceNo, amount, startDate, endDate, customerName, productName
	Desc  bool
}
