package model

// MonthlyOrderTotal is one row of the yearly order report.
type MonthlyOrderTotal struct {
	Year   int
	Month  int
	Orders int64
	Amount int64
}
