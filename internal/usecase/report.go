package usecase

import (
	"context"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/erpre/backoffice/internal/domain/repository"
)

// MonthlyReportRow is one month of the order report with the amount
// grouped for display.
type MonthlyReportRow struct {
	Year            int    `json:"year"`
	Month           int    `json:"month"`
	Orders          int64  `json:"orders"`
	Amount          int64  `json:"amount"`
	FormattedAmount string `json:"formattedAmount"`
}

// ReportUseCase aggregates approved orders for dashboards.
type ReportUseCase struct {
	orders  repository.OrderRepository
	printer *message.Printer
}

// NewReportUseCase constructs ReportUseCase.
func NewReportUseCase(orders repository.OrderRepository) *ReportUseCase {
	return &ReportUseCase{
		orders:  orders,
		printer: message.NewPrinter(language.Korean),
	}
}

// FormatKRW renders an amount with thousands grouping and the won sign.
func (u *ReportUseCase) FormatKRW(amount int64) string {
	return u.printer.Sprintf("₩%d", amount)
}

// MonthlyTotals returns one row per calendar month of the year that has
// at least one approved order.
func (u *ReportUseCase) MonthlyTotals(ctx context.Context, year int) ([]MonthlyReportRow, error) {
	totals, err := u.orders.MonthlyTotals(ctx, year)
	if err != nil {
		return nil, err
	}

	rows := make([]MonthlyReportRow, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, MonthlyReportRow{
			Year:            t.Year,
			Month:           t.Month,
			Orders:          t.Orders,
			Amount:          t.Amount,
			FormattedAmount: u.FormatKRW(t.Amount),
		})
	}
	return rows, nil
}
