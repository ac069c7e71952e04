package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/erpre/backoffice/internal/domain/errors"
	"github.com/erpre/backoffice/internal/domain/model"
)

const orderColumns = `o.no, o.customer_no, cu.name, o.employee_id, e.name, o.status, o.total_amount,
       o.created_at, o.updated_at, o.deleted, o.deleted_at`

const orderFrom = ` FROM order_headers o
         JOIN customers cu ON cu.no = o.customer_no
         JOIN employees e ON e.id = o.employee_id`

func (r *orderRepository) Create(ctx context.Context, o *model.Order) (*model.Order, error) {
	created := *o
	created.Lines = append([]model.OrderLine(nil), o.Lines...)
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertHeader = `INSERT INTO order_headers (customer_no, employee_id, status, total_amount)
                              VALUES ($1, $2, $3, $4)
                              RETURNING no, created_at, updated_at`
		if err := tx.QueryRow(ctx, insertHeader, o.CustomerNo, o.EmployeeID, o.Status, o.TotalAmount).
			Scan(&created.No, &created.CreatedAt, &created.UpdatedAt); err != nil {
			return err
		}
		for i := range created.Lines {
			created.Lines[i].OrderNo = created.No
			if err := insertLine(ctx, tx, created.No, created.Lines[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func insertLine(ctx context.Context, tx pgx.Tx, orderNo int64, l model.OrderLine) error {
	const insertLineQuery = `INSERT INTO order_lines (order_no, product_code, unit_price, quantity, delivery_request_date)
                             VALUES ($1, $2, $3, $4, $5)`
	var delivery any
	if !l.DeliveryRequestDate.IsZero() {
		delivery = l.DeliveryRequestDate.Time
	}
	_, err := tx.Exec(ctx, insertLineQuery, orderNo, l.ProductCode, l.UnitPrice, l.Quantity, delivery)
	return err
}

func (r *orderRepository) GetByNo(ctx context.Context, no int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + orderFrom + ` WHERE o.no=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, no).Scan(&o.No, &o.CustomerNo, &o.CustomerName,
		&o.EmployeeID, &o.EmployeeName, &o.Status, &o.TotalAmount,
		&o.CreatedAt, &o.UpdatedAt, &o.Deleted, &o.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	lines, err := r.linesFor(ctx, no)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return &o, nil
}

func (r *orderRepository) linesFor(ctx context.Context, orderNo int64) ([]model.OrderLine, error) {
	const query = `SELECT l.order_no, l.product_code, p.name, l.unit_price, l.quantity, l.delivery_request_date
                   FROM order_lines l
                   JOIN products p ON p.code = l.product_code
                   WHERE l.order_no=$1
                   ORDER BY l.id`
	rows, err := r.storage.pool.Query(ctx, query, orderNo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []model.OrderLine
	for rows.Next() {
		var l model.OrderLine
		var delivery *time.Time
		if err := rows.Scan(&l.OrderNo, &l.ProductCode, &l.ProductName, &l.UnitPrice, &l.Quantity, &delivery); err != nil {
			return nil, err
		}
		if delivery != nil {
			l.DeliveryRequestDate = model.Date{Time: *delivery}
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *orderRepository) List(ctx context.Context, f model.OrderFilter, page, size int) ([]model.Order, int64, error) {
	b := &condBuilder{}
	b.add("NOT o.deleted")
	if f.Status != "" {
		b.add("o.status = $%d", f.Status)
	}
	if f.CustomerName != "" {
		b.add("cu.name ILIKE $%d", "%"+f.CustomerName+"%")
	}
	if f.EmployeeID != "" {
		b.add("o.employee_id = $%d", f.EmployeeID)
	}
	if !f.OrderDate.IsZero() {
		b.add("o.created_at::date = $%d", f.OrderDate.Time)
	}

	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*)`+orderFrom+` `+b.clause(), b.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + orderColumns + orderFrom + ` ` + b.clause() +
		` ORDER BY o.created_at DESC LIMIT $` + itoa(b.next()) + ` OFFSET $` + itoa(b.next()+1)
	args := append(b.args, size, (page-1)*size)

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.No, &o.CustomerNo, &o.CustomerName, &o.EmployeeID, &o.EmployeeName,
			&o.Status, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt, &o.Deleted, &o.DeletedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// ReplaceLines swaps the full line set and header total in one
// transaction; it also resets status so a resubmitted order goes back to
// pending.
func (r *orderRepository) ReplaceLines(ctx context.Context, o *model.Order) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const updateHeader = `UPDATE order_headers
                              SET customer_no=$1, status=$2, total_amount=$3, updated_at=NOW()
                              WHERE no=$4 AND NOT deleted`
		tag, err := tx.Exec(ctx, updateHeader, o.CustomerNo, o.Status, o.TotalAmount, o.No)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM order_lines WHERE order_no=$1`, o.No); err != nil {
			return err
		}
		for _, l := range o.Lines {
			if err := insertLine(ctx, tx, o.No, l); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) UpdateStatus(ctx context.Context, no int64, status model.OrderStatus) error {
	const query = `UPDATE order_headers SET status=$1, updated_at=NOW() WHERE no=$2 AND NOT deleted`
	tag, err := r.storage.pool.Exec(ctx, query, status, no)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) CountByStatus(ctx context.Context, status model.OrderStatus) (int64, error) {
	var count int64
	err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM order_headers WHERE status=$1 AND NOT deleted`, status).Scan(&count)
	return count, err
}

func (r *orderRepository) MonthlyTotals(ctx context.Context, year int) ([]model.MonthlyOrderTotal, error) {
	const query = `SELECT EXTRACT(MONTH FROM created_at)::int AS month, COUNT(*), COALESCE(SUM(total_amount), 0)
                   FROM order_headers
                   WHERE status='approved' AND NOT deleted AND EXTRACT(YEAR FROM created_at)::int = $1
                   GROUP BY month
                   ORDER BY month`
	rows, err := r.storage.pool.Query(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.MonthlyOrderTotal
	for rows.Next() {
		t := model.MonthlyOrderTotal{Year: year}
		if err := rows.Scan(&t.Month, &t.Orders, &t.Amount); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
