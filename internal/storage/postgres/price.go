package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/erpre/backoffice/internal/domain/errors"
	"github.com/erpre/backoffice/internal/domain/model"
)

const priceColumns = `pr.no, pr.customer_no, pr.product_code, pr.amount, pr.start_date, pr.end_date,
       pr.created_at, pr.updated_at, pr.deleted, pr.deleted_at,
       cu.name, p.name, COALESCE(c.name, ''), COALESCE(c.path, '')`

const priceFrom = ` FROM prices pr
         JOIN customers cu ON cu.no = pr.customer_no
         JOIN products p ON p.code = pr.product_code
         LEFT JOIN categories c ON c.id = p.category_id`

func scanPrice(row pgx.Row) (*model.PriceRecord, error) {
	var p model.PriceRecord
	err := row.Scan(&p.No, &p.CustomerNo, &p.ProductCode, &p.Amount, &p.StartDate.Time, &p.EndDate.Time,
		&p.CreatedAt, &p.UpdatedAt, &p.Deleted, &p.DeletedAt,
		&p.CustomerName, &p.ProductName, &p.CategoryName, &p.CategoryPath)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *priceRepository) Save(ctx context.Context, p *model.PriceRecord) (*model.PriceRecord, error) {
	saved := *p
	if p.No == 0 {
		const query = `INSERT INTO prices (customer_no, product_code, amount, start_date, end_date)
                       VALUES ($1, $2, $3, $4, $5)
                       RETURNING no, created_at, updated_at`
		err := r.storage.pool.QueryRow(ctx, query, p.CustomerNo, p.ProductCode, p.Amount,
			p.StartDate.Time, p.EndDate.Time).Scan(&saved.No, &saved.CreatedAt, &saved.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return &saved, nil
	}

	const query = `UPDATE prices
                   SET customer_no=$1, product_code=$2, amount=$3, start_date=$4, end_date=$5, updated_at=NOW()
                   WHERE no=$6
                   RETURNING created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query, p.CustomerNo, p.ProductCode, p.Amount,
		p.StartDate.Time, p.EndDate.Time, p.No).Scan(&saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &saved, nil
}

func (r *priceRepository) GetByNo(ctx context.Context, no int64) (*model.PriceRecord, error) {
	query := `SELECT ` + priceColumns + priceFrom + ` WHERE pr.no=$1`
	return scanPrice(r.storage.pool.QueryRow(ctx, query, no))
}

var priceSortColumns = map[string]string{
	"priceNo":      "pr.no",
	"amount":       "pr.amount",
	"startDate":    "pr.start_date",
	"endDate":      "pr.end_date",
	"customerName": "cu.name",
	"productName":  "p.name",
	"insertDate":   "pr.created_at",
}

func (r *priceRepository) List(ctx context.Context, f model.PriceFilter, sort model.PriceSort, page, size int) ([]model.PriceRecord, int64, error) {
	b := &condBuilder{}
	if f.CustomerNo != 0 {
		b.add("pr.customer_no = $%d", f.CustomerNo)
	}
	if f.ProductCode != "" {
		b.add("pr.product_code = $%d", f.ProductCode)
	}
	if !f.StartDate.IsZero() {
		b.add("pr.start_date >= $%d", f.StartDate.Time)
	}
	if !f.EndDate.IsZero() {
		b.add("pr.end_date <= $%d", f.EndDate.Time)
	}
	if !f.TargetDate.IsZero() {
		b.add("pr.start_date <= $%d AND pr.end_date >= $%d", f.TargetDate.Time, f.TargetDate.Time)
	}
	if f.CustomerSearch != "" {
		b.add("cu.name ILIKE $%d", "%"+f.CustomerSearch+"%")
	}
	if f.ProductSearch != "" {
		b.add("(p.name ILIKE $%d OR p.code ILIKE $%d)", "%"+f.ProductSearch+"%", "%"+f.ProductSearch+"%")
	}
	switch f.Status {
	case "active":
		b.add("NOT pr.deleted")
	case "deleted":
		b.add("pr.deleted")
	}

	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*)`+priceFrom+` `+b.clause(), b.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	orderBy, ok := priceSortColumns[sort.Field]
	if !ok {
		orderBy = "pr.no"
	}
	direction := " ASC"
	if sort.Desc {
		direction = " DESC"
	}

	query := `SELECT ` + priceColumns + priceFrom + ` ` + b.clause() +
		` ORDER BY ` + orderBy + direction +
		` LIMIT $` + itoa(b.next()) + ` OFFSET $` + itoa(b.next()+1)
	args := append(b.args, size, (page-1)*size)

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	result, err := collectPrices(rows)
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// FindOverlapping selects active records of the pair whose ranges share a
// day with [start, end]: start_date <= end AND end_date >= start.
func (r *priceRepository) FindOverlapping(ctx context.Context, customerNo int64, productCode string, start, end model.Date) ([]model.PriceRecord, error) {
	query := `SELECT ` + priceColumns + priceFrom + `
              WHERE pr.customer_no = $1 AND pr.product_code = $2 AND NOT pr.deleted
                AND pr.start_date <= $4 AND pr.end_date >= $3
              ORDER BY pr.start_date`
	rows, err := r.storage.pool.Query(ctx, query, customerNo, productCode, start.Time, end.Time)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPrices(rows)
}

func (r *priceRepository) ByCustomerAndProduct(ctx context.Context, customerNo int64, productCode string) ([]model.PriceRecord, error) {
	query := `SELECT ` + priceColumns + priceFrom + `
              WHERE pr.customer_no = $1 AND pr.product_code = $2
              ORDER BY pr.start_date`
	rows, err := r.storage.pool.Query(ctx, query, customerNo, productCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPrices(rows)
}

func (r *priceRepository) SetDeleted(ctx context.Context, no int64, deleted bool) error {
	var query string
	if deleted {
		query = `UPDATE prices SET deleted=TRUE, deleted_at=NOW() WHERE no=$1`
	} else {
		query = `UPDATE prices SET deleted=FALSE, deleted_at=NULL, updated_at=NOW() WHERE no=$1`
	}
	tag, err := r.storage.pool.Exec(ctx, query, no)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *priceRepository) Delete(ctx context.Context, no int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM prices WHERE no=$1`, no)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func collectPrices(rows pgx.Rows) ([]model.PriceRecord, error) {
	var result []model.PriceRecord
	for rows.Next() {
		var p model.PriceRecord
		if err := rows.Scan(&p.No, &p.CustomerNo, &p.ProductCode, &p.Amount, &p.StartDate.Time, &p.EndDate.Time,
			&p.CreatedAt, &p.UpdatedAt, &p.Deleted, &p.DeletedAt,
			&p.CustomerName, &p.ProductName, &p.CategoryName, &p.CategoryPath); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
