package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/erpre/backoffice/internal/domain/errors"
	"github.com/erpre/backoffice/internal/domain/model"
)

func (r *customerRepository) GetByNo(ctx context.Context, no int64) (*model.Customer, error) {
	const query = `SELECT no, name, tel, representative_name, created_at, updated_at, deleted, deleted_at
                   FROM customers WHERE no=$1`
	var c model.Customer
	err := r.storage.pool.QueryRow(ctx, query, no).Scan(&c.No, &c.Name, &c.Tel, &c.RepresentativeName,
		&c.CreatedAt, &c.UpdatedAt, &c.Deleted, &c.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) List(ctx context.Context, search string, page, size int) ([]model.Customer, int64, error) {
	where := `WHERE NOT deleted`
	args := []any{}
	if search != "" {
		where += ` AND name ILIKE $1`
		args = append(args, "%"+search+"%")
	}

	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT no, name, tel, representative_name, created_at, updated_at, deleted, deleted_at
              FROM customers ` + where + ` ORDER BY name LIMIT $` + itoa(len(args)+1) + ` OFFSET $` + itoa(len(args)+2)
	args = append(args, size, (page-1)*size)

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.No, &c.Name, &c.Tel, &c.RepresentativeName,
			&c.CreatedAt, &c.UpdatedAt, &c.Deleted, &c.DeletedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}
