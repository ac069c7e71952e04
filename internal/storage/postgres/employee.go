package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/erpre/backoffice/internal/domain/errors"
	"github.com/erpre/backoffice/internal/domain/model"
)

const employeeColumns = `id, name, email, tel, role, password_hash, created_at, updated_at, deleted, deleted_at`

func scanEmployee(row pgx.Row) (*model.Employee, error) {
	var e model.Employee
	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Tel, &e.Role, &e.PasswordHash,
		&e.CreatedAt, &e.UpdatedAt, &e.Deleted, &e.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepository) Create(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	const query = `INSERT INTO employees (id, name, email, tel, role, password_hash)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING created_at, updated_at`
	created := *e
	err := r.storage.pool.QueryRow(ctx, query, e.ID, e.Name, e.Email, e.Tel, e.Role, e.PasswordHash).
		Scan(&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	query := fmt.Sprintf(`SELECT %s FROM employees WHERE id=$1`, employeeColumns)
	return scanEmployee(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *employeeRepository) List(ctx context.Context, search string, page, size int) ([]model.Employee, int64, error) {
	where := `WHERE NOT deleted`
	args := []any{}
	if search != "" {
		where += ` AND (id ILIKE $1 OR name ILIKE $1)`
		args = append(args, "%"+search+"%")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees ` + where
	if err := r.storage.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM employees %s ORDER BY id LIMIT $%d OFFSET $%d`,
		employeeColumns, where, len(args)+1, len(args)+2)
	args = append(args, size, (page-1)*size)

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Employee
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Tel, &e.Role, &e.PasswordHash,
			&e.CreatedAt, &e.UpdatedAt, &e.Deleted, &e.DeletedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *employeeRepository) Update(ctx context.Context, e *model.Employee) error {
	const query = `UPDATE employees
                   SET name=$1, email=$2, tel=$3, role=$4, password_hash=$5, updated_at=NOW()
                   WHERE id=$6 AND NOT deleted`
	tag, err := r.storage.pool.Exec(ctx, query, e.Name, e.Email, e.Tel, e.Role, e.PasswordHash, e.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *employeeRepository) SoftDelete(ctx context.Context, id string) error {
	const query = `UPDATE employees SET deleted=TRUE, deleted_at=NOW() WHERE id=$1 AND NOT deleted`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
