package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/erpre/backoffice/internal/domain/errors"
	"github.com/erpre/backoffice/internal/domain/model"
)

const productColumns = `p.code, p.name, p.category_id, COALESCE(c.name, ''), COALESCE(c.path, ''),
       p.price, p.created_at, p.updated_at, p.deleted, p.deleted_at`

const productFrom = ` FROM products p LEFT JOIN categories c ON c.id = p.category_id`

func scanProduct(rows pgx.Rows) (model.Product, error) {
	var p model.Product
	err := rows.Scan(&p.Code, &p.Name, &p.CategoryID, &p.CategoryName, &p.CategoryPath,
		&p.Price, &p.CreatedAt, &p.UpdatedAt, &p.Deleted, &p.DeletedAt)
	return p, err
}

func (r *productRepository) GetByCode(ctx context.Context, code string) (*model.Product, error) {
	query := `SELECT ` + productColumns + productFrom + ` WHERE p.code=$1`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, code).Scan(&p.Code, &p.Name, &p.CategoryID,
		&p.CategoryName, &p.CategoryPath, &p.Price, &p.CreatedAt, &p.UpdatedAt, &p.Deleted, &p.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Search(ctx context.Context, code, name string, categoryID int64) ([]model.Product, error) {
	b := &condBuilder{}
	b.add("NOT p.deleted")
	if code != "" {
		b.add("p.code ILIKE $%d", "%"+code+"%")
	}
	if name != "" {
		b.add("p.name ILIKE $%d", "%"+name+"%")
	}
	if categoryID != 0 {
		b.add("(c.id = $%d OR c.parent_id = $%d)", categoryID, categoryID)
	}

	query := `SELECT ` + productColumns + productFrom + ` ` + b.clause() + ` ORDER BY p.code`
	rows, err := r.storage.pool.Query(ctx, query, b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) List(ctx context.Context, search string, page, size int) ([]model.Product, int64, error) {
	b := &condBuilder{}
	b.add("NOT p.deleted")
	if search != "" {
		b.add("(p.code ILIKE $%d OR p.name ILIKE $%d)", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*)`+productFrom+` `+b.clause(), b.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productColumns + productFrom + ` ` + b.clause() +
		` ORDER BY p.code LIMIT $` + itoa(b.next()) + ` OFFSET $` + itoa(b.next()+1)
	args := append(b.args, size, (page-1)*size)

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *categoryRepository) All(ctx context.Context) ([]model.Category, error) {
	const query = `SELECT id, name, parent_id, level, path FROM categories ORDER BY path, id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ParentID, &c.Level, &c.Path); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
