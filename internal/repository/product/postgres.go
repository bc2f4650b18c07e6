package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"storefront-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `id::text, name, COALESCE(description, ''), sku, price_cents, count_in_stock, COALESCE(category, ''), COALESCE(brand, ''), COALESCE(collection, ''), sizes, colors, images, is_published, created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context, f ListFilter) ([]domain.Product, error) {
	var (
		where = []string{"is_published = true"}
		args  []interface{}
	)
	add := func(clause string, arg interface{}) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}
	if f.Collection != "" {
		add("collection = $%d", f.Collection)
	}
	if f.Size != "" {
		add("sizes ? $%d", f.Size)
	}
	if f.Color != "" {
		add("colors ? $%d", f.Color)
	}
	if f.MinPriceCents > 0 {
		add("price_cents >= $%d", f.MinPriceCents)
	}
	if f.MaxPriceCents > 0 {
		add("price_cents <= $%d", f.MaxPriceCents)
	}

	q := `
SELECT ` + productColumns + `
FROM products
WHERE ` + strings.Join(where, " AND ") + `
ORDER BY created_at DESC
`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		q += fmt.Sprintf("LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, description, sku, price_cents, count_in_stock, category, brand, collection, sizes, colors, images, is_published)
VALUES ($1, NULLIF($2, ''), $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), $9, $10, $11, $12)
RETURNING ` + productColumns
	row := r.pool.QueryRow(ctx, q,
		p.Name, p.Description, p.SKU, p.PriceCents, p.CountInStock,
		p.Category, p.Brand, p.Collection,
		jsonStrings(p.Sizes), jsonStrings(p.Colors), jsonStrings(p.Images), p.IsPublished,
	)
	created, err := scanProduct(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("product repo: create sku=%s error=%v", p.SKU, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%s sku=%s", created.ID, created.SKU)
	return created, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET name = $2,
    description = NULLIF($3, ''),
    sku = $4,
    price_cents = $5,
    count_in_stock = $6,
    category = NULLIF($7, ''),
    brand = NULLIF($8, ''),
    collection = NULLIF($9, ''),
    sizes = $10,
    colors = $11,
    images = $12,
    is_published = $13
WHERE id = $1
RETURNING ` + productColumns
	row := r.pool.QueryRow(ctx, q,
		p.ID, p.Name, p.Description, p.SKU, p.PriceCents, p.CountInStock,
		p.Category, p.Brand, p.Collection,
		jsonStrings(p.Sizes), jsonStrings(p.Colors), jsonStrings(p.Images), p.IsPublished,
	)
	updated, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return updated, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	const q = `
DELETE FROM products
WHERE id = $1
`
	cmd, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.SKU,
		&p.PriceCents,
		&p.CountInStock,
		&p.Category,
		&p.Brand,
		&p.Collection,
		&p.Sizes,
		&p.Colors,
		&p.Images,
		&p.IsPublished,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// jsonStrings keeps jsonb columns as [] rather than null for empty slices.
func jsonStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
