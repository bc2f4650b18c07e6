package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type productSeed struct {
	Name         string
	Description  string
	SKU          string
	PriceCents   int64
	CountInStock int
	Category     string
	Collection   string
	Sizes        []string
	Colors       []string
	Images       []string
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	if err := ensureAdmin(ctx, pool, "Admin User", "admin@example.com", "changeme123"); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}

	products := []productSeed{
		{
			Name:         "Classic Oxford Shirt",
			Description:  "Slim-fit long-sleeve oxford in washed cotton",
			SKU:          "SKU-OXFORD-SHIRT",
			PriceCents:   4999,
			CountInStock: 25,
			Category:     "Top Wear",
			Collection:   "Business Casual",
			Sizes:        []string{"S", "M", "L", "XL"},
			Colors:       []string{"White", "Blue"},
			Images:       []string{"https://picsum.photos/seed/oxford/600"},
		},
		{
			Name:         "Straight Leg Chinos",
			Description:  "Mid-rise chinos with a relaxed straight leg",
			SKU:          "SKU-CHINO-STRAIGHT",
			PriceCents:   5999,
			CountInStock: 18,
			Category:     "Bottom Wear",
			Collection:   "Business Casual",
			Sizes:        []string{"30", "32", "34"},
			Colors:       []string{"Khaki", "Navy"},
			Images:       []string{"https://picsum.photos/seed/chinos/600"},
		},
		{
			Name:         "Everyday Crew Tee",
			Description:  "Heavyweight crewneck tee",
			SKU:          "SKU-CREW-TEE",
			PriceCents:   1999,
			CountInStock: 50,
			Category:     "Top Wear",
			Collection:   "Basics",
			Sizes:        []string{"S", "M", "L"},
			Colors:       []string{"Black", "Grey", "White"},
			Images:       []string{"https://picsum.photos/seed/tee/600"},
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.SKU, err)
		}
	}

	return nil
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool, name, email, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO users (name, email, password_hash, is_admin)
VALUES ($1, $2, $3, true)
ON CONFLICT (email) DO NOTHING
`
	_, err = pool.Exec(ctx, q, name, email, string(hashed))
	return err
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (name, description, sku, price_cents, count_in_stock, category, collection, sizes, colors, images)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (sku) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    category = EXCLUDED.category,
    collection = EXCLUDED.collection,
    sizes = EXCLUDED.sizes,
    colors = EXCLUDED.colors,
    images = EXCLUDED.images
`
	_, err := pool.Exec(ctx, q, p.Name, p.Description, p.SKU, p.PriceCents, p.CountInStock, p.Category, p.Collection, p.Sizes, p.Colors, p.Images)
	return err
}
