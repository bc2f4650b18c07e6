package inventory

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func seedProduct(ctx context.Context, t *testing.T, pool *pgxpool.Pool, stock int) string {
	t.Helper()
	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE orders, checkouts, carts, products, users RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
	var id string
	err := pool.QueryRow(ctx, `
		INSERT INTO products (name, sku, price_cents, count_in_stock)
		VALUES ('Tee', 'SKU-TEE', 1999, $1)
		RETURNING id::text
	`, stock).Scan(&id)
	if err != nil {
		t.Fatalf("insert product: %v", err)
	}
	return id
}

func TestPostgres_AdjustStockConditional(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()
	pid := seedProduct(ctx, t, pool, 5)

	repo := NewPostgres(pool, nil)

	got, err := repo.AdjustStock(ctx, pid, -3)
	if err != nil {
		t.Fatalf("AdjustStock decrement: %v", err)
	}
	if got != 2 {
		t.Fatalf("stock after decrement = %d, want 2", got)
	}

	// A decrement past the floor must not land and must report the
	// current level.
	got, err = repo.AdjustStock(ctx, pid, -3)
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("over-decrement: got %v, want ErrInsufficientStock", err)
	}
	if got != 2 {
		t.Fatalf("reported stock = %d, want 2", got)
	}
	if current, err := repo.CheckStock(ctx, pid); err != nil || current != 2 {
		t.Fatalf("stock mutated by rejected decrement: %d, %v", current, err)
	}

	got, err = repo.AdjustStock(ctx, pid, 3)
	if err != nil {
		t.Fatalf("AdjustStock increment: %v", err)
	}
	if got != 5 {
		t.Fatalf("stock after increment = %d, want 5", got)
	}
}

func TestPostgres_AdjustStockMissingProduct(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()
	seedProduct(ctx, t, pool, 5)

	repo := NewPostgres(pool, nil)

	if _, err := repo.AdjustStock(ctx, "00000000-0000-0000-0000-000000000000", -1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
	if _, err := repo.CheckStock(ctx, "00000000-0000-0000-0000-000000000000"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestPostgres_AdjustStockConcurrent(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()
	pid := seedProduct(ctx, t, pool, 10)

	repo := NewPostgres(pool, nil)

	// 20 workers each try to take 1 unit; exactly 10 must succeed and
	// stock must end at 0, never negative.
	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.AdjustStock(ctx, pid, -1)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, short int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrInsufficientStock):
			short++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 10 || short != 10 {
		t.Fatalf("ok=%d short=%d, want 10/10", ok, short)
	}
	if current, err := repo.CheckStock(ctx, pid); err != nil || current != 0 {
		t.Fatalf("final stock = %d, %v; want 0", current, err)
	}
}
