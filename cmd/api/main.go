package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront-backend/internal/config"
	"storefront-backend/internal/db"
	"storefront-backend/internal/httpserver"
	"storefront-backend/internal/metrics"
	cartrepo "storefront-backend/internal/repository/cart"
	checkoutrepo "storefront-backend/internal/repository/checkout"
	inventoryrepo "storefront-backend/internal/repository/inventory"
	orderrepo "storefront-backend/internal/repository/order"
	productrepo "storefront-backend/internal/repository/product"
	userrepo "storefront-backend/internal/repository/user"
	authsvc "storefront-backend/internal/service/auth"
	cartsvc "storefront-backend/internal/service/cart"
	checkoutsvc "storefront-backend/internal/service/checkout"
	ordersvc "storefront-backend/internal/service/order"
	productsvc "storefront-backend/internal/service/product"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	userRepo := userrepo.NewPostgres(dbpool)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	inventoryRepo := inventoryrepo.NewPostgres(dbpool, logger)
	checkoutRepo := checkoutrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool)
	cartRepo := cartrepo.NewPostgres(dbpool)

	authService := authsvc.New(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	productService := productsvc.New(productRepo)
	cartService := cartsvc.New(cartRepo, productRepo)
	orderService := ordersvc.New(orderRepo)
	checkoutService := checkoutsvc.New(checkoutsvc.Stores{
		Checkouts: checkoutRepo,
		Inventory: inventoryRepo,
		Orders:    orderRepo,
		Carts:     cartRepo,
		Products:  productRepo,
	}, metrics.NewCheckout(), logger, cfg.StoreTimeout)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		AuthSvc:     authService,
		ProductSvc:  productService,
		CartSvc:     cartService,
		CheckoutSvc: checkoutService,
		OrderSvc:    orderService,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
