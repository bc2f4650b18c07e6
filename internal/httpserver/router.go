package httpserver

import (
	"context"
	"log"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/metrics"
	productrepo "storefront-backend/internal/repository/product"
	authsvc "storefront-backend/internal/service/auth"
	cartsvc "storefront-backend/internal/service/cart"
	checkoutsvc "storefront-backend/internal/service/checkout"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type authService interface {
	Register(ctx context.Context, in authsvc.RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Lookup(ctx context.Context, userID string) (*domain.User, error)
	ParseToken(token string) (authsvc.Claims, error)
}

type productService interface {
	List(ctx context.Context, f productrepo.ListFilter) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type cartService interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID string, in cartsvc.AddItemInput) (*domain.Cart, error)
}

type checkoutService interface {
	Create(ctx context.Context, userID string, in checkoutsvc.CreateInput) (*domain.Checkout, error)
	Get(ctx context.Context, checkoutID, userID string) (*domain.Checkout, error)
	Pay(ctx context.Context, checkoutID, userID, paymentStatus string, details map[string]interface{}) (*domain.Checkout, error)
	Finalize(ctx context.Context, checkoutID, userID string) (*domain.Order, error)
}

type orderService interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	Get(ctx context.Context, id, userID string) (*domain.Order, error)
}

// Deps carries the services the router depends on.
type Deps struct {
	AuthSvc     authService
	ProductSvc  productService
	CartSvc     cartService
	CheckoutSvc checkoutService
	OrderSvc    orderService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if corsOrigins == "" || corsOrigins == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = splitOrigins(corsOrigins)
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")

	api.POST("/users/register", registerHandler(deps.AuthSvc))
	api.POST("/users/login", loginHandler(deps.AuthSvc))

	api.GET("/products", listProductsHandler(deps.ProductSvc))
	api.GET("/products/:id", getProductHandler(deps.ProductSvc))

	authed := api.Group("", authRequired(deps.AuthSvc))
	authed.GET("/users/profile", profileHandler(deps.AuthSvc))

	authed.GET("/cart", getCartHandler(deps.CartSvc))
	authed.POST("/cart", addCartItemHandler(deps.CartSvc))

	authed.POST("/checkout", createCheckoutHandler(deps.CheckoutSvc))
	authed.GET("/checkout/:id", getCheckoutHandler(deps.CheckoutSvc))
	authed.PUT("/checkout/:id/pay", payCheckoutHandler(deps.CheckoutSvc))
	authed.POST("/checkout/:id/finalize", finalizeCheckoutHandler(deps.CheckoutSvc))

	authed.GET("/orders/my-orders", listMyOrdersHandler(deps.OrderSvc))
	authed.GET("/orders/:id", getOrderHandler(deps.OrderSvc))

	admin := api.Group("/admin", authRequired(deps.AuthSvc), adminRequired())
	admin.POST("/products", createProductHandler(deps.ProductSvc))
	admin.PUT("/products/:id", updateProductHandler(deps.ProductSvc))
	admin.DELETE("/products/:id", deleteProductHandler(deps.ProductSvc))

	return router
}
