package main

import (
	"database/sql"
	"net/http"
	"time"

	"tyzox-be/internal/auth"
	"tyzox-be/internal/cart"
	"tyzox-be/internal/category"
	"tyzox-be/internal/config"
	"tyzox-be/internal/handler"
	"tyzox-be/internal/idempotency"
	"tyzox-be/internal/logger"
	"tyzox-be/internal/metrics"
	"tyzox-be/internal/middleware"
	"tyzox-be/internal/order"
	"tyzox-be/internal/product"
	"tyzox-be/internal/recommendation"
	"tyzox-be/internal/report"
	"tyzox-be/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api/v1"

// strictRoutes get the strict rate limit tier.
var strictRoutes = []string{
	apiPrefix + "/auth/login",
	apiPrefix + "/auth/register",
	apiPrefix + "/checkout",
}

type handlers struct {
	auth    *handler.AuthHandler
	catalog *handler.CatalogHandler
	cart    *handler.CartHandler
	order   *handler.OrderHandler
	admin   *handler.AdminHandler
	metrics http.Handler
}

// newServer wires repositories, services and handlers over one database pool.
func newServer(
	cfg *config.Config,
	database *sql.DB,
	keys idempotency.Store,
	limiter *middleware.RateLimiter,
) *gin.Engine {
	m := metrics.NewRegistry()
	issuer := auth.NewIssuer(cfg.JWTSecret, auth.DefaultTokenTTL)

	productRepo := product.NewRepository(database)

	relatedSvc := recommendation.NewService(recommendation.NewRepository(database), m)
	productSvc := product.NewService(productRepo, relatedSvc)
	categorySvc := category.NewService(category.NewRepository(database))
	cartSvc := cart.NewService(cart.NewRepository(database), productRepo, m)
	orderSvc := order.NewService(order.NewRepository(database), relatedSvc, keys, cfg.IdempotencyTTL, m)
	reportSvc := report.NewService(report.NewRepository(database))
	userSvc := user.NewService(user.NewRepository(database), issuer)

	h := handlers{
		auth:    handler.NewAuthHandler(userSvc, issuer.TTL(), cfg.IsProduction()),
		catalog: handler.NewCatalogHandler(productSvc, categorySvc),
		cart:    handler.NewCartHandler(cartSvc),
		order:   handler.NewOrderHandler(orderSvc),
		admin:   handler.NewAdminHandler(productSvc, categorySvc, relatedSvc, reportSvc, m),
		metrics: m.Handler(),
	}

	return setupRouter(cfg, issuer, limiter, h)
}

func setupRouter(
	cfg *config.Config,
	issuer *auth.Issuer,
	limiter *middleware.RateLimiter,
	h handlers,
) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	handler.SetupValidator()

	r := gin.New()
	r.Use(
		logger.RequestID(),
		logger.AccessLog(),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins: cfg.CORSOrigins,
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{
				"Origin", "Content-Type", "Authorization",
				handler.IdempotencyKeyHeader, logger.RequestIDHeader, "X-Device-ID",
				middleware.ServiceAuthHeader,
			},
			ExposeHeaders:    []string{logger.RequestIDHeader, "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		limiter.Middleware(),
		middleware.Auth(issuer),
	)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", middleware.RequireServiceKey(cfg.InternalKey), gin.WrapH(h.metrics))

	api := r.Group(apiPrefix)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", h.auth.Register)
	authGroup.POST("/login", h.auth.Login)
	authGroup.POST("/logout", h.auth.Logout)
	authGroup.GET("/me", middleware.RequireUser(), h.auth.Me)

	api.GET("/products", h.catalog.ListProducts)
	api.GET("/products/:slug", h.catalog.GetProduct)
	api.GET("/categories", h.catalog.ListCategories)

	account := api.Group("", middleware.RequireUser())
	account.GET("/cart", h.cart.Get)
	account.GET("/cart/count", h.cart.Count)
	account.POST("/cart/items", h.cart.AddItem)
	account.PATCH("/cart/items/:productId", h.cart.UpdateItem)
	account.DELETE("/cart/items/:productId", h.cart.RemoveItem)
	account.POST("/checkout", h.order.Checkout)
	account.GET("/orders", h.order.List)
	account.GET("/orders/:id", h.order.Get)

	admin := api.Group("/admin", middleware.RequireAdmin())
	admin.GET("/products", h.admin.ListProducts)
	admin.POST("/products", h.admin.CreateProduct)
	admin.GET("/products/:id", h.admin.GetProduct)
	admin.PUT("/products/:id", h.admin.UpdateProduct)
	admin.DELETE("/products/:id", h.admin.DeleteProduct)
	admin.GET("/products/:id/related", h.admin.ListRelated)
	admin.POST("/products/:id/related/:relatedId", h.admin.LinkRelated)
	admin.DELETE("/products/:id/related/:relatedId", h.admin.UnlinkRelated)
	admin.POST("/categories", h.admin.CreateCategory)
	admin.PUT("/categories/:id", h.admin.RenameCategory)
	admin.DELETE("/categories/:id", h.admin.DeleteCategory)
	admin.GET("/reports/sales", h.admin.SalesReport)
	admin.GET("/reports/sales.csv", h.admin.SalesReportCSV)
	admin.GET("/stats", h.admin.Stats)

	return r
}
