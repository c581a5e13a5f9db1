package httpserver

import (
	"context"

	"kabirclub/internal/domain"
	"kabirclub/internal/service/auth"
	"kabirclub/internal/service/cart"
	"kabirclub/internal/service/catalog"
	"kabirclub/internal/service/checkout"
	"kabirclub/internal/service/engagement"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// AuthService is the identity surface the handlers need.
type AuthService interface {
	Register(ctx context.Context, in auth.RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Logout(ctx context.Context, token string) error
	ResolveOwner(ctx context.Context, token string) (*domain.User, error)
	SessionTTLSeconds() int
}

type CatalogService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, slug string) (*domain.Category, error)
	CreateCategory(ctx context.Context, cmd catalog.CreateCategoryCommand) (*domain.Category, error)
	ListProductsByCategory(ctx context.Context, slug string) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, *domain.Category, error)
	ListFeatured(ctx context.Context) ([]domain.Product, error)
	ListTrending(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, cmd catalog.CreateProductCommand) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, cmd catalog.UpdateProductCommand) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type CartService interface {
	Add(ctx context.Context, ownerKey int64, cmd cart.AddLineItemCommand) (*domain.LineItem, error)
	SetQuantity(ctx context.Context, ownerKey, lineItemID int64, quantity int) (*domain.LineItem, error)
	Remove(ctx context.Context, ownerKey, lineItemID int64) error
	Clear(ctx context.Context, ownerKey int64) error
	Assemble(ctx context.Context, ownerKey int64) ([]domain.AssembledCartRow, error)
}

type CheckoutService interface {
	BuildHandoff(rows []domain.AssembledCartRow, totals domain.OrderTotals) (*checkout.Handoff, error)
}

type EngagementService interface {
	JoinWaitlist(ctx context.Context, in engagement.JoinWaitlistInput) (*domain.WaitlistEntry, error)
	SubmitContact(ctx context.Context, in engagement.ContactInput) (*domain.ContactMessage, error)
}

// Deps carries the services the router depends on.
type Deps struct {
	Auth          AuthService
	Catalog       CatalogService
	Cart          CartService
	Checkout      CheckoutService
	Engagement    EngagementService
	SessionCookie string
	CORSOrigins   []string
}

// buildRouter wires routes for the API.
func buildRouter(logger zerolog.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger), gin.Recovery())

	if len(deps.CORSOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = deps.CORSOrigins
		corsCfg.AllowCredentials = true
		router.Use(cors.New(corsCfg))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := handlers{deps: deps}

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", h.register)
	authGroup.POST("/login", h.login)
	authGroup.POST("/logout", h.logout)
	authGroup.GET("/current-user", h.requireAuth, h.me)

	api.GET("/categories", h.listCategories)
	api.GET("/categories/:slug", h.getCategory)
	api.POST("/categories", h.requireAuth, h.requireAdmin, h.createCategory)

	api.GET("/products/featured", h.listFeatured)
	api.GET("/products/trending", h.listTrending)
	api.GET("/products/category/:slug", h.listProductsByCategory)
	api.GET("/products/:id", h.getProduct)
	api.POST("/products", h.requireAuth, h.requireAdmin, h.createProduct)
	api.PUT("/products/:id", h.requireAuth, h.requireAdmin, h.updateProduct)
	api.DELETE("/products/:id", h.requireAuth, h.requireAdmin, h.deleteProduct)

	cartGroup := api.Group("/cart", h.requireAuth)
	cartGroup.GET("", h.getCart)
	cartGroup.POST("", h.addToCart)
	cartGroup.PUT("/:id", h.updateCartItem)
	cartGroup.DELETE("/:id", h.removeCartItem)
	cartGroup.DELETE("", h.clearCart)

	api.POST("/checkout", h.requireAuth, h.checkout)

	api.POST("/waitlist", h.joinWaitlist)
	api.POST("/contact", h.submitContact)

	return router
}

type handlers struct {
	deps Deps
}
