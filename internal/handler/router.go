package handler

import (
	"time"

	"chokokon/config"
	"chokokon/internal/metrics"
	"chokokon/internal/middleware"
	"chokokon/internal/session"
	"chokokon/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	Config   *config.Config
	Store    *store.Store
	Sessions *session.Manager
	Metrics  *metrics.Recorder
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// NewRouter wires every route of the dashboard service.
func NewRouter(d Deps) *gin.Engine {
	cfg := d.Config

	r := gin.Default()
	r.Use(cors.New(corsConfig(cfg.Server.CORSOrigins)))
	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics))
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	guard := middleware.Guard{
		Sessions:   d.Sessions,
		CookieName: cfg.Session.CookieName,
		LoginPath:  "/login",
		HomePath:   "/dashboard",
	}

	r.GET("/ping", Ping)

	authHandler := &AuthHandler{
		Sessions:     d.Sessions,
		CookieName:   cfg.Session.CookieName,
		LoginDelay:   time.Duration(cfg.Session.LoginDelayMillis) * time.Millisecond,
		SecureCookie: cfg.Server.Env == "production",
		Metrics:      d.Metrics,
	}
	managerHandler := &ManagerHandler{Store: d.Store, LowStockThreshold: cfg.Business.LowStockThreshold}

	// Pages
	r.GET("/login", guard.RedirectIfAuthenticated(), authHandler.LoginPage)
	pages := r.Group("/dashboard")
	pages.Use(guard.RequirePage())
	{
		pages.GET("", managerHandler.Dashboard)
		pages.GET("/*tab", managerHandler.Dashboard)
	}

	authRoutes := r.Group("/api/v1/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/logout", guard.RequireSession(), authHandler.Logout)
		authRoutes.GET("/session", guard.RequireSession(), authHandler.CurrentSession)
	}

	publicHandler := &PublicHandler{Store: d.Store, Site: cfg.Site}
	publicRoutes := r.Group("/api/v1/public")
	{
		publicRoutes.GET("/site-info", publicHandler.GetSiteInfo)
		publicRoutes.GET("/products", publicHandler.ListPublicProducts)
	}

	api := r.Group("/api/v1")
	api.Use(guard.RequireSession())

	inventoryHandler := &InventoryHandler{Store: d.Store, LowStockThreshold: cfg.Business.LowStockThreshold}
	{
		api.GET("/suppliers", inventoryHandler.ListSuppliers)
		api.POST("/suppliers", inventoryHandler.CreateSupplier)
		api.GET("/suppliers/:id", inventoryHandler.GetSupplier)
		api.PUT("/suppliers/:id", inventoryHandler.UpdateSupplier)
		api.DELETE("/suppliers/:id", inventoryHandler.DeleteSupplier)

		api.GET("/ingredients", inventoryHandler.ListIngredients)
		api.POST("/ingredients", inventoryHandler.CreateIngredient)
		api.GET("/ingredients/alerts", inventoryHandler.GetLowStockAlerts)
		api.GET("/ingredients/:id", inventoryHandler.GetIngredient)
		api.PUT("/ingredients/:id", inventoryHandler.UpdateIngredient)
		api.DELETE("/ingredients/:id", inventoryHandler.DeleteIngredient)
	}

	catalogHandler := &CatalogHandler{Store: d.Store}
	{
		api.GET("/recipes", catalogHandler.ListRecipes)
		api.POST("/recipes", catalogHandler.CreateRecipe)
		api.GET("/recipes/costs", catalogHandler.RecipeCosts)
		api.GET("/recipes/:id", catalogHandler.GetRecipe)
		api.GET("/recipes/:id/cost", catalogHandler.RecipeCost)
		api.PUT("/recipes/:id", catalogHandler.UpdateRecipe)
		api.DELETE("/recipes/:id", catalogHandler.DeleteRecipe)

		api.GET("/products", catalogHandler.ListProducts)
		api.POST("/products", catalogHandler.CreateProduct)
		api.GET("/products/:id", catalogHandler.GetProduct)
		api.GET("/products/:id/cost", catalogHandler.ProductCost)
		api.PUT("/products/:id", catalogHandler.UpdateProduct)
		api.DELETE("/products/:id", catalogHandler.DeleteProduct)
	}

	orderHandler := &OrderHandler{Store: d.Store, StrictTransitions: cfg.Business.StrictOrderTransitions}
	{
		api.GET("/orders", orderHandler.ListOrders)
		api.POST("/orders", orderHandler.CreateOrder)
		api.GET("/orders/:id", orderHandler.GetOrder)
		api.PUT("/orders/:id", orderHandler.UpdateOrder)
		api.PUT("/orders/:id/status", orderHandler.UpdateOrderStatus)
		api.DELETE("/orders/:id", orderHandler.DeleteOrder)
	}

	reports := api.Group("/reports")
	{
		reports.GET("/overview", managerHandler.GetOverview)
		reports.GET("/sales", managerHandler.GetSalesReport)
		reports.GET("/popular-products", managerHandler.GetPopularProducts)
		reports.GET("/recent-sales", managerHandler.GetRecentSales)
		reports.GET("/order-status", managerHandler.GetOrderStatus)
		reports.GET("/production", managerHandler.GetProductionPlan)
	}

	return r
}
