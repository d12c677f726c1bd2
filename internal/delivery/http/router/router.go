// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"loja/config"
	"loja/internal/delivery/http/middleware"
	"loja/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	StoreHandler       *handler.StoreHandler
	ProductHandler     *handler.ProductHandler
	SKUHandler         *handler.SKUHandler
	SaleHandler        *handler.SaleHandler
	StockReportHandler *handler.StockReportHandler
	SalesReportHandler *handler.SalesReportHandler
	DashboardHandler   *handler.DashboardHandler
	TestHandler        *handler.TestHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	storeHandler       *handler.StoreHandler
	productHandler     *handler.ProductHandler
	skuHandler         *handler.SKUHandler
	saleHandler        *handler.SaleHandler
	stockReportHandler *handler.StockReportHandler
	salesReportHandler *handler.SalesReportHandler
	dashboardHandler   *handler.DashboardHandler
	testHandler        *handler.TestHandler
	authMiddleware     *middleware.AuthMiddleware
	config             *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		storeHandler:       params.StoreHandler,
		productHandler:     params.ProductHandler,
		skuHandler:         params.SKUHandler,
		saleHandler:        params.SaleHandler,
		stockReportHandler: params.StockReportHandler,
		salesReportHandler: params.SalesReportHandler,
		dashboardHandler:   params.DashboardHandler,
		testHandler:        params.TestHandler,
		authMiddleware:     params.AuthMiddleware,
		config:             params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/session", r.authHandler.CreateSession)
	}

	// API v1 routes, all scoped to the authenticated owner
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	// Store management routes
	storesGroup := apiV1.Group("/lojas")
	{
		storesGroup.GET("", r.storeHandler.ListStores)
		storesGroup.POST("", r.storeHandler.CreateStore)
		storesGroup.GET("/:id", r.storeHandler.GetStore)
		storesGroup.PUT("/:id", r.storeHandler.UpdateStore)
		storesGroup.DELETE("/:id", r.storeHandler.DeleteStore)
	}

	// Product catalog routes
	productsGroup := apiV1.Group("/produtos")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.POST("", r.productHandler.CreateProduct)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct)
	}

	// Inventory SKU routes
	skusGroup := apiV1.Group("/estoque")
	{
		skusGroup.GET("", r.skuHandler.ListSKUs)
		skusGroup.POST("", r.skuHandler.CreateSKU)
		skusGroup.GET("/:id", r.skuHandler.GetSKU)
		skusGroup.PUT("/:id", r.skuHandler.UpdateSKU)
		skusGroup.DELETE("/:id", r.skuHandler.DeleteSKU)
	}

	// Sales order routes
	salesGroup := apiV1.Group("/vendas")
	{
		salesGroup.GET("", r.saleHandler.ListSales)
		salesGroup.POST("", r.saleHandler.CreateSale)
		salesGroup.GET("/:id", r.saleHandler.GetSale)
		salesGroup.PUT("/:id", r.saleHandler.UpdateSale)
		salesGroup.DELETE("/:id", r.saleHandler.DeleteSale)
		salesGroup.POST("/:id/status", r.saleHandler.ChangeStatus)
		salesGroup.GET("/:id/qrcode", r.saleHandler.TrackingQR)
	}

	// Report routes, keyed by SKU
	stockReportGroup := apiV1.Group("/relatorios/estoque/:skuId")
	{
		stockReportGroup.POST("/estimativa", r.stockReportHandler.EstimateStock)
		stockReportGroup.POST("/movimentos", r.stockReportHandler.RegisterMovement)
		stockReportGroup.GET("/movimentos", r.stockReportHandler.ListMovements)
	}

	salesReportGroup := apiV1.Group("/relatorios/vendas/:skuId")
	{
		salesReportGroup.POST("/analise", r.salesReportHandler.AnalyzeMargin)
		salesReportGroup.POST("/analises", r.salesReportHandler.SaveAnalysis)
		salesReportGroup.GET("/analises", r.salesReportHandler.ListAnalyses)
	}

	// Dashboard route
	apiV1.GET("/dashboard/resumo", r.dashboardHandler.Summary)
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		testGroup.Use(r.authMiddleware.Authenticate)
		{
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
		}
	}
}
