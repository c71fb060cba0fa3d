package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/Milansanjaya/shoe-pos-backend/internal/config"
	"github.com/Milansanjaya/shoe-pos-backend/internal/handler"
	"github.com/Milansanjaya/shoe-pos-backend/internal/middleware"
	"github.com/Milansanjaya/shoe-pos-backend/internal/repository"
	"github.com/Milansanjaya/shoe-pos-backend/internal/service"
	"github.com/Milansanjaya/shoe-pos-backend/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler <- Service <- Repository <- DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	returnRepo := repository.NewReturnRepository(db)
	adjustmentRepo := repository.NewStockAdjustmentRepository(db)
	closingRepo := repository.NewClosingRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	counterRepo := repository.NewCounterRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	inventorySvc := service.NewInventoryService(productRepo)
	saleSvc := service.NewSaleService(saleRepo, productRepo, counterRepo, inventorySvc, dispatcher)
	productSvc := service.NewProductService(productRepo, counterRepo)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, productRepo, supplierRepo, counterRepo, inventorySvc)
	returnSvc := service.NewReturnService(returnRepo, saleRepo, productRepo, inventorySvc)
	stockSvc := service.NewStockService(adjustmentRepo, productRepo, inventorySvc)
	closingSvc := service.NewClosingService(closingRepo, saleRepo, expenseRepo, dispatcher)
	expenseSvc := service.NewExpenseService(expenseRepo)
	reportSvc := service.NewReportService(saleRepo, purchaseRepo, productRepo)
	supplierSvc := service.NewSupplierService(supplierRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	salesH := handler.NewSalesHandler(saleSvc, saleRepo, cfg.ReceiptFolder)
	productsH := handler.NewProductsHandler(productSvc)
	purchasesH := handler.NewPurchasesHandler(purchaseSvc)
	returnsH := handler.NewReturnsHandler(returnSvc)
	stockH := handler.NewStockHandler(stockSvc)
	closingsH := handler.NewClosingsHandler(closingSvc)
	expensesH := handler.NewExpensesHandler(expenseSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	priceH := handler.NewPriceCheckHandler(productRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Price check kiosk endpoint, no auth required
	r.GET("/api/price/:barcode", priceH.GetPriceByBarcode)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	anyRole := middleware.RequireRole("cashier", "manager", "admin")
	api := r.Group("/api", jwtMW)
	{
		api.POST("/sales", anyRole, salesH.CreateSale)
		api.POST("/sales/scan", anyRole, salesH.ScanSale)
		api.GET("/sales", anyRole, salesH.ListSales)
		api.GET("/sales/:id", anyRole, salesH.GetSale)
		api.GET("/sales/:id/print", anyRole, salesH.PrintSale)

		api.GET("/products", anyRole, productsH.ListProducts)
		api.GET("/products/low-stock", anyRole, productsH.LowStock)
		api.GET("/products/barcode/:barcode", anyRole, productsH.GetByBarcode)
		api.GET("/products/:id", anyRole, productsH.GetProduct)
		// Catalog writes are admin only
		prods := api.Group("/products", middleware.RequireRole("admin"))
		{
			prods.POST("", productsH.CreateProduct)
			prods.PUT("/:id", productsH.UpdateProduct)
			prods.DELETE("/:id", productsH.DeleteProduct)
		}

		api.POST("/purchases", middleware.RequireRole("manager", "admin"), purchasesH.CreatePurchase)
		api.GET("/purchases", anyRole, purchasesH.ListPurchases)
		api.GET("/purchases/:id", anyRole, purchasesH.GetPurchase)

		api.POST("/returns", anyRole, returnsH.CreateReturn)
		api.GET("/returns", anyRole, returnsH.ListReturns)

		api.POST("/stock/adjust", middleware.RequireRole("manager", "admin"), stockH.AdjustStock)
		api.GET("/stock/adjustments", anyRole, stockH.ListAdjustments)

		api.POST("/closings/close", middleware.RequireRole("manager", "admin"), closingsH.CloseDay)
		api.GET("/closings", middleware.RequireRole("manager", "admin"), closingsH.ListClosings)

		api.POST("/expenses", anyRole, expensesH.CreateExpense)
		api.GET("/expenses/monthly", anyRole, expensesH.MonthlyExpenses)

		api.GET("/reports/business", middleware.RequireRole("manager", "admin"), reportsH.Business)
		api.GET("/reports/today", anyRole, reportsH.Today)
		api.GET("/reports/monthly", middleware.RequireRole("manager", "admin"), reportsH.Monthly)
		api.GET("/dashboard/summary", anyRole, reportsH.Dashboard)

		suppliers := api.Group("/suppliers", middleware.RequireRole("admin"))
		{
			suppliers.POST("", suppliersH.CreateSupplier)
			suppliers.GET("", suppliersH.ListSuppliers)
			suppliers.PUT("/:id", suppliersH.UpdateSupplier)
			suppliers.DELETE("/:id", suppliersH.DeleteSupplier)
		}
	}

	// Swagger UI, only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
