package router

import (
	"time"

	"inventario/internal/config"
	"inventario/internal/handler"
	"inventario/internal/middleware"
	"inventario/internal/repository"
	"inventario/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(rdb, cfg.RateLimitPerMinute, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(db)
	sedeRepo := repository.NewSedeRepository(db)
	assocRepo := repository.NewAssociationRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	userRepo := repository.NewUserRepository(db)
	salesOrderRepo := repository.NewSalesOrderRepository(db)
	purchaseOrderRepo := repository.NewPurchaseOrderRepository(db)
	historyRepo := repository.NewTransactionHistoryRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	assocSvc := service.NewAssociationService(assocRepo)
	productSvc := service.NewProductService(productRepo, assocRepo, assocSvc)
	sedeSvc := service.NewSedeService(sedeRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	supplierSvc := service.NewSupplierService(supplierRepo)
	userSvc := service.NewUserService(userRepo)
	salesOrderSvc := service.NewSalesOrderService(salesOrderRepo)
	purchaseOrderSvc := service.NewPurchaseOrderService(purchaseOrderRepo)
	historySvc := service.NewTransactionHistoryService(historyRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(productSvc)
	sedesH := handler.NewSedesHandler(sedeSvc)
	associationsH := handler.NewAssociationsHandler(assocSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	usersH := handler.NewUsersHandler(userSvc)
	salesOrdersH := handler.NewSalesOrdersHandler(salesOrderSvc)
	purchaseOrdersH := handler.NewPurchaseOrdersHandler(purchaseOrderSvc)
	historyH := handler.NewHistoryHandler(historySvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", productsH.List)
			products.GET("/:id", productsH.Get)
			products.POST("", productsH.Create)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
		}

		sedes := api.Group("/sedes")
		{
			sedes.GET("", sedesH.List)
			sedes.GET("/:id", sedesH.Get)
			sedes.POST("", sedesH.Create)
			sedes.PUT("/:id", sedesH.Update)
			sedes.DELETE("/:id", sedesH.Delete)
		}

		assoc := api.Group("/sede-product-associations")
		{
			assoc.POST("", associationsH.Create)
			assoc.GET("/product/:id", associationsH.SedesForProduct)
		}

		customers := api.Group("/customers")
		{
			customers.GET("", customersH.List)
			customers.GET("/:id", customersH.Get)
			customers.POST("", customersH.Create)
			customers.PUT("/:id", customersH.Update)
			customers.DELETE("/:id", customersH.Delete)
		}

		suppliers := api.Group("/suppliers")
		{
			suppliers.GET("", suppliersH.List)
			suppliers.GET("/:id", suppliersH.Get)
			suppliers.POST("", suppliersH.Create)
			suppliers.PUT("/:id", suppliersH.Update)
			suppliers.DELETE("/:id", suppliersH.Delete)
		}

		users := api.Group("/users")
		{
			users.GET("", usersH.List)
			users.GET("/:id", usersH.Get)
			users.POST("", usersH.Create)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Delete)
		}

		salesOrders := api.Group("/sales-orders")
		{
			salesOrders.GET("", salesOrdersH.List)
			salesOrders.GET("/:id", salesOrdersH.Get)
			salesOrders.POST("", salesOrdersH.Create)
			salesOrders.PUT("/:id", salesOrdersH.Update)
			salesOrders.DELETE("/:id", salesOrdersH.Delete)
		}

		purchaseOrders := api.Group("/purchase-orders")
		{
			purchaseOrders.GET("", purchaseOrdersH.List)
			purchaseOrders.GET("/:id", purchaseOrdersH.Get)
			purchaseOrders.POST("", purchaseOrdersH.Create)
			purchaseOrders.PUT("/:id", purchaseOrdersH.Update)
			purchaseOrders.DELETE("/:id", purchaseOrdersH.Delete)
		}

		history := api.Group("/transaction-history")
		{
			history.GET("", historyH.List)
			history.GET("/:id", historyH.Get)
			history.POST("", historyH.Create)
		}
	}

	return r
}
