package router

import (
	"time"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/config"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/handler"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/middleware"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/service"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/store"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Deps are the externally constructed pieces the router wires together.
// rdb may be nil when running without Redis.
type Deps struct {
	Store      *store.Store
	RDB        *redis.Client
	Dispatcher *worker.Dispatcher

	Production service.ProductionService
	Stock      service.StockService
	Sales      service.SaleService
	Finance    service.FinanceService
	Command    service.CommandService
	Snapshot   service.SnapshotService
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Store
func New(cfg *config.Config, d Deps) *gin.Engine {
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
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Handlers ─────────────────────────────────────────────────────────────
	salesH := handler.NewSalesHandler(d.Sales, d.Finance)
	financeH := handler.NewFinanceHandler(d.Finance)
	productionH := handler.NewProductionHandler(d.Production)
	stockH := handler.NewStockHandler(d.Stock)
	commandH := handler.NewCommandHandler(d.Command)
	snapshotH := handler.NewSnapshotHandler(d.Snapshot)
	catalogH := handler.NewCatalogHandler(d.Store)
	reportH := handler.NewReportHandler(d.Dispatcher, cfg.ReportEmail)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(d.Store, d.RDB))

	v1 := r.Group("/v1")
	{
		ventas := v1.Group("/ventas")
		{
			ventas.POST("", salesH.SaveSale)
			ventas.GET("", salesH.ListSales)
			ventas.PATCH("/:id/entrega", salesH.ToggleDelivered)
			ventas.POST("/:id/pago", salesH.ConfirmPayment)
			ventas.POST("/borradores", salesH.StashDraft)
			ventas.GET("/borradores", salesH.ListDrafts)
			ventas.DELETE("/borradores/:index", salesH.ResumeDraft)
		}

		finanzas := v1.Group("/finanzas")
		{
			finanzas.POST("/transacciones", financeH.RecordTransaction)
			finanzas.GET("/transacciones", financeH.ListTransactions)
			finanzas.POST("/convertir", financeH.ConvertPieces)
			finanzas.GET("/resumen", financeH.Summary)
			finanzas.GET("/caja", financeH.CashBalance)
		}

		produccion := v1.Group("/produccion")
		{
			produccion.GET("/reglas", productionH.ListRules)
			produccion.POST("/aplicar", productionH.Apply)
		}

		stock := v1.Group("/stock")
		{
			stock.GET("", stockH.Derived)
			stock.GET("/log", stockH.ProductionLog)
			stock.GET("/inventario/bajo", stockH.LowInventory)
		}

		v1.POST("/comando", commandH.Execute)

		snapshot := v1.Group("/snapshot")
		{
			snapshot.GET("/exportar", snapshotH.Export)
			snapshot.POST("/importar", snapshotH.Import)
			snapshot.POST("/guardar", snapshotH.Persist)
			snapshot.POST("/cargar", snapshotH.Load)
			snapshot.POST("/reiniciar", snapshotH.Reset)
		}

		catalogo := v1.Group("/catalogo")
		{
			catalogo.GET("/productos", catalogH.Products)
			catalogo.GET("/inventario", catalogH.Inventory)
			catalogo.PATCH("/inventario/:id", catalogH.AdjustInventory)
		}

		v1.POST("/reporte/diario", reportH.Daily)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
