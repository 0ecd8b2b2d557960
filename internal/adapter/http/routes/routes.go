package routes

import (
	"net/http"

	_ "taller_xpto/docs"
	"taller_xpto/internal/adapter/http/handlers"
	"taller_xpto/internal/adapter/http/middleware"
	"taller_xpto/internal/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Pricing         *handlers.PricingHandler
	Orders          *handlers.OrderHandler
	Authorization   *handlers.AuthorizationHandler
	Invoices        *handlers.InvoiceHandler
	PurchaseOrders  *handlers.PurchaseOrderHandler
	DeliveryPayment *handlers.DeliveryPaymentHandler
}

// NewRouter builds the gin engine with middlewares, swagger and the v1 routes.
func NewRouter(cfg *config.Config, h Handlers, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logging(logger))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	v1.GET(PathPricing+"/quote", h.Pricing.Quote)
	addOrderRoutes(v1, h, logger)

	return router
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
