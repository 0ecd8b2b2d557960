package routes

import (
	"taller_xpto/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	PathPricing = "/pricing"
	PathOrders  = "/orders"
)

// addOrderRoutes mounts every order route behind the role header.
// Phase permissions are enforced by the use cases, not here.
func addOrderRoutes(rg *gin.RouterGroup, h Handlers, logger *zap.Logger) {
	orders := rg.Group(PathOrders)
	orders.Use(middleware.RequireRole(logger))
	{
		orders.POST("", h.Orders.Create)
		orders.GET("/:id", h.Orders.GetByID)
		orders.GET("/:id/permissions", h.Orders.GetPermissions)
		orders.POST("/:id/diagnosis", h.Orders.RecordDiagnosis)
		orders.POST("/:id/advance", h.Orders.AdvancePhase)
		orders.POST("/:id/admin-validation/approve", h.Orders.ApproveAdminValidation)
		orders.POST("/:id/admin-validation/reject", h.Orders.RejectAdminValidation)

		orders.GET("/:id/authorization", h.Authorization.GetItems)
		orders.POST("/:id/authorization", h.Authorization.Submit)
		orders.GET("/:id/authorization/audits", h.Authorization.ListAudits)
		orders.GET("/:id/lost-sales", h.Authorization.ListLostSales)

		orders.POST("/:id/invoices", h.Invoices.Ingest)
		orders.GET("/:id/line-items", h.Invoices.ListLineItems)
		orders.POST("/:id/line-items/validate", h.Invoices.Validate)
		orders.POST("/:id/line-items/process", h.Invoices.Process)
		orders.PUT("/:id/line-items/:item_id/classification", h.Invoices.Classify)
		orders.GET("/:id/classification-queue", h.Invoices.GetClassificationQueue)

		orders.GET("/:id/supplier-summary", h.PurchaseOrders.GetSupplierSummary)
		orders.POST("/:id/pre-oc/approve", h.PurchaseOrders.ApprovePreOC)
		orders.POST("/:id/pre-oc/reject", h.PurchaseOrders.RejectPreOC)
		orders.POST("/:id/purchase-order", h.PurchaseOrders.Generate)

		orders.POST("/:id/delivery", h.DeliveryPayment.Deliver)
		orders.GET("/:id/payments", h.DeliveryPayment.ListPayments)
	}
}
