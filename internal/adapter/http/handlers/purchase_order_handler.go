package handlers

import (
	"net/http"

	request "taller_xpto/internal/adapter/http/dto/request"
	response "taller_xpto/internal/adapter/http/dto/response"
	"taller_xpto/internal/adapter/http/middleware"
	"taller_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PurchaseOrderHandler covers the supplier summary, pre-OC validation and OC numbering.
type PurchaseOrderHandler struct {
	usecase usecase.IPurchaseOrderUseCase
	logger  *zap.Logger
}

func NewPurchaseOrderHandler(uc usecase.IPurchaseOrderUseCase, logger *zap.Logger) *PurchaseOrderHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PurchaseOrderHandler{usecase: uc, logger: logger}
}

func (h *PurchaseOrderHandler) GetSupplierSummary(c *gin.Context) {
	id := c.Param("id")
	summary, err := h.usecase.GetSupplierSummary(c.Request.Context(), id, middleware.Role(c))
	if err != nil {
		respondError(c, h.logger, "[purchase-order][handler] summary", id, mapOrderError(err), err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *PurchaseOrderHandler) ApprovePreOC(c *gin.Context) {
	id := c.Param("id")
	order, err := h.usecase.ApprovePreOC(c.Request.Context(), id, middleware.Role(c))
	if err != nil {
		respondError(c, h.logger, "[purchase-order][handler] pre-oc approve", id, mapOrderError(err), err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *PurchaseOrderHandler) RejectPreOC(c *gin.Context) {
	id := c.Param("id")
	var payload request.ValidationNoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	order, err := h.usecase.RejectPreOC(c.Request.Context(), id, middleware.Role(c), payload.Note)
	if err != nil {
		respondError(c, h.logger, "[purchase-order][handler] pre-oc reject", id, mapOrderError(err), err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *PurchaseOrderHandler) Generate(c *gin.Context) {
	id := c.Param("id")
	order, err := h.usecase.GeneratePurchaseOrderNumber(c.Request.Context(), id, middleware.Role(c))
	if err != nil {
		respondError(c, h.logger, "[purchase-order][handler] generate", id, mapOrderError(err), err)
		return
	}
	h.logger.Info("[purchase-order][handler] issued", zap.String("order_id", id), zap.String("purchase_order_number", order.PurchaseOrderNumber))
	c.JSON(http.StatusCreated, response.FromOrder(order))
}
