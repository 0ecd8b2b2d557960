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

// OrderHandler handles order creation, diagnosis and phase transitions.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
	logger  *zap.Logger
}

func NewOrderHandler(uc usecase.IOrderUseCase, logger *zap.Logger) *OrderHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderHandler{usecase: uc, logger: logger}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), middleware.Role(c), payload.ToCommand())
	if err != nil {
		h.fail(c, "create", "", err)
		return
	}
	h.logger.Info("[order][handler] created", zap.String("order_id", order.ID))
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	order, err := h.usecase.GetByID(c.Request.Context(), id, middleware.Role(c))
	if err != nil {
		h.fail(c, "get", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// GetPermissions tells the caller what its role may do on the order's current phase.
func (h *OrderHandler) GetPermissions(c *gin.Context) {
	id := c.Param("id")
	perms, err := h.usecase.GetPermissions(c.Request.Context(), id, middleware.Role(c))
	if err != nil {
		h.fail(c, "permissions", id, err)
		return
	}
	c.JSON(http.StatusOK, perms)
}

func (h *OrderHandler) RecordDiagnosis(c *gin.Context) {
	id := c.Param("id")
	var payload request.DiagnosisRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	order, err := h.usecase.RecordDiagnosis(c.Request.Context(), id, middleware.Role(c), payload.ToCommand())
	if err != nil {
		h.fail(c, "diagnosis", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) AdvancePhase(c *gin.Context) {
	id := c.Param("id")
	order, err := h.usecase.AdvancePhase(c.Request.Context(), id, middleware.Role(c))
	if err != nil {
		h.fail(c, "advance", id, err)
		return
	}
	h.logger.Info("[order][handler] advanced", zap.String("order_id", id), zap.String("status", string(order.Status)))
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) ApproveAdminValidation(c *gin.Context) {
	id := c.Param("id")
	order, err := h.usecase.ApproveAdminValidation(c.Request.Context(), id, middleware.Role(c))
	if err != nil {
		h.fail(c, "admin-approve", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) RejectAdminValidation(c *gin.Context) {
	id := c.Param("id")
	var payload request.ValidationNoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	order, err := h.usecase.RejectAdminValidation(c.Request.Context(), id, middleware.Role(c), payload.Note)
	if err != nil {
		h.fail(c, "admin-reject", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) fail(c *gin.Context, op, id string, err error) {
	respondError(c, h.logger, "[order][handler] "+op, id, mapOrderError(err), err)
}
