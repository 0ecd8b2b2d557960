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

// AuthorizationHandler exposes the customer authorization screen and its reconciliation.
type AuthorizationHandler struct {
	usecase usecase.IAuthorizationUseCase
	logger  *zap.Logger
}

func NewAuthorizationHandler(uc usecase.IAuthorizationUseCase, logger *zap.Logger) *AuthorizationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthorizationHandler{usecase: uc, logger: logger}
}

func (h *AuthorizationHandler) GetItems(c *gin.Context) {
	id := c.Param("id")
	view, err := h.usecase.GetItems(c.Request.Context(), id, middleware.Role(c))
	if err != nil {
		respondError(c, h.logger, "[authorization][handler] get-items", id, mapOrderError(err), err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type submitAuthorizationResponse struct {
	usecase.SubmitResult
	Order response.OrderResponse `json:"order"`
}

// Submit applies every decision of the batch or none of them.
func (h *AuthorizationHandler) Submit(c *gin.Context) {
	id := c.Param("id")
	var payload request.SubmitAuthorizationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	res, err := h.usecase.Submit(c.Request.Context(), id, middleware.Role(c), payload.ToDecisions())
	if err != nil {
		respondError(c, h.logger, "[authorization][handler] submit", id, mapOrderError(err), err)
		return
	}
	h.logger.Info("[authorization][handler] submitted",
		zap.String("order_id", id),
		zap.String("authorized_total", res.Totals.Authorized.StringFixed(2)),
		zap.Int("lost_sales", len(res.LostSales)),
	)
	c.JSON(http.StatusOK, submitAuthorizationResponse{SubmitResult: res, Order: response.FromOrder(res.Order)})
}

func (h *AuthorizationHandler) ListLostSales(c *gin.Context) {
	id := c.Param("id")
	records, err := h.usecase.ListLostSales(c.Request.Context(), id, middleware.Role(c))
	if err != nil {
		respondError(c, h.logger, "[authorization][handler] lost-sales", id, mapOrderError(err), err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *AuthorizationHandler) ListAudits(c *gin.Context) {
	id := c.Param("id")
	audits, err := h.usecase.ListAudits(c.Request.Context(), id, middleware.Role(c))
	if err != nil {
		respondError(c, h.logger, "[authorization][handler] audits", id, mapOrderError(err), err)
		return
	}
	c.JSON(http.StatusOK, audits)
}
