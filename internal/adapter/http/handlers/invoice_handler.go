package handlers

import (
	"net/http"
	"strconv"

	request "taller_xpto/internal/adapter/http/dto/request"
	response "taller_xpto/internal/adapter/http/dto/response"
	"taller_xpto/internal/adapter/http/middleware"
	"taller_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceHandler drives invoice upload, catalog validation, manual classification and processing.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
	logger  *zap.Logger
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase, logger *zap.Logger) *InvoiceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceHandler{usecase: uc, logger: logger}
}

type ingestResponse struct {
	usecase.IngestResult
	Order response.OrderResponse `json:"order"`
}

type processResponse struct {
	usecase.ProcessResult
	Order response.OrderResponse `json:"order"`
}

func (h *InvoiceHandler) Ingest(c *gin.Context) {
	id := c.Param("id")
	var payload request.IngestInvoicesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	res, err := h.usecase.Ingest(c.Request.Context(), id, middleware.Role(c), payload.ToCommand())
	if err != nil {
		respondError(c, h.logger, "[invoice][handler] ingest", id, mapOrderError(err), err)
		return
	}
	h.logger.Info("[invoice][handler] ingested",
		zap.String("order_id", id),
		zap.Int("accepted", len(res.Accepted)),
		zap.Int("discarded", len(res.Discarded)),
	)
	c.JSON(http.StatusCreated, ingestResponse{IngestResult: res, Order: response.FromOrder(res.Order)})
}

func (h *InvoiceHandler) Validate(c *gin.Context) {
	id := c.Param("id")
	res, err := h.usecase.Validate(c.Request.Context(), id, middleware.Role(c))
	if err != nil {
		respondError(c, h.logger, "[invoice][handler] validate", id, mapOrderError(err), err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *InvoiceHandler) ListLineItems(c *gin.Context) {
	id := c.Param("id")
	items, err := h.usecase.ListLineItems(c.Request.Context(), id, middleware.Role(c))
	if err != nil {
		respondError(c, h.logger, "[invoice][handler] list", id, mapOrderError(err), err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetClassificationQueue returns the pending line at ?cursor= (0 when omitted).
func (h *InvoiceHandler) GetClassificationQueue(c *gin.Context) {
	id := c.Param("id")
	cursor := 0
	if raw := c.Query("cursor"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(c, mapOrderError(usecase.ErrInvalidQueueCursor))
			return
		}
		cursor = n
	}

	page, err := h.usecase.GetClassificationQueue(c.Request.Context(), id, middleware.Role(c), cursor)
	if err != nil {
		respondError(c, h.logger, "[invoice][handler] queue", id, mapOrderError(err), err)
		return
	}
	c.JSON(http.StatusOK, response.FromQueuePage(page))
}

func (h *InvoiceHandler) Classify(c *gin.Context) {
	id := c.Param("id")
	var payload request.ClassificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	item, err := h.usecase.Classify(c.Request.Context(), id, middleware.Role(c), c.Param("item_id"), payload.ToManualInput())
	if err != nil {
		respondError(c, h.logger, "[invoice][handler] classify", id, mapOrderError(err), err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *InvoiceHandler) Process(c *gin.Context) {
	id := c.Param("id")
	res, err := h.usecase.Process(c.Request.Context(), id, middleware.Role(c))
	if err != nil {
		respondError(c, h.logger, "[invoice][handler] process", id, mapOrderError(err), err)
		return
	}
	h.logger.Info("[invoice][handler] processed", zap.String("order_id", id), zap.Int("processed", res.Processed))
	c.JSON(http.StatusOK, processResponse{ProcessResult: res, Order: response.FromOrder(res.Order)})
}
