package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "taller_xpto/internal/adapter/http/dto/response"
	"taller_xpto/internal/adapter/http/middleware"
	"taller_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeliveryPaymentHandler handles vehicle delivery and its Mercado Pago charge.
type DeliveryPaymentHandler struct {
	usecase  usecase.IDeliveryPaymentUseCase
	mockMode bool
	logger   *zap.Logger
}

func NewDeliveryPaymentHandler(uc usecase.IDeliveryPaymentUseCase, mockMode bool, logger *zap.Logger) *DeliveryPaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DeliveryPaymentHandler{usecase: uc, mockMode: mockMode, logger: logger}
}

// Deliver charges the authorized total and closes the order.
func (h *DeliveryPaymentHandler) Deliver(c *gin.Context) {
	id := c.Param("id")
	h.logger.Info("[payment][handler] deliver start", zap.String("order_id", id))
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			h.logger.Info("[payment][handler] invalid payload", zap.String("order_id", id), zap.Error(err))
			writeError(c, errInvalidPayload)
			return
		}
		h.logger.Info("[payment][handler] payload invalid in mock mode; fallback to empty payload", zap.String("order_id", id), zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.Deliver(c.Request.Context(), id, middleware.Role(c), mpPayload)
	if err != nil {
		respondError(c, h.logger, "[payment][handler] deliver", id, mapDeliveryPaymentError(err), err)
		return
	}
	h.logger.Info("[payment][handler] deliver success",
		zap.String("order_id", id),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
	)
	c.JSON(http.StatusOK, response.FromDeliveryPayment(created))
}

func (h *DeliveryPaymentHandler) ListPayments(c *gin.Context) {
	id := c.Param("id")
	payments, err := h.usecase.ListByOrderID(c.Request.Context(), id, middleware.Role(c))
	if err != nil {
		respondError(c, h.logger, "[payment][handler] list", id, mapDeliveryPaymentError(err), err)
		return
	}
	c.JSON(http.StatusOK, response.FromDeliveryPayments(payments))
}

// readMPPayload accepts either {"mp_payload": {...}} or a bare Mercado Pago body.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
