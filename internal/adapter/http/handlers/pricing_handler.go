package handlers

import (
	"net/http"
	"strconv"

	response "taller_xpto/internal/adapter/http/dto/response"
	"taller_xpto/internal/domain/pricing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PricingHandler exposes the price calculator. It has no state and needs no role.
type PricingHandler struct{}

func NewPricingHandler() *PricingHandler {
	return &PricingHandler{}
}

// Quote prices a cost either by margin tier (cost plus IVA over the tier divisor) or,
// when margin_percent is given, by plain markup.
func (h *PricingHandler) Quote(c *gin.Context) {
	cost, err := decimal.NewFromString(c.Query("cost"))
	if err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	if raw := c.Query("margin_percent"); raw != "" {
		margin, err := decimal.NewFromString(raw)
		if err != nil || margin.IsNegative() {
			writeError(c, errInvalidPayload)
			return
		}
		if !cost.IsPositive() {
			writeError(c, mapOrderError(pricing.ErrInvalidCost))
			return
		}
		c.JSON(http.StatusOK, response.NewMarkupQuote(cost, pricing.MarkupPrice(cost, margin)))
		return
	}

	tier, err := strconv.Atoi(c.Query("tier"))
	if err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	res, err := pricing.Price(cost, tier)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewTierQuote(cost, tier, res.CostWithTax, res.Price, res.Margin))
}
