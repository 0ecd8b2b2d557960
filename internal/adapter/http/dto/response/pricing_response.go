package response

import "github.com/shopspring/decimal"

type PriceQuoteResponse struct {
	Cost        string `json:"cost"`
	MarginTier  int    `json:"margin_tier,omitempty"`
	CostWithTax string `json:"cost_with_tax,omitempty"`
	Price       string `json:"price"`
	Margin      string `json:"margin"`
}

func NewTierQuote(cost decimal.Decimal, tier int, costWithTax, price, margin decimal.Decimal) PriceQuoteResponse {
	return PriceQuoteResponse{
		Cost:        cost.StringFixed(2),
		MarginTier:  tier,
		CostWithTax: costWithTax.StringFixed(2),
		Price:       price.StringFixed(2),
		Margin:      margin.StringFixed(2),
	}
}

// NewMarkupQuote describes a cost * (1 + margin/100) price.
func NewMarkupQuote(cost, price decimal.Decimal) PriceQuoteResponse {
	return PriceQuoteResponse{
		Cost:   cost.StringFixed(2),
		Price:  price.StringFixed(2),
		Margin: price.Sub(cost).StringFixed(2),
	}
}
