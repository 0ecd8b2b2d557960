// Package pricing turns supplier costs into public prices.
package pricing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

var ErrInvalidCost = errors.New("cost must be greater than zero")

// taxFactor applies IVA (16%) on top of the supplier cost.
var taxFactor = decimal.RequireFromString("1.16")

var hundred = decimal.NewFromInt(100)

// divisors maps a margin tier to the share of the price that is cost.
var divisors = map[int]decimal.Decimal{
	39: decimal.RequireFromString("0.61"),
	50: decimal.RequireFromString("0.50"),
	48: decimal.RequireFromString("0.52"),
	28: decimal.RequireFromString("0.72"),
}

// InvalidMarginTierError is returned for tiers outside the table.
type InvalidMarginTierError struct {
	Tier int
}

func (e *InvalidMarginTierError) Error() string {
	return fmt.Sprintf("invalid margin tier %d (allowed: %v)", e.Tier, Tiers())
}

// Result is the outcome of a price calculation. Margin is exactly Price - CostWithTax.
type Result struct {
	CostWithTax decimal.Decimal `json:"cost_with_tax"`
	Price       decimal.Decimal `json:"price"`
	Margin      decimal.Decimal `json:"margin"`
}

// Tiers returns the supported margin tiers in ascending order.
func Tiers() []int {
	tiers := make([]int, 0, len(divisors))
	for t := range divisors {
		tiers = append(tiers, t)
	}
	sort.Ints(tiers)
	return tiers
}

func IsValidTier(tier int) bool {
	_, ok := divisors[tier]
	return ok
}

// Price computes the public price for cost under the given margin tier.
// The price is rounded to cents before the margin is derived from it.
func Price(cost decimal.Decimal, tier int) (Result, error) {
	divisor, ok := divisors[tier]
	if !ok {
		return Result{}, &InvalidMarginTierError{Tier: tier}
	}
	if !cost.IsPositive() {
		return Result{}, ErrInvalidCost
	}

	costWithTax := cost.Mul(taxFactor)
	price := costWithTax.Div(divisor).Round(2)
	return Result{
		CostWithTax: costWithTax,
		Price:       price,
		Margin:      price.Sub(costWithTax),
	}, nil
}

// MarkupPrice is the manual classification formula: cost * (1 + marginPercent/100).
func MarkupPrice(cost, marginPercent decimal.Decimal) decimal.Decimal {
	return cost.Mul(decimal.NewFromInt(1).Add(marginPercent.Div(hundred))).Round(2)
}
