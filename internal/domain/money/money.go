// Package money holds the pure arithmetic that turns sale inputs into profit, margin and ROI.
package money

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type Inputs struct {
	SalePrice     decimal.Decimal
	PurchasePrice decimal.Decimal
	ShippingCost  decimal.Decimal
	PlatformFee   decimal.Decimal
}

// Metrics is the point-in-time snapshot stored with a sale.
type Metrics struct {
	Profit decimal.Decimal
	Margin float64
	ROI    float64
}

// ComputeProfit does not clamp; a loss is a negative profit.
func ComputeProfit(salePrice, purchasePrice, shippingCost, platformFee decimal.Decimal) decimal.Decimal {
	return salePrice.Sub(purchasePrice).Sub(shippingCost).Sub(platformFee)
}

// ComputeMargin returns 0 when salePrice is not positive.
func ComputeMargin(profit, salePrice decimal.Decimal) float64 {
	return percentOf(profit, salePrice)
}

// ComputeROI returns 0 when purchasePrice is not positive.
func ComputeROI(profit, purchasePrice decimal.Decimal) float64 {
	return percentOf(profit, purchasePrice)
}

func Compute(in Inputs) Metrics {
	profit := ComputeProfit(in.SalePrice, in.PurchasePrice, in.ShippingCost, in.PlatformFee)
	return Metrics{
		Profit: profit,
		Margin: ComputeMargin(profit, in.SalePrice),
		ROI:    ComputeROI(profit, in.PurchasePrice),
	}
}

func percentOf(part, whole decimal.Decimal) float64 {
	if whole.Sign() <= 0 {
		return 0
	}
	return part.Mul(hundred).Div(whole).InexactFloat64()
}

// ToMinorUnits converts a presentation amount to cents, rounding half away from zero.
func ToMinorUnits(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

func FromMinorUnits(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// Normalize rounds to currency-minor-unit precision.
func Normalize(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}
