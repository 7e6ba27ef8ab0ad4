// Package commission computes affiliate shares and models the commission ledger.
package commission

import (
	"github.com/shopspring/decimal"
)

var maxRate = decimal.NewFromInt(100)

// AffiliateAmount returns floor(amountMinor * ratePercent / 100).
// Rates outside [0,100] are clamped; non-positive amounts yield zero.
func AffiliateAmount(amountMinor int64, ratePercent decimal.Decimal) int64 {
	if amountMinor <= 0 || ratePercent.Sign() <= 0 {
		return 0
	}
	// stored rates are already bounded by NewCommissionRate; the clamp only covers unchecked input
	if ratePercent.GreaterThan(maxRate) {
		ratePercent = maxRate
	}
	return decimal.NewFromInt(amountMinor).Mul(ratePercent).Shift(-2).Floor().IntPart()
}
