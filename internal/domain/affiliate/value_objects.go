package affiliate

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const MaxRefCodeLength = 64

var refCodePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type RefCode struct {
	value string
}

func NewRefCode(s string) (RefCode, error) {
	v := strings.TrimSpace(s)
	if len(v) > MaxRefCodeLength {
		return RefCode{}, ErrRefCodeTooLong
	}
	if !refCodePattern.MatchString(v) {
		return RefCode{}, ErrInvalidRefCode
	}
	return RefCode{value: v}, nil
}

func (r RefCode) String() string { return r.value }

var (
	minRate = decimal.Zero
	maxRate = decimal.NewFromInt(100)
)

// CommissionRate is a percentage in [0,100] with at most two decimal places.
type CommissionRate struct {
	value decimal.Decimal
}

func NewCommissionRate(d decimal.Decimal) (CommissionRate, error) {
	if d.LessThan(minRate) || d.GreaterThan(maxRate) {
		return CommissionRate{}, ErrInvalidCommissionRate
	}
	return CommissionRate{value: d.Round(2)}, nil
}

func (c CommissionRate) Decimal() decimal.Decimal { return c.value }
