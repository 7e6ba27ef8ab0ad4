package affiliate

import (
	"strings"
	"time"

	"retrack/internal/domain/commission"
	"retrack/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Affiliate struct {
	id              uuid.UUID
	refCode         RefCode
	payoutAccountID string
	rate            CommissionRate
	active          bool
	createdAt       time.Time
	updatedAt       time.Time
}

func New(refCode, payoutAccountID string, rate decimal.Decimal, active bool, now time.Time) (*Affiliate, error) {
	code, err := NewRefCode(refCode)
	if err != nil {
		return nil, err
	}
	account := strings.TrimSpace(payoutAccountID)
	if account == "" {
		return nil, ErrMissingPayoutAccount
	}
	cr, err := NewCommissionRate(rate)
	if err != nil {
		return nil, err
	}
	return &Affiliate{
		id:              uuid.New(),
		refCode:         code,
		payoutAccountID: account,
		rate:            cr,
		active:          active,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// Reconstruct rebuilds a persisted affiliate without re-running validation.
func Reconstruct(id uuid.UUID, refCode, payoutAccountID string, rate decimal.Decimal, active bool, createdAt, updatedAt time.Time) *Affiliate {
	return &Affiliate{
		id:              id,
		refCode:         RefCode{value: refCode},
		payoutAccountID: payoutAccountID,
		rate:            CommissionRate{value: rate},
		active:          active,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Patch carries only the fields a caller supplied; nil leaves the stored value untouched.
type Patch struct {
	PayoutAccountID *string
	CommissionRate  *decimal.Decimal
	Active          *bool
}

func (a *Affiliate) Apply(p Patch, now time.Time) error {
	account := strings.TrimSpace(ptr.Or(p.PayoutAccountID, a.payoutAccountID))
	if account == "" {
		return ErrMissingPayoutAccount
	}
	rate, err := NewCommissionRate(ptr.Or(p.CommissionRate, a.rate.Decimal()))
	if err != nil {
		return err
	}
	a.payoutAccountID = account
	a.rate = rate
	a.active = ptr.Or(p.Active, a.active)
	a.updatedAt = now
	return nil
}

// Terms freezes the affiliate's current conditions for a checkout priced at unitAmount.
func (a *Affiliate) Terms(userID, planType string, unitAmount int64) (commission.Terms, error) {
	if !a.active {
		return commission.Terms{}, ErrInactive
	}
	return commission.Terms{
		RefCode:         a.refCode.String(),
		UserID:          userID,
		PlanType:        planType,
		PayoutAccountID: a.payoutAccountID,
		Rate:            a.rate.Decimal(),
		AffiliateAmount: commission.AffiliateAmount(unitAmount, a.rate.Decimal()),
	}, nil
}

func (a *Affiliate) ID() uuid.UUID                   { return a.id }
func (a *Affiliate) RefCode() string                 { return a.refCode.String() }
func (a *Affiliate) PayoutAccountID() string         { return a.payoutAccountID }
func (a *Affiliate) CommissionRate() decimal.Decimal { return a.rate.Decimal() }
func (a *Affiliate) Active() bool                    { return a.active }
func (a *Affiliate) CreatedAt() time.Time            { return a.createdAt }
func (a *Affiliate) UpdatedAt() time.Time            { return a.updatedAt }
