package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductView represents read-optimized inventory item data
type ProductView struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Title         string
	PurchasePrice decimal.Decimal
	Images        []string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SaleView carries the metric snapshot exactly as stored
type SaleView struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	ProductID     *uuid.UUID
	Title         string
	SalePrice     decimal.Decimal
	PurchasePrice decimal.Decimal
	ShippingCost  decimal.Decimal
	PlatformFee   decimal.Decimal
	Profit        decimal.Decimal
	Margin        float64
	ROI           float64
	Platform      string
	Notes         string
	SaleDate      time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type SalesSummary struct {
	From          *time.Time
	To            *time.Time
	SaleCount     int64
	Revenue       decimal.Decimal
	TotalProfit   decimal.Decimal
	TotalCosts    decimal.Decimal
	AverageMargin float64
}

type AffiliateView struct {
	ID              uuid.UUID
	RefCode         string
	StripeAccountID string
	CommissionRate  decimal.Decimal
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type SubscriptionView struct {
	ID                   uuid.UUID
	OwnerID              uuid.UUID
	StripeCustomerID     string
	StripeSubscriptionID string
	PlanType             string
	Status               string
	CurrentPeriodStart   time.Time
	CurrentPeriodEnd     time.Time
	CancelAtPeriodEnd    bool
	RefCode              string
	CreatedAt            time.Time
}

type CommissionEventView struct {
	ID              uuid.UUID
	IdempotencyKey  string
	InvoiceID       string
	SubscriptionID  string
	RefCode         string
	PayoutAccountID string
	CommissionRate  decimal.Decimal
	InvoiceAmount   int64
	AffiliateAmount int64
	Currency        string
	Status          string
	TransferID      string
	LastError       string
	Attempts        int32
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
