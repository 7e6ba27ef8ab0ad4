package sale

import (
	"strings"
	"time"

	"retrack/internal/domain/money"
	"retrack/internal/domain/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MaxPlatformLength = 64
	MaxNotesLength    = 2000
)

type Input struct {
	OwnerID       uuid.UUID
	Title         string
	SalePrice     decimal.Decimal
	PurchasePrice decimal.Decimal
	ShippingCost  decimal.Decimal
	PlatformFee   decimal.Decimal
	Platform      string
	Notes         string
	SaleDate      time.Time
}

// Sale stores profit, margin and ROI as a snapshot computed once in newSale.
type Sale struct {
	id            uuid.UUID
	ownerID       uuid.UUID
	productID     *uuid.UUID
	title         string
	salePrice     decimal.Decimal
	purchasePrice decimal.Decimal
	shippingCost  decimal.Decimal
	platformFee   decimal.Decimal
	metrics       money.Metrics
	platform      string
	notes         string
	saleDate      time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// New records a sale made outside the inventory flow.
func New(in Input, now time.Time) (*Sale, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrEmptyTitle
	}
	return newSale(in, nil, now)
}

// FromProduct records the sale of an inventory item and marks it sold. The purchase price is
// captured from the product, never from the caller.
func FromProduct(p *product.Product, in Input, now time.Time) (*Sale, error) {
	if p.OwnerID() != in.OwnerID {
		return nil, ErrOwnerMismatch
	}
	if p.Status() == product.StatusSold {
		return nil, product.ErrAlreadySold
	}
	in.PurchasePrice = p.PurchasePrice()
	if strings.TrimSpace(in.Title) == "" {
		in.Title = p.Title()
	}
	productID := p.ID()
	s, err := newSale(in, &productID, now)
	if err != nil {
		return nil, err
	}
	if err := p.MarkSold(now); err != nil {
		return nil, err
	}
	return s, nil
}

func newSale(in Input, productID *uuid.UUID, now time.Time) (*Sale, error) {
	for _, d := range []decimal.Decimal{in.SalePrice, in.PurchasePrice, in.ShippingCost, in.PlatformFee} {
		if d.IsNegative() {
			return nil, ErrNegativeAmount
		}
	}
	platform := strings.TrimSpace(in.Platform)
	if len(platform) > MaxPlatformLength {
		return nil, ErrPlatformTooLong
	}
	if len(in.Notes) > MaxNotesLength {
		return nil, ErrNotesTooLong
	}
	saleDate := in.SaleDate
	if saleDate.IsZero() {
		saleDate = now
	}

	inputs := money.Inputs{
		SalePrice:     money.Normalize(in.SalePrice),
		PurchasePrice: money.Normalize(in.PurchasePrice),
		ShippingCost:  money.Normalize(in.ShippingCost),
		PlatformFee:   money.Normalize(in.PlatformFee),
	}

	return &Sale{
		id:            uuid.New(),
		ownerID:       in.OwnerID,
		productID:     productID,
		title:         strings.TrimSpace(in.Title),
		salePrice:     inputs.SalePrice,
		purchasePrice: inputs.PurchasePrice,
		shippingCost:  inputs.ShippingCost,
		platformFee:   inputs.PlatformFee,
		metrics:       money.Compute(inputs),
		platform:      platform,
		notes:         in.Notes,
		saleDate:      saleDate,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

type Snapshot struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	ProductID     *uuid.UUID
	Title         string
	SalePrice     decimal.Decimal
	PurchasePrice decimal.Decimal
	ShippingCost  decimal.Decimal
	PlatformFee   decimal.Decimal
	Metrics       money.Metrics
	Platform      string
	Notes         string
	SaleDate      time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Reconstruct restores a persisted sale with its stored metrics as-is.
func Reconstruct(s Snapshot) *Sale {
	return &Sale{
		id:            s.ID,
		ownerID:       s.OwnerID,
		productID:     s.ProductID,
		title:         s.Title,
		salePrice:     s.SalePrice,
		purchasePrice: s.PurchasePrice,
		shippingCost:  s.ShippingCost,
		platformFee:   s.PlatformFee,
		metrics:       s.Metrics,
		platform:      s.Platform,
		notes:         s.Notes,
		saleDate:      s.SaleDate,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
	}
}

type DetailsPatch struct {
	Platform *string
	Notes    *string
	SaleDate *time.Time
}

// UpdateDetails edits descriptive fields only; the metric snapshot is left untouched.
func (s *Sale) UpdateDetails(p DetailsPatch, now time.Time) error {
	if p.Platform != nil {
		platform := strings.TrimSpace(*p.Platform)
		if len(platform) > MaxPlatformLength {
			return ErrPlatformTooLong
		}
		s.platform = platform
	}
	if p.Notes != nil {
		if len(*p.Notes) > MaxNotesLength {
			return ErrNotesTooLong
		}
		s.notes = *p.Notes
	}
	if p.SaleDate != nil && !p.SaleDate.IsZero() {
		s.saleDate = *p.SaleDate
	}
	s.updatedAt = now
	return nil
}

func (s *Sale) ID() uuid.UUID                  { return s.id }
func (s *Sale) OwnerID() uuid.UUID             { return s.ownerID }
func (s *Sale) ProductID() *uuid.UUID          { return s.productID }
func (s *Sale) Title() string                  { return s.title }
func (s *Sale) SalePrice() decimal.Decimal     { return s.salePrice }
func (s *Sale) PurchasePrice() decimal.Decimal { return s.purchasePrice }
func (s *Sale) ShippingCost() decimal.Decimal  { return s.shippingCost }
func (s *Sale) PlatformFee() decimal.Decimal   { return s.platformFee }
func (s *Sale) Metrics() money.Metrics         { return s.metrics }
func (s *Sale) Platform() string               { return s.platform }
func (s *Sale) Notes() string                  { return s.notes }
func (s *Sale) SaleDate() time.Time            { return s.saleDate }
func (s *Sale) CreatedAt() time.Time           { return s.createdAt }
func (s *Sale) UpdatedAt() time.Time           { return s.updatedAt }
