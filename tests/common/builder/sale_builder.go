//go:build unit || e2e

package builder

import (
	"time"

	"retrack/internal/domain/money"
	domsale "retrack/internal/domain/sale"
	reqdto "retrack/internal/handler/dto/request"
	sqlc "retrack/internal/infra/sqlc/generated"
	"retrack/internal/pkg/pgconv"
	"retrack/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SaleBuilder struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	ProductID     *uuid.UUID
	Title         string
	SalePrice     decimal.Decimal
	PurchasePrice decimal.Decimal
	ShippingCost  decimal.Decimal
	PlatformFee   decimal.Decimal
	Platform      string
	Notes         string
	SaleDate      time.Time
	CreatedAt     time.Time
}

func NewSaleBuilder() *SaleBuilder {
	now := time.Now().UTC()
	return &SaleBuilder{
		ID:            uuid.New(),
		OwnerID:       uuid.New(),
		Title:         "Vintage denim jacket",
		SalePrice:     decimal.NewFromInt(25),
		PurchasePrice: decimal.NewFromInt(10),
		ShippingCost:  decimal.NewFromInt(2),
		PlatformFee:   decimal.NewFromInt(1),
		Platform:      "ebay",
		SaleDate:      now,
		CreatedAt:     now,
	}
}

func (s *SaleBuilder) With(mutate func(*SaleBuilder)) *SaleBuilder {
	mutate(s)
	return s
}

func (s *SaleBuilder) Input() domsale.Input {
	return domsale.Input{
		OwnerID:       s.OwnerID,
		Title:         s.Title,
		SalePrice:     s.SalePrice,
		PurchasePrice: s.PurchasePrice,
		ShippingCost:  s.ShippingCost,
		PlatformFee:   s.PlatformFee,
		Platform:      s.Platform,
		Notes:         s.Notes,
		SaleDate:      s.SaleDate,
	}
}

// Build methods
func (s *SaleBuilder) BuildDomain() (*domsale.Sale, error) {
	return domsale.New(s.Input(), s.CreatedAt)
}

func (s *SaleBuilder) metrics() money.Metrics {
	return money.Compute(money.Inputs{
		SalePrice:     s.SalePrice,
		PurchasePrice: s.PurchasePrice,
		ShippingCost:  s.ShippingCost,
		PlatformFee:   s.PlatformFee,
	})
}

func (s *SaleBuilder) BuildPersisted() *domsale.Sale {
	return domsale.Reconstruct(domsale.Snapshot{
		ID:            s.ID,
		OwnerID:       s.OwnerID,
		ProductID:     s.ProductID,
		Title:         s.Title,
		SalePrice:     s.SalePrice,
		PurchasePrice: s.PurchasePrice,
		ShippingCost:  s.ShippingCost,
		PlatformFee:   s.PlatformFee,
		Metrics:       s.metrics(),
		Platform:      s.Platform,
		Notes:         s.Notes,
		SaleDate:      s.SaleDate,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.CreatedAt,
	})
}

func (s *SaleBuilder) BuildInfra() sqlc.Sales {
	m := s.metrics()
	return sqlc.Sales{
		ID:            s.ID,
		OwnerID:       s.OwnerID,
		ProductID:     pgconv.UUIDPtrToPgtype(s.ProductID),
		Title:         s.Title,
		SalePrice:     pgconv.NumericFromDecimal(s.SalePrice),
		PurchasePrice: pgconv.NumericFromDecimal(s.PurchasePrice),
		ShippingCost:  pgconv.NumericFromDecimal(s.ShippingCost),
		PlatformFee:   pgconv.NumericFromDecimal(s.PlatformFee),
		Profit:        pgconv.NumericFromDecimal(m.Profit),
		Margin:        m.Margin,
		Roi:           m.ROI,
		Platform:      s.Platform,
		Notes:         s.Notes,
		SaleDate:      pgconv.TimeToPgtype(s.SaleDate),
		CreatedAt:     pgconv.TimeToPgtype(s.CreatedAt),
		UpdatedAt:     pgconv.TimeToPgtype(s.CreatedAt),
	}
}

func (s *SaleBuilder) BuildCreateRequestDTO() reqdto.CreateSaleRequest {
	return reqdto.CreateSaleRequest{
		ProductID:     s.ProductID,
		Title:         s.Title,
		SalePrice:     money.NewInput(s.SalePrice),
		PurchasePrice: money.NewInput(s.PurchasePrice),
		ShippingCost:  money.NewInput(s.ShippingCost),
		PlatformFee:   money.NewInput(s.PlatformFee),
		Platform:      s.Platform,
		Notes:         s.Notes,
	}
}

func (s *SaleBuilder) BuildViewQuery() *queries.SaleView {
	m := s.metrics()
	return &queries.SaleView{
		ID:            s.ID,
		OwnerID:       s.OwnerID,
		ProductID:     s.ProductID,
		Title:         s.Title,
		SalePrice:     s.SalePrice,
		PurchasePrice: s.PurchasePrice,
		ShippingCost:  s.ShippingCost,
		PlatformFee:   s.PlatformFee,
		Profit:        m.Profit,
		Margin:        m.Margin,
		ROI:           m.ROI,
		Platform:      s.Platform,
		Notes:         s.Notes,
		SaleDate:      s.SaleDate,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.CreatedAt,
	}
}

// Fluent builder methods
func (s *SaleBuilder) WithOwnerID(ownerID uuid.UUID) *SaleBuilder {
	s.OwnerID = ownerID
	return s
}

func (s *SaleBuilder) WithProductID(productID uuid.UUID) *SaleBuilder {
	s.ProductID = &productID
	return s
}

func (s *SaleBuilder) WithTitle(title string) *SaleBuilder {
	s.Title = title
	return s
}

func (s *SaleBuilder) WithPrices(sale, purchase, shipping, fee string) *SaleBuilder {
	s.SalePrice = decimal.RequireFromString(sale)
	s.PurchasePrice = decimal.RequireFromString(purchase)
	s.ShippingCost = decimal.RequireFromString(shipping)
	s.PlatformFee = decimal.RequireFromString(fee)
	return s
}

func (s *SaleBuilder) WithNotes(notes string) *SaleBuilder {
	s.Notes = notes
	return s
}

func (s *SaleBuilder) WithPlatform(platform string) *SaleBuilder {
	s.Platform = platform
	return s
}
