//go:build unit || e2e

package builder

import (
	"time"

	"retrack/internal/domain/money"
	domproduct "retrack/internal/domain/product"
	reqdto "retrack/internal/handler/dto/request"
	sqlc "retrack/internal/infra/sqlc/generated"
	"retrack/internal/pkg/pgconv"
	"retrack/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Title         string
	PurchasePrice decimal.Decimal
	Images        []string
	Status        domproduct.Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewProductBuilder() *ProductBuilder {
	now := time.Now().UTC()
	return &ProductBuilder{
		ID:            uuid.New(),
		OwnerID:       uuid.New(),
		Title:         "Vintage denim jacket",
		PurchasePrice: decimal.NewFromInt(10),
		Images:        []string{},
		Status:        domproduct.StatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *ProductBuilder) BuildDomain() (*domproduct.Product, error) {
	return domproduct.New(p.OwnerID, p.Title, p.PurchasePrice, p.Images, p.CreatedAt)
}

// BuildPersisted skips validation and keeps the builder's id and status.
func (p *ProductBuilder) BuildPersisted() *domproduct.Product {
	return domproduct.Reconstruct(p.ID, p.OwnerID, p.Title, p.PurchasePrice, p.Images, p.Status, p.CreatedAt, p.UpdatedAt)
}

func (p *ProductBuilder) BuildInfra() sqlc.Products {
	return sqlc.Products{
		ID:            p.ID,
		OwnerID:       p.OwnerID,
		Title:         p.Title,
		PurchasePrice: pgconv.NumericFromDecimal(p.PurchasePrice),
		Images:        p.Images,
		Status:        string(p.Status),
		CreatedAt:     pgconv.TimeToPgtype(p.CreatedAt),
		UpdatedAt:     pgconv.TimeToPgtype(p.UpdatedAt),
	}
}

func (p *ProductBuilder) BuildCreateRequestDTO() reqdto.CreateProductRequest {
	return reqdto.CreateProductRequest{
		Title:         p.Title,
		PurchasePrice: money.NewInput(p.PurchasePrice),
		Images:        p.Images,
	}
}

func (p *ProductBuilder) BuildViewQuery() *queries.ProductView {
	return &queries.ProductView{
		ID:            p.ID,
		OwnerID:       p.OwnerID,
		Title:         p.Title,
		PurchasePrice: p.PurchasePrice,
		Images:        p.Images,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// Fluent builder methods
func (p *ProductBuilder) WithOwnerID(ownerID uuid.UUID) *ProductBuilder {
	p.OwnerID = ownerID
	return p
}

func (p *ProductBuilder) WithTitle(title string) *ProductBuilder {
	p.Title = title
	return p
}

func (p *ProductBuilder) WithPurchasePrice(price string) *ProductBuilder {
	p.PurchasePrice = decimal.RequireFromString(price)
	return p
}

func (p *ProductBuilder) WithImages(images ...string) *ProductBuilder {
	p.Images = images
	return p
}

func (p *ProductBuilder) WithStatus(status domproduct.Status) *ProductBuilder {
	p.Status = status
	return p
}

func (p *ProductBuilder) AsSold() *ProductBuilder {
	p.Status = domproduct.StatusSold
	return p
}
