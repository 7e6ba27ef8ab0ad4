package product

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MaxTitleLength = 200
	MaxImages      = 12
)

type Status string

const (
	StatusActive   Status = "active"
	StatusReserved Status = "reserved"
	StatusPaused   Status = "paused"
	StatusSold     Status = "sold"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusActive, StatusReserved, StatusPaused, StatusSold:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Product is an inventory item owned by a single user.
type Product struct {
	id            uuid.UUID
	ownerID       uuid.UUID
	title         string
	purchasePrice decimal.Decimal
	images        []string
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

func New(ownerID uuid.UUID, title string, purchasePrice decimal.Decimal, images []string, now time.Time) (*Product, error) {
	t, err := validateTitle(title)
	if err != nil {
		return nil, err
	}
	if purchasePrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	if len(images) > MaxImages {
		return nil, ErrTooManyImages
	}
	return &Product{
		id:            uuid.New(),
		ownerID:       ownerID,
		title:         t,
		purchasePrice: purchasePrice.Round(2),
		images:        append([]string(nil), images...),
		status:        StatusActive,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func Reconstruct(id, ownerID uuid.UUID, title string, purchasePrice decimal.Decimal, images []string, status Status, createdAt, updatedAt time.Time) *Product {
	return &Product{
		id:            id,
		ownerID:       ownerID,
		title:         title,
		purchasePrice: purchasePrice,
		images:        images,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func validateTitle(s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", ErrEmptyTitle
	}
	if len(t) > MaxTitleLength {
		return "", ErrTitleTooLong
	}
	return t, nil
}

// UpdateDetails edits mutable fields; once sold the purchase price is the profit baseline and is locked.
func (p *Product) UpdateDetails(title *string, purchasePrice *decimal.Decimal, now time.Time) error {
	if title != nil {
		t, err := validateTitle(*title)
		if err != nil {
			return err
		}
		p.title = t
	}
	if purchasePrice != nil {
		if p.status == StatusSold && !purchasePrice.Equal(p.purchasePrice) {
			return ErrPurchasePriceLocked
		}
		if purchasePrice.IsNegative() {
			return ErrNegativePrice
		}
		p.purchasePrice = purchasePrice.Round(2)
	}
	p.updatedAt = now
	return nil
}

// ChangeStatus moves between listing states. Selling goes through MarkSold.
func (p *Product) ChangeStatus(to Status, now time.Time) error {
	if p.status == StatusSold {
		return ErrAlreadySold
	}
	if to == StatusSold {
		return p.MarkSold(now)
	}
	if _, err := ParseStatus(string(to)); err != nil {
		return err
	}
	p.status = to
	p.updatedAt = now
	return nil
}

func (p *Product) MarkSold(now time.Time) error {
	if p.status == StatusSold {
		return ErrAlreadySold
	}
	p.status = StatusSold
	p.updatedAt = now
	return nil
}

// Relist returns a sold product to inventory after its sale was removed.
func (p *Product) Relist(now time.Time) error {
	if p.status != StatusSold {
		return ErrNotSold
	}
	p.status = StatusActive
	p.updatedAt = now
	return nil
}

func (p *Product) AddImage(url string, now time.Time) error {
	u := strings.TrimSpace(url)
	if u == "" {
		return ErrEmptyImageURL
	}
	if len(p.images) >= MaxImages {
		return ErrTooManyImages
	}
	p.images = append(p.images, u)
	p.updatedAt = now
	return nil
}

func (p *Product) ID() uuid.UUID                  { return p.id }
func (p *Product) OwnerID() uuid.UUID             { return p.ownerID }
func (p *Product) Title() string                  { return p.title }
func (p *Product) PurchasePrice() decimal.Decimal { return p.purchasePrice }
func (p *Product) Images() []string               { return append([]string(nil), p.images...) }
func (p *Product) Status() Status                 { return p.status }
func (p *Product) CreatedAt() time.Time           { return p.createdAt }
func (p *Product) UpdatedAt() time.Time           { return p.updatedAt }
