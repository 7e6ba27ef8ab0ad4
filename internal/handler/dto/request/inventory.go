package request

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"retrack/internal/domain/money"
	"retrack/internal/domain/sale"

	"github.com/google/uuid"
)

type CreateProductRequest struct {
	Title         string      `json:"title" binding:"required,max=200"`
	PurchasePrice money.Input `json:"purchase_price"`
	Images        []string    `json:"images" binding:"omitempty,max=12,dive,required"`
}

type UpdateProductRequest struct {
	Title         *string      `json:"title" binding:"omitempty,max=200"`
	PurchasePrice *money.Input `json:"purchase_price"`
}

type ChangeProductStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateSaleRequest struct {
	ProductID     *uuid.UUID  `json:"product_id"`
	Title         string      `json:"title" binding:"omitempty,max=200"`
	SalePrice     money.Input `json:"sale_price"`
	PurchasePrice money.Input `json:"purchase_price"`
	ShippingCost  money.Input `json:"shipping_cost"`
	PlatformFee   money.Input `json:"platform_fee"`
	Platform      string      `json:"platform"`
	Notes         string      `json:"notes"`
	SaleDate      *Date       `json:"sale_date"`
}

type UpdateSaleRequest struct {
	Platform *string `json:"platform"`
	Notes    *string `json:"notes"`
	SaleDate *Date   `json:"sale_date"`
}

func (r *UpdateSaleRequest) ToPatch() sale.DetailsPatch {
	return sale.DetailsPatch{
		Platform: r.Platform,
		Notes:    r.Notes,
		SaleDate: r.SaleDate.TimePtr(),
	}
}

// Date accepts either an RFC 3339 timestamp or a bare YYYY-MM-DD calendar date (UTC midnight).
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d *Date) TimePtr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(time.DateOnly, s)
}
