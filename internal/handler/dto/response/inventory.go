package response

import (
	"math"
	"time"

	"retrack/internal/domain/money"
	"retrack/internal/pkg/ptr"
	"retrack/internal/usecase/queries"
)

type ProductResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	PurchasePrice string   `json:"purchase_price"`
	Images        []string `json:"images"`
	Status        string   `json:"status"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	images := v.Images
	if images == nil {
		images = []string{}
	}
	return &ProductResponse{
		ID:            v.ID.String(),
		Title:         v.Title,
		PurchasePrice: money.Format(v.PurchasePrice),
		Images:        images,
		Status:        v.Status,
		CreatedAt:     v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func FromProductList(items []*queries.ProductView) []*ProductResponse {
	res := make([]*ProductResponse, len(items))
	for i, it := range items {
		res[i] = FromProductView(it)
	}
	return res
}

type SaleResponse struct {
	ID            string  `json:"id"`
	ProductID     *string `json:"product_id"`
	Title         string  `json:"title"`
	SalePrice     string  `json:"sale_price"`
	PurchasePrice string  `json:"purchase_price"`
	ShippingCost  string  `json:"shipping_cost"`
	PlatformFee   string  `json:"platform_fee"`
	Profit        string  `json:"profit"`
	Margin        float64 `json:"margin"`
	ROI           float64 `json:"roi"`
	Platform      string  `json:"platform"`
	Notes         string  `json:"notes"`
	SaleDate      string  `json:"sale_date"`
	CreatedAt     string  `json:"created_at"`
}

func FromSaleView(v *queries.SaleView) *SaleResponse {
	var productID *string
	if v.ProductID != nil {
		productID = ptr.Of(v.ProductID.String())
	}
	return &SaleResponse{
		ID:            v.ID.String(),
		ProductID:     productID,
		Title:         v.Title,
		SalePrice:     money.Format(v.SalePrice),
		PurchasePrice: money.Format(v.PurchasePrice),
		ShippingCost:  money.Format(v.ShippingCost),
		PlatformFee:   money.Format(v.PlatformFee),
		Profit:        money.Format(v.Profit),
		Margin:        round2(v.Margin),
		ROI:           round2(v.ROI),
		Platform:      v.Platform,
		Notes:         v.Notes,
		SaleDate:      v.SaleDate.UTC().Format(time.RFC3339),
		CreatedAt:     v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func FromSaleList(items []*queries.SaleView) []*SaleResponse {
	res := make([]*SaleResponse, len(items))
	for i, it := range items {
		res[i] = FromSaleView(it)
	}
	return res
}

type SalesSummaryResponse struct {
	From          *string `json:"from,omitempty"`
	To            *string `json:"to,omitempty"`
	SaleCount     int64   `json:"sale_count"`
	Revenue       string  `json:"revenue"`
	TotalProfit   string  `json:"total_profit"`
	TotalCosts    string  `json:"total_costs"`
	AverageMargin float64 `json:"average_margin"`
}

func FromSalesSummary(s *queries.SalesSummary) *SalesSummaryResponse {
	return &SalesSummaryResponse{
		From:          formatOptional(s.From),
		To:            formatOptional(s.To),
		SaleCount:     s.SaleCount,
		Revenue:       money.Format(s.Revenue),
		TotalProfit:   money.Format(s.TotalProfit),
		TotalCosts:    money.Format(s.TotalCosts),
		AverageMargin: round2(s.AverageMargin),
	}
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return ptr.Of(t.UTC().Format(time.RFC3339))
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
