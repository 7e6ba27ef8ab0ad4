package converter

import (
	"retrack/internal/domain/affiliate"
	"retrack/internal/domain/commission"
	"retrack/internal/domain/subscription"
	sqlc "retrack/internal/infra/sqlc/generated"
	"retrack/internal/pkg/pgconv"
)

func AffiliateFromRow(row sqlc.Affiliates) *affiliate.Affiliate {
	return affiliate.Reconstruct(
		row.ID,
		row.RefCode,
		row.StripeAccountID,
		pgconv.DecimalFromNumeric(row.CommissionRate),
		row.Active,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func SubscriptionFromRow(row sqlc.UserSubscriptions) *subscription.Subscription {
	return &subscription.Subscription{
		ID:                     row.ID,
		OwnerID:                row.OwnerID,
		CustomerID:             row.StripeCustomerID,
		ProviderSubscriptionID: row.StripeSubscriptionID,
		PlanType:               row.PlanType,
		Status:                 subscription.Status(row.Status),
		CurrentPeriodStart:     pgconv.TimeFromPgtype(row.CurrentPeriodStart),
		CurrentPeriodEnd:       pgconv.TimeFromPgtype(row.CurrentPeriodEnd),
		CancelAtPeriodEnd:      row.CancelAtPeriodEnd,
		RefCode:                pgconv.StringFromPgtype(row.RefCode),
		CreatedAt:              pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:              pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func CommissionEventFromRow(row sqlc.CommissionEvents) *commission.Event {
	return &commission.Event{
		ID:              row.ID,
		IdempotencyKey:  row.IdempotencyKey,
		InvoiceID:       row.InvoiceID,
		SubscriptionID:  row.SubscriptionID,
		RefCode:         row.RefCode,
		PayoutAccountID: row.PayoutAccountID,
		Rate:            pgconv.DecimalFromNumeric(row.CommissionRate),
		InvoiceAmount:   row.InvoiceAmount,
		AffiliateAmount: row.AffiliateAmount,
		Currency:        row.Currency,
		Status:          commission.Status(row.Status),
		TransferID:      pgconv.StringFromPgtype(row.TransferID),
		LastError:       pgconv.StringFromPgtype(row.LastError),
		Attempts:        int(row.Attempts),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
