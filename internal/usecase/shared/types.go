package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AffiliateSnapshot struct {
	ID              uuid.UUID
	RefCode         string
	PayoutAccountID string
	CommissionRate  decimal.Decimal
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type SubscriptionSnapshot struct {
	ID                     uuid.UUID
	OwnerID                uuid.UUID
	CustomerID             string
	ProviderSubscriptionID string
	Status                 string
	CurrentPeriodEnd       time.Time
}

type WebhookEventStatus string

const (
	WebhookEventReceived  WebhookEventStatus = "received"
	WebhookEventProcessed WebhookEventStatus = "processed"
	WebhookEventIgnored   WebhookEventStatus = "ignored"
)

type WebhookEventRecord struct {
	EventID    string
	EventType  string
	Payload    []byte
	ReceivedAt time.Time
}

type WebhookEventState struct {
	Status   WebhookEventStatus
	Inserted bool
}

// AlreadyHandled reports a redelivery of an event that finished processing earlier.
func (s WebhookEventState) AlreadyHandled() bool {
	return !s.Inserted && s.Status != WebhookEventReceived
}
