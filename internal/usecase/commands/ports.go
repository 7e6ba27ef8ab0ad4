package commands

import (
	"context"
	"io"
	"time"

	"retrack/internal/domain/billing"
)

// PaymentGateway is the outbound side of the payment processor.
type PaymentGateway interface {
	GetPrice(ctx context.Context, priceID string) (*billing.Price, error)
	CreateCheckoutSession(ctx context.Context, req billing.CheckoutRequest) (*billing.CheckoutSession, error)
	GetSubscription(ctx context.Context, subscriptionID string) (*billing.Subscription, error)
	CreateTransfer(ctx context.Context, req billing.TransferRequest) (*billing.Transfer, error)
	CreatePortalSession(ctx context.Context, req billing.PortalRequest) (string, error)
}

// WebhookVerifier authenticates and decodes an inbound processor event.
type WebhookVerifier interface {
	VerifyEvent(payload []byte, signatureHeader string) (*billing.Event, error)
}

// DeliveryLock serializes concurrent deliveries of the same event id.
type DeliveryLock interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, n billing.Notification) error
}

type ImageStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}
