// Package billing holds processor-neutral shapes of payment events and requests.
package billing

import "time"

type EventType string

const (
	EventCheckoutSessionCompleted    EventType = "checkout.session.completed"
	EventInvoicePaymentSucceeded     EventType = "invoice.payment_succeeded"
	EventCustomerSubscriptionCreated EventType = "customer.subscription.created"
	EventCustomerSubscriptionUpdated EventType = "customer.subscription.updated"
	EventCustomerSubscriptionDeleted EventType = "customer.subscription.deleted"
	EventPaymentIntentSucceeded      EventType = "payment_intent.succeeded"
	EventPaymentIntentFailed         EventType = "payment_intent.payment_failed"
	EventTransferCreated             EventType = "transfer.created"
)

// Event is a verified processor event. Exactly one of the typed payloads is set for known
// types; unknown types carry only the raw payload.
type Event struct {
	ID              string
	Type            EventType
	Created         time.Time
	Payload         []byte
	CheckoutSession *CheckoutSession
	Invoice         *Invoice
	Subscription    *Subscription
	PaymentIntent   *PaymentIntent
	Transfer        *Transfer
}

type Price struct {
	ID         string
	UnitAmount int64
	Currency   string
	Recurring  bool
}

type CheckoutRequest struct {
	PriceID           string
	SuccessURL        string
	CancelURL         string
	CustomerEmail     string
	ClientReferenceID string
	Recurring         bool
	// Metadata is attached to the session and to the subscription or payment intent it creates.
	Metadata map[string]string
	// TransferOnCharge pays the affiliate out of a one-time charge; nil for subscriptions and direct sales.
	TransferOnCharge *ChargeTransfer
}

type ChargeTransfer struct {
	DestinationAccount string
	Amount             int64
}

type CheckoutSession struct {
	ID                string
	URL               string
	CustomerID        string
	SubscriptionID    string
	ClientReferenceID string
	PaymentStatus     string
	Metadata          map[string]string
}

type Subscription struct {
	ID                 string
	CustomerID         string
	Status             string
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   time.Time
	CancelAtPeriodEnd  bool
	Metadata           map[string]string
}

type Invoice struct {
	ID             string
	SubscriptionID string
	CustomerID     string
	AmountPaid     int64
	Currency       string
}

type PaymentIntent struct {
	ID             string
	Amount         int64
	Currency       string
	FailureMessage string
	Metadata       map[string]string
}

type TransferRequest struct {
	Amount             int64
	Currency           string
	DestinationAccount string
	IdempotencyKey     string
	SourceInvoiceID    string
	Metadata           map[string]string
}

type Transfer struct {
	ID          string
	Amount      int64
	Currency    string
	Destination string
	Metadata    map[string]string
}

type PortalRequest struct {
	CustomerID string
	ReturnURL  string
}

// Notification is the message published to the billing topic after local state converges.
type Notification struct {
	Kind           string    `json:"kind"`
	EventID        string    `json:"event_id,omitempty"`
	OwnerID        string    `json:"owner_id,omitempty"`
	SubscriptionID string    `json:"subscription_id,omitempty"`
	InvoiceID      string    `json:"invoice_id,omitempty"`
	RefCode        string    `json:"ref_code,omitempty"`
	Status         string    `json:"status,omitempty"`
	Amount         int64     `json:"amount,omitempty"`
	Currency       string    `json:"currency,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
