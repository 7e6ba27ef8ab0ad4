package commission

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending               Status = "pending"
	StatusTransferred           Status = "transferred"
	StatusPendingReconciliation Status = "pending_reconciliation"
)

var (
	ErrNotReferral    = errors.New("terms do not carry a referral")
	ErrMissingInvoice = errors.New("invoice id is required")
	ErrNothingToPay   = errors.New("commission amount is zero")
	ErrAlreadySettled = errors.New("commission already transferred")
)

const maxErrorMessageLen = 500

// IdempotencyKey is deterministic per (invoice, payout account) so replays collapse onto one transfer.
func IdempotencyKey(invoiceID, payoutAccountID string) string {
	return "commission:" + invoiceID + ":" + payoutAccountID
}

// Event is one ledger row: the commission owed for a single paid invoice.
type Event struct {
	ID              uuid.UUID
	IdempotencyKey  string
	InvoiceID       string
	SubscriptionID  string
	RefCode         string
	PayoutAccountID string
	Rate            decimal.Decimal
	InvoiceAmount   int64
	AffiliateAmount int64
	Currency        string
	Status          Status
	TransferID      string
	LastError       string
	Attempts        int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type InvoicePayment struct {
	InvoiceID      string
	SubscriptionID string
	AmountPaid     int64
	Currency       string
}

// NewEvent computes the share from the amount actually paid, not the checkout-time estimate.
func NewEvent(inv InvoicePayment, terms Terms, now time.Time) (*Event, error) {
	if !terms.IsReferral() {
		return nil, ErrNotReferral
	}
	if inv.InvoiceID == "" {
		return nil, ErrMissingInvoice
	}
	amount := AffiliateAmount(inv.AmountPaid, terms.Rate)
	if amount <= 0 {
		return nil, ErrNothingToPay
	}
	return &Event{
		ID:              uuid.New(),
		IdempotencyKey:  IdempotencyKey(inv.InvoiceID, terms.PayoutAccountID),
		InvoiceID:       inv.InvoiceID,
		SubscriptionID:  inv.SubscriptionID,
		RefCode:         terms.RefCode,
		PayoutAccountID: terms.PayoutAccountID,
		Rate:            terms.Rate,
		InvoiceAmount:   inv.AmountPaid,
		AffiliateAmount: amount,
		Currency:        inv.Currency,
		Status:          StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

func (e *Event) NeedsTransfer() bool {
	return e.Status != StatusTransferred && e.AffiliateAmount > 0
}

// BeginAttempt is called right before a transfer request is issued.
func (e *Event) BeginAttempt(now time.Time) error {
	if e.Status == StatusTransferred {
		return ErrAlreadySettled
	}
	e.Attempts++
	e.UpdatedAt = now
	return nil
}

func (e *Event) MarkTransferred(transferID string, now time.Time) {
	e.Status = StatusTransferred
	e.TransferID = transferID
	e.LastError = ""
	e.UpdatedAt = now
}

// MarkFailed parks the row for manual reconciliation.
func (e *Event) MarkFailed(cause error, now time.Time) {
	e.Status = StatusPendingReconciliation
	if cause != nil {
		msg := cause.Error()
		if len(msg) > maxErrorMessageLen {
			msg = msg[:maxErrorMessageLen]
		}
		e.LastError = msg
	}
	e.UpdatedAt = now
}
