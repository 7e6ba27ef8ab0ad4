package subscription

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive            Status = "active"
	StatusTrialing          Status = "trialing"
	StatusPastDue           Status = "past_due"
	StatusCanceled          Status = "canceled"
	StatusIncomplete        Status = "incomplete"
	StatusIncompleteExpired Status = "incomplete_expired"
	StatusUnpaid            Status = "unpaid"
	StatusPaused            Status = "paused"
)

// QualifyingStatuses are the stored statuses that may grant entitlement.
var QualifyingStatuses = []Status{StatusActive, StatusTrialing}

func (s Status) Qualifies() bool {
	return s == StatusActive || s == StatusTrialing
}

func (s Status) String() string { return string(s) }

type Subscription struct {
	ID                     uuid.UUID
	OwnerID                uuid.UUID
	CustomerID             string
	ProviderSubscriptionID string
	PlanType               string
	Status                 Status
	CurrentPeriodStart     time.Time
	CurrentPeriodEnd       time.Time
	CancelAtPeriodEnd      bool
	RefCode                string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

type Entitlement string

const (
	EntitlementActive  Entitlement = "active"
	EntitlementExpired Entitlement = "expired"
	EntitlementNone    Entitlement = "none"
)

// Evaluate never trusts a stored "active" status on its own: an elapsed period reads as expired.
func Evaluate(sub *Subscription, now time.Time) Entitlement {
	if sub == nil || !sub.Status.Qualifies() {
		return EntitlementNone
	}
	if !sub.CurrentPeriodEnd.IsZero() && sub.CurrentPeriodEnd.Before(now) {
		return EntitlementExpired
	}
	return EntitlementActive
}

func (e Entitlement) Entitled() bool {
	return e == EntitlementActive
}
