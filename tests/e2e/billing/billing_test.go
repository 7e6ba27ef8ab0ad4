//go:build e2e

package billing_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"retrack/internal/handler/dto/response"
	"retrack/tests/common/dbtest"
	"retrack/tests/common/httptest"
	"retrack/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	webhookURL     = "/api/webhooks/stripe"
	checkURL       = "/api/subscription/check"
	affiliatesURL  = "/api/affiliates/create"
	commissionsURL = "/api/commissions/pending"
)

type BillingSuite struct {
	e2e.SharedSuite
}

func TestBillingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BillingSuite))
}

func (s *BillingSuite) signedDelivery(t *testing.T, event map[string]any) ([]byte, map[string]string) {
	t.Helper()
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return payload, httptest.StripeSignedHeaders(t, payload, s.Config.Stripe.WebhookSecret, time.Now())
}

func (s *BillingSuite) TestWebhook() {
	s.Run("Normal case: subscription update grants entitlement and replays are deduplicated", func() {
		t := s.T()
		ownerID, token := s.JWT.SellerToken(t)
		periodEnd := time.Now().Add(30 * 24 * time.Hour)

		event := map[string]any{
			"id":      "evt_e2e_sub_updated",
			"object":  "event",
			"type":    "customer.subscription.updated",
			"created": time.Now().Unix(),
			"data": map[string]any{
				"object": map[string]any{
					"id":                   "sub_e2e_1",
					"object":               "subscription",
					"status":               "active",
					"customer":             "cus_e2e_1",
					"current_period_start": time.Now().Unix(),
					"current_period_end":   periodEnd.Unix(),
					"metadata":             map[string]string{"user_id": ownerID.String(), "plan_type": "pro"},
				},
			},
		}
		payload, headers := s.signedDelivery(t, event)

		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, payload, headers)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), `"outcome":"processed"`)
		httptest.AssertHeaders(t, w, map[string]string{"Content-Type": "application/json; charset=utf-8"})

		w = httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, payload, headers)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), `"outcome":"duplicate"`)

		count, status := dbtest.CountWebhookEvents(t, s.DB, "evt_e2e_sub_updated")
		require.Equal(t, 1, count)
		require.Equal(t, "processed", status)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, checkURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var check response.SubscriptionCheckResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &check))
		require.True(t, check.HasSubscription)
		require.Equal(t, "active", check.Status)
		require.NotNil(t, check.Subscription)
		require.Equal(t, "pro", check.Subscription.PlanType)
	})

	s.Run("Normal case: unhandled event types are recorded as ignored", func() {
		t := s.T()
		payload, headers := s.signedDelivery(t, map[string]any{
			"id":      "evt_e2e_customer",
			"object":  "event",
			"type":    "customer.created",
			"created": time.Now().Unix(),
			"data":    map[string]any{"object": map[string]any{"id": "cus_x", "object": "customer"}},
		})

		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, payload, headers)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		_, status := dbtest.CountWebhookEvents(t, s.DB, "evt_e2e_customer")
		require.Equal(t, "ignored", status)
	})

	s.Run("Error case: tampered body fails signature verification", func() {
		t := s.T()
		payload, headers := s.signedDelivery(t, map[string]any{
			"id": "evt_e2e_tampered", "object": "event", "type": "customer.created",
		})
		payload = append(payload[:len(payload)-1], []byte(`,"x":1}`)...)

		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, payload, headers)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid webhook signature")

		count, _ := dbtest.CountWebhookEvents(t, s.DB, "evt_e2e_tampered")
		require.Zero(t, count)
	})
}

func (s *BillingSuite) TestSubscriptionCheck() {
	s.Run("Normal case: no subscription", func() {
		t := s.T()
		_, token := s.JWT.SellerToken(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, checkURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var check response.SubscriptionCheckResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &check))
		require.False(t, check.HasSubscription)
		require.Equal(t, "none", check.Status)
	})

	s.Run("Normal case: lapsed period is expired", func() {
		t := s.T()
		ownerID, token := s.JWT.SellerToken(t)
		dbtest.CreateTestSubscription(t, s.DB, ownerID, "sub_lapsed", "active", time.Now().Add(-time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, checkURL, nil, token)
		var check response.SubscriptionCheckResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &check))
		require.False(t, check.HasSubscription)
		require.Equal(t, "expired", check.Status)
	})
}

func (s *BillingSuite) TestAdminEndpoints() {
	s.Run("Normal case: service role registers and reads an affiliate", func() {
		t := s.T()
		token := s.JWT.ServiceToken(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, affiliatesURL, map[string]any{
			"ref_code":          "E2EPARTNER",
			"stripe_account_id": "acct_e2e",
			"commission_rate":   70,
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, affiliatesURL+"?ref_code=E2EPARTNER", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), "acct_e2e")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, commissionsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("Error case: end users are forbidden", func() {
		t := s.T()
		_, token := s.JWT.SellerToken(t)
		dbtest.CreateTestAffiliate(t, s.DB, "HIDDEN01", "acct_hidden", "50")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, affiliatesURL+"?ref_code=HIDDEN01", nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Error case: expired token", func() {
		t := s.T()
		token := s.JWT.CreateExpiredToken(t, uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, checkURL, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
