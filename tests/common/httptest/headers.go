//go:build unit || e2e

package httptest

import (
	"encoding/hex"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v76/webhook"
)

const SignatureHeader = "Stripe-Signature"

// StripeSignedHeaders signs payload the way Stripe does for deliveries at the given time.
func StripeSignedHeaders(t *testing.T, payload []byte, secret string, at time.Time) map[string]string {
	t.Helper()
	sig := webhook.ComputeSignature(at, payload, secret)
	return map[string]string{
		"Content-Type":  "application/json",
		SignatureHeader: fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(sig)),
	}
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}
