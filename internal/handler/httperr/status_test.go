//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"retrack/internal/handler/httperr"
	"retrack/internal/infra"
	"retrack/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "marked sentinel survives wrapping",
			err:        errs.Wrap(errs.Mark(errs.New("sub_1 active"), errs.ErrDuplicateSubscription), "checkout"),
			wantStatus: http.StatusConflict,
			wantMsg:    "Active subscription already exists",
		},
		{
			name:       "locked webhook delivery is retryable",
			err:        errs.Mark(errs.New("event evt_1 is locked"), errs.ErrWebhookInProgress),
			wantStatus: http.StatusConflict,
			wantMsg:    "Webhook event is being processed",
		},
		{
			name:       "signature failure",
			err:        errs.Mark(errs.New("bad sig"), errs.ErrInvalidSignature),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid webhook signature",
		},
		{
			name:       "validation surfaces the root message",
			err:        errs.Wrap(errs.Mark(errs.New("title is required"), errs.ErrDomainValidation), "create product"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "title is required",
		},
		{
			name:       "infra not found",
			err:        infra.WrapRepoErr("sale lookup", pgx.ErrNoRows, infra.KindNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Not found",
		},
		{
			name:       "unknown error hides detail",
			err:        errors.New("connection reset by peer"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := httperr.Status(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
