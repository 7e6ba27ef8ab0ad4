package httperr

import (
	"net/http"

	"retrack/internal/infra"
	"retrack/internal/pkg/errs"
	"retrack/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type mapping struct {
	target error
	status int
	msg    string
}

// Order matters: the first matching sentinel wins.
var mappings = []mapping{
	{errs.ErrInvalidSignature, http.StatusBadRequest, "Invalid webhook signature"},
	{errs.ErrMalformedEvent, http.StatusBadRequest, "Malformed webhook event"},
	{errs.ErrInvalidReferralCode, http.StatusBadRequest, "Invalid referral code"},
	{errs.ErrInvalidRefCode, http.StatusBadRequest, "Invalid ref_code"},
	{errs.ErrInvalidCommissionRate, http.StatusBadRequest, "Invalid commission_rate"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{queries.ErrInvalidDateRange, http.StatusBadRequest, "Invalid date range"},
	{errs.ErrWebhookInProgress, http.StatusConflict, "Webhook event is being processed"},
	{errs.ErrDuplicateSubscription, http.StatusConflict, "Active subscription already exists"},
	{errs.ErrDuplicateRefCode, http.StatusConflict, "ref_code already exists"},
	{errs.ErrProductAlreadySold, http.StatusConflict, "Product already sold"},
	{errs.ErrProductInUse, http.StatusConflict, "Product is referenced by a sale"},
	{errs.ErrCommissionAlreadySettled, http.StatusConflict, "Commission already transferred"},
	{errs.ErrPriceNotFound, http.StatusBadRequest, "Price not found"},
	{errs.ErrSubscriptionNotFound, http.StatusNotFound, "Subscription not found"},
	{errs.ErrAffiliateNotFound, http.StatusNotFound, "Affiliate not found"},
	{errs.ErrProductNotFound, http.StatusNotFound, "Product not found"},
	{errs.ErrSaleNotFound, http.StatusNotFound, "Sale not found"},
	{errs.ErrCommissionNotFound, http.StatusNotFound, "Commission event not found"},
	{errs.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{errs.ErrMissingConfig, http.StatusInternalServerError, "Service is not configured"},
	{errs.ErrPaymentProvider, http.StatusInternalServerError, "Payment provider error"},
}

// Status resolves err to an HTTP status and a caller-facing message.
func Status(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			return m.status, m.msg
		}
	}
	// validation messages are safe to surface verbatim
	if errs.Is(err, errs.ErrDomainValidation) {
		return http.StatusBadRequest, rootMessage(err)
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return http.StatusNotFound, "Not found"
	}
	return http.StatusInternalServerError, "Internal server error"
}

// Abort maps err with Status and aborts. Provider failures keep their detail for operators.
func Abort(c *gin.Context, err error) {
	status, msg := Status(err)
	var detail any
	if errs.Is(err, errs.ErrPaymentProvider) {
		detail = err.Error()
	}
	AbortWithError(c, status, err, msg, detail)
}

func rootMessage(err error) string {
	for {
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return err.Error()
		}
		next := u.Unwrap()
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
