package api

import (
	"io"
	"log/slog"
	"net/http"

	"retrack/internal/handler/httperr"
	"retrack/internal/pkg/errs"
	"retrack/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 1 << 20

type WebhookHandler struct {
	cmds commands.WebhookCommands
}

func NewWebhookHandler(cmds commands.WebhookCommands) *WebhookHandler {
	return &WebhookHandler{cmds: cmds}
}

// @Summary Payment processor webhook
// @Description Receives signed processor events. The raw body is required for signature verification.
// @Tags billing
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Processor signature"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /webhooks/stripe [post]
func (h *WebhookHandler) Stripe(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unable to read body", nil)
		return
	}

	result, err := h.cmds.HandleEvent(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		if errs.Is(err, errs.ErrInvalidSignature) || errs.Is(err, errs.ErrMalformedEvent) {
			slog.Warn("webhook rejected", "error", err.Error())
		}
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"received": true,
		"outcome":  string(result.Outcome),
	})
}
