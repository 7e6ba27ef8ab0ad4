package api

import (
	"net/http"

	resdto "retrack/internal/handler/dto/response"
	"retrack/internal/handler/httperr"
	"retrack/internal/usecase/commands"
	"retrack/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CommissionHandler struct {
	cmds commands.CommissionCommands
	q    queries.CommissionQueries
}

func NewCommissionHandler(cmds commands.CommissionCommands, q queries.CommissionQueries) *CommissionHandler {
	return &CommissionHandler{cmds: cmds, q: q}
}

// @Summary Pending commission transfers
// @Description Ledger rows whose transfer failed and await reconciliation
// @Tags commissions
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Success 200 {array} resdto.CommissionEventResponse
// @Failure 403 {object} httperr.Response
// @Router /commissions/pending [get]
func (h *CommissionHandler) ListPending(c *gin.Context) {
	_, limit := listParams(c)
	items, err := h.q.ListPendingReconciliation(c.Request.Context(), limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"commissions": resdto.FromCommissionEventList(items)})
}

// @Summary Retry commission transfer
// @Description Re-issues a parked transfer with its original idempotency key
// @Tags commissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Commission event ID"
// @Success 200 {object} resdto.CommissionEventResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /commissions/{id}/retry [post]
func (h *CommissionHandler) Retry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ev, err := h.cmds.RetryTransfer(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCommissionEvent(ev))
}
