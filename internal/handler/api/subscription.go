package api

import (
	"net/http"

	reqdto "retrack/internal/handler/dto/request"
	resdto "retrack/internal/handler/dto/response"
	"retrack/internal/handler/httperr"
	"retrack/internal/usecase/commands"
	"retrack/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	cmds commands.SubscriptionCommands
	q    queries.SubscriptionQueries
}

func NewSubscriptionHandler(cmds commands.SubscriptionCommands, q queries.SubscriptionQueries) *SubscriptionHandler {
	return &SubscriptionHandler{cmds: cmds, q: q}
}

// @Summary Check subscription
// @Description Reports whether the caller is entitled to paid features right now
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SubscriptionCheckResponse
// @Failure 401 {object} httperr.Response
// @Router /subscription/check [get]
func (h *SubscriptionHandler) Check(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	check, err := h.q.Check(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubscriptionCheck(check))
}

// @Summary Billing portal
// @Description Create a self-service billing portal session for the caller's subscription
// @Tags billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PortalSessionRequest false "Portal request"
// @Success 200 {object} map[string]string
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /subscription/portal [post]
func (h *SubscriptionHandler) Portal(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req reqdto.PortalSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortBind(c, err)
			return
		}
	}
	url, err := h.cmds.CreatePortalSession(c.Request.Context(), userID, req.ReturnURL)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
