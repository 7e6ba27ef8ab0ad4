package api

import (
	"net/http"

	reqdto "retrack/internal/handler/dto/request"
	resdto "retrack/internal/handler/dto/response"
	"retrack/internal/handler/httperr"
	"retrack/internal/handler/middleware"
	"retrack/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Create checkout session
// @Description Start a subscription checkout, optionally attributed to an affiliate ref_code
// @Tags billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /checkout/create [post]
func (h *CheckoutHandler) Create(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoIdentity, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}

	result, err := h.cmds.CreateCheckoutSession(c.Request.Context(), commands.CheckoutRequest{
		PriceID:    req.PriceID,
		RefCode:    req.RefCode,
		SuccessURL: req.SuccessURL,
		CancelURL:  req.CancelURL,
	}, commands.Caller{UserID: identity.UserID(), Email: identity.Email()})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}
