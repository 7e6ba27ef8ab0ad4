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

type AffiliateHandler struct {
	cmds commands.AffiliateCommands
	q    queries.AffiliateQueries
}

func NewAffiliateHandler(cmds commands.AffiliateCommands, q queries.AffiliateQueries) *AffiliateHandler {
	return &AffiliateHandler{cmds: cmds, q: q}
}

// @Summary Upsert affiliate
// @Description Create an affiliate or update the supplied fields of an existing one, keyed by ref_code
// @Tags affiliates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpsertAffiliateRequest true "Affiliate"
// @Success 200 {object} resdto.AffiliateResponse
// @Success 201 {object} resdto.AffiliateResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /affiliates/create [post]
func (h *AffiliateHandler) Upsert(c *gin.Context) {
	var req reqdto.UpsertAffiliateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	result, err := h.cmds.UpsertAffiliate(c.Request.Context(), commands.UpsertAffiliateRequest{
		RefCode:         req.RefCode,
		StripeAccountID: req.StripeAccountID,
		CommissionRate:  req.CommissionRate,
		Active:          req.Active,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByRefCode(c.Request.Context(), result.Affiliate.RefCode())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load affiliate", nil)
		return
	}
	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromAffiliateView(view))
}

// @Summary Get or list affiliates
// @Description With ref_code returns that affiliate, otherwise lists affiliates
// @Tags affiliates
// @Produce json
// @Security BearerAuth
// @Param ref_code query string false "Referral code"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} resdto.AffiliateResponse
// @Failure 404 {object} httperr.Response
// @Router /affiliates/create [get]
func (h *AffiliateHandler) Get(c *gin.Context) {
	if refCode := c.Query("ref_code"); refCode != "" {
		view, err := h.q.GetByRefCode(c.Request.Context(), refCode)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromAffiliateView(view))
		return
	}
	_, limit := listParams(c)
	items, err := h.q.List(c.Request.Context(), limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"affiliates": resdto.FromAffiliateList(items)})
}
