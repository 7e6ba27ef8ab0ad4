package api

import (
	"net/http"
	"time"

	reqdto "retrack/internal/handler/dto/request"
	resdto "retrack/internal/handler/dto/response"
	"retrack/internal/handler/httperr"
	"retrack/internal/usecase/commands"
	"retrack/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SaleHandler struct {
	cmds commands.SaleCommands
	q    queries.SaleQueries
}

func NewSaleHandler(cmds commands.SaleCommands, q queries.SaleQueries) *SaleHandler {
	return &SaleHandler{cmds: cmds, q: q}
}

// @Summary Record sale
// @Description With product_id the product is marked sold and its purchase price captured
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSaleRequest true "Sale"
// @Success 201 {object} resdto.SaleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /sales [post]
func (h *SaleHandler) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req reqdto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	s, err := h.cmds.RecordSale(c.Request.Context(), userID, commands.RecordSaleRequest{
		ProductID:     req.ProductID,
		Title:         req.Title,
		SalePrice:     req.SalePrice.Decimal(),
		PurchasePrice: req.PurchasePrice.Decimal(),
		ShippingCost:  req.ShippingCost.Decimal(),
		PlatformFee:   req.PlatformFee.Decimal(),
		Platform:      req.Platform,
		Notes:         req.Notes,
		SaleDate:      req.SaleDate.TimePtr(),
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusCreated, userID, s.ID())
}

// @Summary Get sale
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sale ID"
// @Success 200 {object} resdto.SaleResponse
// @Failure 404 {object} httperr.Response
// @Router /sales/{id} [get]
func (h *SaleHandler) Get(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSaleView(view))
}

// @Summary List sales
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param platform query string false "Platform"
// @Param from query string false "From date (YYYY-MM-DD or RFC 3339)"
// @Param to query string false "To date (YYYY-MM-DD or RFC 3339)"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.SaleResponse
// @Failure 400 {object} httperr.Response
// @Router /sales [get]
func (h *SaleHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	cursor, limit := listParams(c)
	items, next, err := h.q.List(c.Request.Context(), userID, queries.SaleFilters{
		Platform: c.Query("platform"),
		From:     from,
		To:       to,
	}, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, withCursor(gin.H{"sales": resdto.FromSaleList(items)}, next))
}

// @Summary Sales summary
// @Description Count, revenue, total profit and average margin over an optional date range
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param from query string false "From date"
// @Param to query string false "To date"
// @Success 200 {object} resdto.SalesSummaryResponse
// @Failure 400 {object} httperr.Response
// @Router /sales/summary [get]
func (h *SaleHandler) Summary(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	summary, err := h.q.Summary(c.Request.Context(), userID, from, to)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSalesSummary(summary))
}

// @Summary Update sale
// @Description Edits platform, notes and sale date; stored metrics are never recomputed
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sale ID"
// @Param request body reqdto.UpdateSaleRequest true "Fields to change"
// @Success 200 {object} resdto.SaleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /sales/{id} [patch]
func (h *SaleHandler) Update(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	if _, err := h.cmds.UpdateSale(c.Request.Context(), userID, id, req.ToPatch()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, userID, id)
}

// @Summary Delete sale
// @Description Removes the sale; a linked product returns to active inventory
// @Tags sales
// @Security BearerAuth
// @Param id path string true "Sale ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /sales/{id} [delete]
func (h *SaleHandler) Delete(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteSale(c.Request.Context(), userID, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SaleHandler) respond(c *gin.Context, status int, ownerID, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load sale", nil)
		return
	}
	c.JSON(status, resdto.FromSaleView(view))
}

func dateRange(c *gin.Context) (from, to *time.Time, ok bool) {
	parse := func(key string) (*time.Time, bool) {
		v := c.Query(key)
		if v == "" {
			return nil, true
		}
		t, err := reqdto.ParseDate(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+key+" date", nil)
			return nil, false
		}
		// a bare calendar date as the upper bound covers that whole day
		if key == "to" && len(v) == len(time.DateOnly) {
			t = t.AddDate(0, 0, 1)
		}
		return &t, true
	}
	if from, ok = parse("from"); !ok {
		return nil, nil, false
	}
	if to, ok = parse("to"); !ok {
		return nil, nil, false
	}
	return from, to, true
}
