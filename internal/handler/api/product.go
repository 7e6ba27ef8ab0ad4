package api

import (
	"net/http"

	reqdto "retrack/internal/handler/dto/request"
	resdto "retrack/internal/handler/dto/response"
	"retrack/internal/handler/httperr"
	"retrack/internal/usecase/commands"
	"retrack/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	cmds commands.ProductCommands
	q    queries.ProductQueries
}

func NewProductHandler(cmds commands.ProductCommands, q queries.ProductQueries) *ProductHandler {
	return &ProductHandler{cmds: cmds, q: q}
}

// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateProductRequest true "Product"
// @Success 201 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req reqdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	p, err := h.cmds.CreateProduct(c.Request.Context(), userID, commands.CreateProductRequest{
		Title:         req.Title,
		PurchasePrice: req.PurchasePrice.Decimal(),
		Images:        req.Images,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusCreated, userID, p.ID())
}

// @Summary Get product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
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
	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

// @Summary List products
// @Description Owner's inventory, newest first, with keyset pagination
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param status query string false "active|reserved|paused|sold"
// @Param q query string false "Title search"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	cursor, limit := listParams(c)
	items, next, err := h.q.List(c.Request.Context(), userID, queries.ProductFilters{
		Status: c.Query("status"),
		Query:  c.Query("q"),
	}, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, withCursor(gin.H{"products": resdto.FromProductList(items)}, next))
}

// @Summary Update product
// @Description Edit title or purchase price; the purchase price is locked once sold
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.UpdateProductRequest true "Fields to change"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [patch]
func (h *ProductHandler) Update(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	var price *decimal.Decimal
	if req.PurchasePrice != nil && req.PurchasePrice.IsSet() {
		d := req.PurchasePrice.Decimal()
		price = &d
	}
	if _, err := h.cmds.UpdateProduct(c.Request.Context(), userID, id, commands.UpdateProductRequest{
		Title:         req.Title,
		PurchasePrice: price,
	}); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, userID, id)
}

// @Summary Change product status
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.ChangeProductStatusRequest true "New status"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /products/{id}/status [put]
func (h *ProductHandler) ChangeStatus(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.ChangeProductStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	if _, err := h.cmds.ChangeStatus(c.Request.Context(), userID, id, req.Status); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, userID, id)
}

// @Summary Delete product
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteProduct(c.Request.Context(), userID, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Upload product image
// @Description Multipart upload proxied to object storage; the public URL is appended to the product
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param file formData file true "Image"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Router /products/{id}/images [post]
func (h *ProductHandler) UploadImage(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "file is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unable to read file", nil)
		return
	}
	defer f.Close()

	if _, err := h.cmds.AddImage(c.Request.Context(), userID, id, commands.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	}); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, userID, id)
}

func (h *ProductHandler) respond(c *gin.Context, status int, ownerID, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load product", nil)
		return
	}
	c.JSON(status, resdto.FromProductView(view))
}
