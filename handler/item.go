package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ncobase/catalog/config"
	"github.com/ncobase/catalog/ecode"
	"github.com/ncobase/catalog/logger"
	"github.com/ncobase/catalog/paging"
	"github.com/ncobase/catalog/resp"
	"github.com/ncobase/catalog/service"
)

// NextCursorHeader carries the continuation token of cursor-paged
// responses; it is absent once the collection is exhausted.
const NextCursorHeader = "X-Next-Cursor"

// ItemHandler handles HTTP requests for items.
type ItemHandler struct {
	svc     *service.ItemService
	logger  *logger.Logger
	release bool
}

// NewItemHandler creates a new item handler.
func NewItemHandler(cfg *config.Config, svc *service.ItemService, logger *logger.Logger) *ItemHandler {
	return &ItemHandler{
		svc:     svc,
		logger:  logger,
		release: cfg.IsRelease(),
	}
}

// fail maps a typed outcome onto a status code and failure envelope.
// Store failures keep their detail off the wire in release mode.
func (h *ItemHandler) fail(c *gin.Context, err error, fallback string) {
	switch {
	case service.IsValidation(err) || errors.Is(err, paging.ErrInvalidCursor):
		resp.BadRequest(c, err.Error())
	case service.IsNotFound(err):
		resp.NotFound(c, err.Error())
	default:
		h.logger.Error(c.Request.Context(), fallback, "error", err)
		message := fallback
		if !h.release {
			message = err.Error()
		}
		resp.InternalServer(c, message)
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, ecode.FieldIsInvalid("id"))
		return 0, false
	}
	return id, true
}

// List handles item listing. Without page and pageSize the full list is
// returned; with either one present the offset-paged envelope is used.
func (h *ItemHandler) List(c *gin.Context) {
	if c.Query("page") == "" && c.Query("pageSize") == "" {
		items, err := h.svc.List(c.Request.Context(), "")
		if err != nil {
			h.fail(c, err, "failed to list items")
			return
		}
		resp.Success(c, resp.OKList(items))
		return
	}

	h.paged(c, "")
}

// Search handles filtered listing; an empty query matches all items.
func (h *ItemHandler) Search(c *gin.Context) {
	h.paged(c, c.Query("query"))
}

func (h *ItemHandler) paged(c *gin.Context, query string) {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize"))

	result, err := h.svc.ListPaged(c.Request.Context(), paging.OffsetParams{
		Query:    query,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		h.fail(c, err, "failed to list items")
		return
	}

	resp.Success(c, resp.OKPage(result.Items, result.Total, result.Page, result.PageSize, result.TotalPages))
}

// ListByCursor handles cursor-paged listing. The continuation token rides
// in the X-Next-Cursor response header; the envelope total is the count
// of items on this page.
func (h *ItemHandler) ListByCursor(c *gin.Context) {
	pageSize, _ := strconv.Atoi(c.Query("pageSize"))

	result, err := h.svc.ListByCursor(c.Request.Context(), paging.CursorParams{
		Cursor:   c.Query("cursor"),
		PageSize: pageSize,
	})
	if err != nil {
		h.fail(c, err, "failed to list items by cursor")
		return
	}

	if result.NextCursor != "" {
		c.Header(NextCursorHeader, result.NextCursor)
	}
	resp.Success(c, resp.OKList(result.Items))
}

// Get handles item retrieval by id.
func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	it, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to get item")
		return
	}

	resp.Success(c, resp.OKData(it))
}

// Create handles item creation; the new resource address is returned in
// the Location header.
func (h *ItemHandler) Create(c *gin.Context) {
	var req service.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	it, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err, "failed to create item")
		return
	}

	c.Header("Location", fmt.Sprintf("/api/items/%d", it.ID))
	resp.WithStatusCode(c, http.StatusCreated, resp.OKData(it))
}

// Update handles item replacement. Existence is checked before field
// validity, so a bad body against a missing id still reports 404.
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	it, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.fail(c, err, "failed to update item")
		return
	}

	resp.Success(c, resp.OKData(it))
}

// Delete handles permanent item removal.
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, "failed to delete item")
		return
	}

	resp.Success(c, resp.OKData(fmt.Sprintf("item %d deleted", id)))
}
