package http

import (
	"github.com/gin-gonic/gin"

	"item-management/pkg/response"
)

// List godoc
// @Summary     List items
// @Description Returns all items sorted by creation time, newest first.
// @Tags        Items
// @Produce     json
// @Success     200 {array}  itemResp
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Router      /api/v1/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		status, msg := h.mapError(err, msgFailedToList)
		response.Error(c, status, msg)
		return
	}

	response.OK(c, newListResp(output))
}

// Create godoc
// @Summary     Create a new item
// @Description Creates a new item with the provided title and description.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     201 {object} itemResp
// @Failure     400 {object} response.ErrResp "Bad Request - missing fields"
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Router      /api/v1/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		h.l.Warnf(ctx, "processCreateReq: %v", err)
		status, msg := h.mapError(err, msgFailedToCreate)
		response.Error(c, status, msg)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		status, msg := h.mapError(err, msgFailedToCreate)
		response.Error(c, status, msg)
		return
	}

	response.Created(c, newItemResp(output.Item))
}

// Detail godoc
// @Summary     Get item detail
// @Description Returns a single item by its ID.
// @Tags        Items
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.ErrResp "Not Found"
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Router      /api/v1/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		status, msg := h.mapError(err, msgFailedToFetch)
		response.Error(c, status, msg)
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// Update godoc
// @Summary     Update an item
// @Description Replaces the title and description of an existing item.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Item ID"
// @Param       body body updateReq true "New field values"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.ErrResp "Bad Request - missing fields"
// @Failure     404 {object} response.ErrResp "Not Found"
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Router      /api/v1/items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		h.l.Warnf(ctx, "processUpdateReq: %v", err)
		status, msg := h.mapError(err, msgFailedToUpdate)
		response.Error(c, status, msg)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		status, msg := h.mapError(err, msgFailedToUpdate)
		response.Error(c, status, msg)
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// Delete godoc
// @Summary     Delete an item
// @Description Permanently removes an item by ID.
// @Tags        Items
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} response.MsgResp
// @Failure     404 {object} response.ErrResp "Not Found"
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Router      /api/v1/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		status, msg := h.mapError(err, msgFailedToDelete)
		response.Error(c, status, msg)
		return
	}

	response.Message(c, msgDeleted)
}
