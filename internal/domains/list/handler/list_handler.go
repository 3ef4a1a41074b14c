package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quoteboard-backend/internal/domains/list/model"
	"quoteboard-backend/internal/domains/list/service"
	"quoteboard-backend/internal/shared/response"
	"quoteboard-backend/internal/shared/validate"
	"quoteboard-backend/pkg/logger"
)

type ListHandler struct {
	service service.Service
}

func NewListHandler(svc service.Service) *ListHandler {
	return &ListHandler{service: svc}
}

func pathID(c *gin.Context) int64 {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	return id
}

func (h *ListHandler) respondError(c *gin.Context, err error, generic string) {
	if validate.IsValidation(err) {
		response.BadRequest(c, err.Error())
		return
	}
	if errors.Is(err, model.ErrListNotFound) {
		response.NotFound(c, err.Error())
		return
	}

	logger.Error(generic, err)
	response.InternalServerError(c, generic)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /list
// ════════════════════════════════════════════════════════════════

func (h *ListHandler) Create(c *gin.Context) {
	var req model.ListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, "Could not create list")
		return
	}

	response.JSON(c, http.StatusCreated, created)
}

// ════════════════════════════════════════════════════════════════
// READ: GetAll - GET /lists
// ════════════════════════════════════════════════════════════════

func (h *ListHandler) GetAll(c *gin.Context) {
	lists, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Could not get lists")
		return
	}

	response.JSON(c, http.StatusOK, lists)
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /list/:id
// ════════════════════════════════════════════════════════════════

func (h *ListHandler) GetByID(c *gin.Context) {
	detail, err := h.service.GetByID(c.Request.Context(), pathID(c))
	if err != nil {
		h.respondError(c, err, "Could not retrieve the list")
		return
	}

	response.JSON(c, http.StatusOK, detail)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /list/:id
// ════════════════════════════════════════════════════════════════

func (h *ListHandler) Update(c *gin.Context) {
	id := pathID(c)

	var req model.ListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err, "Could not update list")
		return
	}

	response.JSON(c, http.StatusOK, updated)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /list/:id
// ════════════════════════════════════════════════════════════════

func (h *ListHandler) Delete(c *gin.Context) {
	deleted, err := h.service.Delete(c.Request.Context(), pathID(c))
	if err != nil {
		h.respondError(c, err, "Could not delete list")
		return
	}

	response.JSON(c, http.StatusOK, deleted)
}
