package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quoteboard-backend/internal/domains/entry/model"
	"quoteboard-backend/internal/domains/entry/service"
	"quoteboard-backend/internal/shared/response"
	"quoteboard-backend/internal/shared/validate"
	"quoteboard-backend/pkg/logger"
)

type EntryHandler struct {
	service service.Service
}

func NewEntryHandler(svc service.Service) *EntryHandler {
	return &EntryHandler{service: svc}
}

func pathID(c *gin.Context) int64 {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	return id
}

func (h *EntryHandler) respondError(c *gin.Context, err error, generic string) {
	if validate.IsValidation(err) {
		response.BadRequest(c, err.Error())
		return
	}
	if errors.Is(err, model.ErrEntryNotFound) {
		response.NotFound(c, err.Error())
		return
	}

	logger.Error(generic, err)
	response.InternalServerError(c, generic)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /entry
// ════════════════════════════════════════════════════════════════

// Create inserts a new entry. A listId, enteredById or statedById pointing at
// a missing row fails at the database and comes back as the generic 500.
func (h *EntryHandler) Create(c *gin.Context) {
	var req model.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, "Could not create entry")
		return
	}

	response.JSON(c, http.StatusCreated, created)
}

// ════════════════════════════════════════════════════════════════
// READ: GetAll - GET /entries
// ════════════════════════════════════════════════════════════════

func (h *EntryHandler) GetAll(c *gin.Context) {
	entries, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Could not get entries")
		return
	}

	response.JSON(c, http.StatusOK, entries)
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /entry/:id
// ════════════════════════════════════════════════════════════════

func (h *EntryHandler) GetByID(c *gin.Context) {
	entry, err := h.service.GetByID(c.Request.Context(), pathID(c))
	if err != nil {
		h.respondError(c, err, "Could not retrieve the entry")
		return
	}

	response.JSON(c, http.StatusOK, entry)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /entry/:id
// ════════════════════════════════════════════════════════════════

func (h *EntryHandler) Update(c *gin.Context) {
	id := pathID(c)

	var req model.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err, "Could not update entry")
		return
	}

	response.JSON(c, http.StatusOK, updated)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /entry/:id
// ════════════════════════════════════════════════════════════════

func (h *EntryHandler) Delete(c *gin.Context) {
	deleted, err := h.service.Delete(c.Request.Context(), pathID(c))
	if err != nil {
		h.respondError(c, err, "Could not delete entry")
		return
	}

	response.JSON(c, http.StatusOK, deleted)
}
