package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quoteboard-backend/internal/domains/author/model"
	"quoteboard-backend/internal/domains/author/service"
	"quoteboard-backend/internal/shared/response"
	"quoteboard-backend/internal/shared/validate"
	"quoteboard-backend/pkg/logger"
)

type AuthorHandler struct {
	service service.Service
}

func NewAuthorHandler(svc service.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// pathID parses the :id path parameter. Malformed values come back as 0 and
// fail positive-integer validation in the service, so they never reach the
// database.
func pathID(c *gin.Context) int64 {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	return id
}

// respondError maps service failures: validation errors return 400 with the
// constraint message, missing rows return 404, and everything else is logged
// in full but leaves the process as the generic route message only.
func (h *AuthorHandler) respondError(c *gin.Context, err error, generic string) {
	if validate.IsValidation(err) {
		response.BadRequest(c, err.Error())
		return
	}
	if errors.Is(err, model.ErrAuthorNotFound) {
		response.NotFound(c, err.Error())
		return
	}

	logger.Error(generic, err)
	response.InternalServerError(c, generic)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /author
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, "Could not create author")
		return
	}

	response.JSON(c, http.StatusCreated, created)
}

// ════════════════════════════════════════════════════════════════
// READ: GetAll - GET /author
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetAll(c *gin.Context) {
	authors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Could not retrieve all authors")
		return
	}

	response.JSON(c, http.StatusOK, authors)
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /author/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetByID(c *gin.Context) {
	detail, err := h.service.GetByID(c.Request.Context(), pathID(c))
	if err != nil {
		h.respondError(c, err, "Could not retrieve the author")
		return
	}

	response.JSON(c, http.StatusOK, detail)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /author/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Update(c *gin.Context) {
	id := pathID(c)

	var req model.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err, "Could not update author")
		return
	}

	response.JSON(c, http.StatusOK, updated)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /author/:id
// ════════════════════════════════════════════════════════════════

// Delete responds 200 with the deleted row so clients can show what was
// removed without a prior fetch.
func (h *AuthorHandler) Delete(c *gin.Context) {
	deleted, err := h.service.Delete(c.Request.Context(), pathID(c))
	if err != nil {
		h.respondError(c, err, "Could not delete author")
		return
	}

	response.JSON(c, http.StatusOK, deleted)
}
