package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quoteboard-backend/internal/domains/authorlist/model"
	"quoteboard-backend/internal/domains/authorlist/service"
	"quoteboard-backend/internal/shared/response"
	"quoteboard-backend/internal/shared/validate"
	"quoteboard-backend/pkg/logger"
)

type AuthorListHandler struct {
	service service.Service
}

func NewAuthorListHandler(svc service.Service) *AuthorListHandler {
	return &AuthorListHandler{service: svc}
}

func pathParam(c *gin.Context, name string) int64 {
	id, _ := strconv.ParseInt(c.Param(name), 10, 64)
	return id
}

func (h *AuthorListHandler) respondError(c *gin.Context, err error, generic string) {
	if validate.IsValidation(err) {
		response.BadRequest(c, err.Error())
		return
	}
	if errors.Is(err, model.ErrMembershipNotFound) {
		response.NotFound(c, err.Error())
		return
	}
	if errors.Is(err, model.ErrMembershipExists) {
		response.Conflict(c, err.Error())
		return
	}

	logger.Error(generic, err)
	response.InternalServerError(c, generic)
}

// ════════════════════════════════════════════════════════════════
// READ: ListsOfAuthor - GET /author/:id/lists
// ════════════════════════════════════════════════════════════════

func (h *AuthorListHandler) ListsOfAuthor(c *gin.Context) {
	lists, err := h.service.GetListsOfAuthor(c.Request.Context(), pathParam(c, "id"))
	if err != nil {
		h.respondError(c, err, "Could not get lists for this author")
		return
	}

	response.JSON(c, http.StatusOK, lists)
}

// ════════════════════════════════════════════════════════════════
// READ: AuthorsOfList - GET /list/:id/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorListHandler) AuthorsOfList(c *gin.Context) {
	authors, err := h.service.GetAuthorsOfList(c.Request.Context(), pathParam(c, "id"))
	if err != nil {
		h.respondError(c, err, "Could not get authors of list")
		return
	}

	response.JSON(c, http.StatusOK, authors)
}

// ════════════════════════════════════════════════════════════════
// CREATE: Add - POST /list/:id/authors/:authorId
// ════════════════════════════════════════════════════════════════

func (h *AuthorListHandler) Add(c *gin.Context) {
	authorID := pathParam(c, "authorId")
	listID := pathParam(c, "id")

	m, err := h.service.AddAuthorToList(c.Request.Context(), authorID, listID)
	if err != nil {
		h.respondError(c, err, "Could not add author to list")
		return
	}

	response.JSON(c, http.StatusCreated, m)
}

// ════════════════════════════════════════════════════════════════
// DELETE: Remove - DELETE /list/:id/authors/:authorId
// ════════════════════════════════════════════════════════════════

func (h *AuthorListHandler) Remove(c *gin.Context) {
	authorID := pathParam(c, "authorId")
	listID := pathParam(c, "id")

	m, err := h.service.RemoveAuthorFromList(c.Request.Context(), authorID, listID)
	if err != nil {
		h.respondError(c, err, "Could not remove author from list")
		return
	}

	response.JSON(c, http.StatusOK, m)
}
