package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authormodel "quoteboard-backend/internal/domains/author/model"
	"quoteboard-backend/internal/domains/authorlist/model"
	"quoteboard-backend/internal/domains/authorlist/service"
	listmodel "quoteboard-backend/internal/domains/list/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeRepository struct {
	calls int

	addFn      func(ctx context.Context, authorID, listID int64) (*model.Membership, error)
	removeFn   func(ctx context.Context, authorID, listID int64) (*model.Membership, error)
	byListFn   func(ctx context.Context, listID int64) ([]model.AuthorOfList, error)
	byAuthorFn func(ctx context.Context, authorID int64) ([]model.ListOfAuthor, error)
}

func (f *fakeRepository) Add(ctx context.Context, authorID, listID int64) (*model.Membership, error) {
	f.calls++
	return f.addFn(ctx, authorID, listID)
}

func (f *fakeRepository) Remove(ctx context.Context, authorID, listID int64) (*model.Membership, error) {
	f.calls++
	return f.removeFn(ctx, authorID, listID)
}

func (f *fakeRepository) ByList(ctx context.Context, listID int64) ([]model.AuthorOfList, error) {
	f.calls++
	return f.byListFn(ctx, listID)
}

func (f *fakeRepository) ByAuthor(ctx context.Context, authorID int64) ([]model.ListOfAuthor, error) {
	f.calls++
	return f.byAuthorFn(ctx, authorID)
}

func setupRouter(repo *fakeRepository) *gin.Engine {
	h := NewAuthorListHandler(service.NewAuthorListService(repo))

	r := gin.New()
	r.GET("/author/:id/lists", h.ListsOfAuthor)
	r.GET("/list/:id/authors", h.AuthorsOfList)
	r.POST("/list/:id/authors/:authorId", h.Add)
	r.DELETE("/list/:id/authors/:authorId", h.Remove)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Contains(t, body, "error")
	return body["error"]
}

func TestAddMembership(t *testing.T) {
	repo := &fakeRepository{
		addFn: func(ctx context.Context, authorID, listID int64) (*model.Membership, error) {
			return &model.Membership{AuthorID: authorID, ListID: listID}, nil
		},
	}
	r := setupRouter(repo)

	w := do(t, r, http.MethodPost, "/list/3/authors/7")

	assert.Equal(t, http.StatusCreated, w.Code)

	var m model.Membership
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, int64(7), m.AuthorID)
	assert.Equal(t, int64(3), m.ListID)
}

func TestAddMembershipDuplicate(t *testing.T) {
	repo := &fakeRepository{
		addFn: func(ctx context.Context, authorID, listID int64) (*model.Membership, error) {
			return nil, model.ErrMembershipExists
		},
	}
	r := setupRouter(repo)

	w := do(t, r, http.MethodPost, "/list/3/authors/7")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "author is already on this list", errorBody(t, w))
}

func TestAddMembershipNonNumericAuthor(t *testing.T) {
	repo := &fakeRepository{}
	r := setupRouter(repo)

	w := do(t, r, http.MethodPost, "/list/3/authors/oops")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "authorId must be a positive integer", errorBody(t, w))
	assert.Zero(t, repo.calls)
}

func TestRemoveMembership(t *testing.T) {
	repo := &fakeRepository{
		removeFn: func(ctx context.Context, authorID, listID int64) (*model.Membership, error) {
			return &model.Membership{AuthorID: authorID, ListID: listID}, nil
		},
	}
	r := setupRouter(repo)

	w := do(t, r, http.MethodDelete, "/list/3/authors/7")

	assert.Equal(t, http.StatusOK, w.Code)

	var m model.Membership
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, int64(7), m.AuthorID)
	assert.Equal(t, int64(3), m.ListID)
}

func TestRemoveMembershipNotFound(t *testing.T) {
	repo := &fakeRepository{
		removeFn: func(ctx context.Context, authorID, listID int64) (*model.Membership, error) {
			return nil, model.ErrMembershipNotFound
		},
	}
	r := setupRouter(repo)

	w := do(t, r, http.MethodDelete, "/list/3/authors/7")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "membership not found", errorBody(t, w))
}

func TestListsOfAuthor(t *testing.T) {
	tag := "humor"
	repo := &fakeRepository{
		byAuthorFn: func(ctx context.Context, authorID int64) ([]model.ListOfAuthor, error) {
			return []model.ListOfAuthor{
				{AuthorID: authorID, ListID: 3, List: listmodel.List{ID: 3, Name: "Favorites", Tag: &tag}},
			}, nil
		},
	}
	r := setupRouter(repo)

	w := do(t, r, http.MethodGet, "/author/7/lists")

	assert.Equal(t, http.StatusOK, w.Code)

	var lists []model.ListOfAuthor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lists))
	require.Len(t, lists, 1)
	assert.Equal(t, "Favorites", lists[0].List.Name)
}

func TestListsOfAuthorNonNumericParam(t *testing.T) {
	repo := &fakeRepository{}
	r := setupRouter(repo)

	w := do(t, r, http.MethodGet, "/author/oops/lists")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "authorId must be a positive integer", errorBody(t, w))
	assert.Zero(t, repo.calls)
}

func TestAuthorsOfList(t *testing.T) {
	repo := &fakeRepository{
		byListFn: func(ctx context.Context, listID int64) ([]model.AuthorOfList, error) {
			return []model.AuthorOfList{
				{AuthorID: 7, ListID: listID, Author: authormodel.Author{ID: 7, Name: "Jane Roe"}},
			}, nil
		},
	}
	r := setupRouter(repo)

	w := do(t, r, http.MethodGet, "/list/3/authors")

	assert.Equal(t, http.StatusOK, w.Code)

	var authors []model.AuthorOfList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &authors))
	require.Len(t, authors, 1)
	assert.Equal(t, "Jane Roe", authors[0].Author.Name)
}

func TestAuthorsOfListFailure(t *testing.T) {
	repo := &fakeRepository{
		byListFn: func(ctx context.Context, listID int64) ([]model.AuthorOfList, error) {
			return nil, errors.New("connection reset")
		},
	}
	r := setupRouter(repo)

	w := do(t, r, http.MethodGet, "/list/3/authors")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Could not get authors of list", errorBody(t, w))
}
