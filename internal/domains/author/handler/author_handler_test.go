package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quoteboard-backend/internal/domains/author/model"
	"quoteboard-backend/internal/domains/author/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeRepository backs a real service so handler tests exercise the full
// validation path without a database.
type fakeRepository struct {
	createFn  func(ctx context.Context, a *model.Author) (*model.Author, error)
	getAllFn  func(ctx context.Context) ([]model.AuthorSummary, error)
	getByIDFn func(ctx context.Context, id int64) (*model.AuthorDetail, error)
	updateFn  func(ctx context.Context, id int64, a *model.Author) (*model.Author, error)
	deleteFn  func(ctx context.Context, id int64) (*model.Author, error)
}

func (f *fakeRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	return f.createFn(ctx, a)
}

func (f *fakeRepository) GetAll(ctx context.Context) ([]model.AuthorSummary, error) {
	return f.getAllFn(ctx)
}

func (f *fakeRepository) GetByID(ctx context.Context, id int64) (*model.AuthorDetail, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeRepository) Update(ctx context.Context, id int64, a *model.Author) (*model.Author, error) {
	return f.updateFn(ctx, id, a)
}

func (f *fakeRepository) Delete(ctx context.Context, id int64) (*model.Author, error) {
	return f.deleteFn(ctx, id)
}

func setupRouter(repo *fakeRepository) *gin.Engine {
	h := NewAuthorHandler(service.NewAuthorService(repo))

	r := gin.New()
	r.POST("/author", h.Create)
	r.GET("/author", h.GetAll)
	r.GET("/author/:id", h.GetByID)
	r.PUT("/author/:id", h.Update)
	r.DELETE("/author/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

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

func TestCreateAuthor(t *testing.T) {
	repo := &fakeRepository{
		createFn: func(ctx context.Context, a *model.Author) (*model.Author, error) {
			a.ID = 1
			return a, nil
		},
	}
	r := setupRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/author", gin.H{
		"name":       "Jane Roe",
		"email":      "jane@example.com",
		"authorName": "jroe",
		"password":   "supersecret",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var created model.Author
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "jroe", created.AuthorName)
	assert.Equal(t, "supersecret", created.Password)
}

func TestCreateAuthorValidationFailure(t *testing.T) {
	r := setupRouter(&fakeRepository{})

	w := doJSON(t, r, http.MethodPost, "/author", gin.H{
		"name":       "Jane Roe",
		"email":      "jane@example.com",
		"authorName": "jroe",
		"password":   "short",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "password must be at least 8 characters long", errorBody(t, w))
}

func TestCreateAuthorRepositoryFailure(t *testing.T) {
	repo := &fakeRepository{
		createFn: func(ctx context.Context, a *model.Author) (*model.Author, error) {
			return nil, errors.New("unique constraint violated")
		},
	}
	r := setupRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/author", gin.H{
		"name":       "Jane Roe",
		"email":      "jane@example.com",
		"authorName": "jroe",
		"password":   "supersecret",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Could not create author", errorBody(t, w))
}

func TestGetAllAuthorsOmitsPasswords(t *testing.T) {
	repo := &fakeRepository{
		getAllFn: func(ctx context.Context) ([]model.AuthorSummary, error) {
			return []model.AuthorSummary{{ID: 1, Name: "Jane Roe", Email: "jane@example.com", AuthorName: "jroe"}}, nil
		},
	}
	r := setupRouter(repo)

	w := doJSON(t, r, http.MethodGet, "/author", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.Contains(t, w.Body.String(), `"authorName":"jroe"`)
}

func TestGetAuthorByIDNonNumericParam(t *testing.T) {
	r := setupRouter(&fakeRepository{})

	w := doJSON(t, r, http.MethodGet, "/author/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "id must be a positive integer", errorBody(t, w))
}

func TestGetAuthorByIDNotFound(t *testing.T) {
	repo := &fakeRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.AuthorDetail, error) {
			return nil, model.ErrAuthorNotFound
		},
	}
	r := setupRouter(repo)

	w := doJSON(t, r, http.MethodGet, "/author/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "author not found", errorBody(t, w))
}

func TestGetAuthorByIDSerializesEmptyRelations(t *testing.T) {
	repo := &fakeRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.AuthorDetail, error) {
			return &model.AuthorDetail{
				Name:       "Jane Roe",
				AuthorName: "jroe",
				Email:      "jane@example.com",
				Entries:    []model.EntryRef{},
				Statements: []model.EntryRef{},
				Lists:      []model.MembershipRef{},
			}, nil
		},
	}
	r := setupRouter(repo)

	w := doJSON(t, r, http.MethodGet, "/author/1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"entries":[]`)
	assert.Contains(t, w.Body.String(), `"statements":[]`)
	assert.Contains(t, w.Body.String(), `"lists":[]`)
}

func TestUpdateAuthorNotFound(t *testing.T) {
	repo := &fakeRepository{
		updateFn: func(ctx context.Context, id int64, a *model.Author) (*model.Author, error) {
			return nil, model.ErrAuthorNotFound
		},
	}
	r := setupRouter(repo)

	w := doJSON(t, r, http.MethodPut, "/author/42", gin.H{
		"name":       "Jane Roe",
		"email":      "jane@example.com",
		"authorName": "jroe",
		"password":   "supersecret",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "author not found", errorBody(t, w))
}

func TestDeleteAuthorReturnsDeletedRow(t *testing.T) {
	repo := &fakeRepository{
		deleteFn: func(ctx context.Context, id int64) (*model.Author, error) {
			return &model.Author{ID: id, Name: "Jane Roe", Email: "jane@example.com", AuthorName: "jroe"}, nil
		},
	}
	r := setupRouter(repo)

	w := doJSON(t, r, http.MethodDelete, "/author/9", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var deleted model.Author
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deleted))
	assert.Equal(t, int64(9), deleted.ID)
}

func TestDeleteAuthorRepositoryFailure(t *testing.T) {
	repo := &fakeRepository{
		deleteFn: func(ctx context.Context, id int64) (*model.Author, error) {
			return nil, errors.New("deadlock detected")
		},
	}
	r := setupRouter(repo)

	w := doJSON(t, r, http.MethodDelete, "/author/9", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Could not delete author", errorBody(t, w))
}
