package adaptor_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"filmes-api/internal/adaptor"
	"filmes-api/internal/data/entity"
	"filmes-api/internal/dto/request"
	"filmes-api/internal/dto/response"
	"filmes-api/internal/usecase"
	"filmes-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockMovieService struct {
	mock.Mock
}

func (m *mockMovieService) CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*entity.Movie, error) {
	args := m.Called(ctx, req)
	movie, _ := args.Get(0).(*entity.Movie)
	return movie, args.Error(1)
}

func (m *mockMovieService) ListMovies(ctx context.Context, req *request.ListMoviesRequest) ([]response.ReadMovieResponse, error) {
	args := m.Called(ctx, req)
	movies, _ := args.Get(0).([]response.ReadMovieResponse)
	return movies, args.Error(1)
}

func (m *mockMovieService) GetMovieByID(ctx context.Context, id int64) (*response.ReadMovieResponse, error) {
	args := m.Called(ctx, id)
	movie, _ := args.Get(0).(*response.ReadMovieResponse)
	return movie, args.Error(1)
}

func (m *mockMovieService) UpdateMovie(ctx context.Context, id int64, req *request.UpdateMovieRequest) error {
	return m.Called(ctx, id, req).Error(0)
}

func (m *mockMovieService) PatchMovie(ctx context.Context, id int64, patch request.PatchDocument) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *mockMovieService) DeleteMovie(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newMovieHandler(t *testing.T) (*adaptor.MovieHandler, *mockMovieService) {
	t.Helper()
	svc := &mockMovieService{}
	t.Cleanup(func() { svc.AssertExpectations(t) })
	return adaptor.NewMovieHandler(svc, zap.NewNop()), svc
}

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withID(r *http.Request, id string) *http.Request {
	return withChiParams(r, map[string]string{"id": id})
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) utils.ValidationProblem {
	t.Helper()
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	var problem utils.ValidationProblem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&problem))
	return problem
}

// --- CreateMovie ---

func TestCreateMovie_Created(t *testing.T) {
	t.Parallel()
	h, svc := newMovieHandler(t)

	svc.On("CreateMovie", mock.Anything, &request.CreateMovieRequest{Title: "Rapunzel", Genre: "Animação", Duration: 100}).
		Return(&entity.Movie{Base: entity.Base{ID: 5}, Title: "Rapunzel", Genre: "Animação", Duration: 100}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/filme",
		strings.NewReader(`{"titulo":"Rapunzel","genero":"Animação","duracao":100}`))
	h.CreateMovie(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/filme/5", rec.Header().Get("Location"))
	assert.JSONEq(t, `{"id":5,"titulo":"Rapunzel","genero":"Animação","duracao":100}`, rec.Body.String())
}

func TestCreateMovie_ValidationProblem(t *testing.T) {
	t.Parallel()
	h, _ := newMovieHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/filme", strings.NewReader(`{"duracao":30}`))
	h.CreateMovie(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	problem := decodeProblem(t, rec)
	assert.Equal(t, http.StatusUnprocessableEntity, problem.Status)
	assert.Len(t, problem.Errors, 3)
}

func TestCreateMovie_MalformedBody(t *testing.T) {
	t.Parallel()
	h, _ := newMovieHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/filme", strings.NewReader(`{"titulo":`))
	h.CreateMovie(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateMovie_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newMovieHandler(t)

	svc.On("CreateMovie", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/filme",
		strings.NewReader(`{"titulo":"A","genero":"B","duracao":90}`))
	h.CreateMovie(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}

// --- ListMovies ---

func TestListMovies_Defaults(t *testing.T) {
	t.Parallel()
	h, svc := newMovieHandler(t)

	svc.On("ListMovies", mock.Anything, &request.ListMoviesRequest{Skip: 0, Take: 10}).
		Return([]response.ReadMovieResponse{{Title: "A", Genre: "B", Duration: 90}}, nil)

	rec := httptest.NewRecorder()
	h.ListMovies(rec, httptest.NewRequest(http.MethodGet, "/filme", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"titulo":"A","genero":"B","duracao":90}]`, rec.Body.String())
}

func TestListMovies_QueryParams(t *testing.T) {
	t.Parallel()
	h, svc := newMovieHandler(t)

	svc.On("ListMovies", mock.Anything, &request.ListMoviesRequest{Skip: 20, Take: 5}).
		Return([]response.ReadMovieResponse{}, nil)

	rec := httptest.NewRecorder()
	h.ListMovies(rec, httptest.NewRequest(http.MethodGet, "/filme?skip=20&take=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListMovies_InvalidQuery(t *testing.T) {
	t.Parallel()

	for _, query := range []string{"skip=abc", "take=1.5", "skip=-1", "take=-3"} {
		h, _ := newMovieHandler(t)
		rec := httptest.NewRecorder()
		h.ListMovies(rec, httptest.NewRequest(http.MethodGet, "/filme?"+query, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

// --- GetMovieByID ---

func TestGetMovieByID_OK(t *testing.T) {
	t.Parallel()
	h, svc := newMovieHandler(t)

	svc.On("GetMovieByID", mock.Anything, int64(3)).
		Return(&response.ReadMovieResponse{Title: "A", Genre: "B", Duration: 90}, nil)

	rec := httptest.NewRecorder()
	h.GetMovieByID(rec, withID(httptest.NewRequest(http.MethodGet, "/filme/3", nil), "3"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"titulo":"A","genero":"B","duracao":90}`, rec.Body.String())
}

func TestGetMovieByID_NotFoundHasNoBody(t *testing.T) {
	t.Parallel()
	h, svc := newMovieHandler(t)

	svc.On("GetMovieByID", mock.Anything, int64(3)).Return(nil, usecase.ErrMovieNotFound)

	rec := httptest.NewRecorder()
	h.GetMovieByID(rec, withID(httptest.NewRequest(http.MethodGet, "/filme/3", nil), "3"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestGetMovieByID_InvalidID(t *testing.T) {
	t.Parallel()
	h, _ := newMovieHandler(t)

	rec := httptest.NewRecorder()
	h.GetMovieByID(rec, withID(httptest.NewRequest(http.MethodGet, "/filme/abc", nil), "abc"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// --- UpdateMovie ---

func TestUpdateMovie_NoContent(t *testing.T) {
	t.Parallel()
	h, svc := newMovieHandler(t)

	svc.On("UpdateMovie", mock.Anything, int64(2), &request.UpdateMovieRequest{Title: "A", Genre: "B", Duration: 90}).
		Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/filme/2", strings.NewReader(`{"titulo":"A","genero":"B","duracao":90}`))
	h.UpdateMovie(rec, withID(req, "2"))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestUpdateMovie_ValidationProblem(t *testing.T) {
	t.Parallel()
	h, _ := newMovieHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/filme/2",
		strings.NewReader(`{"titulo":"A","genero":"`+strings.Repeat("x", 51)+`","duracao":90}`))
	h.UpdateMovie(rec, withID(req, "2"))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decodeProblem(t, rec).Errors, "genero")
}

func TestUpdateMovie_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newMovieHandler(t)

	svc.On("UpdateMovie", mock.Anything, int64(2), mock.Anything).Return(usecase.ErrMovieNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/filme/2", strings.NewReader(`{"titulo":"A","genero":"B","duracao":90}`))
	h.UpdateMovie(rec, withID(req, "2"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// --- PatchMovie ---

func TestPatchMovie_NoContent(t *testing.T) {
	t.Parallel()
	h, svc := newMovieHandler(t)

	svc.On("PatchMovie", mock.Anything, int64(4), mock.MatchedBy(func(p request.PatchDocument) bool {
		return len(p) == 1 && p[0].Op == "replace" && p[0].Path == "/titulo" && string(p[0].Value) == `"X"`
	})).Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/filme/4",
		strings.NewReader(`[{"op":"replace","path":"/titulo","value":"X"}]`))
	h.PatchMovie(rec, withID(req, "4"))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPatchMovie_ValidationProblem(t *testing.T) {
	t.Parallel()
	h, svc := newMovieHandler(t)

	svc.On("PatchMovie", mock.Anything, int64(4), mock.Anything).
		Return(&usecase.ValidationError{Fields: map[string]string{"duracao": "A duração deve ter entre 70 e 600 minutos"}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/filme/4",
		strings.NewReader(`[{"op":"replace","path":"/duracao","value":1}]`))
	h.PatchMovie(rec, withID(req, "4"))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, map[string]string{"duracao": "A duração deve ter entre 70 e 600 minutos"}, decodeProblem(t, rec).Errors)
}

func TestPatchMovie_BodyNotAnArray(t *testing.T) {
	t.Parallel()
	h, _ := newMovieHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/filme/4", strings.NewReader(`{"titulo":"X"}`))
	h.PatchMovie(rec, withID(req, "4"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// --- DeleteMovie ---

func TestDeleteMovie_NoContent(t *testing.T) {
	t.Parallel()
	h, svc := newMovieHandler(t)

	svc.On("DeleteMovie", mock.Anything, int64(6)).Return(nil)

	rec := httptest.NewRecorder()
	h.DeleteMovie(rec, withID(httptest.NewRequest(http.MethodDelete, "/filme/6", nil), "6"))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteMovie_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newMovieHandler(t)

	svc.On("DeleteMovie", mock.Anything, int64(6)).Return(usecase.ErrMovieNotFound)

	rec := httptest.NewRecorder()
	h.DeleteMovie(rec, withID(httptest.NewRequest(http.MethodDelete, "/filme/6", nil), "6"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
