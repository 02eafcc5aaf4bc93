package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"filmes-api/internal/dto/request"
	"filmes-api/internal/usecase"
	"filmes-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies at 1 MB.
const maxBodyBytes = 1 << 20

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// CreateMovie handles POST /filme
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMovieRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		utils.ResponseValidationProblem(w, errs)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create movie")
		return
	}

	utils.ResponseCreated(w, fmt.Sprintf("/filme/%d", movie.ID), movie)
}

// ListMovies handles GET /filme?skip=&take=
func (h *MovieHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	skip, err := utils.ParseInt(query.Get("skip"), request.DefaultSkip)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid query parameters", map[string]string{"skip": err.Error()})
		return
	}
	take, err := utils.ParseInt(query.Get("take"), request.DefaultTake)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid query parameters", map[string]string{"take": err.Error()})
		return
	}

	req := &request.ListMoviesRequest{Skip: skip, Take: take}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		utils.ResponseBadRequest(w, "Invalid query parameters", errs)
		return
	}

	movies, err := h.service.ListMovies(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "list movies")
		return
	}

	utils.ResponseOK(w, movies)
}

// GetMovieByID handles GET /filme/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get movie by ID")
		return
	}

	utils.ResponseOK(w, movie)
}

// UpdateMovie handles PUT /filme/{id}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req request.UpdateMovieRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		utils.ResponseValidationProblem(w, errs)
		return
	}

	if err := h.service.UpdateMovie(r.Context(), id, &req); err != nil {
		h.handleServiceError(w, err, "update movie")
		return
	}

	utils.ResponseNoContent(w)
}

// PatchMovie handles PATCH /filme/{id} with a JSON Patch document
func (h *MovieHandler) PatchMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var patch request.PatchDocument
	if !h.decodeBody(w, r, &patch) {
		return
	}

	if err := h.service.PatchMovie(r.Context(), id, patch); err != nil {
		h.handleServiceError(w, err, "patch movie")
		return
	}

	utils.ResponseNoContent(w)
}

// DeleteMovie handles DELETE /filme/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteMovie(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "delete movie")
		return
	}

	utils.ResponseNoContent(w)
}

// handleServiceError maps service errors to responses
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.Is(err, usecase.ErrMovieNotFound):
		h.log.Debug(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w)

	case errors.As(err, &validationErr):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseValidationProblem(w, validationErr.Fields)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

func (h *MovieHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie ID", map[string]string{"id": err.Error()})
		return 0, false
	}
	return id, true
}

func (h *MovieHandler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.log.Debug("Invalid request body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}
