package usecase

import (
	"context"
	"errors"
	"fmt"

	"filmes-api/internal/data/entity"
	"filmes-api/internal/data/repository"
	"filmes-api/internal/dto/request"
	"filmes-api/internal/dto/response"
	"filmes-api/internal/mapper"

	"go.uber.org/zap"
)

type MovieService interface {
	CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*entity.Movie, error)
	ListMovies(ctx context.Context, req *request.ListMoviesRequest) ([]response.ReadMovieResponse, error)
	GetMovieByID(ctx context.Context, id int64) (*response.ReadMovieResponse, error)
	UpdateMovie(ctx context.Context, id int64, req *request.UpdateMovieRequest) error
	PatchMovie(ctx context.Context, id int64, patch request.PatchDocument) error
	DeleteMovie(ctx context.Context, id int64) error
}

type movieService struct {
	repo   repository.MovieRepository
	mapper *mapper.MovieMapper
	log    *zap.Logger
}

func NewMovieService(
	repo repository.MovieRepository,
	mapper *mapper.MovieMapper,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo:   repo,
		mapper: mapper,
		log:    log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*entity.Movie, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	movie := s.mapper.ToEntity(*req)
	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	return movie, nil
}

func (s *movieService) ListMovies(ctx context.Context, req *request.ListMoviesRequest) ([]response.ReadMovieResponse, error) {
	movies, err := s.repo.FindAll(ctx, req.Skip, req.Take)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	s.log.Debug("Movies listed",
		zap.Int("count", len(movies)),
		zap.Int("skip", req.Skip),
		zap.Int("take", req.Take),
	)

	return s.mapper.ToReadResponses(movies), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id int64) (*response.ReadMovieResponse, error) {
	movie, err := s.findMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := s.mapper.ToReadResponse(movie)
	return &resp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, id int64, req *request.UpdateMovieRequest) error {
	if errs := req.Validate(); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}

	movie, err := s.findMovie(ctx, id)
	if err != nil {
		return err
	}

	return s.save(ctx, s.mapper.ApplyToEntity(*req, movie))
}

// PatchMovie applies the document to a projection of the stored movie and only
// writes it back when the result passes validation.
func (s *movieService) PatchMovie(ctx context.Context, id int64, patch request.PatchDocument) error {
	movie, err := s.findMovie(ctx, id)
	if err != nil {
		return err
	}

	doc := s.mapper.ToUpdateRequest(movie)
	if err := patch.ApplyTo(&doc); err != nil {
		var patchErr *request.PatchError
		if errors.As(err, &patchErr) {
			return &ValidationError{Fields: map[string]string{patchErr.Field(): patchErr.Message}}
		}
		return fmt.Errorf("apply patch: %w", err)
	}

	if errs := doc.Validate(); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}

	return s.save(ctx, s.mapper.ApplyToEntity(doc, movie))
}

func (s *movieService) DeleteMovie(ctx context.Context, id int64) error {
	movie, err := s.findMovie(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMovieNotFound
		}
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	return nil
}

func (s *movieService) findMovie(ctx context.Context, id int64) (*entity.Movie, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}
	return movie, nil
}

func (s *movieService) save(ctx context.Context, movie *entity.Movie) error {
	if err := s.repo.Update(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMovieNotFound
		}
		return fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	return nil
}
