// Package mapper copies fields between the movie entity and its transfer objects.
package mapper

import (
	"filmes-api/internal/data/entity"
	"filmes-api/internal/dto/request"
	"filmes-api/internal/dto/response"
)

type MovieMapper struct{}

func NewMovieMapper() *MovieMapper {
	return &MovieMapper{}
}

// ToEntity builds an unsaved movie; the store assigns its id.
func (MovieMapper) ToEntity(req request.CreateMovieRequest) *entity.Movie {
	return &entity.Movie{
		Title:    req.Title,
		Genre:    req.Genre,
		Duration: req.Duration,
	}
}

// ApplyToEntity overwrites the editable fields of movie in place, leaving the id alone.
func (MovieMapper) ApplyToEntity(req request.UpdateMovieRequest, movie *entity.Movie) *entity.Movie {
	movie.Title = req.Title
	movie.Genre = req.Genre
	movie.Duration = req.Duration
	return movie
}

func (MovieMapper) ToReadResponse(movie *entity.Movie) response.ReadMovieResponse {
	return response.ReadMovieResponse{
		Title:    movie.Title,
		Genre:    movie.Genre,
		Duration: movie.Duration,
	}
}

func (m MovieMapper) ToReadResponses(movies []*entity.Movie) []response.ReadMovieResponse {
	out := make([]response.ReadMovieResponse, len(movies))
	for i, movie := range movies {
		out[i] = m.ToReadResponse(movie)
	}
	return out
}

// ToUpdateRequest projects a stored movie into the document a patch is applied to.
func (MovieMapper) ToUpdateRequest(movie *entity.Movie) request.UpdateMovieRequest {
	return request.UpdateMovieRequest{
		Title:    movie.Title,
		Genre:    movie.Genre,
		Duration: movie.Duration,
	}
}
