package usecase

import (
	"filmes-api/internal/data/repository"
	"filmes-api/internal/mapper"

	"go.uber.org/zap"
)

type Service struct {
	Movie MovieService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Movie: NewMovieService(repo.Movie, mapper.NewMovieMapper(), log),
	}
}
