package repository

import (
	"filmes-api/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie MovieRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie: NewMovieRepository(db, log),
	}
}
