package usecase

import (
	"errors"

	"filmes-api/pkg/utils"
)

var ErrMovieNotFound = errors.New("movie not found")

// ValidationError lists the fields that failed validation and why.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}
