package request

import (
	"fmt"
	"strings"

	"filmes-api/internal/data/entity"
	"filmes-api/pkg/utils"
)

type CreateMovieRequest struct {
	Title    string `json:"titulo"`
	Genre    string `json:"genero"`
	Duration int    `json:"duracao"`
}

// UpdateMovieRequest is the body of a full update and the document a patch is applied to.
type UpdateMovieRequest struct {
	Title    string `json:"titulo"`
	Genre    string `json:"genero"`
	Duration int    `json:"duracao"`
}

func (r CreateMovieRequest) Validate() map[string]string {
	return validateMovie(r.Title, r.Genre, r.Duration)
}

func (r UpdateMovieRequest) Validate() map[string]string {
	return validateMovie(r.Title, r.Genre, r.Duration)
}

type movieFields struct {
	title    string
	genre    string
	duration int
}

// fieldRule checks one field against a validator tag. Rules for the same
// field run in order and stop at the first failure.
type fieldRule struct {
	field   string
	tag     string
	message string
	value   func(movieFields) any
}

var movieRules = []fieldRule{
	{
		field:   "titulo",
		tag:     "required",
		message: "O titulo é obrigatorio",
		value:   func(f movieFields) any { return strings.TrimSpace(f.title) },
	},
	{
		field:   "genero",
		tag:     "required",
		message: "O Genero é obrigatorio",
		value:   func(f movieFields) any { return strings.TrimSpace(f.genre) },
	},
	{
		field:   "genero",
		tag:     fmt.Sprintf("max=%d", entity.GenreMaxLength),
		message: fmt.Sprintf("O tamanho tem que ter no máximo %d caracteres", entity.GenreMaxLength),
		value:   func(f movieFields) any { return f.genre },
	},
	{
		field:   "duracao",
		tag:     fmt.Sprintf("min=%d,max=%d", entity.DurationMinimum, entity.DurationMaximum),
		message: fmt.Sprintf("A duração deve ter entre %d e %d minutos", entity.DurationMinimum, entity.DurationMaximum),
		value:   func(f movieFields) any { return f.duration },
	},
}

func validateMovie(title, genre string, duration int) map[string]string {
	fields := movieFields{title: title, genre: genre, duration: duration}

	var errs map[string]string
	for _, rule := range movieRules {
		if _, failed := errs[rule.field]; failed {
			continue
		}
		if utils.ValidateVar(rule.value(fields), rule.tag) {
			continue
		}
		if errs == nil {
			errs = make(map[string]string)
		}
		errs[rule.field] = rule.message
	}

	return errs
}
