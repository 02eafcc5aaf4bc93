package entity

const (
	GenreMaxLength  = 50
	DurationMinimum = 70
	DurationMaximum = 600
)

type Movie struct {
	Base
	Title    string `json:"titulo" db:"titulo"`
	Genre    string `json:"genero" db:"genero"`
	Duration int    `json:"duracao" db:"duracao"`
}
