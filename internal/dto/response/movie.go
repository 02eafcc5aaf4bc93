package response

// ReadMovieResponse is the public projection of a movie. It carries no id.
type ReadMovieResponse struct {
	Title    string `json:"titulo"`
	Genre    string `json:"genero"`
	Duration int    `json:"duracao"`
}
