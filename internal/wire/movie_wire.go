package wire

import (
	"filmes-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/filme", func(r chi.Router) {
		r.Post("/", movieHandler.CreateMovie)       // POST /filme
		r.Get("/", movieHandler.ListMovies)         // GET /filme?skip=&take=
		r.Get("/{id}", movieHandler.GetMovieByID)   // GET /filme/{id}
		r.Put("/{id}", movieHandler.UpdateMovie)    // PUT /filme/{id}
		r.Patch("/{id}", movieHandler.PatchMovie)   // PATCH /filme/{id}
		r.Delete("/{id}", movieHandler.DeleteMovie) // DELETE /filme/{id}
	})
}
