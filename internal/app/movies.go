package app

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/cinebook/cinema-booking-api/api"
	"github.com/cinebook/cinema-booking-api/internal/domain"
)

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req api.CreateMovieRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie := domain.Movie{
		Title: req.Title,
		Price: decimal.NewFromFloat(req.Price),
	}

	err = app.movieRepo.Create(r.Context(), &movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMovieAlreadyExists):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.MovieResponse, len(movies))
	for i, movie := range movies {
		resp[i] = toMovieResponse(movie)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// DeleteMovie cascades to the movie's shows and their bookings.
func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := app.readIDParam(r, "movieID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.movieRepo.Delete(r.Context(), movieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toMovieResponse(movie domain.Movie) api.MovieResponse {
	return api.MovieResponse{
		Id:    movie.ID,
		Title: movie.Title,
		Price: movie.Price,
	}
}
