package app

import (
	"errors"
	"net/http"

	"github.com/cinebook/cinema-booking-api/api"
	"github.com/cinebook/cinema-booking-api/internal/domain"
)

// CreateShow only checks that the movie and hall exist (via the store's
// foreign keys). Two shows may share a hall and time slot; there is no
// overlap detection.
func (app *Application) CreateShow(w http.ResponseWriter, r *http.Request) {
	var req api.CreateShowRequest

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

	show := domain.Show{
		Time:    req.Time,
		MovieID: req.MovieID,
		HallID:  req.HallID,
	}

	err = app.showRepo.Create(r.Context(), &show)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidReference):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toShowResponse(show), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := app.showRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.ShowResponse, len(shows))
	for i, show := range shows {
		resp[i] = toShowResponse(show)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// DeleteShow cascades to the show's bookings, freeing every seat.
func (app *Application) DeleteShow(w http.ResponseWriter, r *http.Request) {
	showID, err := app.readIDParam(r, "showID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.showRepo.Delete(r.Context(), showID)
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

func toShowResponse(show domain.Show) api.ShowResponse {
	return api.ShowResponse{
		Id:      show.ID,
		Time:    show.Time,
		MovieId: show.MovieID,
		HallId:  show.HallID,
	}
}
