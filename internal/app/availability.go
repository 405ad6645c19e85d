package app

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/cinebook/cinema-booking-api/api"
	"github.com/cinebook/cinema-booking-api/internal/domain"
	"github.com/cinebook/cinema-booking-api/internal/seating"
)

func (app *Application) GetAvailableSeats(w http.ResponseWriter, r *http.Request) {
	showID, err := app.readIDParam(r, "showID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	seats, booked, ok := app.showSeatSnapshot(w, r, showID)
	if !ok {
		return
	}

	resp := api.AvailableSeatsResponse{
		ShowId: showID,
		Seats:  toSeatResponses(seating.AvailableSeats(seats, booked)),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	showID, err := app.readIDParam(r, "showID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	seats, booked, ok := app.showSeatSnapshot(w, r, showID)
	if !ok {
		return
	}

	layout := seating.BuildLayout(seats, booked)

	resp := api.SeatMapResponse{
		ShowId: showID,
		Layout: make(map[string]map[int]string, len(layout)),
		Ascii:  layout.ASCII(),
	}

	for row, states := range layout {
		resp.Layout[row] = make(map[int]string, len(states))
		for number, state := range states {
			resp.Layout[row][number] = string(state)
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showSeatSnapshot loads the show's hall seats and the booked-seat set. On
// failure it writes the error response and reports false.
func (app *Application) showSeatSnapshot(
	w http.ResponseWriter,
	r *http.Request,
	showID int) ([]domain.Seat, map[int]bool, bool) {

	show, err := app.showRepo.GetByID(r.Context(), showID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return nil, nil, false
	}

	seats, err := app.seatRepo.GetByHall(r.Context(), show.HallID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return nil, nil, false
	}

	booked, err := app.bookingRepo.BookedSeatIDs(r.Context(), showID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return nil, nil, false
	}

	return seats, booked, true
}

func (app *Application) GetMovieAnalytics(w http.ResponseWriter, r *http.Request) {
	movieID, err := app.readIDParam(r, "movieID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetByID(r.Context(), movieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	ticketsSold, err := app.bookingRepo.TicketsSoldByMovie(r.Context(), movieID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieAnalyticsResponse{
		MovieId:     movie.ID,
		Title:       movie.Title,
		TicketsSold: ticketsSold,
		Gmv:         movie.Price.Mul(decimal.NewFromInt(int64(ticketsSold))),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
