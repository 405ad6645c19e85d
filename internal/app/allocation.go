package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cinebook/cinema-booking-api/api"
	"github.com/cinebook/cinema-booking-api/internal/domain"
	"github.com/cinebook/cinema-booking-api/internal/seating"
)

// BookConsecutive finds the first contiguous run of the requested size and
// books it in one all-or-nothing transaction. The availability read is
// advisory: when a concurrent booker wins one of the chosen seats, the whole
// attempt fails and the caller gets alternate-show suggestions instead of a
// retry on the next window.
func (app *Application) BookConsecutive(w http.ResponseWriter, r *http.Request) {
	showID, err := app.readIDParam(r, "showID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req api.ConsecutiveBookingRequest

	err = app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	show, err := app.showRepo.GetByID(r.Context(), showID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	seats, err := app.seatRepo.GetByHall(r.Context(), show.HallID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	booked, err := app.bookingRepo.BookedSeatIDs(r.Context(), showID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	window := seating.FindConsecutive(seats, booked, req.NumSeats)
	if window == nil {
		app.consecutiveBookingFailed(w, r, show.MovieID, req.NumSeats)
		return
	}

	seatIDs := make([]int, len(window))
	for i, seat := range window {
		seatIDs[i] = seat.ID
	}

	bookings, err := app.bookingRepo.CreateGroup(r.Context(), req.UserID, showID, seatIDs)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatAlreadyReserved):
			// Lost the race for at least one seat in the window; nothing was
			// booked. Fail fast rather than re-scanning.
			app.consecutiveBookingFailed(w, r, show.MovieID, req.NumSeats)
		case errors.Is(err, domain.ErrInvalidReference):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.GroupBookingResponse{
		Message:  fmt.Sprintf("Booked %d seats", len(bookings)),
		Bookings: make([]api.BookingResponse, len(bookings)),
	}
	for i, booking := range bookings {
		resp.Bookings[i] = toBookingResponse(booking)
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) consecutiveBookingFailed(w http.ResponseWriter, r *http.Request, movieID, numSeats int) {
	suggestions, err := app.suggestAlternateShows(r.Context(), movieID, numSeats)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ConsecutiveBookingFailedResponse{
		Message:     "Could not find consecutive seats",
		Suggestions: suggestions,
	}

	err = app.writeJSON(w, http.StatusConflict, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// suggestAlternateShows scans every show of the movie and reports, per show
// with any qualifying window, where the first one starts. Nothing is booked.
func (app *Application) suggestAlternateShows(ctx context.Context, movieID, numSeats int) ([]api.ShowSuggestion, error) {
	shows, err := app.showRepo.GetByMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	suggestions := make([]api.ShowSuggestion, 0)
	hallSeats := make(map[int][]domain.Seat)

	for _, show := range shows {
		seats, ok := hallSeats[show.HallID]
		if !ok {
			seats, err = app.seatRepo.GetByHall(ctx, show.HallID)
			if err != nil {
				return nil, err
			}
			hallSeats[show.HallID] = seats
		}

		booked, err := app.bookingRepo.BookedSeatIDs(ctx, show.ID)
		if err != nil {
			return nil, err
		}

		suggestion, ok := seating.SuggestShow(show, seats, booked, numSeats)
		if !ok {
			continue
		}

		suggestions = append(suggestions, api.ShowSuggestion{
			ShowId:      suggestion.ShowID,
			Time:        suggestion.Time,
			Row:         suggestion.Row,
			StartNumber: suggestion.StartNumber,
		})
	}

	return suggestions, nil
}

// BookSpecificSeats attempts each requested seat as its own independent
// write, in input order. A taken seat lands in failed without rolling back
// the seats already booked in the same call.
func (app *Application) BookSpecificSeats(w http.ResponseWriter, r *http.Request) {
	showID, err := app.readIDParam(r, "showID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req api.SpecificSeatsBookingRequest

	err = app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	resp := api.SpecificSeatsBookingResponse{
		Booked: make([]api.BookingResponse, 0, len(req.SeatIDs)),
		Failed: make([]int, 0),
	}

	for _, seatID := range req.SeatIDs {
		booking := domain.Booking{
			UserID: req.UserID,
			ShowID: showID,
			SeatID: seatID,
		}

		err := app.bookingRepo.Create(r.Context(), &booking)

		switch {
		case err == nil:
			resp.Booked = append(resp.Booked, toBookingResponse(booking))
		case errors.Is(err, domain.ErrSeatAlreadyReserved):
			resp.Failed = append(resp.Failed, seatID)
		case errors.Is(err, domain.ErrInvalidReference):
			app.conflictResponse(w, r, err)
			return
		default:
			app.serverErrorResponse(w, r, err)
			return
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
