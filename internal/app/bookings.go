package app

import (
	"errors"
	"net/http"

	"github.com/cinebook/cinema-booking-api/api"
	"github.com/cinebook/cinema-booking-api/internal/domain"
)

func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req api.CreateBookingRequest

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

	booking := domain.Booking{
		UserID: req.UserID,
		ShowID: req.ShowID,
		SeatID: req.SeatID,
	}

	err = app.bookingRepo.Create(r.Context(), &booking)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatAlreadyReserved):
			app.conflictResponse(w, r, errors.New("seat already booked for this show"))
		case errors.Is(err, domain.ErrInvalidReference):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toBookingResponse(booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := app.bookingRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp[i] = toBookingResponse(booking)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// CancelBooking frees the seat immediately; the next availability read will
// include it.
func (app *Application) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, err := app.readIDParam(r, "bookingID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.bookingRepo.Delete(r.Context(), bookingID)
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

// GroupCancel cancels each booking independently: one missing id does not
// stop the rest from being cancelled. The response partitions the input ids.
func (app *Application) GroupCancel(w http.ResponseWriter, r *http.Request) {
	var req api.GroupCancelRequest

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

	resp := api.GroupCancelResponse{
		Cancelled: make([]int, 0, len(req.BookingIDs)),
		NotFound:  make([]int, 0),
	}

	for _, id := range req.BookingIDs {
		err := app.bookingRepo.Delete(r.Context(), id)

		switch {
		case err == nil:
			resp.Cancelled = append(resp.Cancelled, id)
		case errors.Is(err, domain.ErrRecordNotFound):
			resp.NotFound = append(resp.NotFound, id)
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

func toBookingResponse(booking domain.Booking) api.BookingResponse {
	return api.BookingResponse{
		Id:        booking.ID,
		Reference: booking.Reference,
		UserId:    booking.UserID,
		ShowId:    booking.ShowID,
		SeatId:    booking.SeatID,
		CreatedAt: booking.CreatedAt,
	}
}
