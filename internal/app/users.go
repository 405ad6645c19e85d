package app

import (
	"errors"
	"net/http"

	"github.com/cinebook/cinema-booking-api/api"
	"github.com/cinebook/cinema-booking-api/internal/domain"
)

func (app *Application) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req api.CreateUserRequest

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

	user := domain.User{
		Name:  req.Name,
		Email: req.Email,
	}

	err = app.userRepo.Create(r.Context(), &user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.UserResponse{Id: user.ID, Name: user.Name, Email: user.Email}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := app.userRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.UserResponse, len(users))
	for i, user := range users {
		resp[i] = api.UserResponse{Id: user.ID, Name: user.Name, Email: user.Email}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// DeleteUser cascades to the user's bookings, freeing their seats.
func (app *Application) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := app.readIDParam(r, "userID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.userRepo.Delete(r.Context(), userID)
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

func (app *Application) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID, err := app.readIDParam(r, "userID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user, err := app.userRepo.GetByID(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	summaries, err := app.bookingRepo.SummariesByUser(r.Context(), userID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	bookings := make([]api.UserBookingSummary, len(summaries))
	for i, summary := range summaries {
		bookings[i] = api.UserBookingSummary{
			BookingId:  summary.BookingID,
			Reference:  summary.Reference,
			MovieTitle: summary.MovieTitle,
			ShowId:     summary.ShowID,
			ShowTime:   summary.ShowTime,
			Seat:       summary.SeatLabel,
			CreatedAt:  summary.CreatedAt,
		}
	}

	resp := api.UserBookingsResponse{
		UserId:   user.ID,
		UserName: user.Name,
		Bookings: bookings,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
