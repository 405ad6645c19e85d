package app

import (
	"errors"
	"net/http"

	"github.com/cinebook/cinema-booking-api/api"
	"github.com/cinebook/cinema-booking-api/internal/domain"
)

const (
	DefaultHallRows        = 5
	DefaultHallSeatsPerRow = 6
)

func (app *Application) CreateTheater(w http.ResponseWriter, r *http.Request) {
	var req api.CreateTheaterRequest

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

	theater := domain.Theater{Name: req.Name}

	err = app.theaterRepo.Create(r.Context(), &theater)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTheaterAlreadyExists):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.TheaterResponse{Id: theater.ID, Name: theater.Name}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListTheaters(w http.ResponseWriter, r *http.Request) {
	theaters, err := app.theaterRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.TheaterResponse, len(theaters))
	for i, theater := range theaters {
		resp[i] = api.TheaterResponse{Id: theater.ID, Name: theater.Name}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// DeleteTheater cascades to the theater's halls, seats, shows and bookings.
func (app *Application) DeleteTheater(w http.ResponseWriter, r *http.Request) {
	theaterID, err := app.readIDParam(r, "theaterID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.theaterRepo.Delete(r.Context(), theaterID)
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

func (app *Application) CreateHall(w http.ResponseWriter, r *http.Request) {
	var req api.CreateHallRequest

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

	rows := DefaultHallRows
	if req.Rows != nil {
		rows = *req.Rows
	}

	seatsPerRow := DefaultHallSeatsPerRow
	if req.SeatsPerRow != nil {
		seatsPerRow = *req.SeatsPerRow
	}

	hall := domain.Hall{
		Name:      req.Name,
		TheaterID: req.TheaterID,
	}

	err = app.hallRepo.Create(r.Context(), &hall, rows, seatsPerRow)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidReference):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.HallResponse{
		Id:        hall.ID,
		Name:      hall.Name,
		TheaterId: hall.TheaterID,
		SeatCount: rows * seatsPerRow,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := app.hallRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.HallResponse, len(halls))
	for i, hall := range halls {
		resp[i] = api.HallResponse{Id: hall.ID, Name: hall.Name, TheaterId: hall.TheaterID}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListHallSeats(w http.ResponseWriter, r *http.Request) {
	hallID, err := app.readIDParam(r, "hallID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	seats, err := app.seatRepo.GetByHall(r.Context(), hallID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if len(seats) == 0 {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toSeatResponses(seats), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSeatResponses(seats []domain.Seat) []api.SeatResponse {
	resp := make([]api.SeatResponse, len(seats))

	for i, seat := range seats {
		resp[i] = api.SeatResponse{
			Id:     seat.ID,
			Row:    seat.Row,
			Number: seat.Number,
			Label:  seat.Label(),
		}
	}

	return resp
}
