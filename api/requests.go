// Package api defines the request and response shapes of the HTTP surface.
package api

type CreateMovieRequest struct {
	Title string  `json:"title" validate:"required,max=200"`
	Price float64 `json:"price" validate:"gte=0"`
}

type CreateTheaterRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type CreateHallRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	TheaterID int    `json:"theaterId" validate:"gt=0"`
	// Rows and SeatsPerRow default to the 5x6 grid when omitted. Row labels
	// are single letters, which caps rows at 26.
	Rows        *int `json:"rows,omitempty" validate:"omitempty,gte=1,lte=26"`
	SeatsPerRow *int `json:"seatsPerRow,omitempty" validate:"omitempty,gte=1,lte=100"`
}

type CreateShowRequest struct {
	Time    string `json:"time" validate:"required,max=50"`
	MovieID int    `json:"movieId" validate:"gt=0"`
	HallID  int    `json:"hallId" validate:"gt=0"`
}

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"required,email"`
}

type CreateBookingRequest struct {
	UserID int `json:"userId" validate:"gt=0"`
	ShowID int `json:"showId" validate:"gt=0"`
	SeatID int `json:"seatId" validate:"gt=0"`
}

type ConsecutiveBookingRequest struct {
	UserID   int `json:"userId" validate:"gt=0"`
	NumSeats int `json:"numSeats" validate:"gte=1,lte=100"`
}

type SpecificSeatsBookingRequest struct {
	UserID  int   `json:"userId" validate:"gt=0"`
	SeatIDs []int `json:"seatIds" validate:"required,min=1,dive,gt=0"`
}

type GroupCancelRequest struct {
	BookingIDs []int `json:"bookingIds" validate:"required,min=1,dive,gt=0"`
}
