package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type MovieResponse struct {
	Id    int             `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
}

type TheaterResponse struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type HallResponse struct {
	Id        int    `json:"id"`
	Name      string `json:"name"`
	TheaterId int    `json:"theaterId"`
	SeatCount int    `json:"seatCount,omitempty"`
}

type SeatResponse struct {
	Id     int    `json:"id"`
	Row    string `json:"row"`
	Number int    `json:"number"`
	Label  string `json:"label"`
}

type ShowResponse struct {
	Id      int    `json:"id"`
	Time    string `json:"time"`
	MovieId int    `json:"movieId"`
	HallId  int    `json:"hallId"`
}

type UserResponse struct {
	Id    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BookingResponse struct {
	Id        int       `json:"id"`
	Reference uuid.UUID `json:"reference"`
	UserId    int       `json:"userId"`
	ShowId    int       `json:"showId"`
	SeatId    int       `json:"seatId"`
	CreatedAt time.Time `json:"createdAt"`
}

type GroupBookingResponse struct {
	Message  string            `json:"message"`
	Bookings []BookingResponse `json:"bookings"`
}

type ShowSuggestion struct {
	ShowId      int    `json:"showId"`
	Time        string `json:"time"`
	Row         string `json:"row"`
	StartNumber int    `json:"startNumber"`
}

type ConsecutiveBookingFailedResponse struct {
	Message     string           `json:"message"`
	Suggestions []ShowSuggestion `json:"suggestions"`
}

type SpecificSeatsBookingResponse struct {
	Booked []BookingResponse `json:"booked"`
	Failed []int             `json:"failed"`
}

type GroupCancelResponse struct {
	Cancelled []int `json:"cancelled"`
	NotFound  []int `json:"notFound"`
}

type AvailableSeatsResponse struct {
	ShowId int            `json:"showId"`
	Seats  []SeatResponse `json:"seats"`
}

type SeatMapResponse struct {
	ShowId int                       `json:"showId"`
	Layout map[string]map[int]string `json:"layout"`
	Ascii  string                    `json:"ascii"`
}

type UserBookingSummary struct {
	BookingId  int       `json:"bookingId"`
	Reference  uuid.UUID `json:"reference"`
	MovieTitle string    `json:"movieTitle"`
	ShowId     int       `json:"showId"`
	ShowTime   string    `json:"showTime"`
	Seat       string    `json:"seat"`
	CreatedAt  time.Time `json:"createdAt"`
}

type UserBookingsResponse struct {
	UserId   int                  `json:"userId"`
	UserName string               `json:"userName"`
	Bookings []UserBookingSummary `json:"bookings"`
}

type MovieAnalyticsResponse struct {
	MovieId     int             `json:"movieId"`
	Title       string          `json:"title"`
	TicketsSold int             `json:"ticketsSold"`
	Gmv         decimal.Decimal `json:"gmv"`
}
