package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("cinema-booking-api", otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)

	r.Get("/healthcheck", app.GetHealth)

	r.Route("/movies", func(r chi.Router) {
		r.Post("/", app.CreateMovie)
		r.Get("/", app.ListMovies)
		r.Delete("/{movieID}", app.DeleteMovie)
		r.Get("/{movieID}/analytics", app.GetMovieAnalytics)
	})

	r.Route("/theaters", func(r chi.Router) {
		r.Post("/", app.CreateTheater)
		r.Get("/", app.ListTheaters)
		r.Delete("/{theaterID}", app.DeleteTheater)
	})

	r.Route("/halls", func(r chi.Router) {
		r.Post("/", app.CreateHall)
		r.Get("/", app.ListHalls)
		r.Get("/{hallID}/seats", app.ListHallSeats)
	})

	r.Route("/shows", func(r chi.Router) {
		r.Post("/", app.CreateShow)
		r.Get("/", app.ListShows)
		r.Delete("/{showID}", app.DeleteShow)
		r.Get("/{showID}/seats/available", app.GetAvailableSeats)
		r.Get("/{showID}/seat-map", app.GetSeatMap)
		r.Post("/{showID}/bookings/consecutive", app.BookConsecutive)
		r.Post("/{showID}/bookings/seats", app.BookSpecificSeats)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", app.CreateUser)
		r.Get("/", app.ListUsers)
		r.Delete("/{userID}", app.DeleteUser)
		r.Get("/{userID}/bookings", app.GetUserBookings)
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", app.CreateBooking)
		r.Get("/", app.ListBookings)
		r.Delete("/", app.GroupCancel)
		r.Delete("/{bookingID}", app.CancelBooking)
	})

	return r
}
