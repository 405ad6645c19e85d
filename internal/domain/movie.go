package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type Movie struct {
	ID    int
	Title string
	Price decimal.Decimal
}

// MovieAnalytics aggregates ticket sales across every show of a movie.
// GMV is TicketsSold multiplied by the movie's per-ticket price.
type MovieAnalytics struct {
	MovieID     int
	Title       string
	TicketsSold int
	GMV         decimal.Decimal
}

type MovieRepository interface {
	Create(ctx context.Context, movie *Movie) error
	GetAll(ctx context.Context) ([]Movie, error)
	GetByID(ctx context.Context, id int) (*Movie, error)
	Delete(ctx context.Context, id int) error
}
