package domain

import (
	"context"
	"fmt"
)

type Theater struct {
	ID   int
	Name string
}

type Hall struct {
	ID        int
	TheaterID int
	Name      string
}

// Seat is immutable once created; the full grid of a hall is seeded when the
// hall itself is created. (hall_id, row, number) is unique at the store level.
type Seat struct {
	ID     int
	HallID int
	Row    string
	Number int
}

// Label renders the human-readable seat name, e.g. "A1".
func (s Seat) Label() string {
	return fmt.Sprintf("%s%d", s.Row, s.Number)
}

type TheaterRepository interface {
	Create(ctx context.Context, theater *Theater) error
	GetAll(ctx context.Context) ([]Theater, error)
	Delete(ctx context.Context, id int) error
}

type HallRepository interface {
	// Create inserts the hall and seeds its rows*seatsPerRow seat grid in a
	// single transaction. Rows are labeled 'A' onwards, seats numbered from 1.
	Create(ctx context.Context, hall *Hall, rows, seatsPerRow int) error
	GetAll(ctx context.Context) ([]Hall, error)
	GetByID(ctx context.Context, id int) (*Hall, error)
}

type SeatRepository interface {
	// GetByHall returns the hall's seats ordered by (row, number).
	GetByHall(ctx context.Context, hallID int) ([]Seat, error)
}
