package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Booking is the authoritative record of one seat held for one show.
// (show_id, seat_id) is unique at the store level; that constraint, not any
// application-side check, is what prevents double booking. Bookings are
// immutable once created, cancellation deletes the row.
type Booking struct {
	ID        int
	Reference uuid.UUID
	UserID    int
	ShowID    int
	SeatID    int
	CreatedAt time.Time
}

// BookingSummary is the denormalized view used for a user's booking history.
type BookingSummary struct {
	BookingID  int
	Reference  uuid.UUID
	MovieTitle string
	ShowID     int
	ShowTime   string
	SeatLabel  string
	CreatedAt  time.Time
}

type BookingRepository interface {
	// Create inserts a single booking. Concurrent attempts on the same
	// (show, seat) result in exactly one success; losers get
	// ErrSeatAlreadyReserved.
	Create(ctx context.Context, booking *Booking) error

	// CreateGroup inserts one booking per seat inside a single transaction.
	// If any insert conflicts, nothing is persisted and ErrSeatAlreadyReserved
	// is returned.
	CreateGroup(ctx context.Context, userID, showID int, seatIDs []int) ([]Booking, error)

	// Delete frees the booking's seat for its show. Returns ErrRecordNotFound
	// when no such booking exists.
	Delete(ctx context.Context, id int) error

	// BookedSeatIDs is the snapshot read backing every availability query.
	// Callers treat it as advisory only; a booking attempt may still conflict.
	BookedSeatIDs(ctx context.Context, showID int) (map[int]bool, error)

	GetAll(ctx context.Context) ([]Booking, error)
	SummariesByUser(ctx context.Context, userID int) ([]BookingSummary, error)
	TicketsSoldByMovie(ctx context.Context, movieID int) (int, error)
}
