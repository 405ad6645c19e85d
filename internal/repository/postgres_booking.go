package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinebook/cinema-booking-api/internal/domain"
)

// PostgresBookingRepository is the seat ledger. The unique index on
// (show_id, seat_id) is the only thing standing between two concurrent
// bookers and a double-sold seat; every write path here leans on it and maps
// the violation to domain.ErrSeatAlreadyReserved.
type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (user_id, show_id, seat_id)
		VALUES ($1, $2, $3)
		RETURNING id, reference, created_at
	`

	err := p.db.QueryRow(ctx, query, booking.UserID, booking.ShowID, booking.SeatID).
		Scan(&booking.ID, &booking.Reference, &booking.CreatedAt)

	if err != nil {
		return mapBookingError(err)
	}

	return nil
}

// CreateGroup books every seat or none: all inserts share one transaction and
// the first conflict rolls the whole attempt back.
func (p *PostgresBookingRepository) CreateGroup(
	ctx context.Context,
	userID, showID int,
	seatIDs []int) ([]domain.Booking, error) {

	bookings := make([]domain.Booking, 0, len(seatIDs))

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO bookings (user_id, show_id, seat_id)
			VALUES ($1, $2, $3)
			RETURNING id, reference, created_at
		`

		for _, seatID := range seatIDs {
			booking := domain.Booking{
				UserID: userID,
				ShowID: showID,
				SeatID: seatID,
			}

			err := tx.QueryRow(ctx, query, userID, showID, seatID).
				Scan(&booking.ID, &booking.Reference, &booking.CreatedAt)

			if err != nil {
				return mapBookingError(err)
			}

			bookings = append(bookings, booking)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (p *PostgresBookingRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresBookingRepository) BookedSeatIDs(ctx context.Context, showID int) (map[int]bool, error) {
	query := `
		SELECT seat_id
		FROM bookings
		WHERE show_id = $1
	`

	rows, err := p.db.Query(ctx, query, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	booked := make(map[int]bool)

	for rows.Next() {
		var seatID int

		err := rows.Scan(&seatID)
		if err != nil {
			return nil, err
		}

		booked[seatID] = true
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return booked, nil
}

func (p *PostgresBookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	query := `
		SELECT id, reference, user_id, show_id, seat_id, created_at
		FROM bookings
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking

		err := rows.Scan(
			&booking.ID,
			&booking.Reference,
			&booking.UserID,
			&booking.ShowID,
			&booking.SeatID,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (p *PostgresBookingRepository) SummariesByUser(ctx context.Context, userID int) ([]domain.BookingSummary, error) {
	query := `
		SELECT
			b.id,
			b.reference,
			m.title,
			sh.id,
			sh.show_time,
			se.seat_row,
			se.seat_number,
			b.created_at
		FROM bookings b
		JOIN shows sh ON b.show_id = sh.id
		JOIN movies m ON sh.movie_id = m.id
		JOIN seats se ON b.seat_id = se.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`

	rows, err := p.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]domain.BookingSummary, 0)

	for rows.Next() {
		var summary domain.BookingSummary
		var seat domain.Seat

		err := rows.Scan(
			&summary.BookingID,
			&summary.Reference,
			&summary.MovieTitle,
			&summary.ShowID,
			&summary.ShowTime,
			&seat.Row,
			&seat.Number,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		summary.SeatLabel = seat.Label()
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

func (p *PostgresBookingRepository) TicketsSoldByMovie(ctx context.Context, movieID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings b
		JOIN shows sh ON b.show_id = sh.id
		WHERE sh.movie_id = $1
	`

	var count int

	err := p.db.QueryRow(ctx, query, movieID).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func mapBookingError(err error) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrSeatAlreadyReserved
	case isForeignKeyViolation(err):
		return domain.ErrInvalidReference
	default:
		return err
	}
}
