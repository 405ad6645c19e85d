package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinebook/cinema-booking-api/internal/domain"
)

type PostgresHallRepository struct {
	db *pgxpool.Pool
}

func NewPostgresHallRepository(db *pgxpool.Pool) *PostgresHallRepository {
	return &PostgresHallRepository{
		db: db,
	}
}

// Create inserts the hall row and bulk-inserts its seat grid in the same
// transaction, so a failed seat insert leaves no partially seeded hall behind.
func (p *PostgresHallRepository) Create(ctx context.Context, hall *domain.Hall, rows, seatsPerRow int) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO halls (name, theater_id)
			VALUES ($1, $2)
			RETURNING id
		`

		err := tx.QueryRow(ctx, query, hall.Name, hall.TheaterID).Scan(&hall.ID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrInvalidReference
			}

			return err
		}

		seatRows := make([][]any, 0, rows*seatsPerRow)
		for r := range rows {
			label := string(rune('A' + r))
			for n := 1; n <= seatsPerRow; n++ {
				seatRows = append(seatRows, []any{hall.ID, label, n})
			}
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"seats"},
			[]string{"hall_id", "seat_row", "seat_number"},
			pgx.CopyFromRows(seatRows),
		)

		return err
	})
}

func (p *PostgresHallRepository) GetAll(ctx context.Context) ([]domain.Hall, error) {
	query := `
		SELECT id, name, theater_id
		FROM halls
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	halls := make([]domain.Hall, 0)

	for rows.Next() {
		var hall domain.Hall

		err := rows.Scan(&hall.ID, &hall.Name, &hall.TheaterID)
		if err != nil {
			return nil, err
		}

		halls = append(halls, hall)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return halls, nil
}

func (p *PostgresHallRepository) GetByID(ctx context.Context, id int) (*domain.Hall, error) {
	query := `
		SELECT id, name, theater_id
		FROM halls
		WHERE id = $1
	`

	var hall domain.Hall

	err := p.db.QueryRow(ctx, query, id).Scan(&hall.ID, &hall.Name, &hall.TheaterID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &hall, nil
}
