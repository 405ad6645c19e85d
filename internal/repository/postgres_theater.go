package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinebook/cinema-booking-api/internal/domain"
)

type PostgresTheaterRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTheaterRepository(db *pgxpool.Pool) *PostgresTheaterRepository {
	return &PostgresTheaterRepository{
		db: db,
	}
}

func (p *PostgresTheaterRepository) Create(ctx context.Context, theater *domain.Theater) error {
	query := `
		INSERT INTO theaters (name)
		VALUES ($1)
		RETURNING id
	`

	err := p.db.QueryRow(ctx, query, theater.Name).Scan(&theater.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTheaterAlreadyExists
		}

		return err
	}

	return nil
}

func (p *PostgresTheaterRepository) GetAll(ctx context.Context) ([]domain.Theater, error) {
	query := `
		SELECT id, name
		FROM theaters
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	theaters := make([]domain.Theater, 0)

	for rows.Next() {
		var theater domain.Theater

		err := rows.Scan(&theater.ID, &theater.Name)
		if err != nil {
			return nil, err
		}

		theaters = append(theaters, theater)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return theaters, nil
}

// Delete removes the theater and, through the store's cascade rules, its
// halls, their seats and shows, and any bookings hanging off those shows.
func (p *PostgresTheaterRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM theaters WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
