package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinebook/cinema-booking-api/internal/domain"
)

type PostgresShowRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowRepository(db *pgxpool.Pool) *PostgresShowRepository {
	return &PostgresShowRepository{
		db: db,
	}
}

func (p *PostgresShowRepository) Create(ctx context.Context, show *domain.Show) error {
	query := `
		INSERT INTO shows (show_time, movie_id, hall_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := p.db.QueryRow(ctx, query, show.Time, show.MovieID, show.HallID).Scan(&show.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}

		return err
	}

	return nil
}

func (p *PostgresShowRepository) GetAll(ctx context.Context) ([]domain.Show, error) {
	return p.getMany(ctx, `SELECT id, show_time, movie_id, hall_id FROM shows ORDER BY id`)
}

func (p *PostgresShowRepository) GetByMovie(ctx context.Context, movieID int) ([]domain.Show, error) {
	query := `
		SELECT id, show_time, movie_id, hall_id
		FROM shows
		WHERE movie_id = $1
		ORDER BY id
	`

	return p.getMany(ctx, query, movieID)
}

func (p *PostgresShowRepository) getMany(ctx context.Context, query string, args ...any) ([]domain.Show, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := make([]domain.Show, 0)

	for rows.Next() {
		var show domain.Show

		err := rows.Scan(&show.ID, &show.Time, &show.MovieID, &show.HallID)
		if err != nil {
			return nil, err
		}

		shows = append(shows, show)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shows, nil
}

func (p *PostgresShowRepository) GetByID(ctx context.Context, id int) (*domain.Show, error) {
	query := `
		SELECT id, show_time, movie_id, hall_id
		FROM shows
		WHERE id = $1
	`

	var show domain.Show

	err := p.db.QueryRow(ctx, query, id).Scan(&show.ID, &show.Time, &show.MovieID, &show.HallID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &show, nil
}

func (p *PostgresShowRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM shows WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
