package domain

import "context"

// Show schedules a movie in a hall at a time label, e.g. "19:30".
// Nothing prevents two shows from sharing a hall and time slot.
type Show struct {
	ID      int
	Time    string
	MovieID int
	HallID  int
}

type ShowRepository interface {
	Create(ctx context.Context, show *Show) error
	GetAll(ctx context.Context) ([]Show, error)
	GetByID(ctx context.Context, id int) (*Show, error)
	GetByMovie(ctx context.Context, movieID int) ([]Show, error)
	Delete(ctx context.Context, id int) error
}
