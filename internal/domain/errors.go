package domain

import "errors"

var (
	ErrRecordNotFound       = errors.New("record not found")
	ErrMovieAlreadyExists   = errors.New("a movie with this title already exists")
	ErrTheaterAlreadyExists = errors.New("a theater with this name already exists")
	ErrUserAlreadyExists    = errors.New("a user with this email already exists")
	ErrSeatAlreadyReserved  = errors.New("seat(s) are already reserved")
	ErrInvalidReference     = errors.New("referenced record does not exist")
)
