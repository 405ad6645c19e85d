package seating

import (
	"sort"
	"strings"

	"github.com/cinebook/cinema-booking-api/internal/domain"
)

type SeatState string

const (
	SeatBooked    SeatState = "Booked"
	SeatAvailable SeatState = "Available"
)

// Layout maps row label -> seat number -> state for every seat of a hall.
type Layout map[string]map[int]SeatState

// BuildLayout projects the hall's seats and the show's booked set into a
// per-seat state map.
func BuildLayout(seats []domain.Seat, booked map[int]bool) Layout {
	layout := make(Layout)

	for _, s := range seats {
		row, ok := layout[s.Row]
		if !ok {
			row = make(map[int]SeatState)
			layout[s.Row] = row
		}

		if booked[s.ID] {
			row[s.Number] = SeatBooked
		} else {
			row[s.Number] = SeatAvailable
		}
	}

	return layout
}

// ASCII renders one line per row, rows sorted lexicographically, each seat as
// [X] when booked and [ ] when available, in ascending seat-number order:
//
//	A [ ][X][ ]
//	B [X][ ][ ]
func (l Layout) ASCII() string {
	rowLabels := make([]string, 0, len(l))
	for label := range l {
		rowLabels = append(rowLabels, label)
	}
	sort.Strings(rowLabels)

	var b strings.Builder

	for i, label := range rowLabels {
		if i > 0 {
			b.WriteByte('\n')
		}

		numbers := make([]int, 0, len(l[label]))
		for n := range l[label] {
			numbers = append(numbers, n)
		}
		sort.Ints(numbers)

		b.WriteString(label)
		b.WriteByte(' ')
		for _, n := range numbers {
			if l[label][n] == SeatBooked {
				b.WriteString("[X]")
			} else {
				b.WriteString("[ ]")
			}
		}
	}

	return b.String()
}

// AvailableSeats filters the hall's ordered seats down to those not in the
// booked set, preserving (row, number) order.
func AvailableSeats(seats []domain.Seat, booked map[int]bool) []domain.Seat {
	avail := make([]domain.Seat, 0, len(seats))

	for _, s := range seats {
		if !booked[s.ID] {
			avail = append(avail, s)
		}
	}

	return avail
}
