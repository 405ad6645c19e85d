// Package seating holds the pure seat-allocation and projection logic.
// Everything here operates on an ordered seat slice plus a booked-seat
// snapshot; no function talks to the store, so results are advisory and a
// caller's subsequent write may still lose a race.
package seating

import (
	"github.com/cinebook/cinema-booking-api/internal/domain"
)

// Row groups the seats of one physical row, in ascending seat-number order.
type Row struct {
	Label string
	Seats []domain.Seat
}

// PartitionRows splits seats, pre-sorted by (row, number), into per-row
// groups. Done in a single pass, so the row order of the input is preserved.
func PartitionRows(seats []domain.Seat) []Row {
	if len(seats) == 0 {
		return nil
	}

	var rows []Row
	current := Row{Label: seats[0].Row}

	for _, s := range seats {
		if s.Row != current.Label {
			rows = append(rows, current)
			current = Row{Label: s.Row}
		}

		current.Seats = append(current.Seats, s)
	}

	rows = append(rows, current)

	return rows
}

// FindConsecutive returns the first run of n available seats whose numbers
// form an unbroken ascending sequence within a single row, or nil when no row
// has one. Seats must be sorted by (row, number); rows are scanned in that
// order and, within a row, left to right. First-fit: the scan stops at the
// first qualifying window, no attempt is made to minimize wasted seats.
//
// Availability filtering happens before windowing, so a booked seat in the
// middle of a row leaves its neighbours adjacent in the filtered list; the
// numeric-run check is what rejects such windows.
func FindConsecutive(seats []domain.Seat, booked map[int]bool, n int) []domain.Seat {
	if n < 1 {
		return nil
	}

	for _, row := range PartitionRows(seats) {
		avail := make([]domain.Seat, 0, len(row.Seats))
		for _, s := range row.Seats {
			if !booked[s.ID] {
				avail = append(avail, s)
			}
		}

		for i := 0; i+n <= len(avail); i++ {
			if isNumericRun(avail[i : i+n]) {
				window := make([]domain.Seat, n)
				copy(window, avail[i:i+n])
				return window
			}
		}
	}

	return nil
}

func isNumericRun(seats []domain.Seat) bool {
	for i := 1; i < len(seats); i++ {
		if seats[i].Number != seats[0].Number+i {
			return false
		}
	}
	return true
}

// Suggestion points at a show that still has a contiguous run of the desired
// size, used as a fallback hint when consecutive booking fails.
type Suggestion struct {
	ShowID      int
	Time        string
	Row         string
	StartNumber int
}

// SuggestShow runs the same first-fit search against another show's booked
// set and reports where the first window starts, without booking anything.
func SuggestShow(show domain.Show, seats []domain.Seat, booked map[int]bool, n int) (Suggestion, bool) {
	window := FindConsecutive(seats, booked, n)
	if window == nil {
		return Suggestion{}, false
	}

	return Suggestion{
		ShowID:      show.ID,
		Time:        show.Time,
		Row:         window[0].Row,
		StartNumber: window[0].Number,
	}, true
}
