package domain

import (
	"cinema-ticketing/internal/data/entity"
)

const DefaultSeatsPerRow = 10

// The accessibility block is the first two seats of the first two rows,
// whatever the room declares as its accessible capacity.
const (
	accessibleRows    = 2
	accessibleColumns = 2
)

// RowLabel returns the label of the 0-based row index: A..Z, then AA, AB, ...
func RowLabel(index int) string {
	if index < 0 {
		return ""
	}
	var buf []byte
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		buf = append([]byte{byte('A' + (n-1)%26)}, buf...)
	}
	return string(buf)
}

// GenerateSeatMap lays out totalSeats seats in rows of seatsPerRow, numbered
// from 1. The last row holds the remainder. A non-positive seatsPerRow falls
// back to DefaultSeatsPerRow.
func GenerateSeatMap(totalSeats int, occupied []int, seatsPerRow int) [][]entity.Seat {
	if totalSeats <= 0 {
		return [][]entity.Seat{}
	}
	if seatsPerRow <= 0 {
		seatsPerRow = DefaultSeatsPerRow
	}

	taken := make(map[int]struct{}, len(occupied))
	for _, n := range occupied {
		taken[n] = struct{}{}
	}

	rowCount := (totalSeats + seatsPerRow - 1) / seatsPerRow
	rows := make([][]entity.Seat, 0, rowCount)

	for r := 0; r < rowCount; r++ {
		first := r*seatsPerRow + 1
		last := min((r+1)*seatsPerRow, totalSeats)
		label := RowLabel(r)

		row := make([]entity.Seat, 0, last-first+1)
		for number := first; number <= last; number++ {
			col := number - first
			_, isOccupied := taken[number]
			row = append(row, entity.Seat{
				Number:     number,
				Row:        label,
				Column:     col,
				IsOccupied: isOccupied,
				IsDisabled: r < accessibleRows && col < accessibleColumns,
			})
		}
		rows = append(rows, row)
	}

	return rows
}

// ToggleSeat flips the selection state of seat and returns the updated
// selection. Occupied seats are ignored and the selection is returned as is.
// The input slice is never modified.
func ToggleSeat(seat *entity.Seat, selection []entity.Seat) []entity.Seat {
	if seat == nil || seat.IsOccupied {
		return selection
	}

	seat.IsSelected = !seat.IsSelected

	next := make([]entity.Seat, 0, len(selection)+1)
	for _, s := range selection {
		if s.Number != seat.Number {
			next = append(next, s)
		}
	}
	if seat.IsSelected {
		next = append(next, *seat)
	}
	return next
}

// FindSeat returns a pointer into rows for the given seat number.
func FindSeat(rows [][]entity.Seat, number int) (*entity.Seat, bool) {
	for r := range rows {
		for c := range rows[r] {
			if rows[r][c].Number == number {
				return &rows[r][c], true
			}
		}
	}
	return nil, false
}

// ApplySelection marks the given seat numbers as selected in rows and returns
// the resulting selection in the order of numbers. Numbers that are occupied,
// unknown or repeated are left out.
func ApplySelection(rows [][]entity.Seat, numbers []int) []entity.Seat {
	selection := make([]entity.Seat, 0, len(numbers))
	for _, n := range numbers {
		seat, ok := FindSeat(rows, n)
		if !ok || seat.IsOccupied || seat.IsSelected {
			continue
		}
		seat.IsSelected = true
		selection = append(selection, *seat)
	}
	return selection
}

// FlattenSeatMap returns all seats in seat number order.
func FlattenSeatMap(rows [][]entity.Seat) []entity.Seat {
	var seats []entity.Seat
	for _, row := range rows {
		seats = append(seats, row...)
	}
	return seats
}

// SeatNumbers extracts the seat numbers of a selection.
func SeatNumbers(selection []entity.Seat) []int {
	numbers := make([]int, len(selection))
	for i, s := range selection {
		numbers[i] = s.Number
	}
	return numbers
}
