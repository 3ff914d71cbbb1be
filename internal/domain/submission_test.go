package domain

import (
	"encoding/json"
	"testing"

	"cinema-ticketing/internal/data/entity"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotalPrice(t *testing.T) {
	tests := []struct {
		name  string
		seats int
		price string
		want  string
	}{
		{name: "no seats", seats: 0, price: "12.5", want: "0"},
		{name: "one seat", seats: 1, price: "12.5", want: "12.5"},
		{name: "several seats", seats: 3, price: "9.99", want: "29.97"},
		{name: "free", seats: 4, price: "0", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selection := make([]entity.Seat, tt.seats)
			got := ComputeTotalPrice(selection, decimal.RequireFromString(tt.price))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestCanSubmit(t *testing.T) {
	oneSeat := []entity.Seat{{Number: 5}}

	tests := []struct {
		name      string
		selection []entity.Seat
		identity  Identity
		want      bool
	}{
		{name: "empty selection logged in", selection: nil, identity: Identity{UserID: 3}, want: false},
		{name: "empty selection guest", selection: []entity.Seat{}, identity: Identity{GuestEmail: "a@b.co"}, want: false},
		{name: "logged in user", selection: oneSeat, identity: Identity{UserID: 3}, want: true},
		{name: "bad guest email", selection: oneSeat, identity: Identity{GuestEmail: "bad"}, want: false},
		{name: "guest email without tld", selection: oneSeat, identity: Identity{GuestEmail: "a@b"}, want: false},
		{name: "valid guest email", selection: oneSeat, identity: Identity{GuestEmail: "a@b.co"}, want: true},
		{name: "no identity", selection: oneSeat, identity: Identity{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanSubmit(tt.selection, tt.identity))
		})
	}
}

func TestBuildSubmissionScenario(t *testing.T) {
	rows := GenerateSeatMap(25, []int{1, 2, 15}, 10)
	seat5, ok := FindSeat(rows, 5)
	require.True(t, ok)

	selection := ToggleSeat(seat5, nil)
	price := decimal.RequireFromString("12.5")
	require.True(t, ComputeTotalPrice(selection, price).Equal(price))

	got := BuildSubmission(selection, 7, 3, price)

	want := entity.CreateBookingDto{
		UserID:              3,
		SessionCinemaID:     7,
		NumberSeats:         1,
		NumberSeatsDisabled: 0,
		TotalPrice:          12.5,
		ReservedSeats:       []entity.ReservedSeat{{SeatNumber: 5, IsValidated: false}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("submission mismatch (-want +got):\n%s", diff)
	}

	body, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"userId":3,"sessionCinemaId":7,"numberSeats":1,"numberSeatsDisabled":0,"totalPrice":12.5,"reservedSeats":[{"seatNumber":5,"isValidated":false}]}`,
		string(body))
}

func TestBuildSubmissionCopiesSelection(t *testing.T) {
	rows := GenerateSeatMap(30, nil, 10)
	selection := ApplySelection(rows, []int{1, 12, 20})

	got := BuildSubmission(selection, 9, 0, decimal.NewFromInt(8))
	selection[0].Number = 999

	assert.Equal(t, 3, got.NumberSeats)
	assert.Equal(t, 2, got.NumberSeatsDisabled)
	assert.Equal(t, 24.0, got.TotalPrice)
	assert.Equal(t, 1, got.ReservedSeats[0].SeatNumber)
	assert.Len(t, got.ReservedSeats, got.NumberSeats)
}
