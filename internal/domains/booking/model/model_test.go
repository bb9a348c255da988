package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hms/internal/domains/booking/model"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return t
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{name: "confirmed to checked_in", from: model.StatusConfirmed, to: model.StatusCheckedIn, want: true},
		{name: "confirmed to cancelled", from: model.StatusConfirmed, to: model.StatusCancelled, want: true},
		{name: "checked_in to checked_out", from: model.StatusCheckedIn, to: model.StatusCheckedOut, want: true},
		{name: "confirmed to checked_out skips check-in", from: model.StatusConfirmed, to: model.StatusCheckedOut, want: false},
		{name: "checked_in to cancelled", from: model.StatusCheckedIn, to: model.StatusCancelled, want: false},
		{name: "checked_out is terminal", from: model.StatusCheckedOut, to: model.StatusConfirmed, want: false},
		{name: "cancelled is terminal", from: model.StatusCancelled, to: model.StatusConfirmed, want: false},
		{name: "self transition rejected", from: model.StatusConfirmed, to: model.StatusConfirmed, want: false},
		{name: "unknown status", from: "pending", to: model.StatusConfirmed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, model.IsTerminal(model.StatusConfirmed))
	assert.False(t, model.IsTerminal(model.StatusCheckedIn))
	assert.True(t, model.IsTerminal(model.StatusCheckedOut))
	assert.True(t, model.IsTerminal(model.StatusCancelled))
}

func TestHoldsRoom(t *testing.T) {
	assert.True(t, model.HoldsRoom(model.StatusConfirmed))
	assert.True(t, model.HoldsRoom(model.StatusCheckedIn))
	assert.False(t, model.HoldsRoom(model.StatusCheckedOut))
	assert.False(t, model.HoldsRoom(model.StatusCancelled))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{name: "disjoint ranges", s1: date("2025-01-01"), e1: date("2025-01-03"), s2: date("2025-01-05"), e2: date("2025-01-07"), want: false},
		{name: "same-day turnover does not conflict", s1: date("2025-01-01"), e1: date("2025-01-03"), s2: date("2025-01-03"), e2: date("2025-01-05"), want: false},
		{name: "partial overlap", s1: date("2025-01-01"), e1: date("2025-01-04"), s2: date("2025-01-03"), e2: date("2025-01-06"), want: true},
		{name: "containment", s1: date("2025-01-01"), e1: date("2025-01-10"), s2: date("2025-01-03"), e2: date("2025-01-05"), want: true},
		{name: "identical ranges", s1: date("2025-01-01"), e1: date("2025-01-03"), s2: date("2025-01-01"), e2: date("2025-01-03"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
			assert.Equal(t, tt.want, model.Overlaps(tt.s2, tt.e2, tt.s1, tt.e1), "overlap must be symmetric")
		})
	}
}

func TestAvailable(t *testing.T) {
	bookings := []model.Booking{
		{ID: "b-1", RoomID: "r-1", CheckInDate: date("2025-01-05"), CheckOutDate: date("2025-01-10"), Status: model.StatusConfirmed},
		{ID: "b-2", RoomID: "r-1", CheckInDate: date("2025-01-01"), CheckOutDate: date("2025-01-20"), Status: model.StatusCancelled},
		{ID: "b-3", RoomID: "r-2", CheckInDate: date("2025-01-05"), CheckOutDate: date("2025-01-10"), Status: model.StatusCheckedIn},
	}

	tests := []struct {
		name      string
		roomID    string
		checkIn   time.Time
		checkOut  time.Time
		excludeID string
		want      bool
	}{
		{name: "free window before existing stay", roomID: "r-1", checkIn: date("2025-01-02"), checkOut: date("2025-01-05"), want: true},
		{name: "conflicts with confirmed stay", roomID: "r-1", checkIn: date("2025-01-08"), checkOut: date("2025-01-12"), want: false},
		{name: "cancelled booking releases the room", roomID: "r-1", checkIn: date("2025-01-15"), checkOut: date("2025-01-18"), want: true},
		{name: "checked-in stay on another room ignored", roomID: "r-3", checkIn: date("2025-01-05"), checkOut: date("2025-01-10"), want: true},
		{name: "checked-in stay blocks its own room", roomID: "r-2", checkIn: date("2025-01-07"), checkOut: date("2025-01-09"), want: false},
		{name: "excluded booking does not block itself", roomID: "r-1", checkIn: date("2025-01-05"), checkOut: date("2025-01-10"), excludeID: "b-1", want: true},
		{name: "back-to-back with existing stay", roomID: "r-1", checkIn: date("2025-01-10"), checkOut: date("2025-01-12"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Available(tt.roomID, tt.checkIn, tt.checkOut, bookings, tt.excludeID))
		})
	}
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{name: "single night", checkIn: date("2025-01-01"), checkOut: date("2025-01-02"), want: 1},
		{name: "three nights", checkIn: date("2025-01-01"), checkOut: date("2025-01-04"), want: 3},
		{name: "partial day rounds up", checkIn: date("2025-01-01"), checkOut: date("2025-01-02").Add(6 * time.Hour), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestTotalPrice(t *testing.T) {
	got := model.TotalPrice(100, date("2025-01-01"), date("2025-01-04"))
	assert.Equal(t, 300.0, got)

	got = model.TotalPrice(89.5, date("2025-01-01"), date("2025-01-03"))
	assert.Equal(t, 179.0, got)
}
