package model

import (
	"time"

	"hms/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldRoomID       = "room_id"
	FieldGuestID      = "guest_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldTotalPrice   = "total_price"
	FieldStatus       = "status"
)

const (
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

type Booking struct {
	ID           string    `db:"id"`
	RoomID       string    `db:"room_id"`
	GuestID      string    `db:"guest_id"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	TotalPrice   float64   `db:"total_price"`
	Status       string    `db:"status"`
	model.Metadata
}

// transitions is the full status state machine. confirmed may check in or
// cancel; checked_in may only check out. checked_out and cancelled are
// terminal.
var transitions = map[string][]string{
	StatusConfirmed: {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut},
}

// CanTransition reports whether from → to is a permitted status edge.
// Self-transitions are not permitted.
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

// IsTerminal reports whether no transition leaves the given status.
func IsTerminal(status string) bool {
	return len(transitions[status]) == 0
}

// HoldsRoom reports whether a booking in the given status still reserves its
// room for availability purposes. Cancelled and checked-out bookings no
// longer hold the room.
func HoldsRoom(status string) bool {
	return status != StatusCancelled && status != StatusCheckedOut
}

// Overlaps applies the half-open range rule to [s1,e1) and [s2,e2): equal
// boundary dates do not conflict, so same-day turnover is permitted.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// Available reports whether the room is free for [checkIn, checkOut) given
// the booking collection. Bookings that no longer hold the room, bookings on
// other rooms, and the booking identified by excludeID are ignored.
// Callers must have rejected checkIn >= checkOut already.
func Available(roomID string, checkIn, checkOut time.Time, bookings []Booking, excludeID string) bool {
	for _, b := range bookings {
		if b.RoomID != roomID || b.ID == excludeID || !HoldsRoom(b.Status) {
			continue
		}

		if Overlaps(checkIn, checkOut, b.CheckInDate, b.CheckOutDate) {
			return false
		}
	}

	return true
}

// Nights returns the number of billable nights for [checkIn, checkOut),
// rounding partial days up. Minimum one night given checkIn < checkOut.
func Nights(checkIn, checkOut time.Time) int {
	hoursPerNight := 24.0

	nights := int(checkOut.Sub(checkIn).Hours() / hoursPerNight)
	if checkOut.Sub(checkIn).Hours() > float64(nights)*hoursPerNight {
		nights++
	}

	return nights
}

// TotalPrice computes the stay total from the nightly rate. Never recomputed
// after booking creation.
func TotalPrice(nightlyRate float64, checkIn, checkOut time.Time) float64 {
	return float64(Nights(checkIn, checkOut)) * nightlyRate
}
