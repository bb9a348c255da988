package model

import (
	"time"

	gModel "hms/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldAmount    = "amount"
	FieldPaidAt    = "paid_at"
	FieldMethod    = "method"
)

const (
	MethodCash = "cash"
	MethodCard = "card"
	MethodUpi  = "upi"
)

type Payment struct {
	ID        string    `db:"id"`
	BookingID string    `db:"booking_id"`
	Amount    float64   `db:"amount"`
	PaidAt    time.Time `db:"paid_at"`
	Method    string    `db:"method"`
	gModel.Metadata
}
