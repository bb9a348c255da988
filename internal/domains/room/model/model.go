package model

import "hms/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID       = "id"
	FieldNumber   = "number"
	FieldType     = "type"
	FieldPrice    = "price"
	FieldCapacity = "capacity"
	FieldStatus   = "status"
)

const (
	TypeSingle = "single"
	TypeDouble = "double"
	TypeSuite  = "suite"
	TypeDeluxe = "deluxe"
)

const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
	StatusCleaning    = "cleaning"
)

type Room struct {
	ID       string  `db:"id"`
	Number   string  `db:"number"`
	Type     string  `db:"type"`
	Price    float64 `db:"price"`
	Capacity int     `db:"capacity"`
	Status   string  `db:"status"`
	model.Metadata
}
