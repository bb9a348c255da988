package dto

import (
	"github.com/google/uuid"

	"hms/internal/domains/room/model"
	"hms/shared"
	gDto "hms/shared/dto"
	gModel "hms/shared/model"
	"hms/shared/timezone"
)

type CreateRoomRequest struct {
	Number   string  `json:"number"   validate:"required,max=10"`
	Type     string  `json:"type"     validate:"required,oneof=single double suite deluxe"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Capacity int     `json:"capacity" validate:"required,gte=1"`
	Status   string  `json:"status"   validate:"omitempty,oneof=available occupied maintenance cleaning"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := model.StatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Room{
		ID:       uuid.NewString(),
		Number:   c.Number,
		Type:     c.Type,
		Price:    c.Price,
		Capacity: c.Capacity,
		Status:   status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Number   string  `db:"number"   json:"number"   validate:"omitempty,max=10"`
	Type     string  `db:"type"     json:"type"     validate:"omitempty,oneof=single double suite deluxe"`
	Price    float64 `db:"price"    json:"price"    validate:"omitempty,gte=0"`
	Capacity int     `db:"capacity" json:"capacity" validate:"omitempty,gte=1"`
}

// SetRoomStatusRequest covers the manual maintenance/cleaning workflow.
// Occupancy-driven status changes go through the booking lifecycle instead.
type SetRoomStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=available occupied maintenance cleaning"`
}

type RoomResponse struct {
	ID       string  `json:"id"`
	Number   string  `json:"number"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
	Capacity int     `json:"capacity"`
	Status   string  `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Type = model.Type
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
