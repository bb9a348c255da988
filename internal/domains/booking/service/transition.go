package service

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"hms/internal/domains/booking/model"
	"hms/internal/domains/booking/model/dto"
	roomModel "hms/internal/domains/room/model"
	"hms/shared"
	"hms/shared/constant"
	"hms/shared/timezone"
)

// roomStatusOnEntry maps a booking status to the room status it forces on
// entry. Cancellation releases the room without touching its status.
var roomStatusOnEntry = map[string]string{
	model.StatusCheckedIn:  roomModel.StatusOccupied,
	model.StatusCheckedOut: roomModel.StatusCleaning,
}

func (s *serviceImpl) Transition(ctx context.Context, req dto.TransitionBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, ErrBookingNotFound
	}

	unlock := s.locker.Lock(booking.RoomID)
	defer unlock()

	// The status may have moved between the first read and the lock, so a
	// racing transition on the same booking must revalidate against a
	// fresh row inside the critical section.
	booking, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, ErrBookingNotFound
	}

	if !model.CanTransition(booking.Status, req.Status) {
		return res, ErrInvalidTransition
	}

	user := s.userFrom(ctx)
	now := timezone.Now()

	// The booking row and the room row move together or not at all.
	err = s.repo.ExecuteTransaction(ctx, func(tx *sqlx.Tx) error {
		bookingFields := map[string]any{
			model.FieldStatus:        req.Status,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}

		if err := s.repo.UpdateTx(ctx, tx, bookingFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}

		roomStatus, hasSideEffect := roomStatusOnEntry[req.Status]
		if !hasSideEffect {
			return nil
		}

		roomFields := map[string]any{
			roomModel.FieldStatus:    roomStatus,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}

		if err := s.roomRepo.UpdateTx(ctx, tx, roomFields, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName)); err != nil {
			return fmt.Errorf("failed to update room status: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", id).Str("status", req.Status).Msg("failed to transition booking")

		return res, fmt.Errorf("failed to transition booking: %w", err)
	}

	booking.Status = req.Status
	booking.ModifiedAt = now
	booking.ModifiedBy = user

	res.FromModel(booking)

	affectedRoom := constant.Empty
	if _, hasSideEffect := roomStatusOnEntry[req.Status]; hasSideEffect {
		affectedRoom = booking.RoomID
	}

	s.afterWrite(ctx, dto.NewBookingEvent(dto.EventBookingStatusChanged, booking), affectedRoom)

	return res, nil
}
