package service

import "hms/shared/failure"

var (
	ErrInvalidDateRange  = failure.BadRequestFromString("check_out_date must be after check_in_date")
	ErrRoomNotFound      = failure.NotFound("room not found")
	ErrGuestNotFound     = failure.NotFound("guest not found")
	ErrBookingNotFound   = failure.NotFound("booking not found")
	ErrRoomUnavailable   = failure.Conflict("room is not available for the requested dates")
	ErrInvalidTransition = failure.Conflict("booking status transition is not allowed")
)
