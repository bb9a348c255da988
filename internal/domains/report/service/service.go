package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hms/config"
	"hms/infras/otel"
	bookingModel "hms/internal/domains/booking/model"
	bookingRepository "hms/internal/domains/booking/repository"
	paymentRepository "hms/internal/domains/payment/repository"
	"hms/internal/domains/report/model/dto"
	roomModel "hms/internal/domains/room/model"
	roomRepository "hms/internal/domains/room/repository"
	"hms/shared/cache"
	"hms/shared/constant"
	gDto "hms/shared/dto"
)

const cacheSummary = "report:summary"

var roomStatuses = []string{
	roomModel.StatusAvailable,
	roomModel.StatusOccupied,
	roomModel.StatusMaintenance,
	roomModel.StatusCleaning,
}

var bookingStatuses = []string{
	bookingModel.StatusConfirmed,
	bookingModel.StatusCheckedIn,
	bookingModel.StatusCheckedOut,
	bookingModel.StatusCancelled,
}

type Report interface {
	Summary(ctx context.Context) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	roomRepo    roomRepository.Room
	bookingRepo bookingRepository.Booking
	paymentRepo paymentRepository.Payment
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	roomRepo roomRepository.Room,
	bookingRepo bookingRepository.Booking,
	paymentRepo paymentRepository.Payment,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Report {
	return &serviceImpl{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Summary aggregates room occupancy, booking states and recorded revenue
// for the dashboard.
func (s *serviceImpl) Summary(ctx context.Context) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheSummary, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheSummary).Msg("cache hit for summary")

		return res, nil
	}

	res.Rooms = make(map[string]int, len(roomStatuses))

	for _, status := range roomStatuses {
		count, err := s.roomRepo.Count(ctx, statusFilter(roomModel.FieldStatus, roomModel.TableName, status))
		if err != nil {
			log.Error().Err(err).Str("status", status).Msg("failed to count rooms by status")

			return res, fmt.Errorf("failed to count rooms by status: %w", err)
		}

		res.Rooms[status] = count
	}

	res.Bookings = make(map[string]int, len(bookingStatuses))

	for _, status := range bookingStatuses {
		count, err := s.bookingRepo.Count(ctx, statusFilter(bookingModel.FieldStatus, bookingModel.TableName, status))
		if err != nil {
			log.Error().Err(err).Str("status", status).Msg("failed to count bookings by status")

			return res, fmt.Errorf("failed to count bookings by status: %w", err)
		}

		res.Bookings[status] = count
	}

	res.Revenue, err = s.paymentRepo.SumAmount(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to sum revenue")

		return res, fmt.Errorf("failed to sum revenue: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheSummary, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save summary to cache")
		}
	}()

	return res, nil
}

func statusFilter(field, table, status string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    status,
				Table:    table,
			},
		},
	}
}
