package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hms/config"
	"hms/infras/kafka"
	kafkaMocks "hms/infras/kafka/mocks"
	"hms/infras/otel/mocks"
	bookingMocks "hms/internal/domains/booking/mocks"
	"hms/internal/domains/booking/model"
	"hms/internal/domains/booking/model/dto"
	"hms/internal/domains/booking/service"
	guestMocks "hms/internal/domains/guest/mocks"
	roomMocks "hms/internal/domains/room/mocks"
	roomModel "hms/internal/domains/room/model"
	cacheMocks "hms/shared/cache/mocks"
	"hms/shared/constant"
	gDto "hms/shared/dto"
)

func mustDate(value string) time.Time {
	t, err := time.Parse(constant.DateOnlyFormat, value)
	if err != nil {
		panic(err)
	}

	return t
}

func newBookingService(ctrl *gomock.Controller) (
	service.Booking,
	*bookingMocks.MockBooking,
	*roomMocks.MockRoom,
	*guestMocks.MockGuest,
	*cacheMocks.MockRedisCache,
) {
	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockGuestRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, mockGuestRepo, cfg, mockCache, nil, mockOtel)

	return svc, mockRepo, mockRoomRepo, mockGuestRepo, mockCache
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockRoomRepo, mockGuestRepo, mockCache := newBookingService(ctrl)
	defer service.WaitAsync(svc)

	room := roomModel.Room{ID: "room-id", Price: 100, Status: roomModel.StatusAvailable}

	validReq := dto.CreateBookingRequest{
		RoomID:       "room-id",
		GuestID:      "guest-id",
		CheckInDate:  "2025-06-01",
		CheckOutDate: "2025-06-04",
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   error
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockGuestRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, model.StatusConfirmed, booking.Status)
						assert.Equal(t, 300.0, booking.TotalPrice)

						return nil
					})

				mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "malformed date",
			req: dto.CreateBookingRequest{
				RoomID:       "room-id",
				GuestID:      "guest-id",
				CheckInDate:  "01-06-2025",
				CheckOutDate: "2025-06-04",
			},
			setupMock: func() {},
			wantErr:   service.ErrInvalidDateRange,
		},
		{
			name: "check-out not after check-in",
			req: dto.CreateBookingRequest{
				RoomID:       "room-id",
				GuestID:      "guest-id",
				CheckInDate:  "2025-06-04",
				CheckOutDate: "2025-06-04",
			},
			setupMock: func() {},
			wantErr:   service.ErrInvalidDateRange,
		},
		{
			name: "room not found",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr: service.ErrRoomNotFound,
		},
		{
			name: "guest not found",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockGuestRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: service.ErrGuestNotFound,
		},
		{
			name: "room unavailable",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockGuestRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				existing := model.Booking{
					ID:           "existing-id",
					RoomID:       "room-id",
					CheckInDate:  mustDate("2025-06-02"),
					CheckOutDate: mustDate("2025-06-06"),
					Status:       model.StatusConfirmed,
				}

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{existing}, nil)
			},
			wantErr: service.ErrRoomUnavailable,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, errors.New("database error"))
			},
			wantErr: errors.New("failed to get room for booking"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.ErrorContains(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusConfirmed, res.Status)
				assert.Equal(t, 300.0, res.TotalPrice)
				assert.NotEmpty(t, res.ID)
			}
		})
	}
}

// Concurrent overlapping requests for the same room must produce exactly one
// confirmed booking; the rest see the room as unavailable.
func TestBookingService_Create_ConcurrentSameRoom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockRoomRepo, mockGuestRepo, mockCache := newBookingService(ctrl)
	defer service.WaitAsync(svc)

	room := roomModel.Room{ID: "room-id", Price: 100, Status: roomModel.StatusAvailable}

	mockRoomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil).AnyTimes()
	mockGuestRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	var mu sync.Mutex
	var stored []model.Booking

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
			mu.Lock()
			defer mu.Unlock()

			out := make([]model.Booking, len(stored))
			copy(out, stored)

			return out, nil
		}).
		AnyTimes()

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking model.Booking) error {
			mu.Lock()
			defer mu.Unlock()

			stored = append(stored, booking)

			return nil
		}).
		AnyTimes()

	req := dto.CreateBookingRequest{
		RoomID:       "room-id",
		GuestID:      "guest-id",
		CheckInDate:  "2025-06-01",
		CheckOutDate: "2025-06-04",
	}

	const attempts = 8

	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := svc.Create(context.Background(), req)
			results <- err
		}()
	}

	wg.Wait()
	close(results)

	var won, lost int

	for err := range results {
		switch {
		case err == nil:
			won++
		case errors.Is(err, service.ErrRoomUnavailable):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, won)
	assert.Equal(t, attempts-1, lost)
	assert.Len(t, stored, 1)
}

// Successful writes publish a booking event when the broker is enabled;
// publish failures are logged without failing the write.
func TestBookingService_EventPublishing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockGuestRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Enable = true
	cfg.Kafka.BookingTopic = "hotel.bookings"

	svc := service.New(mockRepo, mockRoomRepo, mockGuestRepo, cfg, mockCache, mockKafka, mockOtel)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	room := roomModel.Room{ID: "room-id", Price: 100, Status: roomModel.StatusAvailable}

	createReq := dto.CreateBookingRequest{
		RoomID:       "room-id",
		GuestID:      "guest-id",
		CheckInDate:  "2025-06-01",
		CheckOutDate: "2025-06-04",
	}

	expectCreate := func() {
		mockRoomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
		mockGuestRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Booking{}, nil)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	}

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("create publishes a created event", func(t *testing.T) {
		expectCreate()

		mockKafka.EXPECT().
			SendMessages(gomock.Any(), "hotel.bookings", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				assert.Len(t, messages, 1)

				event, ok := messages[0].Value.(dto.BookingEvent)
				assert.True(t, ok)
				assert.Equal(t, dto.EventBookingCreated, event.Type)
				assert.Equal(t, model.StatusConfirmed, event.Status)
				assert.Equal(t, "room-id", event.RoomID)
				assert.Equal(t, event.BookingID, messages[0].Key)

				return nil
			})

		_, err := svc.Create(ctx, createReq)
		assert.NoError(t, err)

		service.WaitAsync(svc)
	})

	t.Run("transition publishes a status change event", func(t *testing.T) {
		booking := model.Booking{
			ID:           "booking-id",
			RoomID:       "room-id",
			GuestID:      "guest-id",
			CheckInDate:  mustDate("2025-06-01"),
			CheckOutDate: mustDate("2025-06-04"),
			TotalPrice:   300,
			Status:       model.StatusConfirmed,
		}

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil).
			Times(2)

		mockRepo.EXPECT().
			ExecuteTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
				return fn(nil)
			})

		mockRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		mockRoomRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		mockKafka.EXPECT().
			SendMessages(gomock.Any(), "hotel.bookings", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				assert.Len(t, messages, 1)

				event, ok := messages[0].Value.(dto.BookingEvent)
				assert.True(t, ok)
				assert.Equal(t, dto.EventBookingStatusChanged, event.Type)
				assert.Equal(t, model.StatusCheckedIn, event.Status)
				assert.Equal(t, "booking-id", messages[0].Key)

				return nil
			})

		_, err := svc.Transition(ctx, dto.TransitionBookingRequest{Status: model.StatusCheckedIn}, "booking-id")
		assert.NoError(t, err)

		service.WaitAsync(svc)
	})

	t.Run("publish failure does not surface", func(t *testing.T) {
		expectCreate()

		mockKafka.EXPECT().
			SendMessages(gomock.Any(), "hotel.bookings", gomock.Any()).
			Return(errors.New("broker unreachable"))

		_, err := svc.Create(ctx, createReq)
		assert.NoError(t, err)

		service.WaitAsync(svc)
	})
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _, mockCache := newBookingService(ctrl)
	defer service.WaitAsync(svc)

	booking := model.Booking{
		ID:           "booking-id",
		RoomID:       "room-id",
		GuestID:      "guest-id",
		CheckInDate:  mustDate("2025-06-01"),
		CheckOutDate: mustDate("2025-06-04"),
		TotalPrice:   300,
		Status:       model.StatusConfirmed,
	}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cache hit",
			id:   "booking-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "cache miss, successful get from db",
			id:   "booking-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "booking not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			id:   "booking-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
