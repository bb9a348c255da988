package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hms/config"
	"hms/infras/otel/mocks"
	bookingMocks "hms/internal/domains/booking/mocks"
	paymentMocks "hms/internal/domains/payment/mocks"
	"hms/internal/domains/payment/model"
	"hms/internal/domains/payment/model/dto"
	"hms/internal/domains/payment/service"
	cacheMocks "hms/shared/cache/mocks"
	"hms/shared/constant"
	"hms/shared/timezone"
	"hms/shared/validator"
)

func TestPaymentService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.RecordPaymentRequest
		setupMock func()
		wantErr   error
	}{
		{
			name: "successful recording",
			req: dto.RecordPaymentRequest{
				BookingID: "booking-id",
				Amount:    300,
				Method:    model.MethodCard,
			},
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, payment model.Payment) error {
						assert.Equal(t, 300.0, payment.Amount)
						assert.False(t, payment.PaidAt.IsZero())

						return nil
					})

				mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "booking not found",
			req: dto.RecordPaymentRequest{
				BookingID: "nonexistent-id",
				Amount:    300,
				Method:    model.MethodCash,
			},
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: service.ErrBookingNotFound,
		},
		{
			name: "exist check error",
			req: dto.RecordPaymentRequest{
				BookingID: "booking-id",
				Amount:    300,
				Method:    model.MethodUpi,
			},
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: errors.New("failed to check if booking exists"),
		},
		{
			name: "insert error",
			req: dto.RecordPaymentRequest{
				BookingID: "booking-id",
				Amount:    300,
				Method:    model.MethodCard,
			},
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: errors.New("failed to record payment"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Record(ctx, tt.req)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.ErrorContains(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.req.BookingID, res.BookingID)
				assert.Equal(t, tt.req.Amount, res.Amount)
				assert.NotEmpty(t, res.ID)
			}
		})
	}
}

func TestRecordPaymentRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.RecordPaymentRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			req:     dto.RecordPaymentRequest{BookingID: "booking-id", Amount: 150, Method: model.MethodCash},
			wantErr: false,
		},
		{
			name:    "zero amount",
			req:     dto.RecordPaymentRequest{BookingID: "booking-id", Amount: 0, Method: model.MethodCash},
			wantErr: true,
		},
		{
			name:    "negative amount",
			req:     dto.RecordPaymentRequest{BookingID: "booking-id", Amount: -10, Method: model.MethodCash},
			wantErr: true,
		},
		{
			name:    "unknown method",
			req:     dto.RecordPaymentRequest{BookingID: "booking-id", Amount: 150, Method: "cheque"},
			wantErr: true,
		},
		{
			name:    "missing booking",
			req:     dto.RecordPaymentRequest{Amount: 150, Method: model.MethodCash},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPaymentService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockCache, mockOtel)

	payment := model.Payment{
		ID:        "payment-id",
		BookingID: "booking-id",
		Amount:    300,
		PaidAt:    timezone.Now(),
		Method:    model.MethodCard,
	}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cache miss, successful get from db",
			id:   "payment-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(payment, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "payment not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Payment{}, nil)
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
