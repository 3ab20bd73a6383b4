package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"apelcal/config"
	kafkaMocks "apelcal/infras/kafka/mocks"
	"apelcal/infras/otel/mocks"
	bookingMocks "apelcal/internal/domains/booking/mocks"
	"apelcal/internal/domains/booking/model"
	"apelcal/internal/domains/booking/model/dto"
	"apelcal/internal/domains/booking/service"
	etMocks "apelcal/internal/domains/eventtype/mocks"
	etModel "apelcal/internal/domains/eventtype/model"
	scheduleMocks "apelcal/internal/domains/schedule/mocks"
	"apelcal/shared/cache"
	cacheMocks "apelcal/shared/cache/mocks"
	gDto "apelcal/shared/dto"
	"apelcal/shared/failure"
)

func gDtoParams() gDto.QueryParams {
	return gDto.QueryParams{Page: 1, Limit: 10}
}

func gDtoFilter() gDto.FilterGroup {
	return gDto.FilterGroup{}
}

type fixture struct {
	repo          *bookingMocks.MockBooking
	eventTypeRepo *etMocks.MockEventType
	schedule      *scheduleMocks.MockSchedule
	cache         *cacheMocks.MockRedisCache
	svc           service.Booking
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		repo:          bookingMocks.NewMockBooking(ctrl),
		eventTypeRepo: etMocks.NewMockEventType(ctrl),
		schedule:      scheduleMocks.NewMockSchedule(ctrl),
		cache:         cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, f.eventTypeRepo, f.schedule, cfg, f.cache, mocks.NewOtel(), kafkaMocks.NewProducer())

	return f
}

func activeEventType(requiresApproval bool) etModel.EventType {
	return etModel.EventType{
		ID:               "et-1",
		Name:             "Intro Call",
		Color:            "#3788d8",
		DurationMinutes:  30,
		RequiresApproval: requiresApproval,
		IsActive:         true,
	}
}

func createRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		EventTypeID:  "et-1",
		Date:         "2030-01-07",
		StartTime:    "09:30",
		InviteeName:  "Jamie Doe",
		InviteeEmail: "jamie@example.com",
	}
}

func TestBookingService_Create(t *testing.T) {
	t.Run("confirmed when no approval required", func(t *testing.T) {
		f := newFixture(t)

		f.eventTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeEventType(false), nil)
		f.schedule.EXPECT().
			Bookable(gomock.Any(), gomock.Any(), "2030-01-07", "09:30").
			Return("10:00", nil)

		var inserted model.Booking

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				inserted = booking

				return nil
			})

		res, err := f.svc.Create(context.Background(), createRequest())

		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, res.Status)
		assert.Equal(t, "10:00", res.EndTime)
		assert.NotEmpty(t, res.CancelToken)
		assert.Equal(t, inserted.ID, res.ID)
	})

	t.Run("pending when approval required", func(t *testing.T) {
		f := newFixture(t)

		f.eventTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeEventType(true), nil)
		f.schedule.EXPECT().
			Bookable(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("10:00", nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.Create(context.Background(), createRequest())

		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, res.Status)
	})

	t.Run("unknown event type", func(t *testing.T) {
		f := newFixture(t)

		f.eventTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(etModel.EventType{}, nil)

		_, err := f.svc.Create(context.Background(), createRequest())

		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("inactive event type", func(t *testing.T) {
		f := newFixture(t)

		eventType := activeEventType(false)
		eventType.IsActive = false

		f.eventTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(eventType, nil)

		_, err := f.svc.Create(context.Background(), createRequest())

		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("slot no longer available", func(t *testing.T) {
		f := newFixture(t)

		f.eventTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeEventType(false), nil)
		f.schedule.EXPECT().
			Bookable(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", failure.Conflict("this time slot is no longer available"))

		_, err := f.svc.Create(context.Background(), createRequest())

		assert.True(t, failure.IsConflict(err))
	})

	t.Run("losing the insert race surfaces the conflict", func(t *testing.T) {
		f := newFixture(t)

		f.eventTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeEventType(false), nil)
		f.schedule.EXPECT().
			Bookable(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("10:00", nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(failure.Conflict("this time slot is no longer available"))

		_, err := f.svc.Create(context.Background(), createRequest())

		assert.True(t, failure.IsConflict(err))
	})
}

func TestBookingService_CancelByToken(t *testing.T) {
	t.Run("successful cancellation", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: "b-1", Status: model.StatusConfirmed, CancelToken: "tok-1"}, nil)

		var fields map[string]any

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
				fields = req

				return nil
			})

		err := f.svc.CancelByToken(context.Background(), "tok-1", dto.CancelBookingRequest{Reason: "can no longer attend"})

		require.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])
		assert.Equal(t, "can no longer attend", fields[model.FieldCancelReason])
		assert.NotNil(t, fields[model.FieldCancelledAt])
	})

	t.Run("unknown token", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		err := f.svc.CancelByToken(context.Background(), "missing", dto.CancelBookingRequest{})

		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("already cancelled", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: "b-1", Status: model.StatusCancelled}, nil)

		err := f.svc.CancelByToken(context.Background(), "tok-1", dto.CancelBookingRequest{})

		assert.True(t, failure.IsConflict(err))
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: "b-1", Status: model.StatusCompleted}, nil)

		err := f.svc.CancelByToken(context.Background(), "tok-1", dto.CancelBookingRequest{})

		assert.True(t, failure.IsConflict(err))
	})
}

func TestBookingService_CancelByID(t *testing.T) {
	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: "b-1", Status: model.StatusCompleted}, nil)

		err := f.svc.CancelByID(context.Background(), "b-1", dto.CancelBookingRequest{Reason: "no-show"})

		assert.True(t, failure.IsConflict(err))
	})
}

func TestBookingService_Approve(t *testing.T) {
	t.Run("pending booking is confirmed", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: "b-1", Status: model.StatusPending}, nil)

		var fields map[string]any

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
				fields = req

				return nil
			})

		err := f.svc.Approve(context.Background(), "b-1")

		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, fields[model.FieldStatus])
	})

	t.Run("confirmed booking cannot be approved again", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: "b-1", Status: model.StatusConfirmed}, nil)

		err := f.svc.Approve(context.Background(), "b-1")

		assert.True(t, failure.IsConflict(err))
	})
}

func TestBookingService_MarkCompleted(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Booking{ID: "b-1", Status: model.StatusConfirmed}, nil)

	var fields map[string]any

	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
			fields = req

			return nil
		})

	err := f.svc.MarkCompleted(context.Background(), "b-1")

	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, fields[model.FieldStatus])
}

func TestBookingService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)
	f.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{
			{ID: "b-1", Status: model.StatusConfirmed, StartTime: "10:00:00", EndTime: "10:30:00"},
			{ID: "b-2", Status: model.StatusPending, StartTime: "11:00:00", EndTime: "11:30:00"},
		}, nil)

	res, err := f.svc.GetAll(context.Background(), gDtoParams(), gDtoFilter())

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	require.Len(t, res.Bookings, 2)
	assert.Equal(t, "10:00", res.Bookings[0].StartTime)
}

func TestBookingService_Stats(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)

	f.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(5, nil).
		Times(6)
	f.eventTypeRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(3, nil)

	res, err := f.svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 5, res.Upcoming)
	assert.Equal(t, 3, res.EventTypes)
}

func TestBookingService_ExportCSV(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{
			{
				ID:            "b-1",
				EventTypeName: "Intro Call",
				Date:          "2030-01-07",
				StartTime:     "10:00:00",
				EndTime:       "10:30:00",
				InviteeName:   "Jamie Doe",
				InviteeEmail:  "jamie@example.com",
				Status:        model.StatusConfirmed,
			},
		}, nil)

	data, err := f.svc.ExportCSV(context.Background(), gDtoFilter())

	require.NoError(t, err)
	assert.Contains(t, string(data), "Jamie Doe")
	assert.Contains(t, string(data), "10:00")
}

func TestBookingService_RepositoryError(t *testing.T) {
	f := newFixture(t)

	f.eventTypeRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(etModel.EventType{}, errors.New("database error"))

	_, err := f.svc.Create(context.Background(), createRequest())

	assert.Error(t, err)
}
