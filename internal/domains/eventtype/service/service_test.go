package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"apelcal/config"
	"apelcal/infras/otel/mocks"
	eventTypeMocks "apelcal/internal/domains/eventtype/mocks"
	"apelcal/internal/domains/eventtype/model"
	"apelcal/internal/domains/eventtype/model/dto"
	"apelcal/internal/domains/eventtype/service"
	"apelcal/shared/cache"
	cacheMocks "apelcal/shared/cache/mocks"
	gDto "apelcal/shared/dto"
	"apelcal/shared/failure"
)

type eventTypeFixture struct {
	repo     *eventTypeMocks.MockEventType
	dateRepo *eventTypeMocks.MockEventTypeDate
	cache    *cacheMocks.MockRedisCache
	svc      service.EventType
}

func newEventTypeFixture(t *testing.T) *eventTypeFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &eventTypeFixture{
		repo:     eventTypeMocks.NewMockEventType(ctrl),
		dateRepo: eventTypeMocks.NewMockEventTypeDate(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Cache writes and invalidation run on detached goroutines.
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, f.dateRepo, cfg, f.cache, mocks.NewOtel())

	return f
}

func TestEventTypeService_Create(t *testing.T) {
	t.Run("defaults are applied", func(t *testing.T) {
		f := newEventTypeFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, et model.EventType) error {
				assert.Equal(t, "intro-call", et.Slug)
				assert.Equal(t, "#3788d8", et.Color)
				assert.Equal(t, model.LocationTypeInPerson, et.LocationType)
				assert.Equal(t, 60, et.MaxDaysAhead)
				assert.True(t, et.IsActive)

				return nil
			})

		res, err := f.svc.Create(context.Background(), dto.CreateEventTypeRequest{
			Name:            "Intro Call",
			DurationMinutes: 30,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Intro Call", res.Name)
		assert.Equal(t, "intro-call", res.Slug)
		assert.NotEmpty(t, res.ID)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		f := newEventTypeFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Create(context.Background(), dto.CreateEventTypeRequest{
			Name:            "Intro Call",
			DurationMinutes: 30,
		})

		assert.Error(t, err)
		assert.True(t, failure.IsConflict(err))
	})

	t.Run("repository error", func(t *testing.T) {
		f := newEventTypeFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		_, err := f.svc.Create(context.Background(), dto.CreateEventTypeRequest{
			Name:            "Intro Call",
			DurationMinutes: 30,
		})

		assert.Error(t, err)
	})
}

func TestEventTypeService_GetBySlug(t *testing.T) {
	t.Run("active event type is returned", func(t *testing.T) {
		f := newEventTypeFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.EventType{ID: "et-1", Name: "Intro Call", Slug: "intro-call", IsActive: true}, nil)

		res, err := f.svc.GetBySlug(context.Background(), "intro-call")

		assert.NoError(t, err)
		assert.Equal(t, "et-1", res.ID)
	})

	t.Run("inactive event type is hidden", func(t *testing.T) {
		f := newEventTypeFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.EventType{ID: "et-1", Slug: "intro-call", IsActive: false}, nil)

		_, err := f.svc.GetBySlug(context.Background(), "intro-call")

		assert.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("unknown slug", func(t *testing.T) {
		f := newEventTypeFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.EventType{}, nil)

		_, err := f.svc.GetBySlug(context.Background(), "nope")

		assert.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestEventTypeService_GetAll(t *testing.T) {
	f := newEventTypeFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.EventType{
			{ID: "et-1", Name: "Intro Call"},
			{ID: "et-2", Name: "Deep Dive"},
		}, nil)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.EventTypes, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}

func TestEventTypeService_Update(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }

	t.Run("successful update", func(t *testing.T) {
		f := newEventTypeFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, "Renamed", fields[model.FieldName])

				return nil
			})

		err := f.svc.Update(context.Background(), dto.UpdateEventTypeRequest{Name: "Renamed"}, "et-1")

		assert.NoError(t, err)
	})

	t.Run("slug taken by another event type", func(t *testing.T) {
		f := newEventTypeFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.EventType{ID: "et-other"}, nil)

		err := f.svc.Update(context.Background(), dto.UpdateEventTypeRequest{Slug: "taken"}, "et-1")

		assert.Error(t, err)
		assert.True(t, failure.IsConflict(err))
	})

	t.Run("keeping own slug is allowed", func(t *testing.T) {
		f := newEventTypeFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.EventType{ID: "et-1"}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Update(context.Background(), dto.UpdateEventTypeRequest{Slug: "intro-call"}, "et-1")

		assert.NoError(t, err)
	})

	t.Run("empty request", func(t *testing.T) {
		f := newEventTypeFixture(t)

		err := f.svc.Update(context.Background(), dto.UpdateEventTypeRequest{}, "et-1")

		assert.Error(t, err)
	})

	t.Run("unknown event type", func(t *testing.T) {
		f := newEventTypeFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Update(context.Background(), dto.UpdateEventTypeRequest{IsActive: boolPtr(false)}, "et-404")

		assert.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestEventTypeService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		f := newEventTypeFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, f.svc.Delete(context.Background(), "et-1"))
	})

	t.Run("unknown event type", func(t *testing.T) {
		f := newEventTypeFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Delete(context.Background(), "et-404")

		assert.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestEventTypeService_SetDates(t *testing.T) {
	t.Run("replaces the allowlist", func(t *testing.T) {
		f := newEventTypeFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.dateRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.dateRepo.EXPECT().
			InsertBulk(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, dates []model.EventTypeDate) error {
				assert.Len(t, dates, 2)
				assert.Equal(t, "2030-01-07", dates[0].Date)
				assert.Equal(t, "et-1", dates[0].EventTypeID)

				return nil
			})

		err := f.svc.SetDates(context.Background(), dto.SetEventTypeDatesRequest{
			Dates: []string{"2030-01-07", "2030-01-14"},
		}, "et-1")

		assert.NoError(t, err)
	})

	t.Run("unknown event type", func(t *testing.T) {
		f := newEventTypeFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.SetDates(context.Background(), dto.SetEventTypeDatesRequest{Dates: []string{"2030-01-07"}}, "et-404")

		assert.Error(t, err)
	})
}

func TestEventTypeService_GetDates(t *testing.T) {
	f := newEventTypeFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
	f.dateRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.EventTypeDate{
			{ID: "d-1", EventTypeID: "et-1", Date: "2030-01-07"},
			{ID: "d-2", EventTypeID: "et-1", Date: "2030-01-14"},
		}, nil)

	res, err := f.svc.GetDates(context.Background(), "et-1")

	assert.NoError(t, err)
	assert.Equal(t, "et-1", res.EventTypeID)
	assert.Equal(t, []string{"2030-01-07", "2030-01-14"}, res.Dates)
}
