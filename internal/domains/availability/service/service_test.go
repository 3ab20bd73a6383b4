package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"apelcal/config"
	"apelcal/infras/otel/mocks"
	availabilityMocks "apelcal/internal/domains/availability/mocks"
	"apelcal/internal/domains/availability/model"
	"apelcal/internal/domains/availability/model/dto"
	"apelcal/internal/domains/availability/service"
	"apelcal/shared/cache"
	cacheMocks "apelcal/shared/cache/mocks"
	gDto "apelcal/shared/dto"
	"apelcal/shared/failure"
)

type availabilityFixture struct {
	weeklyRepo   *availabilityMocks.MockWeeklyRule
	overrideRepo *availabilityMocks.MockDateOverride
	cache        *cacheMocks.MockRedisCache
	svc          service.Availability
}

func newAvailabilityFixture(t *testing.T) *availabilityFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &availabilityFixture{
		weeklyRepo:   availabilityMocks.NewMockWeeklyRule(ctrl),
		overrideRepo: availabilityMocks.NewMockDateOverride(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Cache writes and invalidation run on detached goroutines.
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.weeklyRepo, f.overrideRepo, cfg, f.cache, mocks.NewOtel())

	return f
}

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

func TestAvailabilityService_CreateWeeklyRule(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		f.weeklyRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rule model.WeeklyRule) error {
				assert.Equal(t, 0, rule.DayOfWeek)
				assert.Equal(t, "09:00", rule.StartTime)
				assert.True(t, rule.IsActive)

				return nil
			})

		res, err := f.svc.CreateWeeklyRule(context.Background(), dto.CreateWeeklyRuleRequest{
			DayOfWeek: intPtr(0),
			StartTime: "09:00",
			EndTime:   "17:00",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, "17:00", res.EndTime)
	})

	t.Run("end before start", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		_, err := f.svc.CreateWeeklyRule(context.Background(), dto.CreateWeeklyRuleRequest{
			DayOfWeek: intPtr(0),
			StartTime: "17:00",
			EndTime:   "09:00",
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		f.weeklyRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		_, err := f.svc.CreateWeeklyRule(context.Background(), dto.CreateWeeklyRuleRequest{
			DayOfWeek: intPtr(2),
			StartTime: "09:00",
			EndTime:   "12:00",
		})

		assert.Error(t, err)
	})
}

func TestAvailabilityService_GetWeeklyRules(t *testing.T) {
	f := newAvailabilityFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
	f.weeklyRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.WeeklyRule, error) {
			assert.Equal(t, model.WeeklyFieldDayOfWeek, params.SortBy)
			assert.Equal(t, model.WeeklyFieldStartTime, params.ThenBy)

			return []model.WeeklyRule{
				{ID: "r-1", DayOfWeek: 0, StartTime: "09:00", EndTime: "12:00"},
				{ID: "r-2", DayOfWeek: 0, StartTime: "13:00", EndTime: "17:00"},
			}, nil
		})

	res, err := f.svc.GetWeeklyRules(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res.Rules, 2)
	assert.Equal(t, 2, res.TotalData)
}

func TestAvailabilityService_UpdateWeeklyRule(t *testing.T) {
	t.Run("successful update", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		f.weeklyRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.weeklyRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, "10:00", fields[model.WeeklyFieldStartTime])

				return nil
			})

		err := f.svc.UpdateWeeklyRule(context.Background(), dto.UpdateWeeklyRuleRequest{StartTime: "10:00"}, "r-1")

		assert.NoError(t, err)
	})

	t.Run("inverted times", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		err := f.svc.UpdateWeeklyRule(context.Background(), dto.UpdateWeeklyRuleRequest{
			StartTime: "17:00",
			EndTime:   "09:00",
		}, "r-1")

		assert.Error(t, err)
	})

	t.Run("unknown rule", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		f.weeklyRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.UpdateWeeklyRule(context.Background(), dto.UpdateWeeklyRuleRequest{StartTime: "10:00"}, "r-404")

		assert.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestAvailabilityService_DeleteWeeklyRule(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		f.weeklyRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.weeklyRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, f.svc.DeleteWeeklyRule(context.Background(), "r-1"))
	})

	t.Run("unknown rule", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		f.weeklyRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.DeleteWeeklyRule(context.Background(), "r-404")

		assert.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestAvailabilityService_SetDateOverride(t *testing.T) {
	t.Run("creates a new override", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		f.overrideRepo.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.DateOverride{}, nil)
		f.overrideRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, override model.DateOverride) error {
				assert.Equal(t, "2030-01-07", override.Date)
				assert.False(t, override.IsAvailable)
				assert.Equal(t, "public holiday", override.Reason)

				return nil
			})

		res, err := f.svc.SetDateOverride(context.Background(), dto.CreateDateOverrideRequest{
			Date:        "2030-01-07",
			IsAvailable: false,
			Reason:      "public holiday",
		})

		assert.NoError(t, err)
		assert.Equal(t, "2030-01-07", res.Date)
	})

	t.Run("replaces the override for the same date", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		f.overrideRepo.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.DateOverride{ID: "o-1"}, nil)
		f.overrideRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, true, fields[model.OverrideFieldIsAvailable])

				return nil
			})

		res, err := f.svc.SetDateOverride(context.Background(), dto.CreateDateOverrideRequest{
			Date:        "2030-01-07",
			IsAvailable: true,
			StartTime:   strPtr("10:00"),
			EndTime:     strPtr("14:00"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "o-1", res.ID)
	})

	t.Run("start time without end time", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		_, err := f.svc.SetDateOverride(context.Background(), dto.CreateDateOverrideRequest{
			Date:        "2030-01-07",
			IsAvailable: true,
			StartTime:   strPtr("10:00"),
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("inverted times", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		_, err := f.svc.SetDateOverride(context.Background(), dto.CreateDateOverrideRequest{
			Date:        "2030-01-07",
			IsAvailable: true,
			StartTime:   strPtr("14:00"),
			EndTime:     strPtr("10:00"),
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestAvailabilityService_GetDateOverrides(t *testing.T) {
	f := newAvailabilityFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
	f.overrideRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.overrideRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.DateOverride{
			{ID: "o-1", Date: "2030-01-07", IsAvailable: false, Reason: "public holiday"},
		}, nil)

	res, err := f.svc.GetDateOverrides(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Overrides, 1)
	assert.Equal(t, 1, res.TotalData)
}

func TestAvailabilityService_DeleteDateOverride(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		f.overrideRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.overrideRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, f.svc.DeleteDateOverride(context.Background(), "o-1"))
	})

	t.Run("unknown override", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		f.overrideRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.DeleteDateOverride(context.Background(), "o-404")

		assert.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})
}
