package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"apelcal/config"
	"apelcal/infras/otel/mocks"
	availModel "apelcal/internal/domains/availability/model"
	availMocks "apelcal/internal/domains/availability/mocks"
	bookingModel "apelcal/internal/domains/booking/model"
	bookingMocks "apelcal/internal/domains/booking/mocks"
	etModel "apelcal/internal/domains/eventtype/model"
	etMocks "apelcal/internal/domains/eventtype/mocks"
	"apelcal/internal/domains/schedule/model/dto"
	"apelcal/internal/domains/schedule/service"
	"apelcal/shared/constant"
	gDto "apelcal/shared/dto"
	"apelcal/shared/failure"
	"apelcal/shared/timezone"
)

// 2030-01-07 is a Monday, comfortably in the future.
const monday = "2030-01-07"

type fixture struct {
	eventTypeRepo *etMocks.MockEventType
	dateRepo      *etMocks.MockEventTypeDate
	weeklyRepo    *availMocks.MockWeeklyRule
	overrideRepo  *availMocks.MockDateOverride
	bookingRepo   *bookingMocks.MockBooking
	cfg           *config.Config
	svc           service.Schedule
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		eventTypeRepo: etMocks.NewMockEventType(ctrl),
		dateRepo:      etMocks.NewMockEventTypeDate(ctrl),
		weeklyRepo:    availMocks.NewMockWeeklyRule(ctrl),
		overrideRepo:  availMocks.NewMockDateOverride(ctrl),
		bookingRepo:   bookingMocks.NewMockBooking(ctrl),
		cfg:           &config.Config{},
	}

	f.svc = service.New(f.eventTypeRepo, f.dateRepo, f.weeklyRepo, f.overrideRepo, f.bookingRepo, f.cfg, mocks.NewOtel())

	return f
}

func weeklyEventType() etModel.EventType {
	return etModel.EventType{
		ID:              "et-1",
		Name:            "Intro Call",
		DurationMinutes: 30,
		MinNoticeHours:  24,
		MaxDaysAhead:    60,
		IsActive:        true,
	}
}

func morningRule() availModel.WeeklyRule {
	return availModel.WeeklyRule{ID: "av-1", DayOfWeek: 0, StartTime: "09:00:00", EndTime: "12:00:00", IsActive: true}
}

func (f *fixture) expectEventType(eventType etModel.EventType) {
	f.eventTypeRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(eventType, nil)
}

func (f *fixture) expectNoOverride() {
	f.overrideRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(availModel.DateOverride{}, nil)
}

func (f *fixture) expectWeekly(rules ...availModel.WeeklyRule) {
	f.weeklyRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(rules, nil)
}

func (f *fixture) expectBookings(bookings ...bookingModel.Booking) {
	f.bookingRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(bookings, nil)
}

func TestGetAvailableSlots_WeeklyRules(t *testing.T) {
	f := newFixture(t)

	f.expectEventType(weeklyEventType())
	f.expectNoOverride()
	f.expectWeekly(morningRule())
	f.expectBookings()

	res, err := f.svc.GetAvailableSlots(context.Background(), dto.GetSlotsRequest{EventTypeID: "et-1", Date: monday})

	require.NoError(t, err)
	assert.True(t, res.Available)
	require.Len(t, res.Slots, 6)
	assert.Equal(t, "09:00", res.Slots[0].Start)
	assert.Equal(t, "09:30", res.Slots[0].End)
	assert.Equal(t, "09:00 - 09:30", res.Slots[0].Display)
	assert.Equal(t, "11:30", res.Slots[5].Start)
}

func TestGetAvailableSlots_ConfirmedBookingExcludesStart(t *testing.T) {
	f := newFixture(t)

	f.expectEventType(weeklyEventType())
	f.expectNoOverride()
	f.expectWeekly(morningRule())
	f.expectBookings(bookingModel.Booking{
		ID:        "b-1",
		Date:      monday,
		StartTime: "10:00:00",
		EndTime:   "10:30:00",
		Status:    bookingModel.StatusConfirmed,
	})

	res, err := f.svc.GetAvailableSlots(context.Background(), dto.GetSlotsRequest{EventTypeID: "et-1", Date: monday})

	require.NoError(t, err)
	require.Len(t, res.Slots, 5)

	for _, s := range res.Slots {
		assert.NotEqual(t, "10:00", s.Start)
	}
}

func TestGetAvailableSlots_OverlappingBookingDoesNotBlockByDefault(t *testing.T) {
	f := newFixture(t)

	// A 60 minute booking from another event type overlaps 10:30 but
	// only the 10:00 start key is excluded.
	f.expectEventType(weeklyEventType())
	f.expectNoOverride()
	f.expectWeekly(morningRule())
	f.expectBookings(bookingModel.Booking{
		ID:        "b-1",
		Date:      monday,
		StartTime: "10:00:00",
		EndTime:   "11:00:00",
		Status:    bookingModel.StatusConfirmed,
	})

	res, err := f.svc.GetAvailableSlots(context.Background(), dto.GetSlotsRequest{EventTypeID: "et-1", Date: monday})

	require.NoError(t, err)

	starts := make([]string, len(res.Slots))
	for i, s := range res.Slots {
		starts[i] = s.Start
	}

	assert.NotContains(t, starts, "10:00")
	assert.Contains(t, starts, "10:30")
}

func TestGetAvailableSlots_OverlapCheckBlocksIntersections(t *testing.T) {
	f := newFixture(t)
	f.cfg.App.Booking.OverlapCheck = true

	f.expectEventType(weeklyEventType())
	f.expectNoOverride()
	f.expectWeekly(morningRule())
	f.expectBookings(bookingModel.Booking{
		ID:        "b-1",
		Date:      monday,
		StartTime: "10:00:00",
		EndTime:   "11:00:00",
		Status:    bookingModel.StatusConfirmed,
	})

	res, err := f.svc.GetAvailableSlots(context.Background(), dto.GetSlotsRequest{EventTypeID: "et-1", Date: monday})

	require.NoError(t, err)

	starts := make([]string, len(res.Slots))
	for i, s := range res.Slots {
		starts[i] = s.Start
	}

	assert.NotContains(t, starts, "10:00")
	assert.NotContains(t, starts, "10:30")
	assert.Contains(t, starts, "09:30")
	assert.Contains(t, starts, "11:00")
}

func TestGetAvailableSlots_BuffersWidenTheOverlapFootprint(t *testing.T) {
	f := newFixture(t)
	f.cfg.App.Booking.OverlapCheck = true

	// With 15 minute buffers a candidate occupies start-15 .. end+15, so
	// the slots adjacent to a 10:00-10:30 booking are blocked too.
	eventType := weeklyEventType()
	eventType.BufferBefore = 15
	eventType.BufferAfter = 15

	f.expectEventType(eventType)
	f.expectNoOverride()
	f.expectWeekly(morningRule())
	f.expectBookings(bookingModel.Booking{
		ID:        "b-1",
		Date:      monday,
		StartTime: "10:00:00",
		EndTime:   "10:30:00",
		Status:    bookingModel.StatusConfirmed,
	})

	res, err := f.svc.GetAvailableSlots(context.Background(), dto.GetSlotsRequest{EventTypeID: "et-1", Date: monday})

	require.NoError(t, err)

	starts := make([]string, len(res.Slots))
	for i, s := range res.Slots {
		starts[i] = s.Start
	}

	assert.NotContains(t, starts, "09:30")
	assert.NotContains(t, starts, "10:00")
	assert.NotContains(t, starts, "10:30")
	assert.Contains(t, starts, "09:00")
	assert.Contains(t, starts, "11:00")
}

func TestGetAvailableSlots_ClosedOverride(t *testing.T) {
	f := newFixture(t)

	f.expectEventType(weeklyEventType())
	f.overrideRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(availModel.DateOverride{ID: "ov-1", Date: monday, IsAvailable: false}, nil)

	res, err := f.svc.GetAvailableSlots(context.Background(), dto.GetSlotsRequest{EventTypeID: "et-1", Date: monday})

	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.Empty(t, res.Slots)
}

func TestGetAvailableSlots_OverrideWindowReplacesWeeklyRules(t *testing.T) {
	f := newFixture(t)

	start := "14:00:00"
	end := "15:00:00"

	f.expectEventType(weeklyEventType())
	f.overrideRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(availModel.DateOverride{ID: "ov-1", Date: monday, IsAvailable: true, StartTime: &start, EndTime: &end}, nil)
	f.expectBookings()

	res, err := f.svc.GetAvailableSlots(context.Background(), dto.GetSlotsRequest{EventTypeID: "et-1", Date: monday})

	require.NoError(t, err)
	require.Len(t, res.Slots, 2)
	assert.Equal(t, "14:00", res.Slots[0].Start)
	assert.Equal(t, "14:30", res.Slots[1].Start)
}

func TestGetAvailableSlots_OpenOverrideWithoutTimesUsesWeeklyRules(t *testing.T) {
	f := newFixture(t)

	f.expectEventType(weeklyEventType())
	f.overrideRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(availModel.DateOverride{ID: "ov-1", Date: monday, IsAvailable: true}, nil)
	f.expectWeekly(morningRule())
	f.expectBookings()

	res, err := f.svc.GetAvailableSlots(context.Background(), dto.GetSlotsRequest{EventTypeID: "et-1", Date: monday})

	require.NoError(t, err)
	assert.Len(t, res.Slots, 6)
}

func TestGetAvailableSlots_SpecificDatesMode(t *testing.T) {
	t.Run("date absent from allowlist is closed", func(t *testing.T) {
		f := newFixture(t)

		eventType := weeklyEventType()
		eventType.UseSpecificDates = true

		f.expectEventType(eventType)
		f.expectNoOverride()
		f.dateRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		res, err := f.svc.GetAvailableSlots(context.Background(), dto.GetSlotsRequest{EventTypeID: "et-1", Date: monday})

		require.NoError(t, err)
		assert.False(t, res.Available)
		assert.Empty(t, res.Slots)
	})

	t.Run("allowlisted date uses weekly windows", func(t *testing.T) {
		f := newFixture(t)

		eventType := weeklyEventType()
		eventType.UseSpecificDates = true

		f.expectEventType(eventType)
		f.expectNoOverride()
		f.dateRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.expectWeekly(morningRule())
		f.expectBookings()

		res, err := f.svc.GetAvailableSlots(context.Background(), dto.GetSlotsRequest{EventTypeID: "et-1", Date: monday})

		require.NoError(t, err)
		assert.True(t, res.Available)
		assert.Len(t, res.Slots, 6)
	})
}

func TestGetAvailableSlots_TodayKeepsOnlyFutureStarts(t *testing.T) {
	f := newFixture(t)

	today := timezone.Today()
	date := today.Format(constant.CalendarDateFormat)

	rule := availModel.WeeklyRule{
		ID:        "av-1",
		DayOfWeek: (int(today.Weekday()) + 6) % 7,
		StartTime: "00:00",
		EndTime:   "23:30",
		IsActive:  true,
	}

	f.expectEventType(weeklyEventType())
	f.expectNoOverride()
	f.expectWeekly(rule)
	f.expectBookings()

	res, err := f.svc.GetAvailableSlots(context.Background(), dto.GetSlotsRequest{EventTypeID: "et-1", Date: date})

	require.NoError(t, err)

	nowClock := timezone.Now().Format(constant.ClockFormat)
	for _, s := range res.Slots {
		assert.Greater(t, s.Start, nowClock)
	}
}

func TestGetAvailableSlots_FullyBookedStaysAvailable(t *testing.T) {
	f := newFixture(t)

	// Every slot taken: the date is still "available", only the slot
	// list is empty. A closed date reports available=false instead.
	f.expectEventType(weeklyEventType())
	f.expectNoOverride()
	f.expectWeekly(availModel.WeeklyRule{ID: "av-1", DayOfWeek: 0, StartTime: "09:00", EndTime: "10:00", IsActive: true})
	f.expectBookings(
		bookingModel.Booking{ID: "b-1", StartTime: "09:00:00", EndTime: "09:30:00", Status: bookingModel.StatusConfirmed},
		bookingModel.Booking{ID: "b-2", StartTime: "09:30:00", EndTime: "10:00:00", Status: bookingModel.StatusConfirmed},
	)

	res, err := f.svc.GetAvailableSlots(context.Background(), dto.GetSlotsRequest{EventTypeID: "et-1", Date: monday})

	require.NoError(t, err)
	assert.True(t, res.Available)
	assert.Empty(t, res.Slots)
}

func TestGetAvailableSlots_UnknownEventType(t *testing.T) {
	f := newFixture(t)

	f.eventTypeRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(etModel.EventType{}, nil)

	_, err := f.svc.GetAvailableSlots(context.Background(), dto.GetSlotsRequest{EventTypeID: "missing", Date: monday})

	assert.True(t, failure.IsNotFound(err))
}

func TestGetAvailableSlots_PendingBlocksFlag(t *testing.T) {
	f := newFixture(t)
	f.cfg.App.Booking.PendingBlocks = true

	var captured gDto.FilterGroup

	f.expectEventType(weeklyEventType())
	f.expectNoOverride()
	f.expectWeekly(morningRule())
	f.bookingRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]bookingModel.Booking, error) {
			captured = filter

			return nil, nil
		})

	_, err := f.svc.GetAvailableSlots(context.Background(), dto.GetSlotsRequest{EventTypeID: "et-1", Date: monday})

	require.NoError(t, err)
	require.Len(t, captured.Filters, 2)

	statusFilter, ok := captured.Filters[1].(gDto.Filter)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{bookingModel.StatusConfirmed, bookingModel.StatusPending}, statusFilter.Value)
}

func TestIsDateAvailable(t *testing.T) {
	t.Run("closed override wins over weekly rules", func(t *testing.T) {
		f := newFixture(t)

		f.expectEventType(weeklyEventType())
		f.overrideRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availModel.DateOverride{ID: "ov-1", Date: monday, IsAvailable: false}, nil)

		res, err := f.svc.IsDateAvailable(context.Background(), "et-1", monday)

		require.NoError(t, err)
		assert.False(t, res.Available)
	})

	t.Run("weekday with active rules is available", func(t *testing.T) {
		f := newFixture(t)

		f.expectEventType(weeklyEventType())
		f.expectNoOverride()
		f.expectWeekly(morningRule())

		res, err := f.svc.IsDateAvailable(context.Background(), "et-1", monday)

		require.NoError(t, err)
		assert.True(t, res.Available)
	})

	t.Run("weekday without rules is unavailable", func(t *testing.T) {
		f := newFixture(t)

		f.expectEventType(weeklyEventType())
		f.expectNoOverride()
		f.expectWeekly()

		res, err := f.svc.IsDateAvailable(context.Background(), "et-1", monday)

		require.NoError(t, err)
		assert.False(t, res.Available)
	})
}

func TestBookable(t *testing.T) {
	t.Run("date before minimum notice", func(t *testing.T) {
		f := newFixture(t)

		today := timezone.Today().Format(constant.CalendarDateFormat)

		_, err := f.svc.Bookable(context.Background(), weeklyEventType(), today, "09:00")

		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("date beyond lookahead horizon", func(t *testing.T) {
		f := newFixture(t)

		eventType := weeklyEventType()
		eventType.MaxDaysAhead = 7

		farOut := timezone.Today().AddDate(0, 0, 30).Format(constant.CalendarDateFormat)

		_, err := f.svc.Bookable(context.Background(), eventType, farOut, "09:00")

		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("start among available slots returns the end time", func(t *testing.T) {
		f := newFixture(t)

		day := nextWeekday(timezone.Today().AddDate(0, 0, 2), time.Monday)
		date := day.Format(constant.CalendarDateFormat)

		f.expectNoOverride()
		f.expectWeekly(morningRule())
		f.expectBookings()

		end, err := f.svc.Bookable(context.Background(), weeklyEventType(), date, "09:30")

		require.NoError(t, err)
		assert.Equal(t, "10:00", end)
	})

	t.Run("start already taken is a conflict", func(t *testing.T) {
		f := newFixture(t)

		day := nextWeekday(timezone.Today().AddDate(0, 0, 2), time.Monday)
		date := day.Format(constant.CalendarDateFormat)

		f.expectNoOverride()
		f.expectWeekly(morningRule())
		f.expectBookings(bookingModel.Booking{
			ID:        "b-1",
			StartTime: "09:30:00",
			EndTime:   "10:00:00",
			Status:    bookingModel.StatusConfirmed,
		})

		_, err := f.svc.Bookable(context.Background(), weeklyEventType(), date, "09:30")

		assert.True(t, failure.IsConflict(err))
	})
}

func TestListBookableDates(t *testing.T) {
	f := newFixture(t)

	eventType := weeklyEventType()
	eventType.MaxDaysAhead = 7

	// Only Mondays carry a rule; everything else resolves to zero
	// windows.
	f.overrideRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(availModel.DateOverride{}, nil).
		AnyTimes()
	f.weeklyRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]availModel.WeeklyRule, error) {
			dayFilter, ok := filter.Filters[0].(gDto.Filter)
			if ok && dayFilter.Value == 0 {
				return []availModel.WeeklyRule{morningRule()}, nil
			}

			return nil, nil
		}).
		AnyTimes()
	f.expectEventType(eventType)

	res, err := f.svc.ListBookableDates(context.Background(), "et-1")

	require.NoError(t, err)

	for _, date := range res.Dates {
		day, parseErr := time.Parse(constant.CalendarDateFormat, date)
		require.NoError(t, parseErr)
		assert.Equal(t, time.Monday, day.Weekday())
	}
}

func nextWeekday(from time.Time, weekday time.Weekday) time.Time {
	day := from
	for day.Weekday() != weekday {
		day = day.AddDate(0, 0, 1)
	}

	return day
}
