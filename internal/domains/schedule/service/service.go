package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"apelcal/config"
	"apelcal/infras/otel"
	availModel "apelcal/internal/domains/availability/model"
	availRepo "apelcal/internal/domains/availability/repository"
	bookingModel "apelcal/internal/domains/booking/model"
	bookingRepo "apelcal/internal/domains/booking/repository"
	etModel "apelcal/internal/domains/eventtype/model"
	etRepo "apelcal/internal/domains/eventtype/repository"
	"apelcal/internal/domains/schedule/model/dto"
	"apelcal/internal/domains/schedule/slot"
	"apelcal/shared"
	"apelcal/shared/constant"
	gDto "apelcal/shared/dto"
	"apelcal/shared/failure"
	"apelcal/shared/timezone"
)

type Schedule interface {
	GetAvailableSlots(ctx context.Context, req dto.GetSlotsRequest) (dto.AvailableSlotsResponse, error)
	IsDateAvailable(ctx context.Context, eventTypeID, date string) (dto.DateAvailabilityResponse, error)
	ListBookableDates(ctx context.Context, eventTypeID string) (dto.BookableDatesResponse, error)
	// Bookable re-derives the available slots for the requested date and
	// verifies the requested start among them, returning the slot end
	// time. Callers still race between this check and their insert; the
	// unique index on active bookings settles that race.
	Bookable(ctx context.Context, eventType etModel.EventType, date, start string) (string, error)
}

type serviceImpl struct {
	eventTypeRepo etRepo.EventType
	dateRepo      etRepo.EventTypeDate
	weeklyRepo    availRepo.WeeklyRule
	overrideRepo  availRepo.DateOverride
	bookingRepo   bookingRepo.Booking
	cfg           *config.Config
	otel          otel.Otel
}

func New(
	eventTypeRepo etRepo.EventType,
	dateRepo etRepo.EventTypeDate,
	weeklyRepo availRepo.WeeklyRule,
	overrideRepo availRepo.DateOverride,
	bookingRepo bookingRepo.Booking,
	cfg *config.Config,
	otel otel.Otel,
) Schedule {
	return &serviceImpl{
		eventTypeRepo: eventTypeRepo,
		dateRepo:      dateRepo,
		weeklyRepo:    weeklyRepo,
		overrideRepo:  overrideRepo,
		bookingRepo:   bookingRepo,
		cfg:           cfg,
		otel:          otel,
	}
}

func (s *serviceImpl) GetAvailableSlots(ctx context.Context, req dto.GetSlotsRequest) (res dto.AvailableSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailableSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.EventTypeID = req.EventTypeID
	res.Date = req.Date
	res.Slots = []slot.Slot{}

	eventType, err := s.getEventType(ctx, req.EventTypeID)
	if err != nil {
		return res, err
	}

	day, err := timezone.Parse(constant.CalendarDateFormat, req.Date)
	if err != nil {
		return res, failure.BadRequestFromString("invalid date") // nolint:wrapcheck
	}

	slots, available, err := s.availableSlots(ctx, eventType, day, req.Date)
	if err != nil {
		return res, err
	}

	res.Available = available

	if slots != nil {
		res.Slots = slots
	}

	return res, nil
}

func (s *serviceImpl) IsDateAvailable(ctx context.Context, eventTypeID, date string) (res dto.DateAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsDateAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.EventTypeID = eventTypeID
	res.Date = date

	eventType, err := s.getEventType(ctx, eventTypeID)
	if err != nil {
		return res, err
	}

	day, err := timezone.Parse(constant.CalendarDateFormat, date)
	if err != nil {
		return res, failure.BadRequestFromString("invalid date") // nolint:wrapcheck
	}

	windows, open, err := s.resolveWindows(ctx, eventType, day, date)
	if err != nil {
		return res, err
	}

	res.Available = open && len(windows) > 0

	return res, nil
}

// ListBookableDates walks the booking window of the event type and keeps
// the dates that resolve to at least one open window. Slot-level
// conflicts are not consulted, a fully booked date still lists.
func (s *serviceImpl) ListBookableDates(ctx context.Context, eventTypeID string) (res dto.BookableDatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListBookableDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.EventTypeID = eventTypeID
	res.Dates = []string{}

	eventType, err := s.getEventType(ctx, eventTypeID)
	if err != nil {
		return res, err
	}

	from := minBookableDate(eventType, timezone.Now())
	to := maxBookableDate(eventType, timezone.Today())

	res.From = from.Format(constant.CalendarDateFormat)
	res.To = to.Format(constant.CalendarDateFormat)

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		date := day.Format(constant.CalendarDateFormat)

		windows, open, err := s.resolveWindows(ctx, eventType, day, date)
		if err != nil {
			return res, err
		}

		if open && len(windows) > 0 {
			res.Dates = append(res.Dates, date)
		}
	}

	return res, nil
}

func (s *serviceImpl) Bookable(ctx context.Context, eventType etModel.EventType, date, start string) (string, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Bookable")
	defer scope.End()

	day, err := timezone.Parse(constant.CalendarDateFormat, date)
	if err != nil {
		return "", failure.BadRequestFromString("invalid date") // nolint:wrapcheck
	}

	if day.Before(minBookableDate(eventType, timezone.Now())) {
		return "", failure.BadRequestFromString("this date does not meet the minimum notice requirement") // nolint:wrapcheck
	}

	if day.After(maxBookableDate(eventType, timezone.Today())) {
		return "", failure.BadRequestFromString("this date is too far in the future") // nolint:wrapcheck
	}

	slots, _, err := s.availableSlots(ctx, eventType, day, date)
	if err != nil {
		return "", err
	}

	start = shared.TrimClock(start)

	for _, sl := range slots {
		if sl.Start == start {
			return sl.End, nil
		}
	}

	return "", failure.Conflict("this time slot is no longer available") // nolint:wrapcheck
}

// availableSlots runs the full pipeline for one date: resolve windows,
// generate raw slots, drop booked starts, and on the current day drop
// starts that are not strictly in the future. The boolean reports
// whether the date had any open window at all, which distinguishes a
// closed date from an available but fully booked one.
func (s *serviceImpl) availableSlots(ctx context.Context, eventType etModel.EventType, day time.Time, date string) ([]slot.Slot, bool, error) {
	windows, open, err := s.resolveWindows(ctx, eventType, day, date)
	if err != nil {
		return nil, false, err
	}

	if !open || len(windows) == 0 {
		return nil, false, nil
	}

	raw, err := slot.GenerateAll(windows, eventType.DurationMinutes)
	if err != nil {
		log.Error().Err(err).Str("event_type_id", eventType.ID).Msg("failed to generate slots")

		return nil, true, failure.BadRequest(err) // nolint:wrapcheck
	}

	bookings, err := s.bookingsForDate(ctx, date)
	if err != nil {
		return nil, true, err
	}

	slots := s.excludeBooked(raw, bookings, eventType)

	if sameDate(day, timezone.Today()) {
		nowClock := timezone.Now().Format(constant.ClockFormat)
		slots = keepStrictlyAfter(slots, nowClock)
	}

	return slots, true, nil
}

// resolveWindows applies the availability rules in priority order: a
// date override wins outright, then the specific-dates allowlist gates
// the date, then the weekly rules for the weekday apply. An override
// that is open without explicit times falls through to the weekly rules.
func (s *serviceImpl) resolveWindows(ctx context.Context, eventType etModel.EventType, day time.Time, date string) ([]slot.Window, bool, error) {
	override, found, err := s.overrideForDate(ctx, date)
	if err != nil {
		return nil, false, err
	}

	if found {
		if !override.IsAvailable {
			return nil, false, nil
		}

		if override.StartTime != nil && override.EndTime != nil {
			return []slot.Window{{Start: *override.StartTime, End: *override.EndTime}}, true, nil
		}
	}

	if eventType.UseSpecificDates {
		allowed, err := s.dateAllowed(ctx, eventType.ID, date)
		if err != nil {
			return nil, false, err
		}

		if !allowed {
			return nil, false, nil
		}
	}

	windows, err := s.weeklyWindows(ctx, weekdayMondayFirst(day))
	if err != nil {
		return nil, false, err
	}

	return windows, len(windows) > 0, nil
}

func (s *serviceImpl) getEventType(ctx context.Context, id string) (etModel.EventType, error) {
	eventType, err := s.eventTypeRepo.Get(ctx, shared.FilterByID(id, etModel.FieldID, etModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event type")

		return eventType, err
	}

	if eventType.ID == "" || !eventType.IsActive {
		return eventType, failure.NotFound("event type not found") // nolint:wrapcheck
	}

	return eventType, nil
}

func (s *serviceImpl) overrideForDate(ctx context.Context, date string) (availModel.DateOverride, bool, error) {
	override, err := s.overrideRepo.Get(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    availModel.OverrideFieldDate,
				Value:    date,
				Operator: gDto.FilterOperatorEq,
				Table:    availModel.OverrideTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get date override")

		return override, false, err
	}

	return override, override.ID != "", nil
}

func (s *serviceImpl) dateAllowed(ctx context.Context, eventTypeID, date string) (bool, error) {
	allowed, err := s.dateRepo.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    etModel.DateFieldEventTypeID,
				Value:    eventTypeID,
				Operator: gDto.FilterOperatorEq,
				Table:    etModel.DateTableName,
			},
			gDto.Filter{
				Field:    etModel.DateFieldDate,
				Value:    date,
				Operator: gDto.FilterOperatorEq,
				Table:    etModel.DateTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check event type date allowlist")

		return false, err
	}

	return allowed, nil
}

func (s *serviceImpl) weeklyWindows(ctx context.Context, dayOfWeek int) ([]slot.Window, error) {
	rules, err := s.weeklyRepo.GetAll(
		ctx,
		gDto.QueryParams{SortBy: availModel.WeeklyFieldStartTime, SortDir: gDto.SortDirAsc},
		gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    availModel.WeeklyFieldDayOfWeek,
					Value:    dayOfWeek,
					Operator: gDto.FilterOperatorEq,
					Table:    availModel.WeeklyTableName,
				},
				gDto.Filter{
					Field:    availModel.WeeklyFieldIsActive,
					Value:    true,
					Operator: gDto.FilterOperatorEq,
					Table:    availModel.WeeklyTableName,
				},
			},
		},
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get weekly rules")

		return nil, err
	}

	windows := make([]slot.Window, len(rules))
	for i, rule := range rules {
		windows[i] = slot.Window{Start: rule.StartTime, End: rule.EndTime}
	}

	return windows, nil
}

func (s *serviceImpl) bookingsForDate(ctx context.Context, date string) ([]bookingModel.Booking, error) {
	statuses := []string{bookingModel.StatusConfirmed}

	// Pending bookings hold a real time in the admin list without
	// blocking the slot. The flag makes them block too.
	if s.cfg.App.Booking.PendingBlocks {
		statuses = append(statuses, bookingModel.StatusPending)
	}

	bookings, err := s.bookingRepo.GetAll(
		ctx,
		gDto.QueryParams{},
		gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    bookingModel.FieldDate,
					Value:    date,
					Operator: gDto.FilterOperatorEq,
					Table:    bookingModel.TableName,
				},
				gDto.Filter{
					Field:    bookingModel.FieldStatus,
					Value:    statuses,
					Operator: gDto.FilterOperatorIn,
					Table:    bookingModel.TableName,
				},
			},
		},
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for date")

		return nil, err
	}

	return bookings, nil
}

// excludeBooked drops candidate slots taken by existing bookings. The
// default exclusion key is the exact start time, so a booking of a
// different duration that merely overlaps a candidate does not block
// it. The overlap flag switches to half-open interval intersection with
// the event type buffers padding each candidate.
func (s *serviceImpl) excludeBooked(candidates []slot.Slot, bookings []bookingModel.Booking, eventType etModel.EventType) []slot.Slot {
	if len(bookings) == 0 {
		return candidates
	}

	if !s.cfg.App.Booking.OverlapCheck {
		booked := make(map[string]struct{}, len(bookings))
		for _, booking := range bookings {
			booked[shared.TrimClock(booking.StartTime)] = struct{}{}
		}

		kept := make([]slot.Slot, 0, len(candidates))

		for _, candidate := range candidates {
			if _, taken := booked[candidate.Start]; !taken {
				kept = append(kept, candidate)
			}
		}

		return kept
	}

	kept := make([]slot.Slot, 0, len(candidates))

	for _, candidate := range candidates {
		start, err := slot.ParseClock(candidate.Start)
		if err != nil {
			continue
		}

		end, err := slot.ParseClock(candidate.End)
		if err != nil {
			continue
		}

		start -= eventType.BufferBefore
		end += eventType.BufferAfter

		blocked := false

		for _, booking := range bookings {
			bookedStart, err := slot.ParseClock(booking.StartTime)
			if err != nil {
				continue
			}

			bookedEnd, err := slot.ParseClock(booking.EndTime)
			if err != nil {
				continue
			}

			if slot.Overlaps(start, end, bookedStart, bookedEnd) {
				blocked = true

				break
			}
		}

		if !blocked {
			kept = append(kept, candidate)
		}
	}

	return kept
}

func keepStrictlyAfter(slots []slot.Slot, clock string) []slot.Slot {
	kept := make([]slot.Slot, 0, len(slots))

	for _, s := range slots {
		if s.Start > clock {
			kept = append(kept, s)
		}
	}

	return kept
}

// minBookableDate is tomorrow for notice periods within a day,
// otherwise the calendar date reached after the notice period elapses.
func minBookableDate(eventType etModel.EventType, now time.Time) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if eventType.MinNoticeHours <= 24 {
		return today.AddDate(0, 0, 1)
	}

	earliest := now.Add(time.Duration(eventType.MinNoticeHours) * time.Hour)

	return time.Date(earliest.Year(), earliest.Month(), earliest.Day(), 0, 0, 0, 0, earliest.Location())
}

func maxBookableDate(eventType etModel.EventType, today time.Time) time.Time {
	return today.AddDate(0, 0, eventType.MaxDaysAhead)
}

// weekdayMondayFirst maps the weekday to Monday=0 through Sunday=6, the
// convention the availability rows are stored in.
func weekdayMondayFirst(day time.Time) int {
	return (int(day.Weekday()) + 6) % 7
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
