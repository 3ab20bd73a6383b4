package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"apelcal/config"
	"apelcal/infras/kafka"
	"apelcal/infras/otel"
	"apelcal/internal/domains/booking/model"
	"apelcal/internal/domains/booking/model/dto"
	"apelcal/internal/domains/booking/repository"
	etModel "apelcal/internal/domains/eventtype/model"
	etRepo "apelcal/internal/domains/eventtype/repository"
	scheduleService "apelcal/internal/domains/schedule/service"
	"apelcal/shared"
	"apelcal/shared/cache"
	"apelcal/shared/constant"
	gDto "apelcal/shared/dto"
	"apelcal/shared/failure"
	"apelcal/shared/timezone"
)

const (
	cacheGetBooking     = "booking:get"
	cacheGetAllBookings = "booking:get_all"
	cacheBookingStats   = "booking:stats"
)

const (
	eventBookingCreated   = "booking.created"
	eventBookingConfirmed = "booking.confirmed"
	eventBookingCancelled = "booking.cancelled"
	eventBookingCompleted = "booking.completed"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetByToken(ctx context.Context, token string) (dto.BookingResponse, error)
	CancelByID(ctx context.Context, id string, req dto.CancelBookingRequest) error
	CancelByToken(ctx context.Context, token string, req dto.CancelBookingRequest) error
	Approve(ctx context.Context, id string) error
	MarkCompleted(ctx context.Context, id string) error
	Stats(ctx context.Context) (dto.BookingStatsResponse, error)
	ExportCSV(ctx context.Context, filter gDto.FilterGroup) ([]byte, error)
}

type serviceImpl struct {
	repo          repository.Booking
	eventTypeRepo etRepo.EventType
	schedule      scheduleService.Schedule
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
	producer      kafka.Producer
}

func New(
	repo repository.Booking,
	eventTypeRepo etRepo.EventType,
	schedule scheduleService.Schedule,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	producer kafka.Producer,
) Booking {
	return &serviceImpl{
		repo:          repo,
		eventTypeRepo: eventTypeRepo,
		schedule:      schedule,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
		producer:      producer,
	}
}

// Create books a slot for a guest. The slot check and the insert are
// not atomic; when two guests race for the same slot the unique index
// on active bookings rejects the second insert and the guest gets a
// conflict instead of a silent double booking.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	eventType, err := s.eventTypeRepo.Get(ctx, shared.FilterByID(req.EventTypeID, etModel.FieldID, etModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event type")

		return res, err
	}

	if eventType.ID == "" || !eventType.IsActive {
		return res, failure.NotFound("event type not found") // nolint:wrapcheck
	}

	endTime, err := s.schedule.Bookable(ctx, eventType, req.Date, req.StartTime)
	if err != nil {
		return res, err
	}

	booking := req.ToModel(endTime, eventType.RequiresApproval)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, err
	}

	booking.EventTypeName = eventType.Name
	booking.EventTypeColor = eventType.Color
	booking.EventTypeDuration = eventType.DurationMinutes

	s.publish(ctx, eventBookingCreated, booking)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBookings)
		shared.InvalidateCaches(c, s.cache, cacheBookingStats)
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBookings, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, err
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, err
	}

	res.FromModels(bookings, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, err
	}

	if booking.ID == "" {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetByToken(ctx context.Context, token string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, filterByToken(token))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking by token")

		return res, err
	}

	if booking.ID == "" {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) CancelByID(ctx context.Context, id string, req dto.CancelBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.cancel(ctx, shared.FilterByID(id, model.FieldID, model.TableName), req.Reason)
}

// CancelByToken is the self-service path: the opaque token from the
// confirmation is the only credential the guest holds.
func (s *serviceImpl) CancelByToken(ctx context.Context, token string, req dto.CancelBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelByToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.cancel(ctx, filterByToken(token), req.Reason)
}

func (s *serviceImpl) cancel(ctx context.Context, filter gDto.FilterGroup, reason string) error {
	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking for cancellation")

		return err
	}

	if booking.ID == "" {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status == model.StatusCancelled {
		return failure.Conflict("booking is already cancelled") // nolint:wrapcheck
	}

	if booking.Status == model.StatusCompleted {
		return failure.Conflict("booking is already completed") // nolint:wrapcheck
	}

	now := timezone.Now()

	fields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		model.FieldCancelledAt:   now,
		model.FieldCancelReason:  reason,
		constant.FieldModifiedAt: now,
	}

	if err := s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return err
	}

	booking.Status = model.StatusCancelled

	s.publish(ctx, eventBookingCancelled, booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, booking.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBookings)
		shared.InvalidateCaches(c, s.cache, cacheBookingStats)
	}()

	return nil
}

// Approve flips a pending booking to confirmed.
func (s *serviceImpl) Approve(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Approve")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, model.StatusPending, model.StatusConfirmed, eventBookingConfirmed)
}

// MarkCompleted records that a confirmed appointment took place. There
// is no automatic sweep, the operator marks bookings explicitly.
func (s *serviceImpl) MarkCompleted(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkCompleted")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, model.StatusConfirmed, model.StatusCompleted, eventBookingCompleted)
}

func (s *serviceImpl) transition(ctx context.Context, id, from, to, event string) error {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking for status change")

		return err
	}

	if booking.ID == "" {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status != from {
		return failure.Conflict("booking is not " + from) // nolint:wrapcheck
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)

	fields := map[string]any{
		model.FieldStatus:        to,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: admin,
	}

	if err := s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to change booking status")

		return err
	}

	booking.Status = to

	s.publish(ctx, event, booking)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBookings)
		shared.InvalidateCaches(c, s.cache, cacheBookingStats)
	}()

	return nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.BookingStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheBookingStats, "all")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	today := timezone.Today().Format(constant.CalendarDateFormat)

	counts := []struct {
		target *int
		filter gDto.FilterGroup
	}{
		{&res.Total, gDto.FilterGroup{}},
		{&res.Pending, filterByStatus(model.StatusPending)},
		{&res.Confirmed, filterByStatus(model.StatusConfirmed)},
		{&res.Cancelled, filterByStatus(model.StatusCancelled)},
		{&res.Completed, filterByStatus(model.StatusCompleted)},
		{&res.Upcoming, gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldStatus,
					Value:    model.StatusConfirmed,
					Operator: gDto.FilterOperatorEq,
					Table:    model.TableName,
				},
				gDto.Filter{
					Field:    model.FieldDate,
					Value:    today,
					Operator: gDto.FilterOperatorGreaterEq,
					Table:    model.TableName,
				},
			},
		}},
	}

	for _, count := range counts {
		total, err := s.repo.Count(ctx, count.filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count bookings for stats")

			return res, err
		}

		*count.target = total
	}

	activeEventTypes, err := s.eventTypeRepo.Count(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    etModel.FieldIsActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    etModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count active event types")

		return res, err
	}

	res.EventTypes = activeEventTypes

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking stats to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) ExportCSV(ctx context.Context, filter gDto.FilterGroup) (data []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportCSV")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.repo.GetAll(
		ctx,
		gDto.QueryParams{SortBy: model.TableName + "." + model.FieldDate, SortDir: gDto.SortDirDesc, ThenBy: model.TableName + "." + model.FieldStartTime},
		filter,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for export")

		return nil, err
	}

	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)

	header := []string{"id", "event_type", "date", "start_time", "end_time", "invitee_name", "invitee_email", "invitee_phone", "status", "notes", "created_at"}
	if err = writer.Write(header); err != nil {
		return nil, err
	}

	for _, booking := range bookings {
		record := []string{
			booking.ID,
			booking.EventTypeName,
			booking.Date,
			shared.TrimClock(booking.StartTime),
			shared.TrimClock(booking.EndTime),
			booking.InviteeName,
			booking.InviteeEmail,
			booking.InviteePhone,
			booking.Status,
			booking.Notes,
			timezone.Format(booking.CreatedAt, constant.DateFormat),
		}

		if err = writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()

	if err = writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (s *serviceImpl) publish(ctx context.Context, event string, booking model.Booking) {
	payload, err := json.Marshal(dto.NewBookingEvent(event, booking))
	if err != nil {
		log.Error().Err(err).Str("event", event).Msg("failed to marshal booking event")

		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.producer.Publish(c, kafka.Message{Key: booking.ID, Value: payload}); err != nil {
			log.Error().Err(err).Str("event", event).Msg("failed to publish booking event")
		}
	}()
}

func filterByToken(token string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCancelToken,
				Value:    token,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func filterByStatus(status string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    status,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
