package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"apelcal/config"
	"apelcal/infras/otel"
	"apelcal/internal/domains/eventtype/model"
	"apelcal/internal/domains/eventtype/model/dto"
	"apelcal/internal/domains/eventtype/repository"
	"apelcal/shared"
	"apelcal/shared/cache"
	"apelcal/shared/constant"
	gDto "apelcal/shared/dto"
	"apelcal/shared/failure"
)

const (
	cacheGetEventType     = "event_type:get"
	cacheGetAllEventTypes = "event_type:get_all"
	cacheEventTypeDates   = "event_type:dates"
)

type EventType interface {
	Create(ctx context.Context, req dto.CreateEventTypeRequest) (dto.EventTypeResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEventTypesResponse, error)
	Get(ctx context.Context, id string) (dto.EventTypeResponse, error)
	GetBySlug(ctx context.Context, slug string) (dto.EventTypeResponse, error)
	Update(ctx context.Context, req dto.UpdateEventTypeRequest, id string) error
	Delete(ctx context.Context, id string) error
	SetDates(ctx context.Context, req dto.SetEventTypeDatesRequest, id string) error
	GetDates(ctx context.Context, id string) (dto.EventTypeDatesResponse, error)
}

type serviceImpl struct {
	repo     repository.EventType
	dateRepo repository.EventTypeDate
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.EventType, dateRepo repository.EventTypeDate, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) EventType {
	return &serviceImpl{
		repo:     repo,
		dateRepo: dateRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEventTypeRequest) (res dto.EventTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)
	eventType := req.ToModel(admin)

	taken, err := s.repo.Exist(ctx, filterBySlug(eventType.Slug))
	if err != nil {
		log.Error().Err(err).Msg("failed to check event type slug")

		return res, err
	}

	if taken {
		return res, failure.Conflict("an event type with this slug already exists") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, eventType); err != nil {
		log.Error().Err(err).Msg("failed to create event type")

		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllEventTypes)
	}()

	res.FromModel(eventType)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEventTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllEventTypes, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count event types")

		return res, err
	}

	eventTypes, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get event types")

		return res, err
	}

	res.FromModels(eventTypes, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save event types to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EventTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetEventType, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	eventType, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event type")

		return res, err
	}

	if eventType.ID == "" {
		return res, failure.NotFound("event type not found") // nolint:wrapcheck
	}

	res.FromModel(eventType)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save event type to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetBySlug(ctx context.Context, slug string) (res dto.EventTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBySlug")
	defer scope.End()
	defer scope.TraceIfError(err)

	eventType, err := s.repo.Get(ctx, filterBySlug(slug))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event type by slug")

		return res, err
	}

	if eventType.ID == "" || !eventType.IsActive {
		return res, failure.NotFound("event type not found") // nolint:wrapcheck
	}

	res.FromModel(eventType)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEventTypeRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateEventTypeRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if event type exists")

		return err
	}

	if !exist {
		return failure.NotFound("event type not found") // nolint:wrapcheck
	}

	if req.Slug != "" {
		current, err := s.repo.Get(ctx, filterBySlug(req.Slug), model.FieldID)
		if err != nil {
			log.Error().Err(err).Msg("failed to check event type slug")

			return err
		}

		if current.ID != "" && current.ID != id {
			return failure.Conflict("an event type with this slug already exists") // nolint:wrapcheck
		}
	}

	updatedFields := shared.TransformFields(req, admin)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update event type")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetEventType, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete event type cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllEventTypes)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if event type exists")

		return err
	}

	if !exist {
		return failure.NotFound("event type not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete event type")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetEventType, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete event type cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllEventTypes)
		shared.InvalidateCaches(c, s.cache, cacheEventTypeDates)
	}()

	return nil
}

// SetDates replaces the full date allowlist of an event type.
func (s *serviceImpl) SetDates(ctx context.Context, req dto.SetEventTypeDatesRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if event type exists")

		return err
	}

	if !exist {
		return failure.NotFound("event type not found") // nolint:wrapcheck
	}

	dateFilter := shared.FilterByID(id, model.DateFieldEventTypeID, model.DateTableName)

	if err := s.dateRepo.Delete(ctx, dateFilter); err != nil {
		log.Error().Err(err).Msg("failed to clear event type dates")

		return err
	}

	if err := s.dateRepo.InsertBulk(ctx, req.ToModels(id, admin)); err != nil {
		log.Error().Err(err).Msg("failed to insert event type dates")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheEventTypeDates)
	}()

	return nil
}

func (s *serviceImpl) GetDates(ctx context.Context, id string) (res dto.EventTypeDatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheEventTypeDates, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	dates, err := s.dateRepo.GetAll(
		ctx,
		gDto.QueryParams{SortBy: model.DateFieldDate, SortDir: gDto.SortDirAsc},
		shared.FilterByID(id, model.DateFieldEventTypeID, model.DateTableName),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get event type dates")

		return res, err
	}

	res.EventTypeID = id
	res.Dates = make([]string, len(dates))

	for i, date := range dates {
		res.Dates[i] = date.Date
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save event type dates to cache")
		}
	}()

	return res, nil
}

func filterBySlug(slug string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldSlug,
				Value:    slug,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
