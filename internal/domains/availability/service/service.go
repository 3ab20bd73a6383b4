package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"apelcal/config"
	"apelcal/infras/otel"
	"apelcal/internal/domains/availability/model"
	"apelcal/internal/domains/availability/model/dto"
	"apelcal/internal/domains/availability/repository"
	"apelcal/shared"
	"apelcal/shared/cache"
	"apelcal/shared/constant"
	gDto "apelcal/shared/dto"
	"apelcal/shared/failure"
)

const (
	cacheWeeklyRules  = "availability:weekly"
	cacheGetOverrides = "availability:overrides"
)

type Availability interface {
	CreateWeeklyRule(ctx context.Context, req dto.CreateWeeklyRuleRequest) (dto.WeeklyRuleResponse, error)
	GetWeeklyRules(ctx context.Context) (dto.GetWeeklyRulesResponse, error)
	UpdateWeeklyRule(ctx context.Context, req dto.UpdateWeeklyRuleRequest, id string) error
	DeleteWeeklyRule(ctx context.Context, id string) error
	SetDateOverride(ctx context.Context, req dto.CreateDateOverrideRequest) (dto.DateOverrideResponse, error)
	GetDateOverrides(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDateOverridesResponse, error)
	DeleteDateOverride(ctx context.Context, id string) error
}

type serviceImpl struct {
	weeklyRepo   repository.WeeklyRule
	overrideRepo repository.DateOverride
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(weeklyRepo repository.WeeklyRule, overrideRepo repository.DateOverride, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Availability {
	return &serviceImpl{
		weeklyRepo:   weeklyRepo,
		overrideRepo: overrideRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) CreateWeeklyRule(ctx context.Context, req dto.CreateWeeklyRuleRequest) (res dto.WeeklyRuleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateWeeklyRule")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.StartTime >= req.EndTime {
		return res, failure.BadRequestFromString("end time must be after start time") // nolint:wrapcheck
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)
	rule := req.ToModel(admin)

	if err = s.weeklyRepo.Insert(ctx, rule); err != nil {
		log.Error().Err(err).Msg("failed to create weekly rule")

		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheWeeklyRules)
	}()

	res.FromModel(rule)

	return res, nil
}

func (s *serviceImpl) GetWeeklyRules(ctx context.Context) (res dto.GetWeeklyRulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetWeeklyRules")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheWeeklyRules, "all")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	rules, err := s.weeklyRepo.GetAll(
		ctx,
		gDto.QueryParams{SortBy: model.WeeklyFieldDayOfWeek, SortDir: gDto.SortDirAsc, ThenBy: model.WeeklyFieldStartTime},
		gDto.FilterGroup{},
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get weekly rules")

		return res, err
	}

	res.FromModels(rules)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save weekly rules to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateWeeklyRule(ctx context.Context, req dto.UpdateWeeklyRuleRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateWeeklyRule")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateWeeklyRuleRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if req.StartTime != "" && req.EndTime != "" && req.StartTime >= req.EndTime {
		return failure.BadRequestFromString("end time must be after start time") // nolint:wrapcheck
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)
	filter := shared.FilterByID(id, model.WeeklyFieldID, model.WeeklyTableName)

	exist, err := s.weeklyRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if weekly rule exists")

		return err
	}

	if !exist {
		return failure.NotFound("availability rule not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, admin)
	if err := s.weeklyRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update weekly rule")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheWeeklyRules)
	}()

	return nil
}

func (s *serviceImpl) DeleteWeeklyRule(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteWeeklyRule")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.WeeklyFieldID, model.WeeklyTableName)

	exist, err := s.weeklyRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if weekly rule exists")

		return err
	}

	if !exist {
		return failure.NotFound("availability rule not found") // nolint:wrapcheck
	}

	if err := s.weeklyRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete weekly rule")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheWeeklyRules)
	}()

	return nil
}

// SetDateOverride upserts the override for a date. Each date carries at
// most one override, so a second request for the same date replaces it.
func (s *serviceImpl) SetDateOverride(ctx context.Context, req dto.CreateDateOverrideRequest) (res dto.DateOverrideResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetDateOverride")
	defer scope.End()
	defer scope.TraceIfError(err)

	if (req.StartTime == nil) != (req.EndTime == nil) {
		return res, failure.BadRequestFromString("start time and end time must be provided together") // nolint:wrapcheck
	}

	if req.StartTime != nil && *req.StartTime >= *req.EndTime {
		return res, failure.BadRequestFromString("end time must be after start time") // nolint:wrapcheck
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)
	dateFilter := filterByDate(req.Date)

	existing, err := s.overrideRepo.Get(ctx, dateFilter, model.OverrideFieldID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing date override")

		return res, err
	}

	override := req.ToModel(admin)

	if existing.ID != "" {
		override.ID = existing.ID

		fields := map[string]any{
			model.OverrideFieldIsAvailable: override.IsAvailable,
			model.OverrideFieldStartTime:   override.StartTime,
			model.OverrideFieldEndTime:     override.EndTime,
			model.OverrideFieldReason:      override.Reason,
			constant.FieldModifiedAt:       override.ModifiedAt,
			constant.FieldModifiedBy:       admin,
		}

		if err = s.overrideRepo.Update(ctx, fields, dateFilter); err != nil {
			log.Error().Err(err).Msg("failed to update date override")

			return res, err
		}
	} else {
		if err = s.overrideRepo.Insert(ctx, override); err != nil {
			log.Error().Err(err).Msg("failed to create date override")

			return res, err
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetOverrides)
	}()

	res.FromModel(override)

	return res, nil
}

func (s *serviceImpl) GetDateOverrides(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDateOverridesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDateOverrides")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetOverrides, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.overrideRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count date overrides")

		return res, err
	}

	overrides, err := s.overrideRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get date overrides")

		return res, err
	}

	res.FromModels(overrides, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save date overrides to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) DeleteDateOverride(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteDateOverride")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.OverrideFieldID, model.OverrideTableName)

	exist, err := s.overrideRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if date override exists")

		return err
	}

	if !exist {
		return failure.NotFound("date override not found") // nolint:wrapcheck
	}

	if err := s.overrideRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete date override")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetOverrides)
	}()

	return nil
}

func filterByDate(date string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.OverrideFieldDate,
				Value:    date,
				Operator: gDto.FilterOperatorEq,
				Table:    model.OverrideTableName,
			},
		},
	}
}
