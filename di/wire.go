//go:build wireinject
// +build wireinject

package di

import (
	"apelcal/config"
	"apelcal/infras/jwt"
	"apelcal/infras/kafka"
	"apelcal/infras/otel"
	"apelcal/infras/postgres"
	"apelcal/infras/redis"
	"apelcal/infras/s3"
	"apelcal/permissions"
	"apelcal/shared/cache"
	"apelcal/transport/http"
	"apelcal/transport/http/middleware"
	"apelcal/transport/http/router"

	"github.com/google/wire"

	authService "apelcal/internal/domains/auth/service"
	availabilityRepository "apelcal/internal/domains/availability/repository"
	availabilityService "apelcal/internal/domains/availability/service"
	bookingRepository "apelcal/internal/domains/booking/repository"
	bookingService "apelcal/internal/domains/booking/service"
	eventTypeRepository "apelcal/internal/domains/eventtype/repository"
	eventTypeService "apelcal/internal/domains/eventtype/service"
	scheduleService "apelcal/internal/domains/schedule/service"
	settingsRepository "apelcal/internal/domains/settings/repository"
	settingsService "apelcal/internal/domains/settings/service"

	authHandler "apelcal/internal/handlers/auth"
	availabilityHandler "apelcal/internal/handlers/availability"
	bookingHandler "apelcal/internal/handlers/booking"
	eventTypeHandler "apelcal/internal/handlers/eventtype"
	scheduleHandler "apelcal/internal/handlers/schedule"
	settingsHandler "apelcal/internal/handlers/settings"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	permissions.Get,
)

var eventTypeDomain = wire.NewSet(
	eventTypeRepository.New,
	eventTypeRepository.NewDate,
	eventTypeService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityRepository.NewWeekly,
	availabilityRepository.NewOverride,
	availabilityService.New,
)

var scheduleDomain = wire.NewSet(
	scheduleService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var settingsDomain = wire.NewSet(
	settingsRepository.New,
	settingsService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	eventTypeDomain,
	availabilityDomain,
	scheduleDomain,
	bookingDomain,
	settingsDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	eventTypeHandler.New,
	availabilityHandler.New,
	bookingHandler.New,
	scheduleHandler.New,
	settingsHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
