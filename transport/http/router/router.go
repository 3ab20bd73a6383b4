package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"apelcal/internal/handlers/auth"
	"apelcal/internal/handlers/availability"
	"apelcal/internal/handlers/booking"
	"apelcal/internal/handlers/eventtype"
	"apelcal/internal/handlers/schedule"
	"apelcal/internal/handlers/settings"
	"apelcal/transport/http/middleware"
	"apelcal/transport/http/response"
)

type DomainHandlers struct {
	Auth         auth.Handler
	EventType    eventtype.Handler
	Availability availability.Handler
	Booking      booking.Handler
	Schedule     schedule.Handler
	Settings     settings.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.CORS)
	router.Use(r.AppMiddleware.RateLimit)

	// Auth has to sit on the root router: the permission lookup resolves
	// the full route pattern, mount prefix included.
	router.Use(r.AuthRole.Auth)
	router.Use(r.AuthRole.RBAC)

	router.Get("/health", func(writer http.ResponseWriter, request *http.Request) {
		response.WithMessage(writer, http.StatusOK, "OK")
	})

	router.Get("/swagger/*", httpSwagger.Handler())

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.EventType.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Schedule.Router(routerGroup)
		r.DomainHandlers.Settings.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthRole:       authRole,
	}
}
