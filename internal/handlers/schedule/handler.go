package schedule

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"apelcal/infras/otel"
	"apelcal/internal/domains/schedule/model/dto"
	"apelcal/internal/domains/schedule/service"
	"apelcal/shared/constant"
	"apelcal/shared/validator"
	"apelcal/transport/http/response"
)

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/schedule/{id}", func(routerGroup chi.Router) {
		routerGroup.Get("/slots", handler.GetAvailableSlots)
		routerGroup.Get("/dates", handler.GetBookableDates)
		routerGroup.Get("/availability", handler.GetDateAvailability)
	})
}

// GetAvailableSlots lists the open slots of an event type for a date.
// @Summary Get available slots
// @Description Retrieve the bookable slots of an event type for the given date.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param id path string true "Event Type ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailableSlotsResponse] "Available slots"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedule/{id}/slots [get]
func (handler *Handler) GetAvailableSlots(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableSlots")
	defer scope.End()

	req := dto.GetSlotsRequest{
		EventTypeID: chi.URLParam(request, constant.RequestParamID),
		Date:        request.URL.Query().Get(constant.RequestParamDate),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.GetAvailableSlots(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available slots")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookableDates lists the dates that still have at least one open slot.
// @Summary Get bookable dates
// @Description Retrieve the upcoming dates on which the event type can be booked.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param id path string true "Event Type ID"
// @Success 200 {object} response.Data[dto.BookableDatesResponse] "Bookable dates"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedule/{id}/dates [get]
func (handler *Handler) GetBookableDates(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookableDates")
	defer scope.End()

	eventTypeID := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.ListBookableDates(ctx, eventTypeID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookable dates")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetDateAvailability tells whether a date has any open slot.
// @Summary Check date availability
// @Description Check whether the event type has at least one open slot on the given date.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param id path string true "Event Type ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.DateAvailabilityResponse] "Date availability"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedule/{id}/availability [get]
func (handler *Handler) GetDateAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDateAvailability")
	defer scope.End()

	eventTypeID := chi.URLParam(request, constant.RequestParamID)
	date := request.URL.Query().Get(constant.RequestParamDate)

	if err := validator.ValidateVar(date, "required,caldate"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate date")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.IsDateAvailable(ctx, eventTypeID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check date availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
