package eventtype

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"apelcal/infras/otel"
	"apelcal/internal/domains/eventtype/model"
	"apelcal/internal/domains/eventtype/model/dto"
	"apelcal/internal/domains/eventtype/service"
	"apelcal/shared"
	"apelcal/shared/constant"
	gDto "apelcal/shared/dto"
	"apelcal/shared/validator"
	"apelcal/transport/http/response"
)

type Handler struct {
	service service.EventType
	otel    otel.Otel
}

func New(service service.EventType, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/event-types", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetEventTypes)
		routerGroup.Post("/", handler.CreateEventType)
		routerGroup.Get("/public", handler.GetPublicEventTypes)
		routerGroup.Get("/slug/{slug}", handler.GetEventTypeBySlug)
		routerGroup.Get("/{id}", handler.GetEventTypeByID)
		routerGroup.Patch("/{id}", handler.UpdateEventType)
		routerGroup.Delete("/{id}", handler.DeleteEventType)
		routerGroup.Get("/{id}/dates", handler.GetEventTypeDates)
		routerGroup.Put("/{id}/dates", handler.SetEventTypeDates)
	})
}

// CreateEventType handles the creation of a new event type.
// @Summary Create an event type
// @Description Create a new bookable event type with the provided details.
// @Tags EventType
// @Accept json
// @Produce json
// @Param request body dto.CreateEventTypeRequest true "Create Event Type Request"
// @Success 201 {object} response.Data[dto.EventTypeResponse] "Created event type"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/event-types [post]
// @Security BearerAuth
func (handler *Handler) CreateEventType(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEventType")
	defer scope.End()

	req := dto.CreateEventTypeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create event type")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Event type created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetEventTypes retrieves all event types.
// @Summary Get all event types
// @Description Retrieve all event types with optional filtering and pagination.
// @Tags EventType
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param is_active query string false "Filter by active state (true/false)"
// @Success 200 {object} response.Data[dto.GetEventTypesResponse] "List of event types"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/event-types [get]
// @Security BearerAuth
func (handler *Handler) GetEventTypes(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventTypes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if isActive := shared.ConvertStringToBool(request.URL.Query().Get(model.FieldIsActive)); isActive != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *isActive,
			Table:    model.TableName,
		})
	}

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get event types")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetPublicEventTypes retrieves the active event types for the booking page.
// @Summary Get bookable event types
// @Description Retrieve the active event types guests can book.
// @Tags EventType
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetEventTypesResponse] "List of active event types"
// @Failure 500 {object} response.Error
// @Router /v1/event-types/public [get]
func (handler *Handler) GetPublicEventTypes(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPublicEventTypes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get public event types")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetEventTypeByID retrieves an event type by its ID.
// @Summary Get an event type by ID
// @Description Retrieve an event type by its unique identifier.
// @Tags EventType
// @Accept json
// @Produce json
// @Param id path string true "Event Type ID"
// @Success 200 {object} response.Data[dto.EventTypeResponse] "Event type details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/event-types/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetEventTypeByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventTypeByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get event type")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetEventTypeBySlug retrieves an active event type by its slug.
// @Summary Get an event type by slug
// @Description Retrieve an active event type by its public slug.
// @Tags EventType
// @Accept json
// @Produce json
// @Param slug path string true "Event Type Slug"
// @Success 200 {object} response.Data[dto.EventTypeResponse] "Event type details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/event-types/slug/{slug} [get]
func (handler *Handler) GetEventTypeBySlug(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventTypeBySlug")
	defer scope.End()

	slug := chi.URLParam(request, constant.RequestParamSlug)

	res, err := handler.service.GetBySlug(ctx, slug)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateEventType updates an event type.
// @Summary Update an event type
// @Description Update an event type with the provided fields.
// @Tags EventType
// @Accept json
// @Produce json
// @Param id path string true "Event Type ID"
// @Param request body dto.UpdateEventTypeRequest true "Update Event Type Request"
// @Success 200 {object} response.Message "Event type updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/event-types/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateEventType(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEventType")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateEventTypeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update event type")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Event type updated successfully")
}

// DeleteEventType deletes an event type.
// @Summary Delete an event type
// @Description Delete an event type by its unique identifier.
// @Tags EventType
// @Accept json
// @Produce json
// @Param id path string true "Event Type ID"
// @Success 200 {object} response.Message "Event type deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/event-types/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEventType(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEventType")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete event type")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Event type deleted successfully")
}

// GetEventTypeDates retrieves the date allowlist of an event type.
// @Summary Get event type dates
// @Description Retrieve the specific dates an event type is offered on.
// @Tags EventType
// @Accept json
// @Produce json
// @Param id path string true "Event Type ID"
// @Success 200 {object} response.Data[dto.EventTypeDatesResponse] "Event type dates"
// @Failure 500 {object} response.Error
// @Router /v1/event-types/{id}/dates [get]
// @Security BearerAuth
func (handler *Handler) GetEventTypeDates(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventTypeDates")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.GetDates(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get event type dates")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SetEventTypeDates replaces the date allowlist of an event type.
// @Summary Set event type dates
// @Description Replace the specific dates an event type is offered on.
// @Tags EventType
// @Accept json
// @Produce json
// @Param id path string true "Event Type ID"
// @Param request body dto.SetEventTypeDatesRequest true "Set Event Type Dates Request"
// @Success 200 {object} response.Message "Event type dates updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/event-types/{id}/dates [put]
// @Security BearerAuth
func (handler *Handler) SetEventTypeDates(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetEventTypeDates")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.SetEventTypeDatesRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.SetDates(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set event type dates")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Event type dates updated successfully")
}
