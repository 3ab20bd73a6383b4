package availability

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"apelcal/infras/otel"
	"apelcal/internal/domains/availability/model"
	"apelcal/internal/domains/availability/model/dto"
	"apelcal/internal/domains/availability/service"
	"apelcal/shared/constant"
	gDto "apelcal/shared/dto"
	"apelcal/shared/validator"
	"apelcal/transport/http/response"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/weekly", handler.GetWeeklyRules)
		routerGroup.Post("/weekly", handler.CreateWeeklyRule)
		routerGroup.Patch("/weekly/{id}", handler.UpdateWeeklyRule)
		routerGroup.Delete("/weekly/{id}", handler.DeleteWeeklyRule)
		routerGroup.Get("/overrides", handler.GetDateOverrides)
		routerGroup.Put("/overrides", handler.SetDateOverride)
		routerGroup.Delete("/overrides/{id}", handler.DeleteDateOverride)
	})
}

// CreateWeeklyRule adds a recurring weekly availability window.
// @Summary Create a weekly rule
// @Description Add a recurring availability window for a day of the week.
// @Tags Availability
// @Accept json
// @Produce json
// @Param request body dto.CreateWeeklyRuleRequest true "Create Weekly Rule Request"
// @Success 201 {object} response.Data[dto.WeeklyRuleResponse] "Created weekly rule"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/weekly [post]
// @Security BearerAuth
func (handler *Handler) CreateWeeklyRule(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateWeeklyRule")
	defer scope.End()

	req := dto.CreateWeeklyRuleRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CreateWeeklyRule(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create weekly rule")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Weekly rule created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetWeeklyRules retrieves all weekly rules.
// @Summary Get weekly rules
// @Description Retrieve all recurring weekly availability windows.
// @Tags Availability
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetWeeklyRulesResponse] "List of weekly rules"
// @Failure 500 {object} response.Error
// @Router /v1/availability/weekly [get]
// @Security BearerAuth
func (handler *Handler) GetWeeklyRules(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWeeklyRules")
	defer scope.End()

	res, err := handler.service.GetWeeklyRules(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get weekly rules")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateWeeklyRule updates a weekly rule.
// @Summary Update a weekly rule
// @Description Update a recurring availability window with the provided fields.
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Weekly Rule ID"
// @Param request body dto.UpdateWeeklyRuleRequest true "Update Weekly Rule Request"
// @Success 200 {object} response.Message "Weekly rule updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/weekly/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateWeeklyRule(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateWeeklyRule")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateWeeklyRuleRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdateWeeklyRule(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update weekly rule")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Weekly rule updated successfully")
}

// DeleteWeeklyRule deletes a weekly rule.
// @Summary Delete a weekly rule
// @Description Delete a recurring availability window.
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Weekly Rule ID"
// @Success 200 {object} response.Message "Weekly rule deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/weekly/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteWeeklyRule(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteWeeklyRule")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.DeleteWeeklyRule(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete weekly rule")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Weekly rule deleted successfully")
}

// SetDateOverride upserts a date override.
// @Summary Set a date override
// @Description Close a date, or replace its hours for that day. A second request for the same date replaces the previous override.
// @Tags Availability
// @Accept json
// @Produce json
// @Param request body dto.CreateDateOverrideRequest true "Set Date Override Request"
// @Success 200 {object} response.Data[dto.DateOverrideResponse] "Stored date override"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/overrides [put]
// @Security BearerAuth
func (handler *Handler) SetDateOverride(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetDateOverride")
	defer scope.End()

	req := dto.CreateDateOverrideRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.SetDateOverride(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set date override")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetDateOverrides retrieves date overrides.
// @Summary Get date overrides
// @Description Retrieve date overrides with optional date filtering and pagination.
// @Tags Availability
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetDateOverridesResponse] "List of date overrides"
// @Failure 500 {object} response.Error
// @Router /v1/availability/overrides [get]
// @Security BearerAuth
func (handler *Handler) GetDateOverrides(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDateOverrides")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if date := request.URL.Query().Get(constant.RequestParamDate); date != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.OverrideFieldDate,
			Operator: gDto.FilterOperatorEq,
			Value:    date,
			Table:    model.OverrideTableName,
		})
	}

	res, err := handler.service.GetDateOverrides(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get date overrides")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteDateOverride deletes a date override.
// @Summary Delete a date override
// @Description Remove a date override, restoring the weekly rules for that date.
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Date Override ID"
// @Success 200 {object} response.Message "Date override deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/overrides/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDateOverride(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDateOverride")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.DeleteDateOverride(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete date override")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Date override deleted successfully")
}
