package booking

import (
	"cowork/infras/otel"
	"cowork/internal/domains/booking/model"
	"cowork/internal/domains/booking/model/dto"
	"cowork/internal/domains/booking/service"
	"cowork/shared"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/failure"
	"cowork/shared/validator"
	"cowork/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	formatCSV = "csv"
)

var sortableFields = []string{
	model.FieldStartTime,
	model.FieldEndTime,
	model.FieldCreditsCharged,
	model.FieldStatus,
	constant.FieldCreatedAt,
}

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/mybookings", handler.GetMyBookings)
		routerGroup.Get("/external", handler.GetGuestReport)
		routerGroup.Post("/external/export", handler.ExportGuestReport)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
	})
}

// CreateBooking reserves a room and charges the resolved credit source.
// @Summary Create a new booking
// @Description Reserve a room for a half-open interval. Personal, organization and external billing are supported.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created"
// @Failure 400 {object} response.Error "invalid_interval, invalid_duration, past_start_time, invalid_guest_info"
// @Failure 402 {object} response.Error "insufficient_credits"
// @Failure 403 {object} response.Error "billing_not_permitted"
// @Failure 409 {object} response.Error "room_unavailable"
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", req.RoomID).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("booking " + booking.ID + " created")

	response.WithJSON(w, http.StatusCreated, booking)
}

// GetBookings lists bookings across all members.
// @Summary Get all bookings
// @Description Staff listing with optional filtering and pagination.
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_id query string false "Filter by room ID"
// @Param requester_id query string false "Filter by requester ID"
// @Param status query string false "Filter by stored status (confirmed, cancelled)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSortBy(constant.DefaultValueSortBy, sortableFields...)

	filterGroup := listFilter(r, model.FieldRoomID, model.FieldRequesterID, model.FieldStatus)

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetMyBookings lists the caller's own bookings.
// @Summary Get my bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_id query string false "Filter by room ID"
// @Param status query string false "Filter by stored status (confirmed, cancelled)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of the caller's bookings"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/mybookings [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == constant.Empty {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSortBy(constant.DefaultValueSortBy, sortableFields...)

	filterGroup := listFilter(r, model.FieldRoomID, model.FieldStatus)
	filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
		Field:    model.FieldRequesterID,
		Operator: gDto.FilterOperatorEq,
		Value:    userID,
		Table:    model.TableName,
	})

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("user_id", userID).Msg("failed to get user bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking visible to the caller.
// @Summary Get booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// CancelBooking cancels a booking and refunds its credits.
// @Summary Cancel a booking
// @Description Only the booking owner may cancel, up to the grace period after start.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.CancelBookingResponse] "Cancellation result"
// @Failure 403 {object} response.Error "not_owner"
// @Failure 404 {object} response.Error "booking_not_found"
// @Failure 409 {object} response.Error "already_cancelled, cancellation_window_expired"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Cancel(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("booking " + id + " cancelled")

	response.WithJSON(w, http.StatusOK, res)
}

// GetGuestReport lists external guest bookings for a month.
// @Summary Monthly external guest report
// @Description Returns JSON by default, or a CSV attachment with format=csv.
// @Tags Booking
// @Produce json
// @Produce text/csv
// @Param month query string false "Month (YYYY-MM), defaults to the current month"
// @Param format query string false "Set to csv for a file download"
// @Success 200 {object} response.Data[dto.GuestReportResponse] "Guest report"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/external [get]
// @Security BearerAuth
func (handler *Handler) GetGuestReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestReport")
	defer scope.End()

	month, err := shared.ParseMonth(r.URL.Query().Get(constant.RequestParamMonth))
	if err != nil {
		response.WithError(w, failure.BadRequest(err))

		return
	}

	report, err := handler.service.GuestReport(ctx, month)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("month", r.URL.Query().Get(constant.RequestParamMonth)).Msg("failed to build guest report")

		response.WithError(w, err)

		return
	}

	if r.URL.Query().Get(constant.RequestParamFormat) != formatCSV {
		response.WithJSON(w, http.StatusOK, report)

		return
	}

	data, err := report.CSV()
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to encode guest report")

		response.WithError(w, err)

		return
	}

	response.WithCSV(w, "guests-"+report.Month+".csv", data)
}

// ExportGuestReport uploads the monthly guest report to object storage.
// @Summary Export monthly external guest report
// @Tags Booking
// @Produce json
// @Param month query string false "Month (YYYY-MM), defaults to the current month"
// @Success 201 {object} response.Data[dto.ExportResponse] "Uploaded report location"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/external/export [post]
// @Security BearerAuth
func (handler *Handler) ExportGuestReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportGuestReport")
	defer scope.End()

	month, err := shared.ParseMonth(r.URL.Query().Get(constant.RequestParamMonth))
	if err != nil {
		response.WithError(w, failure.BadRequest(err))

		return
	}

	res, err := handler.service.ExportGuestReport(ctx, month)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export guest report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("guest report exported to " + res.URL)

	response.WithJSON(w, http.StatusCreated, res)
}

// listFilter turns the named query parameters into equality filters on the bookings table.
func listFilter(r *http.Request, fields ...string) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range fields {
		value := r.URL.Query().Get(field)
		if value == constant.Empty {
			continue
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    field,
			Operator: gDto.FilterOperatorEq,
			Value:    value,
			Table:    model.TableName,
		})
	}

	return filterGroup
}
