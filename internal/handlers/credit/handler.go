package credit

import (
	"cowork/infras/otel"
	"cowork/internal/domains/ledger/service"
	"cowork/shared"
	"cowork/shared/constant"
	"cowork/shared/failure"
	"cowork/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Ledger
	otel    otel.Otel
}

func New(service service.Ledger, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/credits/me", handler.GetMyCredits)
	router.Get("/organizations/{id}/credits", handler.GetOrganizationCredits)
}

// GetMyCredits returns the caller's personal credit balance.
// @Summary Get my credit balance
// @Tags Credit
// @Produce json
// @Success 200 {object} response.Data[dto.PersonalBalanceResponse] "Personal balance"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/credits/me [get]
// @Security BearerAuth
func (handler *Handler) GetMyCredits(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyCredits")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == constant.Empty {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	balance, err := handler.service.AvailablePersonal(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("user_id", userID).Msg("failed to get personal balance")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, balance)
}

// GetOrganizationCredits returns an organization's balance for a month.
// @Summary Get organization credit balance
// @Description Available to members of the organization and staff.
// @Tags Credit
// @Produce json
// @Param id path string true "Organization ID"
// @Param month query string false "Month (YYYY-MM), defaults to the current month"
// @Success 200 {object} response.Data[dto.OrganizationBalanceResponse] "Organization balance"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/organizations/{id}/credits [get]
// @Security BearerAuth
func (handler *Handler) GetOrganizationCredits(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrganizationCredits")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	month, err := shared.ParseMonth(r.URL.Query().Get(constant.RequestParamMonth))
	if err != nil {
		response.WithError(w, failure.BadRequest(err))

		return
	}

	balance, err := handler.service.AvailableOrganization(ctx, id, month)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("organization_id", id).Msg("failed to get organization balance")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, balance)
}
