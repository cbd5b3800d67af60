package payout

import (
	"net/http"

	"seatsafe/infras/otel"
	"seatsafe/internal/domains/payout/model/dto"
	"seatsafe/internal/domains/payout/service"
	"seatsafe/shared/constant"
	gDto "seatsafe/shared/dto"
	"seatsafe/shared/validator"
	"seatsafe/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payout
	otel    otel.Otel
}

func New(service service.Payout, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payouts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePayout)
		routerGroup.Get("/", handler.GetPayouts)
	})
}

// CreatePayout opens a payout request for the actor's organization.
// @Summary Request a payout
// @Description Open a pending payout request against the organization's available balance.
// @Tags Payout
// @Accept json
// @Produce json
// @Param request body dto.CreatePayoutRequest true "Create Payout Request"
// @Success 201 {object} response.Data[dto.PayoutResponse] "Payout request created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/payouts [post]
// @Security BearerAuth
func (handler *Handler) CreatePayout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePayout")
	defer scope.End()

	req := dto.CreatePayoutRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	actor := gDto.ActorFromContext(ctx)

	payout, err := handler.service.Create(ctx, actor, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create payout request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payout request created successfully by user " + actor.ID)

	response.WithJSON(w, http.StatusCreated, payout)
}

// GetPayouts lists the organization's payout requests.
// @Summary Get payout requests
// @Description Retrieve the organization's payout requests with pagination.
// @Tags Payout
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetPayoutsResponse] "List of payout requests"
// @Failure 403 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/payouts [get]
// @Security BearerAuth
func (handler *Handler) GetPayouts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayouts")
	defer scope.End()

	actor := gDto.ActorFromContext(ctx)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	payouts, err := handler.service.GetAll(ctx, actor, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payout requests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payout requests retrieved successfully")

	response.WithJSON(w, http.StatusOK, payouts)
}
