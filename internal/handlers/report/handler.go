package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hms/infras/otel"
	"hms/internal/domains/report/service"
	"hms/shared/constant"
	"hms/transport/http/response"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/summary", handler.GetSummary)
	})
}

// GetSummary returns the dashboard aggregates.
// @Summary Get summary report
// @Description Retrieve room status counts, booking status counts and total recorded revenue.
// @Tags Report
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.SummaryResponse] "Summary report"
// @Failure 500 {object} response.Error
// @Router /v1/reports/summary [get]
// @Security BearerAuth
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	summary, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get summary report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Summary report retrieved successfully")

	response.WithJSON(w, http.StatusOK, summary)
}
