// Package http provides http transport for insights
package http

import (
	stdhttp "net/http"

	"tubelens/internal/modkit/httpkit"
	"tubelens/internal/services/insights/domain"
	svc "tubelens/internal/services/insights/service"
)

// Register mounts insights endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// archived runs in a window
	httpkit.PostJSON[domain.RunsInput](r, "/runs", h.runs)

	// sentiment buckets over archived quotes
	httpkit.PostJSON[domain.SentimentInput](r, "/sentiment", h.sentiment)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /insights/runs Insights insightsRuns
// @Summary List archived analysis runs
// @Tags Insights
// @Accept json
// @Produce json
// @Param payload body domain.RunsInput true "Query"
// @Success 200 {array} domain.Run "ok"
// @Router /insights/runs [post]
func (h *handlers) runs(r *stdhttp.Request, in domain.RunsInput) (any, error) {
	return h.svc.Runs(r.Context(), in)
}

// swagger:route POST /insights/sentiment Insights insightsSentiment
// @Summary Sentiment buckets over archived insights
// @Tags Insights
// @Accept json
// @Produce json
// @Param payload body domain.SentimentInput true "Query"
// @Success 200 {array} domain.SentimentRow "ok"
// @Router /insights/sentiment [post]
func (h *handlers) sentiment(r *stdhttp.Request, in domain.SentimentInput) (any, error) {
	return h.svc.Sentiment(r.Context(), in)
}
