// Package http provides http transport for analysis
package http

import (
	stdhttp "net/http"

	"tubelens/internal/modkit/httpkit"
	"tubelens/internal/services/analysis/domain"
	svc "tubelens/internal/services/analysis/service"
)

// Register mounts analysis endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// full pipeline: search, fetch, window, analyze
	httpkit.PostJSON[domain.SearchRequest](r, "/search", h.search)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /analysis/search Analysis analysisSearch
// @Summary Search videos and extract comment insights
// @Tags Analysis
// @Accept json
// @Produce json
// @Param payload body domain.SearchRequest true "Query"
// @Success 200 {object} domain.SearchResponse "ok"
// @Router /analysis/search [post]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchRequest) (any, error) {
	return h.svc.Search(r.Context(), in)
}
