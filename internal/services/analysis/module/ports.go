package module

import (
	"context"

	"tubelens/internal/services/analysis/domain"
	asvc "tubelens/internal/services/analysis/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptAnalysisPort struct{ svc asvc.Service }

// Search runs the full analysis pipeline
func (a adaptAnalysisPort) Search(ctx context.Context, in domain.SearchRequest) (domain.SearchResponse, error) {
	return a.svc.Search(ctx, in)
}
