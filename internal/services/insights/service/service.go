// Package service contains insights workflows
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tubelens/internal/modkit/repokit"
	"tubelens/internal/services/insights/domain"
	"tubelens/internal/services/insights/repo"
)

// Service defines the insights service contract
type Service interface {
	domain.ServicePort
	domain.ArchivePort
}

// Svc implements the insights service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs an insights service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("insights.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("insights.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Archive persists one finished run
// The run ledger row commits first; quote rows follow outside the tx since
// ClickHouse inserts are not transactional anyway
func (s *Svc) Archive(ctx context.Context, in domain.ArchiveInput) (uuid.UUID, error) {
	id := uuid.New()
	at := in.CreatedAt
	if at.IsZero() {
		at = time.Now().UTC()
	}

	run := domain.Run{
		ID:               id,
		Query:            in.Query,
		Language:         in.Language,
		Region:           in.Region,
		Model:            in.Model,
		VideosTotal:      in.VideosTotal,
		CommentsAnalyzed: in.CommentsAnalyzed,
		InsightsCount:    len(in.Insights),
		CreatedAt:        at,
	}

	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		return s.binder.Bind(q).InsertRun(ctx, run)
	})
	if err != nil {
		return uuid.Nil, err
	}

	if err := s.Repo.InsertInsights(ctx, id, at, in.Insights); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Runs lists archived runs in a window
func (s *Svc) Runs(ctx context.Context, in domain.RunsInput) ([]domain.Run, error) {
	return s.Repo.Runs(ctx, in.Range.Start, in.Range.End, in.Query, in.Limit)
}

// Sentiment buckets archived insights by sentiment
func (s *Svc) Sentiment(ctx context.Context, in domain.SentimentInput) ([]domain.SentimentRow, error) {
	return s.Repo.Sentiment(ctx, in.Range.Start, in.Range.End, in.Query)
}
