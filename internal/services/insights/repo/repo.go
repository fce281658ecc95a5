// Package repo provides hybrid storage for archived runs
// Postgres keeps the run ledger, ClickHouse keeps the per quote rows
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tubelens/internal/modkit/repokit"
	"tubelens/internal/platform/store"
	"tubelens/internal/services/insights/domain"
)

// Repo is the persistence surface for insights
type Repo interface {
	InsertRun(ctx context.Context, run domain.Run) error
	Runs(ctx context.Context, start, end, query string, limit int) ([]domain.Run, error)
	InsertInsights(ctx context.Context, runID uuid.UUID, at time.Time, ins []domain.ArchivedInsight) error
	Sentiment(ctx context.Context, start, end, query string) ([]domain.SentimentRow, error)
}

// NewHybrid returns a binder that uses
// - Postgres for the analysis_runs ledger
// - ClickHouse for insight rows and aggregates
func NewHybrid(ch store.Clickhouse) repokit.Binder[Repo] {
	return &hybridBinder{ch: ch}
}

type hybridBinder struct{ ch store.Clickhouse }

func (b *hybridBinder) Bind(q repokit.Queryer) Repo {
	return &hybridStore{pg: q, ch: b.ch}
}

type hybridStore struct {
	pg repokit.Queryer
	ch store.Clickhouse
}

func (s *hybridStore) InsertRun(ctx context.Context, run domain.Run) error {
	_, err := s.pg.Exec(ctx, `
	  INSERT INTO analysis_runs
	    (id, query, language, region, model, videos_total, comments_analyzed, insights_count, created_at)
	  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		run.ID.String(), run.Query, run.Language, run.Region, run.Model,
		run.VideosTotal, run.CommentsAnalyzed, run.InsightsCount, run.CreatedAt.UTC(),
	)
	return err
}

func (s *hybridStore) Runs(ctx context.Context, start, end, query string, limit int) ([]domain.Run, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.pg.Query(ctx, `
	  SELECT id::text, query, language, region, model, videos_total, comments_analyzed, insights_count, created_at
	    FROM analysis_runs
	   WHERE created_at::date BETWEEN $1 AND $2
	     AND ($3 = '' OR query ILIKE '%' || $3 || '%')
	   ORDER BY created_at DESC
	   LIMIT $4`,
		start, end, query, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Run
	for rows.Next() {
		var (
			r  domain.Run
			id string
		)
		if err := rows.Scan(
			&id, &r.Query, &r.Language, &r.Region, &r.Model,
			&r.VideosTotal, &r.CommentsAnalyzed, &r.InsightsCount, &r.CreatedAt,
		); err != nil {
			return nil, err
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *hybridStore) InsertInsights(
	ctx context.Context,
	runID uuid.UUID,
	at time.Time,
	ins []domain.ArchivedInsight,
) error {
	if len(ins) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(ins))
	for _, in := range ins {
		rows = append(rows, []any{
			runID.String(), at.UTC(),
			in.Quote, in.Sentiment, in.Theme, in.PurchaseIntent, in.Confidence,
			in.SourceType, in.VideoID, in.VideoTitle,
			in.CommentID, in.CommentAuthor, uint32(in.CommentLikes),
		})
	}
	return s.ch.Insert(ctx, "tubelens.insights", rows)
}

func (s *hybridStore) Sentiment(ctx context.Context, start, end, query string) ([]domain.SentimentRow, error) {
	rows, err := s.ch.Query(ctx, `
	  SELECT i.sentiment, toInt64(count()) AS quotes, avg(i.confidence) AS avg_conf
	    FROM tubelens.insights i
	   WHERE toDate(i.created_at) BETWEEN toDate(?) AND toDate(?)
	     AND (? = '' OR i.run_id IN (
	       SELECT run_id FROM tubelens.insights WHERE positionCaseInsensitive(video_title, ?) > 0
	     ))
	   GROUP BY i.sentiment
	   ORDER BY quotes DESC`,
		start, end, query, query,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SentimentRow
	for rows.Next() {
		var r domain.SentimentRow
		if err := rows.Scan(&r.Sentiment, &r.Quotes, &r.AvgConf); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
