package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"tubelens/internal/modkit/repokit"
	"tubelens/internal/platform/store"
	"tubelens/internal/platform/testkit"
	"tubelens/internal/services/insights/domain"
	"tubelens/internal/services/insights/repo"
)

// fakeTx satisfies repokit.TxRunner and hands itself to tx callbacks
type fakeTx struct{}

func (fakeTx) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (fakeTx) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, nil }
func (fakeTx) QueryRow(context.Context, string, ...any) store.Row             { return nil }
func (f fakeTx) Tx(_ context.Context, fn func(q store.RowQuerier) error) error {
	return fn(f)
}

// recordingRepo captures writes so the test can inspect them
type recordingRepo struct {
	run      *domain.Run
	insights []domain.ArchivedInsight
	insertAt time.Time
	runErr   error
}

func (r *recordingRepo) InsertRun(_ context.Context, run domain.Run) error {
	if r.runErr != nil {
		return r.runErr
	}
	r.run = &run
	return nil
}

func (r *recordingRepo) Runs(context.Context, string, string, string, int) ([]domain.Run, error) {
	return nil, nil
}

func (r *recordingRepo) InsertInsights(
	_ context.Context, _ uuid.UUID, at time.Time, ins []domain.ArchivedInsight,
) error {
	r.insights = ins
	r.insertAt = at
	return nil
}

func (r *recordingRepo) Sentiment(context.Context, string, string, string) ([]domain.SentimentRow, error) {
	return nil, nil
}

func binderOf(r repo.Repo) repokit.Binder[repo.Repo] {
	return repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return r })
}

func TestArchive_WritesRunAndInsights(t *testing.T) {
	rec := &recordingRepo{}
	svc := New(fakeTx{}, binderOf(rec))

	in := domain.ArchiveInput{
		Query:            "earbuds",
		Language:         "en",
		Region:           "US",
		Model:            "test-model",
		VideosTotal:      3,
		CommentsAnalyzed: 42,
		Insights: []domain.ArchivedInsight{
			{Quote: "great bass", Sentiment: "positive", VideoID: "v1"},
			{Quote: "hurts my ears", Sentiment: "negative", VideoID: "v2"},
		},
		CreatedAt: time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC),
	}

	id, err := svc.Archive(context.Background(), in)
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("Archive returned nil id")
	}

	if rec.run == nil {
		t.Fatal("run row not written")
	}
	if rec.run.ID != id {
		t.Fatalf("run id = %v, want %v", rec.run.ID, id)
	}
	if rec.run.InsightsCount != 2 || rec.run.CommentsAnalyzed != 42 {
		t.Fatalf("run = %+v", rec.run)
	}
	if len(rec.insights) != 2 {
		t.Fatalf("insights written = %d, want 2", len(rec.insights))
	}
	if !rec.insertAt.Equal(in.CreatedAt) {
		t.Fatalf("insight timestamp = %v, want %v", rec.insertAt, in.CreatedAt)
	}
}

func TestArchive_RunFailureSkipsInsights(t *testing.T) {
	rec := &recordingRepo{runErr: context.DeadlineExceeded}
	svc := New(fakeTx{}, binderOf(rec))

	_, err := svc.Archive(context.Background(), domain.ArchiveInput{
		Query:    "q",
		Insights: []domain.ArchivedInsight{{Quote: "x"}},
	})
	if err == nil {
		t.Fatal("want error when the run row fails")
	}
	if rec.insights != nil {
		t.Fatal("insights written despite run failure")
	}
}

func TestArchive_DefaultsCreatedAt(t *testing.T) {
	rec := &recordingRepo{}
	svc := New(fakeTx{}, binderOf(rec))

	if _, err := svc.Archive(context.Background(), domain.ArchiveInput{Query: "q"}); err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if rec.run.CreatedAt.IsZero() {
		t.Fatal("created_at not defaulted")
	}
}

func TestNew_GuardsNilDeps(t *testing.T) {
	testkit.MustPanic(t, func() { New(nil, binderOf(&recordingRepo{})) })
	testkit.MustPanic(t, func() { New(fakeTx{}, nil) })
}
