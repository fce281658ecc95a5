package domain

import (
	"context"

	"github.com/google/uuid"
)

// ArchivePort persists one finished analysis run
// Consumed by the analysis module after building its response
type ArchivePort interface {
	Archive(ctx context.Context, in ArchiveInput) (uuid.UUID, error)
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Runs(ctx context.Context, in RunsInput) ([]Run, error)
	Sentiment(ctx context.Context, in SentimentInput) ([]SentimentRow, error)
}
