// Package domain holds core types for archived analysis runs
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Run is one archived analysis run
type Run struct {
	ID               uuid.UUID `json:"id"`
	Query            string    `json:"query"`
	Language         string    `json:"language"`
	Region           string    `json:"region"`
	Model            string    `json:"model"`
	VideosTotal      int       `json:"videos_total"`
	CommentsAnalyzed int       `json:"comments_analyzed"`
	InsightsCount    int       `json:"insights_count"`
	CreatedAt        time.Time `json:"created_at"`
}

// ArchivedInsight is one extracted quote persisted for later aggregation
type ArchivedInsight struct {
	Quote          string  `json:"quote"`
	Sentiment      string  `json:"sentiment"`
	Theme          string  `json:"theme"`
	PurchaseIntent string  `json:"purchase_intent"`
	Confidence     float64 `json:"confidence"`
	SourceType     string  `json:"source_type"`
	VideoID        string  `json:"video_id"`
	VideoTitle     string  `json:"video_title"`
	CommentID      string  `json:"comment_id"`
	CommentAuthor  string  `json:"comment_author"`
	CommentLikes   int     `json:"comment_likes"`
}

// ArchiveInput is everything one run writes in a single call
type ArchiveInput struct {
	Query            string
	Language         string
	Region           string
	Model            string
	VideosTotal      int
	CommentsAnalyzed int
	Insights         []ArchivedInsight
	CreatedAt        time.Time
}
