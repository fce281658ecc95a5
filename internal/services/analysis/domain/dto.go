// Package domain holds DTOs for analysis http and service contracts
package domain

import "time"

// SearchRequest is the single entry point payload
// start_date and end_date travel together; providing one without the
// other is rejected by validation
type SearchRequest struct {
	Query               string `json:"query" validate:"required,min=1,max=200" example:"wireless earbuds"`
	MaxVideos           int    `json:"max_videos,omitempty" validate:"omitempty,min=1,max=50" example:"20"`
	MaxCommentsPerVideo int    `json:"max_comments_per_video,omitempty" validate:"omitempty,min=10,max=100" example:"50"`
	Language            string `json:"language,omitempty" validate:"omitempty,min=2,max=5" example:"en"`
	Region              string `json:"region,omitempty" validate:"omitempty,min=2,max=5" example:"US"`

	StartDate string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02,required_with=EndDate" example:"2025-08-01"`
	EndDate   string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02,required_with=StartDate" example:"2025-08-31"`

	AIAnalysisPrompt string `json:"ai_analysis_prompt,omitempty" validate:"omitempty,min=10,max=500" example:"focus on battery complaints"`
	Model            string `json:"model,omitempty" validate:"omitempty,min=1,max=64" example:"gpt-4o-mini"`
	MaxQuoteLength   int    `json:"max_quote_length,omitempty" validate:"omitempty,min=50,max=500" example:"200"`
}

// Normalize fills defaults in place
func (r *SearchRequest) Normalize() {
	if r.MaxVideos == 0 {
		r.MaxVideos = 20
	}
	if r.MaxCommentsPerVideo == 0 {
		r.MaxCommentsPerVideo = 50
	}
	if r.Language == "" {
		r.Language = "en"
	}
	if r.Region == "" {
		r.Region = "US"
	}
	if r.MaxQuoteLength == 0 {
		r.MaxQuoteLength = 200
	}
}

// Windowed reports whether the request carries a date window
func (r *SearchRequest) Windowed() bool {
	return r.StartDate != "" && r.EndDate != ""
}

// VideoSummary is one fetched video in the response
type VideoSummary struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Channel         string `json:"channel"`
	ChannelID       string `json:"channel_id"`
	URL             string `json:"url"`
	Thumbnail       string `json:"thumbnail"`
	Duration        string `json:"duration"`
	Views           int64  `json:"views"`
	Live            bool   `json:"live"`
	CommentsFetched int    `json:"comments_fetched"`
}

// CommentMeta ties a quote back to the comment it came from
// PublishedAt is resolved from the relative time text when it parses
type CommentMeta struct {
	CommentID     string     `json:"comment_id"`
	VideoID       string     `json:"video_id"`
	VideoTitle    string     `json:"video_title"`
	Author        string     `json:"author"`
	Likes         int        `json:"likes"`
	Replies       int        `json:"replies"`
	Engagement    int        `json:"engagement"`
	Pinned        bool       `json:"pinned"`
	Hearted       bool       `json:"hearted"`
	ByOwner       bool       `json:"by_owner"`
	PublishedText string     `json:"published_text"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
}

// Insight is one extracted quote with its provenance
type Insight struct {
	Quote          string       `json:"quote"`
	Sentiment      string       `json:"sentiment"`
	Theme          string       `json:"theme"`
	PurchaseIntent string       `json:"purchase_intent"`
	Confidence     float64      `json:"confidence_score"`
	SourceType     string       `json:"source_type"`
	Comment        *CommentMeta `json:"comment,omitempty"`
}

// ThemeCount is one entry of the top themes list
type ThemeCount struct {
	Theme  string `json:"theme"`
	Quotes int    `json:"quotes"`
}

// DateWindow echoes the applied range back to the caller
type DateWindow struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Timezone string `json:"timezone"`
}

// FilterReport accounts for every comment the date window touched
type FilterReport struct {
	TotalCommentsBefore   int         `json:"total_comments_before"`
	TotalCommentsAfter    int         `json:"total_comments_after"`
	CommentsFilteredOut   int         `json:"comments_filtered_out"`
	CommentsUnparseable   int         `json:"comments_unparseable"`
	VideosWithComments    int         `json:"videos_with_comments"`
	VideosWithoutComments int         `json:"videos_without_comments"`
	VideosTotal           int         `json:"videos_total"`
	DateRange             *DateWindow `json:"date_range,omitempty"`
}

// SearchResponse is the full analysis result
type SearchResponse struct {
	Query            string         `json:"query"`
	RunID            string         `json:"run_id,omitempty"`
	Videos           []VideoSummary `json:"videos"`
	Insights         []Insight      `json:"insights"`
	Sentiment        map[string]int `json:"sentiment_distribution"`
	PurchaseIntent   map[string]int `json:"purchase_intent_distribution"`
	TopThemes        []ThemeCount   `json:"top_themes"`
	Filter           *FilterReport  `json:"filter_stats,omitempty"`
	CommentsAnalyzed int            `json:"comments_analyzed"`
	Model            string         `json:"model"`
	GeneratedAt      time.Time      `json:"generated_at"`
}
