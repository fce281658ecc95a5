package domain

// TimeRange defines a start and end day for queries
// Days are ISO8601 dates without timezone
type TimeRange struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02" example:"2025-08-01"`
	End   string `json:"end" validate:"required,datetime=2006-01-02" example:"2025-08-31"`
}

// RunsInput lists archived runs in a window
type RunsInput struct {
	Range TimeRange `json:"range"`
	Query string    `json:"query,omitempty" validate:"omitempty,min=1,max=200" example:"wireless earbuds"`
	Limit int       `json:"limit,omitempty" validate:"omitempty,min=1,max=500" example:"100"`
}

// SentimentInput buckets archived insights by sentiment
type SentimentInput struct {
	Range TimeRange `json:"range"`
	Query string    `json:"query,omitempty" validate:"omitempty,min=1,max=200" example:"wireless earbuds"`
}

// SentimentRow is one sentiment bucket
type SentimentRow struct {
	Sentiment string  `json:"sentiment" example:"positive"`
	Quotes    int64   `json:"quotes" example:"42"`
	AvgConf   float64 `json:"avg_confidence" example:"0.81"`
}
