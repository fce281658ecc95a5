package youtube

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexInt tolerates numeric fields the upstream API serves as either a
// JSON number or a quoted string
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt(n)
	return nil
}

// SearchPage is one page of search results
type SearchPage struct {
	Contents         []SearchItem `json:"contents"`
	CursorNext       string       `json:"cursorNext"`
	EstimatedResults int64        `json:"estimatedResults"`
}

// SearchItem wraps one entry of a search page; non video entries carry no video
type SearchItem struct {
	Type  string `json:"type"`
	Video *Video `json:"video"`
}

// Video is the wire shape of one search hit
type Video struct {
	VideoID            string      `json:"videoId"`
	Title              string      `json:"title"`
	DescriptionSnippet string      `json:"descriptionSnippet"`
	LengthSeconds      FlexInt     `json:"lengthSeconds"`
	PublishedTimeText  string      `json:"publishedTimeText"`
	IsLiveNow          bool        `json:"isLiveNow"`
	Author             Author      `json:"author"`
	Stats              VideoStats  `json:"stats"`
	Thumbnails         []Thumbnail `json:"thumbnails"`
	Badges             []string    `json:"badges"`
}

// Author identifies a channel
type Author struct {
	ChannelID        string `json:"channelId"`
	Title            string `json:"title"`
	CanonicalBaseURL string `json:"canonicalBaseUrl"`
	IsChannelOwner   bool   `json:"isChannelOwner"`
	Badges           []any  `json:"badges"`
}

// VideoStats carries per video counters
type VideoStats struct {
	Views FlexInt `json:"views"`
}

// Thumbnail is one rendition of a video still
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// CommentsPage is one page of comments for a video
type CommentsPage struct {
	Comments           []Comment `json:"comments"`
	CursorNext         string    `json:"cursorNext"`
	TotalCommentsCount FlexInt   `json:"totalCommentsCount"`
}

// Comment is the wire shape of one comment
type Comment struct {
	CommentID         string       `json:"commentId"`
	Content           string       `json:"content"`
	PublishedTimeText string       `json:"publishedTimeText"`
	Author            Author       `json:"author"`
	Stats             CommentStats `json:"stats"`
	CreatorHeart      bool         `json:"creatorHeart"`
	Pinned            Pinned       `json:"pinned"`
}

// CommentStats carries per comment counters
type CommentStats struct {
	Votes   FlexInt `json:"votes"`
	Replies FlexInt `json:"replies"`
}

// Pinned marks a comment surfaced by the channel owner
type Pinned struct {
	Status bool `json:"status"`
}

var _ json.Unmarshaler = (*FlexInt)(nil)
