package service

import (
	"context"
	"sort"
	"time"

	"tubelens/internal/adapters/ingest/youtube"
	"tubelens/internal/adapters/llm/openai"
	"tubelens/internal/core/cleanse"
	"tubelens/internal/core/reltime"
	ptime "tubelens/internal/platform/time"
	"tubelens/internal/services/analysis/domain"
)

// rankedComment pairs a comment's metadata with its raw text
// the text feeds the prompt, the metadata enriches matched quotes
type rankedComment struct {
	meta domain.CommentMeta
	text string
}

// topComments flattens the per video comments into one list ordered by
// engagement desc, resolving each comment's absolute publish time where
// the relative text parses
func topComments(
	byVideo map[string][]youtube.Comment,
	titles map[string]string,
	ref time.Time,
) []rankedComment {
	var out []rankedComment
	for videoID, comments := range byVideo {
		for _, c := range comments {
			likes := int(c.Stats.Votes)
			replies := int(c.Stats.Replies)
			meta := domain.CommentMeta{
				CommentID:     c.CommentID,
				VideoID:       videoID,
				VideoTitle:    titles[videoID],
				Author:        c.Author.Title,
				Likes:         likes,
				Replies:       replies,
				Engagement:    cleanse.Engagement(likes, replies),
				Pinned:        c.Pinned.Status,
				Hearted:       c.CreatorHeart,
				ByOwner:       c.Author.IsChannelOwner,
				PublishedText: c.PublishedTimeText,
			}
			if at, err := reltime.Parse(c.PublishedTimeText, ref); err == nil {
				meta.PublishedAt = ptime.Ptr(at)
			}
			out = append(out, rankedComment{meta: meta, text: c.Content})
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].meta.Engagement != out[b].meta.Engagement {
			return out[a].meta.Engagement > out[b].meta.Engagement
		}
		return out[a].meta.CommentID < out[b].meta.CommentID
	})
	return out
}

// analyze sends the prompt to the model and maps quotes back to comments
func (s *Svc) analyze(
	ctx context.Context,
	in domain.SearchRequest,
	vids []domain.VideoSummary,
	top []rankedComment,
) ([]domain.Insight, error) {
	prompt := buildPrompt(in, vids, top)

	raw, err := s.llm.Complete(ctx, in.Model, prompt)
	if err != nil {
		return nil, err
	}

	parsed, err := openai.ParseInsights(raw, in.MaxQuoteLength)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Insight, 0, len(parsed))
	for _, p := range parsed {
		ins := domain.Insight{
			Quote:          p.Quote,
			Sentiment:      p.Sentiment,
			Theme:          p.Theme,
			PurchaseIntent: p.PurchaseIntent,
			Confidence:     p.ConfidenceScore,
			SourceType:     p.SourceType,
		}
		if p.CommentIndex != nil {
			if i := *p.CommentIndex; i >= 0 && i < len(top) {
				meta := top[i].meta
				ins.Comment = &meta
			}
		}
		out = append(out, ins)
	}
	return out, nil
}

func buildPrompt(in domain.SearchRequest, vids []domain.VideoSummary, top []rankedComment) string {
	vctx := make([]openai.VideoContext, 0, len(vids))
	for _, v := range vids {
		vctx = append(vctx, openai.VideoContext{Title: v.Title, Channel: v.Channel})
	}
	lines := make([]openai.CommentLine, 0, len(top))
	for i, rc := range top {
		lines = append(lines, openai.CommentLine{Index: i, Text: rc.text, Likes: rc.meta.Likes})
	}
	return openai.BuildPrompt(openai.PromptInput{
		Query:        in.Query,
		Videos:       vctx,
		Comments:     lines,
		Instructions: in.AIAnalysisPrompt,
		MaxQuoteLen:  in.MaxQuoteLength,
	})
}
