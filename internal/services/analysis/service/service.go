// Package service contains the analysis workflow
package service

import (
	"context"
	"sort"
	"time"

	"tubelens/internal/adapters/ingest/youtube"
	"tubelens/internal/core/cleanse"
	"tubelens/internal/platform/logger"

	perr "tubelens/internal/platform/errors"
	"tubelens/internal/services/analysis/domain"
	insdom "tubelens/internal/services/insights/domain"
)

// maxPromptComments caps how many comments reach the model
// the most engaged ones go first
const maxPromptComments = 100

// VideoSource fetches videos and their comments
type VideoSource interface {
	SearchVideos(ctx context.Context, query, hl, gl string, max int) ([]youtube.Video, error)
	AllComments(ctx context.Context, videoID, hl, gl string, max int) ([]youtube.Comment, error)
}

// Completer produces a completion for a prompt
type Completer interface {
	Complete(ctx context.Context, model, prompt string) (string, error)
	Model() string
}

// Options configures the Svc
type Options struct {
	// Archiver persists finished runs, nil disables archiving
	Archiver insdom.ArchivePort

	// Now is the reference instant seam, nil means time.Now
	Now func() time.Time
}

// Service defines the analysis service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the analysis service
type Svc struct {
	videos   VideoSource
	llm      Completer
	archiver insdom.ArchivePort
	now      func() time.Time
	log      logger.Logger
}

// New constructs an analysis service
func New(videos VideoSource, llm Completer, opts Options) *Svc {
	if videos == nil {
		panic("analysis.Service requires a non nil VideoSource")
	}
	if llm == nil {
		panic("analysis.Service requires a non nil Completer")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Svc{
		videos:   videos,
		llm:      llm,
		archiver: opts.Archiver,
		now:      now,
		log:      *logger.Named("analysis"),
	}
}

// Search runs the full pipeline for one request
// fetch, clean, window, analyze, aggregate, archive
func (s *Svc) Search(ctx context.Context, in domain.SearchRequest) (domain.SearchResponse, error) {
	in.Normalize()

	// the reference instant is captured once so every relative
	// timestamp in this request resolves against the same clock
	ref := s.now().UTC()

	vids, err := s.videos.SearchVideos(ctx, in.Query, in.Language, in.Region, in.MaxVideos)
	if err != nil {
		return domain.SearchResponse{}, err
	}
	if len(vids) == 0 {
		return domain.SearchResponse{}, perr.Newf(perr.ErrorCodeNotFound, "no videos found for query %q", in.Query)
	}

	summaries := make([]domain.VideoSummary, 0, len(vids))
	titles := make(map[string]string, len(vids))
	byVideo := make(map[string][]youtube.Comment, len(vids))

	for _, v := range vids {
		cs, err := s.videos.AllComments(ctx, v.VideoID, in.Language, in.Region, in.MaxCommentsPerVideo)
		if err != nil {
			// one broken video does not sink the run
			s.log.Warn().Err(err).Str("video_id", v.VideoID).Msg("comments fetch failed, continuing")
			cs = nil
		}

		kept := make([]youtube.Comment, 0, len(cs))
		for _, c := range cs {
			if cleanse.Spam(c.Content) {
				continue
			}
			kept = append(kept, c)
		}
		byVideo[v.VideoID] = kept
		titles[v.VideoID] = v.Title

		summaries = append(summaries, summarize(v, len(kept)))
	}

	var report *domain.FilterReport
	if in.Windowed() {
		byVideo, report, err = applyWindow(in, byVideo, ref)
		if err != nil {
			return domain.SearchResponse{}, err
		}
		for i := range summaries {
			summaries[i].CommentsFetched = len(byVideo[summaries[i].ID])
		}
	}

	top := topComments(byVideo, titles, ref)
	if len(top) > maxPromptComments {
		top = top[:maxPromptComments]
	}

	insights, err := s.analyze(ctx, in, summaries, top)
	if err != nil {
		return domain.SearchResponse{}, err
	}

	model := in.Model
	if model == "" {
		model = s.llm.Model()
	}

	resp := domain.SearchResponse{
		Query:            in.Query,
		Videos:           summaries,
		Insights:         insights,
		Sentiment:        distribution(insights, func(i domain.Insight) string { return i.Sentiment }),
		PurchaseIntent:   distribution(insights, func(i domain.Insight) string { return i.PurchaseIntent }),
		TopThemes:        topThemes(insights, 5),
		Filter:           report,
		CommentsAnalyzed: len(top),
		Model:            model,
		GeneratedAt:      ref,
	}

	s.archive(ctx, in, &resp)
	return resp, nil
}

// archive persists the run when an archiver is wired, best effort
func (s *Svc) archive(ctx context.Context, in domain.SearchRequest, resp *domain.SearchResponse) {
	if s.archiver == nil {
		return
	}
	id, err := s.archiver.Archive(ctx, archiveInput(in, *resp))
	if err != nil {
		s.log.Warn().Err(err).Msg("archive failed, response unaffected")
		return
	}
	resp.RunID = id.String()
}

func summarize(v youtube.Video, comments int) domain.VideoSummary {
	ths := make([]cleanse.Thumbnail, 0, len(v.Thumbnails))
	for _, t := range v.Thumbnails {
		ths = append(ths, cleanse.Thumbnail{URL: t.URL, Width: t.Width, Height: t.Height})
	}
	return domain.VideoSummary{
		ID:              v.VideoID,
		Title:           v.Title,
		Channel:         v.Author.Title,
		ChannelID:       v.Author.ChannelID,
		URL:             "https://www.youtube.com/watch?v=" + v.VideoID,
		Thumbnail:       cleanse.BestThumbnail(ths),
		Duration:        cleanse.Duration(int(v.LengthSeconds)),
		Views:           int64(v.Stats.Views),
		Live:            v.IsLiveNow,
		CommentsFetched: comments,
	}
}

// distribution counts insights by one string dimension
func distribution(ins []domain.Insight, key func(domain.Insight) string) map[string]int {
	out := make(map[string]int, 4)
	for _, i := range ins {
		out[key(i)]++
	}
	return out
}

// topThemes returns the n most quoted themes, count desc then name asc
func topThemes(ins []domain.Insight, n int) []domain.ThemeCount {
	counts := map[string]int{}
	for _, i := range ins {
		if i.Theme != "" {
			counts[i.Theme]++
		}
	}
	out := make([]domain.ThemeCount, 0, len(counts))
	for theme, c := range counts {
		out = append(out, domain.ThemeCount{Theme: theme, Quotes: c})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Quotes != out[b].Quotes {
			return out[a].Quotes > out[b].Quotes
		}
		return out[a].Theme < out[b].Theme
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func archiveInput(in domain.SearchRequest, resp domain.SearchResponse) insdom.ArchiveInput {
	ins := make([]insdom.ArchivedInsight, 0, len(resp.Insights))
	for _, i := range resp.Insights {
		a := insdom.ArchivedInsight{
			Quote:          i.Quote,
			Sentiment:      i.Sentiment,
			Theme:          i.Theme,
			PurchaseIntent: i.PurchaseIntent,
			Confidence:     i.Confidence,
			SourceType:     i.SourceType,
		}
		if i.Comment != nil {
			a.VideoID = i.Comment.VideoID
			a.VideoTitle = i.Comment.VideoTitle
			a.CommentID = i.Comment.CommentID
			a.CommentAuthor = i.Comment.Author
			a.CommentLikes = i.Comment.Likes
		}
		ins = append(ins, a)
	}
	return insdom.ArchiveInput{
		Query:            in.Query,
		Language:         in.Language,
		Region:           in.Region,
		Model:            resp.Model,
		VideosTotal:      len(resp.Videos),
		CommentsAnalyzed: resp.CommentsAnalyzed,
		Insights:         ins,
		CreatedAt:        resp.GeneratedAt,
	}
}
