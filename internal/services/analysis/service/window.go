package service

import (
	"time"

	"tubelens/internal/adapters/ingest/youtube"
	"tubelens/internal/core/daterange"
	"tubelens/internal/core/datefilter"
	"tubelens/internal/core/regiontz"

	perr "tubelens/internal/platform/errors"
	"tubelens/internal/services/analysis/domain"
)

// applyWindow resolves the request's date window in the region's timezone
// and filters every video's comments through it
// A malformed or inverted window is the caller's fault and surfaces as a
// validation error; comments whose timestamps cannot be resolved are
// dropped and accounted for in the report instead of failing the run
func applyWindow(
	in domain.SearchRequest,
	byVideo map[string][]youtube.Comment,
	ref time.Time,
) (map[string][]youtube.Comment, *domain.FilterReport, error) {
	loc := regiontz.Location(in.Region)

	rng, err := daterange.Validate(in.StartDate, in.EndDate, loc)
	if err != nil {
		return nil, nil, perr.Wrapf(err, perr.ErrorCodeValidation, "invalid date window")
	}

	filtered, st := datefilter.Filter(byVideo, rng, ref, func(c youtube.Comment) string {
		return c.PublishedTimeText
	})

	report := &domain.FilterReport{
		TotalCommentsBefore:   st.TotalBefore,
		TotalCommentsAfter:    st.TotalAfter,
		CommentsFilteredOut:   st.FilteredOut,
		CommentsUnparseable:   st.Unparseable,
		VideosWithComments:    st.VideosWithComments,
		VideosWithoutComments: st.VideosWithoutComments,
		VideosTotal:           st.VideosTotal,
		DateRange: &domain.DateWindow{
			Start:    in.StartDate,
			End:      in.EndDate,
			Timezone: rng.Timezone,
		},
	}
	return filtered, report, nil
}
