// Package datefilter applies an inclusive date range to per video comment
// collections whose timestamps are relative time strings
package datefilter

import (
	"time"

	"tubelens/internal/core/daterange"
	"tubelens/internal/core/reltime"
)

// Stats summarizes one filter pass
// Conservation holds per video and in aggregate:
// kept + filtered out + unparseable == total before
type Stats struct {
	TotalBefore           int             `json:"total_comments_before"`
	TotalAfter            int             `json:"total_comments_after"`
	FilteredOut           int             `json:"comments_filtered_out"`
	Unparseable           int             `json:"comments_unparseable"`
	VideosWithComments    int             `json:"videos_with_comments"`
	VideosWithoutComments int             `json:"videos_without_comments"`
	VideosTotal           int             `json:"videos_total"`
	Range                 daterange.Range `json:"-"`
}

// Filter keeps the comments of byVideo whose relative time text resolves to
// an instant inside rng, endpoints included. timeText extracts the relative
// time string from a comment; the filter is otherwise agnostic to the
// comment shape and passes records through unchanged
//
// A comment whose text does not parse is dropped and counted separately as
// unparseable so callers can tell "out of range" apart from "unknown". A
// video whose comments are all dropped keeps its key with an empty slice;
// videos are never removed, only their lists shrink
//
// The input map is not mutated. ref is the instant relative strings are
// resolved against and must be captured once per logical request
func Filter[T any](
	byVideo map[string][]T,
	rng daterange.Range,
	ref time.Time,
	timeText func(T) string,
) (map[string][]T, Stats) {
	out := make(map[string][]T, len(byVideo))
	st := Stats{Range: rng, VideosTotal: len(byVideo)}

	for videoID, comments := range byVideo {
		st.TotalBefore += len(comments)

		kept := make([]T, 0, len(comments))
		for _, c := range comments {
			resolved, err := reltime.Parse(timeText(c), ref)
			if err != nil {
				st.Unparseable++
				continue
			}
			if !rng.Contains(resolved) {
				st.FilteredOut++
				continue
			}
			kept = append(kept, c)
		}

		out[videoID] = kept
		st.TotalAfter += len(kept)
		if len(kept) > 0 {
			st.VideosWithComments++
		} else {
			st.VideosWithoutComments++
		}
	}

	return out, st
}
