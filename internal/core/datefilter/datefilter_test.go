package datefilter

import (
	"testing"
	"time"

	"tubelens/internal/core/daterange"
)

type comment struct {
	ID       string
	TimeText string
}

func commentTime(c comment) string { return c.TimeText }

func mustRange(t *testing.T, start, end string) daterange.Range {
	t.Helper()
	rng, err := daterange.Validate(start, end, time.UTC)
	if err != nil {
		t.Fatalf("Validate(%q, %q): %v", start, end, err)
	}
	return rng
}

func TestFilter_KeepsInRangeDropsRest(t *testing.T) {
	ref := time.Date(2024, 11, 19, 12, 0, 0, 0, time.UTC)
	rng := mustRange(t, "2024-11-01", "2024-11-15")

	in := map[string][]comment{
		"vid-a": {
			{ID: "a1", TimeText: "5 days ago"},   // 2024-11-14, in
			{ID: "a2", TimeText: "1 week ago"},   // 2024-11-12, in
			{ID: "a3", TimeText: "1 month ago"},  // 2024-10-20, out
			{ID: "a4", TimeText: "2 hours ago"},  // 2024-11-19, out
			{ID: "a5", TimeText: "nonsense"},     // unparseable
		},
		"vid-b": {
			{ID: "b1", TimeText: "2 weeks ago"}, // 2024-11-05, in
			{ID: "b2", TimeText: "1 year ago"},  // 2023, out
		},
	}

	out, st := Filter(in, rng, ref, commentTime)

	if got := len(out["vid-a"]); got != 2 {
		t.Fatalf("vid-a kept = %d, want 2", got)
	}
	if out["vid-a"][0].ID != "a1" || out["vid-a"][1].ID != "a2" {
		t.Fatalf("vid-a kept wrong comments: %+v", out["vid-a"])
	}
	if got := len(out["vid-b"]); got != 1 {
		t.Fatalf("vid-b kept = %d, want 1", got)
	}

	want := Stats{
		TotalBefore:           7,
		TotalAfter:            3,
		FilteredOut:           3,
		Unparseable:           1,
		VideosWithComments:    2,
		VideosWithoutComments: 0,
		VideosTotal:           2,
		Range:                 rng,
	}
	if st != want {
		t.Fatalf("stats = %+v, want %+v", st, want)
	}
}

func TestFilter_Conservation(t *testing.T) {
	ref := time.Date(2024, 11, 19, 12, 0, 0, 0, time.UTC)
	rng := mustRange(t, "2024-11-01", "2024-11-15")

	in := map[string][]comment{
		"v1": {
			{TimeText: "1 day ago"},
			{TimeText: "6 days ago"},
			{TimeText: "3 months ago"},
			{TimeText: "garbled"},
		},
		"v2": {
			{TimeText: "2 weeks ago"},
			{TimeText: "just now"},
			{TimeText: ""},
		},
		"v3": nil,
	}

	_, st := Filter(in, rng, ref, commentTime)

	if st.TotalAfter+st.FilteredOut+st.Unparseable != st.TotalBefore {
		t.Fatalf("conservation broken: after=%d filtered=%d unparseable=%d before=%d",
			st.TotalAfter, st.FilteredOut, st.Unparseable, st.TotalBefore)
	}
	if st.VideosWithComments+st.VideosWithoutComments != st.VideosTotal {
		t.Fatalf("video counts broken: with=%d without=%d total=%d",
			st.VideosWithComments, st.VideosWithoutComments, st.VideosTotal)
	}
}

func TestFilter_BoundaryInclusive(t *testing.T) {
	// ref sits exactly at the end of day boundary so "N days ago" lands
	// on day starts; check both endpoints survive
	ref := time.Date(2024, 11, 15, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	rng := mustRange(t, "2024-11-10", "2024-11-15")

	in := map[string][]comment{
		"v": {
			{ID: "end", TimeText: "just now"}, // exactly rng.End
			{ID: "in", TimeText: "3 days ago"},
		},
	}

	out, st := Filter(in, rng, ref, commentTime)
	if len(out["v"]) != 2 {
		t.Fatalf("kept = %d, want 2 (endpoint must be inclusive): %+v", len(out["v"]), st)
	}

	// start boundary: ref at start of day, "just now" == rng.Start
	ref2 := time.Date(2024, 11, 10, 0, 0, 0, 0, time.UTC)
	out2, _ := Filter(map[string][]comment{"v": {{ID: "start", TimeText: "just now"}}}, rng, ref2, commentTime)
	if len(out2["v"]) != 1 {
		t.Fatalf("start boundary comment dropped")
	}
}

func TestFilter_VideosNeverRemoved(t *testing.T) {
	ref := time.Date(2024, 11, 19, 12, 0, 0, 0, time.UTC)
	rng := mustRange(t, "2024-11-01", "2024-11-15")

	in := map[string][]comment{
		"all-out": {
			{TimeText: "1 year ago"},
			{TimeText: "2 years ago"},
		},
		"empty": {},
	}

	out, st := Filter(in, rng, ref, commentTime)

	for _, id := range []string{"all-out", "empty"} {
		got, ok := out[id]
		if !ok {
			t.Fatalf("video %q removed from result", id)
		}
		if len(got) != 0 {
			t.Fatalf("video %q kept = %d, want 0", id, len(got))
		}
	}
	if st.VideosWithoutComments != 2 || st.VideosTotal != 2 {
		t.Fatalf("stats = %+v, want 2 videos without comments of 2", st)
	}
}

func TestFilter_InputNotMutated(t *testing.T) {
	ref := time.Date(2024, 11, 19, 12, 0, 0, 0, time.UTC)
	rng := mustRange(t, "2024-11-01", "2024-11-15")

	in := map[string][]comment{
		"v": {
			{ID: "keep", TimeText: "5 days ago"},
			{ID: "drop", TimeText: "1 year ago"},
		},
	}

	Filter(in, rng, ref, commentTime)

	if len(in) != 1 || len(in["v"]) != 2 {
		t.Fatalf("input mutated: %+v", in)
	}
	if in["v"][0].ID != "keep" || in["v"][1].ID != "drop" {
		t.Fatalf("input reordered: %+v", in["v"])
	}
}

func TestFilter_Idempotent(t *testing.T) {
	ref := time.Date(2024, 11, 19, 12, 0, 0, 0, time.UTC)
	rng := mustRange(t, "2024-11-01", "2024-11-15")

	in := map[string][]comment{
		"v1": {
			{ID: "a", TimeText: "5 days ago"},
			{ID: "b", TimeText: "1 year ago"},
			{ID: "c", TimeText: "???"},
		},
		"v2": {{ID: "d", TimeText: "2 weeks ago"}},
	}

	once, st1 := Filter(in, rng, ref, commentTime)
	twice, st2 := Filter(once, rng, ref, commentTime)

	if st2.TotalBefore != st1.TotalAfter || st2.TotalAfter != st1.TotalAfter {
		t.Fatalf("second pass changed counts: first=%+v second=%+v", st1, st2)
	}
	if st2.FilteredOut != 0 || st2.Unparseable != 0 {
		t.Fatalf("second pass dropped comments: %+v", st2)
	}
	for id, want := range once {
		got := twice[id]
		if len(got) != len(want) {
			t.Fatalf("video %q: second pass kept %d, want %d", id, len(got), len(want))
		}
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	ref := time.Date(2024, 11, 19, 12, 0, 0, 0, time.UTC)
	rng := mustRange(t, "2024-11-01", "2024-11-15")

	out, st := Filter(map[string][]comment{}, rng, ref, commentTime)
	if len(out) != 0 {
		t.Fatalf("out = %+v, want empty", out)
	}
	if st.TotalBefore != 0 || st.VideosTotal != 0 {
		t.Fatalf("stats = %+v, want zeroes", st)
	}
}
