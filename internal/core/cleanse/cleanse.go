// Package cleanse provides deterministic hygiene helpers for fetched video
// and comment records
// Text checks run on a folded form of the input
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFKC normalization
// 3 Case folding
// 4 Width fold fullwidth to ASCII
// 5 Collapse whitespace to single spaces and trim
package cleanse

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			cases.Fold(),
			width.Fold,
		)
	},
}

// Fold returns the folded form of s following the pipeline described above
func Fold(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	return collapseSpaces(ns)
}

func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

// spamPatterns match promotional boilerplate after folding
var spamPatterns = []*regexp.Regexp{
	regexp.MustCompile(`check out my channel`),
	regexp.MustCompile(`subscribe to my channel`),
	regexp.MustCompile(`follow me on`),
	regexp.MustCompile(`click here`),
	regexp.MustCompile(`win free`),
	regexp.MustCompile(`make money online`),
	regexp.MustCompile(`work from home`),
	regexp.MustCompile(`https?://bit\.ly`),
	regexp.MustCompile(`https?://tinyurl`),
}

// Spam reports whether text looks like promotional noise
// Three independent signals: known promo phrases, shouting
// (over 70% uppercase on texts longer than 20 runes) and symbol
// floods (over 50% non alphanumeric on texts longer than 10 runes)
func Spam(text string) bool {
	folded := Fold(text)
	for _, re := range spamPatterns {
		if re.MatchString(folded) {
			return true
		}
	}

	runes := []rune(text)
	if len(runes) > 20 {
		var letters, upper int
		for _, r := range runes {
			if unicode.IsLetter(r) {
				letters++
				if unicode.IsUpper(r) {
					upper++
				}
			}
		}
		if letters > 0 && float64(upper)/float64(letters) > 0.7 {
			return true
		}
	}

	if len(runes) > 10 {
		var special int
		for _, r := range runes {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
				special++
			}
		}
		if float64(special)/float64(len(runes)) > 0.5 {
			return true
		}
	}

	return false
}

// Thumbnail is one rendition of a video still
type Thumbnail struct {
	URL    string
	Width  int
	Height int
}

// BestThumbnail picks the rendition with the largest area, empty when none
func BestThumbnail(ts []Thumbnail) string {
	best := ""
	area := -1
	for _, t := range ts {
		if a := t.Width * t.Height; a > area {
			area = a
			best = t.URL
		}
	}
	return best
}

// Duration renders a length in seconds as H:MM:SS, M:SS below an hour,
// or "Unknown" for non positive input
func Duration(seconds int) string {
	if seconds <= 0 {
		return "Unknown"
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// Engagement is the combined interaction count for one comment
func Engagement(likes, replies int) int { return likes + replies }
