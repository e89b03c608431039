package service

import (
	"math"
	"strconv"
)

// NoReviewsLabel is the sentinel reported when an artist has no
// reviews.  The average is never reported as 0 in that case.
const NoReviewsLabel = "No reviews yet"

// ReviewSummary is the aggregate shown on artist profiles.
type ReviewSummary struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"` // meaningful only when Count > 0
}

// AggregateRatings folds a sequence of ratings into its count and
// arithmetic mean rounded to one decimal place.  Pure function; the
// zero-review case yields Count 0 and Average 0, which callers must
// render via Label rather than as a numeric zero.
func AggregateRatings(ratings []uint8) ReviewSummary {
	if len(ratings) == 0 {
		return ReviewSummary{}
	}
	total := 0
	for _, r := range ratings {
		total += int(r)
	}
	avg := float64(total) / float64(len(ratings))
	return ReviewSummary{
		Count:   len(ratings),
		Average: math.Round(avg*10) / 10,
	}
}

// Label renders the average for display: the one-decimal mean, or the
// no-reviews sentinel.
func (s ReviewSummary) Label() string {
	if s.Count == 0 {
		return NoReviewsLabel
	}
	return strconv.FormatFloat(s.Average, 'f', 1, 64)
}
