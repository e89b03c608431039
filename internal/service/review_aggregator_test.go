package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregateRatings(t *testing.T) {
	cases := []struct {
		name      string
		ratings   []uint8
		wantCount int
		wantAvg   float64
		wantLabel string
	}{
		{"no reviews", nil, 0, 0, NoReviewsLabel},
		{"single", []uint8{4}, 1, 4, "4.0"},
		{"two reviews", []uint8{4, 5}, 2, 4.5, "4.5"},
		{"rounds to one decimal", []uint8{4, 4, 5}, 3, 4.3, "4.3"},
		{"all fives", []uint8{5, 5, 5}, 3, 5, "5.0"},
		{"rounds half up", []uint8{1, 2}, 2, 1.5, "1.5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := AggregateRatings(tc.ratings)
			require.Equal(t, tc.wantCount, s.Count)
			require.InDelta(t, tc.wantAvg, s.Average, 1e-9)
			require.Equal(t, tc.wantLabel, s.Label())
		})
	}
}

// A zero-review artist must surface the sentinel, never a numeric
// zero rating.
func TestAggregateRatingsEmptyIsNotZero(t *testing.T) {
	s := AggregateRatings([]uint8{})
	require.Equal(t, 0, s.Count)
	require.NotEqual(t, "0.0", s.Label())
	require.Equal(t, NoReviewsLabel, s.Label())
}
