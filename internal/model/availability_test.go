package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"available", StatusAvailable, false},
		{"unavailable", StatusUnavailable, false},
		{"AVAILABLE", "", true},
		{"busy", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := ParseStatus(tc.in)
		if tc.wantErr {
			require.ErrorIs(t, err, ErrInvalidStatus, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, got)
	}
}

func TestValidDate(t *testing.T) {
	require.True(t, ValidDate("2024-06-10"))
	require.False(t, ValidDate("2024-6-10"))
	require.False(t, ValidDate("10-06-2024"))
	require.False(t, ValidDate("2024-13-01"))
	require.False(t, ValidDate(""))
}

func TestLedgerStatusDefaultsToAvailable(t *testing.T) {
	l := Ledger{"2024-06-10": StatusUnavailable}

	require.Equal(t, StatusUnavailable, l.Status("2024-06-10"))
	require.Equal(t, StatusAvailable, l.Status("2024-06-11"))

	var empty Ledger
	require.Equal(t, StatusAvailable, empty.Status("2024-06-10"))
}

func TestLedgerEntriesSorted(t *testing.T) {
	l := Ledger{
		"2024-07-01": StatusUnavailable,
		"2024-06-10": StatusAvailable,
		"2024-06-02": StatusUnavailable,
	}
	entries := l.Entries()
	require.Len(t, entries, 3)
	require.Equal(t, "2024-06-02", entries[0].Date)
	require.Equal(t, "2024-06-10", entries[1].Date)
	require.Equal(t, "2024-07-01", entries[2].Date)
}
