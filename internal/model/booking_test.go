package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidSlot(t *testing.T) {
	for _, label := range TimeSlots {
		require.True(t, ValidSlot(label), "slot %q", label)
	}
	require.False(t, ValidSlot("1:00 PM"))
	require.False(t, ValidSlot("9:00 am"))
	require.False(t, ValidSlot(""))
}
