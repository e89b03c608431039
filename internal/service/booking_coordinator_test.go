package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rosabel/glambook/internal/model"
	"github.com/rosabel/glambook/internal/queue"
)

type fakeNamer struct {
	name  string
	found bool
}

func (f *fakeNamer) DisplayName(ctx context.Context, artistID uint64) (string, bool, error) {
	if !f.found {
		return model.UnknownArtistName, false, nil
	}
	return f.name, true, nil
}

type fakeBookingStore struct {
	created []model.Booking
	nextID  uint64
}

func (f *fakeBookingStore) Create(ctx context.Context, b *model.Booking) error {
	f.nextID++
	b.ID = f.nextID
	f.created = append(f.created, *b)
	return nil
}

type fakeAvailability struct {
	unavailable map[string]bool
}

func (f *fakeAvailability) GetStatus(ctx context.Context, artistID uint64, date string) (model.Status, error) {
	if f.unavailable[date] {
		return model.StatusUnavailable, nil
	}
	return model.StatusAvailable, nil
}

func newTestCoordinator(namer *fakeNamer, store *fakeBookingStore, avail *fakeAvailability) (*BookingCoordinator, *[]queue.BookingCreatedEvent) {
	co := NewBookingCoordinator(namer, store, avail)
	published := []queue.BookingCreatedEvent{}
	co.publish = func(ctx context.Context, ev queue.BookingCreatedEvent) error {
		published = append(published, ev)
		return nil
	}
	return co, &published
}

func TestBookingCoordinatorRejectsBeforeWriting(t *testing.T) {
	cases := []struct {
		name    string
		req     BookingRequest
		wantErr error
	}{
		{
			"unauthenticated",
			BookingRequest{CustomerID: 0, ArtistID: 7, Date: "2024-06-11", TimeSlot: "2:00 PM"},
			ErrAuthRequired,
		},
		{
			"missing date",
			BookingRequest{CustomerID: 3, ArtistID: 7, TimeSlot: "2:00 PM"},
			ErrIncompleteSelection,
		},
		{
			"missing slot",
			BookingRequest{CustomerID: 3, ArtistID: 7, Date: "2024-06-11"},
			ErrIncompleteSelection,
		},
		{
			"malformed date",
			BookingRequest{CustomerID: 3, ArtistID: 7, Date: "June 11", TimeSlot: "2:00 PM"},
			model.ErrInvalidDate,
		},
		{
			"unknown slot",
			BookingRequest{CustomerID: 3, ArtistID: 7, Date: "2024-06-11", TimeSlot: "1:00 PM"},
			ErrInvalidSlot,
		},
		{
			"unavailable date",
			BookingRequest{CustomerID: 3, ArtistID: 7, Date: "2024-06-10", TimeSlot: "10:00 AM"},
			ErrDateUnavailable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeBookingStore{}
			co, published := newTestCoordinator(
				&fakeNamer{name: "Rosa Lee", found: true},
				store,
				&fakeAvailability{unavailable: map[string]bool{"2024-06-10": true}},
			)

			_, err := co.Create(context.Background(), tc.req)
			require.ErrorIs(t, err, tc.wantErr)
			require.Empty(t, store.created, "rejected attempt must not write a record")
			require.Empty(t, *published)
		})
	}
}

func TestBookingCoordinatorCreatesExactlyOneRecord(t *testing.T) {
	store := &fakeBookingStore{}
	co, published := newTestCoordinator(
		&fakeNamer{name: "Rosa Lee", found: true},
		store,
		&fakeAvailability{unavailable: map[string]bool{"2024-06-10": true}},
	)

	b, err := co.Create(context.Background(), BookingRequest{
		CustomerID: 3,
		ArtistID:   7,
		Date:       "2024-06-11",
		TimeSlot:   "2:00 PM",
		Note:       "no fragrance",
	})
	require.NoError(t, err)

	require.Len(t, store.created, 1)
	got := store.created[0]
	require.Equal(t, uint64(7), got.ArtistID)
	require.Equal(t, "Rosa Lee", got.ArtistName)
	require.Equal(t, uint64(3), got.CustomerID)
	require.Equal(t, "2024-06-11", got.BookingDate)
	require.Equal(t, "2:00 PM", got.TimeSlot)
	require.Equal(t, "no fragrance", got.Note)
	require.NotEmpty(t, got.Reference)
	require.Equal(t, got.Reference, b.Reference)

	require.Len(t, *published, 1)
	require.Equal(t, b.ID, (*published)[0].BookingID)
}

func TestBookingCoordinatorAllowsDoubleBooking(t *testing.T) {
	store := &fakeBookingStore{}
	co, _ := newTestCoordinator(
		&fakeNamer{name: "Rosa Lee", found: true},
		store,
		&fakeAvailability{},
	)

	req := BookingRequest{CustomerID: 3, ArtistID: 7, Date: "2024-06-11", TimeSlot: "2:00 PM"}
	_, err := co.Create(context.Background(), req)
	require.NoError(t, err)
	_, err = co.Create(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, store.created, 2)
	require.NotEqual(t, store.created[0].Reference, store.created[1].Reference)
}

func TestBookingCoordinatorStampsCreationTime(t *testing.T) {
	store := &fakeBookingStore{}
	co, published := newTestCoordinator(
		&fakeNamer{name: "Rosa Lee", found: true},
		store,
		&fakeAvailability{},
	)
	frozen := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	co.now = func() time.Time { return frozen }

	b, err := co.Create(context.Background(), BookingRequest{
		CustomerID: 3,
		ArtistID:   7,
		Date:       "2024-06-11",
		TimeSlot:   "2:00 PM",
	})
	require.NoError(t, err)
	require.Equal(t, frozen, b.CreatedAt)
	require.Equal(t, frozen, store.created[0].CreatedAt)

	require.Len(t, *published, 1)
	require.Equal(t, frozen.Format(time.RFC3339), (*published)[0].CreatedAt)
}

func TestBookingCoordinatorDegradesToPlaceholderName(t *testing.T) {
	store := &fakeBookingStore{}
	co, _ := newTestCoordinator(
		&fakeNamer{found: false},
		store,
		&fakeAvailability{},
	)

	b, err := co.Create(context.Background(), BookingRequest{
		CustomerID: 3,
		ArtistID:   99,
		Date:       "2024-06-11",
		TimeSlot:   "3:00 PM",
	})
	require.NoError(t, err)
	require.Equal(t, model.UnknownArtistName, b.ArtistName)
	require.Len(t, store.created, 1)
}
