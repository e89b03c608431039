package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rosabel/glambook/internal/model"
	"github.com/rosabel/glambook/internal/repository"
)

type fakeSavedStore struct {
	rows map[[2]uint64]model.SavedArtist
}

func newFakeSavedStore() *fakeSavedStore {
	return &fakeSavedStore{rows: map[[2]uint64]model.SavedArtist{}}
}

func (f *fakeSavedStore) Exists(ctx context.Context, customerID, artistID uint64) (bool, error) {
	_, ok := f.rows[[2]uint64{customerID, artistID}]
	return ok, nil
}

func (f *fakeSavedStore) Insert(ctx context.Context, s model.SavedArtist) error {
	f.rows[[2]uint64{s.CustomerID, s.ArtistID}] = s
	return nil
}

func (f *fakeSavedStore) Delete(ctx context.Context, customerID, artistID uint64) error {
	delete(f.rows, [2]uint64{customerID, artistID})
	return nil
}

type fakeArtistLookup struct {
	artists map[uint64]model.Artist
}

func (f *fakeArtistLookup) GetByID(ctx context.Context, artistID uint64) (model.Artist, error) {
	a, ok := f.artists[artistID]
	if !ok {
		return model.Artist{}, repository.ErrArtistNotFound
	}
	return a, nil
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	saved := newFakeSavedStore()
	toggle := NewSavedArtistToggle(saved, &fakeArtistLookup{artists: map[uint64]model.Artist{
		7: {UserID: 7, Name: "Rosa Lee", Specialties: "Bridal", ProfilePicture: "https://img.example/rosa.jpg"},
	}})
	ctx := context.Background()

	state, err := toggle.Toggle(ctx, 3, 7)
	require.NoError(t, err)
	require.Equal(t, ToggleAdded, state)

	row := saved.rows[[2]uint64{3, 7}]
	require.Equal(t, "Rosa Lee", row.ArtistName)
	require.Equal(t, "Bridal", row.Specialties)
	require.Equal(t, "https://img.example/rosa.jpg", row.ProfilePicture)

	state, err = toggle.Toggle(ctx, 3, 7)
	require.NoError(t, err)
	require.Equal(t, ToggleRemoved, state)
	require.Empty(t, saved.rows)

	// Toggling twice lands back where it started; a third lands saved.
	state, err = toggle.Toggle(ctx, 3, 7)
	require.NoError(t, err)
	require.Equal(t, ToggleAdded, state)
}

func TestToggleUnknownArtist(t *testing.T) {
	saved := newFakeSavedStore()
	toggle := NewSavedArtistToggle(saved, &fakeArtistLookup{artists: map[uint64]model.Artist{}})

	_, err := toggle.Toggle(context.Background(), 3, 99)
	require.ErrorIs(t, err, repository.ErrArtistNotFound)
	require.Empty(t, saved.rows)
}

// Removing a saved artist whose profile has since vanished must still
// succeed; the lookup only gates inserts.
func TestToggleRemoveSurvivesVanishedArtist(t *testing.T) {
	saved := newFakeSavedStore()
	saved.rows[[2]uint64{3, 7}] = model.SavedArtist{CustomerID: 3, ArtistID: 7, ArtistName: "Rosa Lee"}
	toggle := NewSavedArtistToggle(saved, &fakeArtistLookup{artists: map[uint64]model.Artist{}})

	state, err := toggle.Toggle(context.Background(), 3, 7)
	require.NoError(t, err)
	require.Equal(t, ToggleRemoved, state)
	require.Empty(t, saved.rows)
}
