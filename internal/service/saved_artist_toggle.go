package service

import (
	"context"

	"github.com/rosabel/glambook/internal/model"
)

// ToggleResult reports which way a toggle went.
type ToggleResult string

const (
	ToggleAdded   ToggleResult = "added"
	ToggleRemoved ToggleResult = "removed"
)

// SavedArtistStore is the membership surface the toggle needs.
// Implemented by repository.SavedArtistRepo.
type SavedArtistStore interface {
	Exists(ctx context.Context, customerID, artistID uint64) (bool, error)
	Insert(ctx context.Context, s model.SavedArtist) error
	Delete(ctx context.Context, customerID, artistID uint64) error
}

// ArtistLookup resolves the full profile for denormalizing display
// fields on insert.  Implemented by repository.ArtistRepo.
type ArtistLookup interface {
	GetByID(ctx context.Context, artistID uint64) (model.Artist, error)
}

// SavedArtistToggle flips membership of an artist in a customer's
// saved list.  Each call reads current membership before acting, so
// the operation is its own inverse; two rapid toggles from the same
// client can still race each other, with the composite key as the
// only guard.
type SavedArtistToggle struct {
	saved   SavedArtistStore
	artists ArtistLookup
}

func NewSavedArtistToggle(saved SavedArtistStore, artists ArtistLookup) *SavedArtistToggle {
	if saved == nil || artists == nil {
		panic("nil dependency passed to NewSavedArtistToggle")
	}
	return &SavedArtistToggle{saved: saved, artists: artists}
}

// Toggle removes the pair when present, otherwise inserts it with the
// artist's display fields denormalized at save time.  Inserting
// requires the artist profile to exist
// (repository.ErrArtistNotFound otherwise); removal does not.
func (t *SavedArtistToggle) Toggle(ctx context.Context, customerID, artistID uint64) (ToggleResult, error) {
	present, err := t.saved.Exists(ctx, customerID, artistID)
	if err != nil {
		return "", err
	}
	if present {
		if err := t.saved.Delete(ctx, customerID, artistID); err != nil {
			return "", err
		}
		return ToggleRemoved, nil
	}

	artist, err := t.artists.GetByID(ctx, artistID)
	if err != nil {
		return "", err
	}
	if err := t.saved.Insert(ctx, model.SavedArtist{
		CustomerID:     customerID,
		ArtistID:       artistID,
		ArtistName:     artist.Name,
		ProfilePicture: artist.ProfilePicture,
		Specialties:    artist.Specialties,
	}); err != nil {
		return "", err
	}
	return ToggleAdded, nil
}
