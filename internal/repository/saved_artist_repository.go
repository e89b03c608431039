package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/rosabel/glambook/internal/model"
)

// SavedArtistRepo persists the customer -> artist favorite relation.
// The composite primary key (customer_id, artist_id) is the membership
// key; display fields are denormalized at save time.
type SavedArtistRepo struct{ DB *sql.DB }

func NewSavedArtistRepo(db *sql.DB) *SavedArtistRepo { return &SavedArtistRepo{DB: db} }

// Exists reports membership for the (customer, artist) pair.
func (r *SavedArtistRepo) Exists(ctx context.Context, customerID, artistID uint64) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM saved_artists WHERE customer_id=? AND artist_id=? LIMIT 1",
		customerID, artistID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Insert adds the pair.  INSERT IGNORE keeps a lost race between two
// rapid toggles from producing an error; the key structure already
// guarantees a single row.
func (r *SavedArtistRepo) Insert(ctx context.Context, s model.SavedArtist) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT IGNORE INTO saved_artists (customer_id, artist_id, artist_name, profile_picture, specialties, created_at) VALUES (?,?,?,?,?,?)",
		s.CustomerID, s.ArtistID, s.ArtistName, s.ProfilePicture, s.Specialties, time.Now().UTC())
	return err
}

// Delete removes the pair; deleting an absent row is a no-op.
func (r *SavedArtistRepo) Delete(ctx context.Context, customerID, artistID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM saved_artists WHERE customer_id=? AND artist_id=?",
		customerID, artistID)
	return err
}

// ListByCustomer returns the customer's saved artists, most recently
// saved first.
func (r *SavedArtistRepo) ListByCustomer(ctx context.Context, customerID uint64) ([]model.SavedArtist, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT customer_id,artist_id,artist_name,profile_picture,specialties,created_at FROM saved_artists WHERE customer_id=? ORDER BY created_at DESC",
		customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.SavedArtist{}
	for rows.Next() {
		var s model.SavedArtist
		var picture sql.NullString
		if err := rows.Scan(&s.CustomerID, &s.ArtistID, &s.ArtistName, &picture, &s.Specialties, &s.CreatedAt); err != nil {
			return nil, err
		}
		if picture.Valid {
			s.ProfilePicture = picture.String
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
