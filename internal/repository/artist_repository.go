package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/rosabel/glambook/internal/model"
)

// ArtistRepo provides persistence for artist profiles.  The row is
// keyed by the owning account's user ID.  Portfolio image URLs are
// stored as a JSON array in a single column.
type ArtistRepo struct{ DB *sql.DB }

func NewArtistRepo(db *sql.DB) *ArtistRepo { return &ArtistRepo{DB: db} }

const artistColumns = "user_id,name,specialties,experience,location,rate,profile_picture,portfolio,instagram,facebook,tiktok,created_at,updated_at"

// Create inserts the artist profile row at signup.  The caller has
// already created the account row with the same ID.
func (r *ArtistRepo) Create(ctx context.Context, userID uint64, name, specialties, experience string) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO artists (user_id, name, specialties, experience, portfolio) VALUES (?,?,?,?,'[]')",
		userID, name, specialties, experience)
	return err
}

// GetByID fetches a full artist profile.  Returns ErrArtistNotFound
// when no row exists.
func (r *ArtistRepo) GetByID(ctx context.Context, userID uint64) (model.Artist, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+artistColumns+" FROM artists WHERE user_id=? LIMIT 1", userID)
	a, err := scanArtist(row)
	if err == sql.ErrNoRows {
		return model.Artist{}, ErrArtistNotFound
	}
	return a, err
}

// DisplayName returns the artist's display name, degrading to the
// "Unknown Artist" placeholder when the profile has gone missing.
// Booking denormalization distinguishes a missing row from a real
// database failure via the returned bool.
func (r *ArtistRepo) DisplayName(ctx context.Context, userID uint64) (string, bool, error) {
	var name string
	err := r.DB.QueryRowContext(ctx,
		"SELECT name FROM artists WHERE user_id=? LIMIT 1", userID).Scan(&name)
	if err == sql.ErrNoRows {
		return model.UnknownArtistName, false, nil
	}
	if err != nil {
		return "", false, err
	}
	return name, true, nil
}

// List returns all artist profiles for the public directory.
func (r *ArtistRepo) List(ctx context.Context) ([]model.Artist, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+artistColumns+" FROM artists ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Artist{}
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// UpdateProfile stores the mutable profile fields.  Portfolio images
// are updated separately through AppendPortfolioImage.
func (r *ArtistRepo) UpdateProfile(ctx context.Context, userID uint64, a model.Artist) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE artists SET name=?, specialties=?, experience=?, location=?, rate=?,
		 profile_picture=?, instagram=?, facebook=?, tiktok=? WHERE user_id=?`,
		a.Name, a.Specialties, a.Experience, a.Location, a.Rate,
		nullIfEmpty(a.ProfilePicture), a.Instagram, a.Facebook, a.TikTok, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Zero rows can also mean a no-op update; verify existence.
		var one int
		if err := r.DB.QueryRowContext(ctx,
			"SELECT 1 FROM artists WHERE user_id=?", userID).Scan(&one); err == sql.ErrNoRows {
			return ErrArtistNotFound
		} else if err != nil {
			return err
		}
	}
	return nil
}

// SetProfilePicture stores a new profile image URL.
func (r *ArtistRepo) SetProfilePicture(ctx context.Context, userID uint64, url string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE artists SET profile_picture=? WHERE user_id=?", url, userID)
	return err
}

// AppendPortfolioImage adds an image URL to the artist's portfolio,
// enforcing the five-image cap.  The JSON array is read, extended and
// written back; portfolio edits come only from the owning artist so
// no version token is kept here.
func (r *ArtistRepo) AppendPortfolioImage(ctx context.Context, userID uint64, url string) ([]string, error) {
	var raw []byte
	err := r.DB.QueryRowContext(ctx,
		"SELECT portfolio FROM artists WHERE user_id=? LIMIT 1", userID).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, ErrArtistNotFound
	}
	if err != nil {
		return nil, err
	}
	portfolio := []string{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &portfolio); err != nil {
			return nil, err
		}
	}
	if len(portfolio) >= model.MaxPortfolioImages {
		return nil, ErrPortfolioFull
	}
	portfolio = append(portfolio, url)
	enc, err := json.Marshal(portfolio)
	if err != nil {
		return nil, err
	}
	if _, err := r.DB.ExecContext(ctx,
		"UPDATE artists SET portfolio=? WHERE user_id=?", enc, userID); err != nil {
		return nil, err
	}
	return portfolio, nil
}

// scanArtist reads one artist row from either *sql.Row or *sql.Rows.
func scanArtist(s interface{ Scan(...any) error }) (model.Artist, error) {
	var (
		a         model.Artist
		rate      sql.NullFloat64
		picture   sql.NullString
		portfolio []byte
	)
	if err := s.Scan(&a.UserID, &a.Name, &a.Specialties, &a.Experience, &a.Location,
		&rate, &picture, &portfolio, &a.Instagram, &a.Facebook, &a.TikTok,
		&a.CreatedAt, &a.UpdatedAt); err != nil {
		return model.Artist{}, err
	}
	if rate.Valid {
		v := rate.Float64
		a.Rate = &v
	}
	if picture.Valid {
		a.ProfilePicture = picture.String
	}
	a.Portfolio = []string{}
	if len(portfolio) > 0 {
		if err := json.Unmarshal(portfolio, &a.Portfolio); err != nil {
			return model.Artist{}, err
		}
	}
	return a, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
