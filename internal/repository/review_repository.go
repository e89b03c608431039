package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/rosabel/glambook/internal/model"
)

// ReviewRepo persists customer reviews.  The one-review-per-booking
// rule is enforced by a UNIQUE index on reviews.booking_id.
type ReviewRepo struct{ DB *sql.DB }

func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{DB: db} }

// Create inserts a review row.  A duplicate booking_id surfaces as
// ErrDuplicateReview.
func (r *ReviewRepo) Create(ctx context.Context, rv *model.Review) error {
	rv.CreatedAt = time.Now().UTC()
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO reviews (artist_id, customer_id, booking_id, rating, review_text, created_at) VALUES (?,?,?,?,?,?)",
		rv.ArtistID, rv.CustomerID, rv.BookingID, rv.Rating, rv.ReviewText, rv.CreatedAt)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrDuplicateReview
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rv.ID = uint64(id)
	return nil
}

// ListByArtist returns an artist's reviews, newest first.
func (r *ReviewRepo) ListByArtist(ctx context.Context, artistID uint64) ([]model.Review, error) {
	return r.list(ctx,
		"SELECT id,artist_id,customer_id,booking_id,rating,review_text,created_at FROM reviews WHERE artist_id=? ORDER BY created_at DESC",
		artistID)
}

// ListByCustomer returns reviews written by a customer, newest first.
func (r *ReviewRepo) ListByCustomer(ctx context.Context, customerID uint64) ([]model.Review, error) {
	return r.list(ctx,
		"SELECT id,artist_id,customer_id,booking_id,rating,review_text,created_at FROM reviews WHERE customer_id=? ORDER BY created_at DESC",
		customerID)
}

// RatingsByArtist returns only the rating values for an artist, used
// by the review aggregator.
func (r *ReviewRepo) RatingsByArtist(ctx context.Context, artistID uint64) ([]uint8, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT rating FROM reviews WHERE artist_id=?", artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []uint8{}
	for rows.Next() {
		var v uint8
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// HasReviewForBooking reports whether a booking has been reviewed.
func (r *ReviewRepo) HasReviewForBooking(ctx context.Context, bookingID uint64) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM reviews WHERE booking_id=? LIMIT 1", bookingID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *ReviewRepo) list(ctx context.Context, query string, args ...any) ([]model.Review, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Review{}
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.ArtistID, &rv.CustomerID, &rv.BookingID,
			&rv.Rating, &rv.ReviewText, &rv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}
