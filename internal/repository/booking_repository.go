package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/rosabel/glambook/internal/model"
)

// BookingRepo persists booking records.  Bookings are immutable: the
// repository exposes no update or delete.  There is deliberately no
// uniqueness constraint on (artist_id, booking_date, time_slot); two
// customers booking the same slot both succeed.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

const bookingColumns = "id,reference,artist_id,artist_name,customer_id,booking_date,time_slot,note,created_at"

// Create inserts a booking row and populates the generated ID on the
// passed record.  A zero CreatedAt is stamped here; callers that
// already stamped one (the coordinator) keep theirs.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO bookings (reference, artist_id, artist_name, customer_id, booking_date, time_slot, note, created_at) VALUES (?,?,?,?,?,?,?,?)",
		b.Reference, b.ArtistID, b.ArtistName, b.CustomerID, b.BookingDate, b.TimeSlot, b.Note, b.CreatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// GetByIDForCustomer fetches one booking, enforcing ownership.  A row
// owned by someone else returns ErrForbidden; no row returns
// ErrBookingNotFound.
func (r *BookingRepo) GetByIDForCustomer(ctx context.Context, id, customerID uint64) (model.Booking, error) {
	var b model.Booking
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE id=? LIMIT 1", id).
		Scan(&b.ID, &b.Reference, &b.ArtistID, &b.ArtistName, &b.CustomerID,
			&b.BookingDate, &b.TimeSlot, &b.Note, &b.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Booking{}, ErrBookingNotFound
	}
	if err != nil {
		return model.Booking{}, err
	}
	if b.CustomerID != customerID {
		return model.Booking{}, ErrForbidden
	}
	return b, nil
}

// ListByCustomer returns a customer's bookings split by the cutoff
// date: upcoming (booking_date >= cutoff) sorted ascending, or past
// sorted descending, matching the source dashboard queries.
func (r *BookingRepo) ListByCustomer(ctx context.Context, customerID uint64, cutoff string, upcoming bool) ([]model.Booking, error) {
	q := "SELECT " + bookingColumns + " FROM bookings WHERE customer_id=? AND booking_date >= ? ORDER BY booking_date ASC, created_at ASC"
	if !upcoming {
		q = "SELECT " + bookingColumns + " FROM bookings WHERE customer_id=? AND booking_date < ? ORDER BY booking_date DESC, created_at DESC"
	}
	return r.list(ctx, q, customerID, cutoff)
}

// ListByArtist returns all bookings placed with an artist, newest
// date first.
func (r *BookingRepo) ListByArtist(ctx context.Context, artistID uint64) ([]model.Booking, error) {
	return r.list(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE artist_id=? ORDER BY booking_date DESC, created_at DESC",
		artistID)
}

func (r *BookingRepo) list(ctx context.Context, query string, args ...any) ([]model.Booking, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Booking{}
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.Reference, &b.ArtistID, &b.ArtistName,
			&b.CustomerID, &b.BookingDate, &b.TimeSlot, &b.Note, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
