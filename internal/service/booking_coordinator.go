package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rosabel/glambook/internal/model"
	"github.com/rosabel/glambook/internal/queue"
)

// Booking attempt rejections.  Handlers map these to 401 or 422; any
// other error from Create is a persistence failure.
var (
	// ErrAuthRequired: no authenticated principal was attached to
	// the attempt.  The client should route through login; nothing
	// is written.
	ErrAuthRequired = errors.New("authentication required")
	// ErrIncompleteSelection: date and/or time slot not yet chosen.
	ErrIncompleteSelection = errors.New("date and time slot are required")
	// ErrInvalidSlot: the time label is not one of the six bookable
	// slots.
	ErrInvalidSlot = errors.New("unknown time slot")
	// ErrDateUnavailable: the artist marked the chosen date
	// unavailable.  The selection is preserved client-side for
	// retry with a different date.
	ErrDateUnavailable = errors.New("artist is unavailable on the chosen date")
)

// ArtistNamer resolves an artist's display name for denormalization,
// degrading to the placeholder when the profile is missing.
// Implemented by repository.ArtistRepo.
type ArtistNamer interface {
	DisplayName(ctx context.Context, artistID uint64) (name string, found bool, err error)
}

// BookingStore persists booking records.  Implemented by
// repository.BookingRepo.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
}

// AvailabilityReader is the slice of the ledger the coordinator
// consults.  The read is advisory: it may come from a cached snapshot
// and is not re-checked atomically with the insert, so concurrent
// availability edits can race a submission undetected.  That matches
// the source system's consistency model and is a documented
// limitation, not a guarantee.
type AvailabilityReader interface {
	GetStatus(ctx context.Context, artistID uint64, date string) (model.Status, error)
}

// BookingCoordinator turns a validated (artist, date, slot, note)
// selection plus the session principal into a persisted booking.
// The attempt pipeline mirrors the submission flow of the UI: an
// unauthenticated attempt aborts before any validation, an incomplete
// selection never reaches availability checking, and only a fully
// validated attempt issues the write.
type BookingCoordinator struct {
	artists      ArtistNamer
	bookings     BookingStore
	availability AvailabilityReader

	// publish emits the post-persist event.  Best effort; swapped
	// out in tests.
	publish func(ctx context.Context, ev queue.BookingCreatedEvent) error

	now func() time.Time
}

// NewBookingCoordinator wires the coordinator.  All dependencies must
// be non-nil.
func NewBookingCoordinator(artists ArtistNamer, bookings BookingStore, availability AvailabilityReader) *BookingCoordinator {
	if artists == nil || bookings == nil || availability == nil {
		panic("nil dependency passed to NewBookingCoordinator")
	}
	return &BookingCoordinator{
		artists:      artists,
		bookings:     bookings,
		availability: availability,
		publish:      queue.PublishBookingCreated,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// BookingRequest is one booking attempt.  CustomerID 0 means no
// authenticated principal.
type BookingRequest struct {
	CustomerID uint64
	ArtistID   uint64
	Date       string // ISO YYYY-MM-DD
	TimeSlot   string // one of model.TimeSlots
	Note       string
}

// Create validates the attempt and persists exactly one booking record
// on success.  No record is ever written on a rejected attempt.
// Double-booking the same artist, date and slot is allowed; only a
// whole-date unavailable marking blocks submission.
func (c *BookingCoordinator) Create(ctx context.Context, req BookingRequest) (model.Booking, error) {
	if req.CustomerID == 0 {
		return model.Booking{}, ErrAuthRequired
	}
	if req.Date == "" || req.TimeSlot == "" {
		return model.Booking{}, ErrIncompleteSelection
	}
	if !model.ValidDate(req.Date) {
		return model.Booking{}, model.ErrInvalidDate
	}
	if !model.ValidSlot(req.TimeSlot) {
		return model.Booking{}, ErrInvalidSlot
	}

	status, err := c.availability.GetStatus(ctx, req.ArtistID, req.Date)
	if err != nil {
		return model.Booking{}, err
	}
	if status == model.StatusUnavailable {
		return model.Booking{}, ErrDateUnavailable
	}

	// Denormalize the artist name at submit time; a vanished profile
	// degrades to the placeholder rather than failing the booking.
	name, _, err := c.artists.DisplayName(ctx, req.ArtistID)
	if err != nil {
		return model.Booking{}, err
	}

	b := model.Booking{
		Reference:   uuid.NewString(),
		CreatedAt:   c.now(),
		ArtistID:    req.ArtistID,
		ArtistName:  name,
		CustomerID:  req.CustomerID,
		BookingDate: req.Date,
		TimeSlot:    req.TimeSlot,
		Note:        req.Note,
	}
	if err := c.bookings.Create(ctx, &b); err != nil {
		return model.Booking{}, err
	}

	_ = c.publish(ctx, queue.BookingCreatedEvent{
		BookingID:  b.ID,
		Reference:  b.Reference,
		ArtistID:   b.ArtistID,
		ArtistName: b.ArtistName,
		CustomerID: b.CustomerID,
		Date:       b.BookingDate,
		TimeSlot:   b.TimeSlot,
		Note:       b.Note,
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	})
	return b, nil
}
