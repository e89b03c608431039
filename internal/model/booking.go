package model

import "time"

// TimeSlots is the fixed set of bookable session labels per day.  The
// labels are stored verbatim on booking records; there is no
// slot-level conflict detection, so two customers may book the same
// artist at the same date and slot.
var TimeSlots = []string{
	"9:00 AM",
	"10:00 AM",
	"11:00 AM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
}

// ValidSlot reports whether label is one of the six bookable slots.
func ValidSlot(label string) bool {
	for _, s := range TimeSlots {
		if s == label {
			return true
		}
	}
	return false
}

// Booking records a customer's reserved date and time slot with a
// specific artist.  Rows are immutable after creation; there is no
// update or cancellation path.
//
// Fields:
//  ID          – primary key identifier.
//  Reference   – customer-facing UUID reference code.
//  ArtistID    – artist being booked.
//  ArtistName  – artist display name denormalized at submit time.
//  CustomerID  – customer who placed the booking.
//  BookingDate – ISO calendar date of the session (YYYY-MM-DD).
//  TimeSlot    – one of the TimeSlots labels.
//  Note        – free-text requirements from the customer.
//  CreatedAt   – creation timestamp (UTC).
type Booking struct {
	ID          uint64    `json:"id"`           // bookings.id
	Reference   string    `json:"reference"`    // bookings.reference
	ArtistID    uint64    `json:"artist_id"`    // bookings.artist_id
	ArtistName  string    `json:"artist_name"`  // bookings.artist_name
	CustomerID  uint64    `json:"customer_id"`  // bookings.customer_id
	BookingDate string    `json:"date"`         // bookings.booking_date
	TimeSlot    string    `json:"time"`         // bookings.time_slot
	Note        string    `json:"note"`         // bookings.note
	CreatedAt   time.Time `json:"created_at"`   // bookings.created_at
}
