// Package queue defines the message payloads exchanged over the
// broker, the publisher used by request handlers and the background
// consumer that records confirmed bookings.
package queue

// Queue names.  Each event type gets its own durable queue; routing
// uses the default exchange with the queue name as routing key.
const (
	BookingCreatedQueue         = "booking.created"
	ReviewSubmittedQueue        = "review.submitted"
	PasswordResetRequestedQueue = "password.reset.requested"
)

// BookingCreatedEvent is published when a booking record has been
// persisted.  It carries enough context for downstream consumers to
// log or notify without querying the primary database.
type BookingCreatedEvent struct {
	BookingID  uint64 `json:"booking_id"`
	Reference  string `json:"reference"`
	ArtistID   uint64 `json:"artist_id"`
	ArtistName string `json:"artist_name"`
	CustomerID uint64 `json:"customer_id"`
	Date       string `json:"date"`
	TimeSlot   string `json:"time"`
	Note       string `json:"note,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// ReviewSubmittedEvent is published when a customer review has been
// stored.
type ReviewSubmittedEvent struct {
	ReviewID   uint64 `json:"review_id"`
	ArtistID   uint64 `json:"artist_id"`
	CustomerID uint64 `json:"customer_id"`
	BookingID  uint64 `json:"booking_id"`
	Rating     uint8  `json:"rating"`
	CreatedAt  string `json:"created_at"`
}

// PasswordResetRequestedEvent is published when a reset token is
// issued.  The mail dispatcher consuming this queue delivers the raw
// token to the account's email; the API itself never sends mail.
type PasswordResetRequestedEvent struct {
	UserID      uint64 `json:"user_id"`
	Email       string `json:"email"`
	ResetToken  string `json:"reset_token"`
	ExpiresAt   string `json:"expires_at"`
	RequestedAt string `json:"requested_at"`
}
